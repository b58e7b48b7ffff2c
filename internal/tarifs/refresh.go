package tarifs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/klikphone/sav-portal/internal/models"
)

var ErrUpdateInFlight = errors.New("tarifs: update already running")

const (
	ModeDelay = "delay"
	ModePoll  = "poll"
)

// Source is the part of the backend client the price grid needs.
type Source interface {
	ListTarifs(ctx context.Context, q, brand string) ([]map[string]any, error)
	TarifStats(ctx context.Context) (models.TarifStats, error)
	TriggerTarifUpdate(ctx context.Context) (models.TriggerResult, error)
}

// Grid is one freshly computed price grid. It is rebuilt from scratch on
// every load.
type Grid struct {
	Records  []PriceRecord     `json:"-"`
	Skipped  int               `json:"skipped"`
	Catalog  Catalog           `json:"-"`
	Sections []BrandSection    `json:"sections"`
	Stats    Stats             `json:"stats"`
	Backend  models.TarifStats `json:"backend_stats"`
	Models   int               `json:"model_count"`
	Rows     int               `json:"row_count"`
}

func Load(ctx context.Context, src Source, q, brand string) (Grid, error) {
	rows, err := src.ListTarifs(ctx, q, brand)
	if err != nil {
		return Grid{}, fmt.Errorf("list tarifs: %w", err)
	}
	backend, err := src.TarifStats(ctx)
	if err != nil {
		return Grid{}, fmt.Errorf("tarif stats: %w", err)
	}
	return Build(rows, backend), nil
}

func Build(rows []RawRow, backend models.TarifStats) Grid {
	records, skipped := Normalize(rows)
	catalog := Aggregate(records)
	return Grid{
		Records:  records,
		Skipped:  skipped,
		Catalog:  catalog,
		Sections: Present(catalog, BrandOrder),
		Stats:    ComputeStats(records),
		Backend:  backend,
		Models:   catalog.ModelCount(),
		Rows:     len(records),
	}
}

// Refresher fires the backend's bulk price update and tracks the window
// during which the grid is considered stale. The backend sends no
// completion signal: in delay mode the window is a fixed wait, in poll mode
// it ends when the stats report a new last_update or PollTimeout passes.
type Refresher struct {
	Source       Source
	Mode         string
	Delay        time.Duration
	PollInterval time.Duration
	PollTimeout  time.Duration
	Logger       zerolog.Logger
	// OnSettled runs after a wait that was not cancelled.
	OnSettled func(ctx context.Context)

	mu       sync.Mutex
	updating bool
}

func (r *Refresher) Updating() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updating
}

// Trigger starts an update and returns a channel closed when the stale
// window ends or ctx is cancelled.
func (r *Refresher) Trigger(ctx context.Context) (<-chan struct{}, error) {
	r.mu.Lock()
	if r.updating {
		r.mu.Unlock()
		return nil, ErrUpdateInFlight
	}
	r.updating = true
	r.mu.Unlock()

	var baseline *string
	if r.Mode == ModePoll {
		if st, err := r.Source.TarifStats(ctx); err == nil {
			baseline = st.LastUpdate
		}
	}

	if _, err := r.Source.TriggerTarifUpdate(ctx); err != nil {
		r.finish()
		return nil, err
	}
	r.Logger.Info().Str("mode", r.mode()).Msg("tarif update triggered")

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer r.finish()
		var err error
		if r.mode() == ModePoll {
			err = r.poll(ctx, baseline)
		} else {
			err = sleep(ctx, r.delay())
		}
		if err != nil {
			r.Logger.Debug().Err(err).Msg("tarif update wait abandoned")
			return
		}
		if r.OnSettled != nil {
			r.OnSettled(ctx)
		}
	}()
	return done, nil
}

func (r *Refresher) finish() {
	r.mu.Lock()
	r.updating = false
	r.mu.Unlock()
}

func (r *Refresher) mode() string {
	if r.Mode == ModePoll {
		return ModePoll
	}
	return ModeDelay
}

func (r *Refresher) delay() time.Duration {
	if r.Delay <= 0 {
		return 3 * time.Second
	}
	return r.Delay
}

func (r *Refresher) poll(ctx context.Context, baseline *string) error {
	interval := r.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	timeout := r.PollTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	deadline := time.Now().Add(timeout)
	for {
		if err := sleep(ctx, interval); err != nil {
			return err
		}
		st, err := r.Source.TarifStats(ctx)
		if err == nil && st.LastUpdate != nil && (baseline == nil || *st.LastUpdate != *baseline) {
			return nil
		}
		if err != nil {
			r.Logger.Debug().Err(err).Msg("tarif stats poll failed")
		}
		if time.Now().After(deadline) {
			r.Logger.Warn().Dur("timeout", timeout).Msg("tarif update not observed before timeout")
			return nil
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
