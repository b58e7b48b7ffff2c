package tarifs

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/klikphone/sav-portal/internal/models"
)

type fakeSource struct {
	mu         sync.Mutex
	rows       []map[string]any
	lastUpdate *string
	triggers   int
	triggerErr error
	onTrigger  func(*fakeSource)
}

func (f *fakeSource) ListTarifs(ctx context.Context, q, brand string) ([]map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows, nil
}

func (f *fakeSource) TarifStats(ctx context.Context) (models.TarifStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.TarifStats{TotalTarifs: len(f.rows), LastUpdate: f.lastUpdate}, nil
}

func (f *fakeSource) TriggerTarifUpdate(ctx context.Context) (models.TriggerResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggers++
	if f.triggerErr != nil {
		return models.TriggerResult{}, f.triggerErr
	}
	if f.onTrigger != nil {
		f.onTrigger(f)
	}
	return models.TriggerResult{OK: true}, nil
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("refresh did not settle")
	}
}

func TestLoadBuildsGrid(t *testing.T) {
	src := &fakeSource{rows: []map[string]any{
		{"marque": "Samsung", "modele": "Galaxy S24", "type_piece": "Ecran", "prix_client": json.Number("120")},
		{"marque": "Samsung", "modele": "Galaxy S24", "type_piece": "Ecran", "prix_client": json.Number("90")},
		{"marque": "Samsung", "modele": "Galaxy S24", "type_piece": "Batterie", "prix_client": json.Number("40")},
		{"modele": "no brand"},
	}}
	g, err := Load(context.Background(), src, "", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.Rows != 3 || g.Skipped != 1 || g.Models != 1 {
		t.Fatalf("unexpected grid counts %+v", g)
	}
	if len(g.Sections) != 1 || g.Sections[0].Brand != "Samsung" {
		t.Fatalf("unexpected sections %+v", g.Sections)
	}
	if g.Backend.TotalTarifs != 4 {
		t.Fatalf("expected backend stats passthrough, got %+v", g.Backend)
	}
}

func TestRefresherDelaySettles(t *testing.T) {
	src := &fakeSource{}
	var settled atomic.Int32
	r := &Refresher{Source: src, Delay: 10 * time.Millisecond, Logger: zerolog.Nop(),
		OnSettled: func(context.Context) { settled.Add(1) }}

	done, err := r.Trigger(context.Background())
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if !r.Updating() {
		t.Fatalf("expected updating during the wait")
	}
	if _, err := r.Trigger(context.Background()); !errors.Is(err, ErrUpdateInFlight) {
		t.Fatalf("expected ErrUpdateInFlight, got %v", err)
	}
	waitDone(t, done)
	if r.Updating() {
		t.Fatalf("expected updating cleared")
	}
	if settled.Load() != 1 || src.triggers != 1 {
		t.Fatalf("expected one trigger and one settle, got %d/%d", src.triggers, settled.Load())
	}
}

func TestRefresherCancelSkipsSettle(t *testing.T) {
	src := &fakeSource{}
	var settled atomic.Int32
	r := &Refresher{Source: src, Delay: time.Hour, Logger: zerolog.Nop(),
		OnSettled: func(context.Context) { settled.Add(1) }}

	ctx, cancel := context.WithCancel(context.Background())
	done, err := r.Trigger(ctx)
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	cancel()
	waitDone(t, done)
	if settled.Load() != 0 {
		t.Fatalf("reload must not run after cancellation")
	}
	if r.Updating() {
		t.Fatalf("expected updating cleared after cancellation")
	}
}

func TestRefresherTriggerError(t *testing.T) {
	src := &fakeSource{triggerErr: errors.New("boom")}
	r := &Refresher{Source: src, Logger: zerolog.Nop()}
	if _, err := r.Trigger(context.Background()); err == nil {
		t.Fatalf("expected trigger error")
	}
	if r.Updating() {
		t.Fatalf("failed trigger must not leave the grid stale")
	}
}

func TestRefresherPollMode(t *testing.T) {
	old := "2026-01-01T00:00:00"
	src := &fakeSource{lastUpdate: &old}
	src.onTrigger = func(f *fakeSource) {
		go func() {
			time.Sleep(20 * time.Millisecond)
			f.mu.Lock()
			next := "2026-01-02T00:00:00"
			f.lastUpdate = &next
			f.mu.Unlock()
		}()
	}
	var settled atomic.Int32
	r := &Refresher{Source: src, Mode: ModePoll, PollInterval: 5 * time.Millisecond,
		PollTimeout: time.Second, Logger: zerolog.Nop(),
		OnSettled: func(context.Context) { settled.Add(1) }}

	done, err := r.Trigger(context.Background())
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	waitDone(t, done)
	if settled.Load() != 1 {
		t.Fatalf("expected settle once last_update changed")
	}
}
