package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"github.com/klikphone/sav-portal/internal/api"
	"github.com/klikphone/sav-portal/internal/config"
	"github.com/klikphone/sav-portal/internal/db"
	"github.com/klikphone/sav-portal/internal/models"
	"github.com/klikphone/sav-portal/internal/session"
	"github.com/klikphone/sav-portal/internal/tarifs"
	"github.com/klikphone/sav-portal/internal/tickets"
	"github.com/klikphone/sav-portal/internal/watch"
)

const usage = "expected one of: login, logout, whoami, tickets, track, tarifs, tarifs-update, tarifs-import"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	cfg    config.Config
	gate   *session.Gate
	client *api.Client
	out    io.Writer
}

func run(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	if len(args) < 1 {
		return errors.New(usage)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	state, err := db.Open(ctx, cfg.StateURL)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer state.Close()
	gate, err := session.Open(ctx, state)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	a := &app{
		cfg:    cfg,
		gate:   gate,
		client: api.New(cfg.APIURL, gate, cfg.RequestTimeout, logger),
		out:    out,
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.login(ctx, rest)
	case "logout":
		if err := a.client.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "logged out")
		return nil
	case "whoami":
		snap := gate.Snapshot()
		if snap.State != session.Authenticated.String() {
			fmt.Fprintln(out, "not logged in")
			return nil
		}
		fmt.Fprintf(out, "%s (%s)\n", snap.Username, snap.Role)
		return nil
	case "tickets":
		return a.tickets(ctx, rest)
	case "track":
		return a.track(ctx, rest)
	case "tarifs":
		return a.tarifs(ctx, rest)
	case "tarifs-update":
		return a.tarifsUpdate(ctx, logger)
	case "tarifs-import":
		return a.tarifsImport(ctx, rest)
	}
	return errors.New(usage)
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	role := fs.String("role", string(session.RoleFrontDesk), "front-desk or technician")
	user := fs.String("user", "", "Staff member name")
	pin := fs.String("pin", "", "Staff PIN")
	if err := fs.Parse(args); err != nil {
		return err
	}
	r, ok := session.ParseRole(*role)
	if !ok {
		return fmt.Errorf("unknown role %q", *role)
	}
	if *pin == "" {
		fs.PrintDefaults()
		return errors.New("pin is required")
	}
	id, err := a.client.Login(ctx, *pin, r, *user)
	if err != nil {
		if errors.Is(err, api.ErrInvalidCredentials) {
			return errors.New("invalid PIN")
		}
		return err
	}
	fmt.Fprintf(a.out, "logged in as %s (%s)\n", id.Username, id.Role)
	return nil
}

// requireSession reports a missing login without calling the backend.
func (a *app) requireSession() error {
	if !a.gate.Allows() {
		return errors.New("not logged in, run: login -role front-desk -pin ...")
	}
	return nil
}

func (a *app) tickets(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tickets", flag.ContinueOnError)
	search := fs.String("search", "", "Name, phone, code or brand")
	status := fs.String("status", "", "Status filter")
	follow := fs.Bool("watch", false, "Refresh every REFRESH_INTERVAL until interrupted")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *status != "" && !tickets.IsValidStatus(*status) {
		return fmt.Errorf("unknown status %q, expected one of: %s", *status, strings.Join(tickets.Statuses, ", "))
	}
	if err := a.requireSession(); err != nil {
		return err
	}
	f := models.TicketFilter{Search: *search, Status: *status}
	fetch := func(ctx context.Context) ([]models.Ticket, error) {
		return a.client.ListTickets(ctx, f)
	}
	if !*follow {
		list, err := fetch(ctx)
		if err != nil {
			return err
		}
		printTickets(a.out, list)
		return nil
	}

	err := watch.Every(ctx, a.cfg.RefreshInterval, fetch, func(list []models.Ticket, err error) error {
		if errors.Is(err, api.ErrUnauthenticated) {
			return err
		}
		if err != nil {
			fmt.Fprintf(a.out, "refresh failed: %v\n", err)
			return nil
		}
		fmt.Fprintf(a.out, "-- %s\n", time.Now().Format("15:04:05"))
		printTickets(a.out, list)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printTickets(out io.Writer, list []models.Ticket) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tCLIENT\tDEVICE\tSTATUS\tTECHNICIAN")
	for _, t := range list {
		client := strings.TrimSpace(t.ClientFirstName + " " + t.ClientLastName)
		device := strings.TrimSpace(t.Brand + " " + t.Model)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.TicketCode, client, device, t.Status, t.Technician)
	}
	tw.Flush()
}

func (a *app) track(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("track", flag.ContinueOnError)
	code := fs.String("code", "", "Ticket code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c := strings.ToUpper(strings.TrimSpace(*code))
	if c == "" {
		return errors.New("code is required")
	}
	t, err := a.client.GetTicketByCode(ctx, c)
	if errors.Is(err, api.ErrNotFound) {
		return errors.New("No ticket found with this code.")
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s  %s %s  %s\n", t.TicketCode, t.Brand, t.Model, t.Status)
	for _, s := range tickets.ProgressOf(t.Status).Steps {
		mark := "[ ]"
		switch {
		case s.Current:
			mark = "[>]"
		case s.Done:
			mark = "[x]"
		}
		fmt.Fprintf(a.out, "  %s %s\n", mark, s.Label)
	}
	return nil
}

func (a *app) tarifs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tarifs", flag.ContinueOnError)
	q := fs.String("q", "", "Model search")
	brand := fs.String("brand", "", "Brand filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}
	g, err := tarifs.Load(ctx, a.client, *q, *brand)
	if err != nil {
		return err
	}
	printGrid(a.out, g)
	return nil
}

func printGrid(out io.Writer, g tarifs.Grid) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, section := range g.Sections {
		fmt.Fprintf(tw, "%s\n", strings.ToUpper(section.Brand))
		for _, m := range section.Models {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", m.DisplayName,
				screenRange(m), amount(m.Pricing.Battery), amount(m.Pricing.ChargePort), amount(m.Pricing.RearCamera))
		}
	}
	tw.Flush()
	fmt.Fprintf(out, "%d models, %d rows", g.Models, g.Rows)
	if g.Skipped > 0 {
		fmt.Fprintf(out, ", %d malformed rows skipped", g.Skipped)
	}
	fmt.Fprintln(out)
}

func screenRange(m tarifs.ModelRow) string {
	if m.ScreenMin == nil {
		return "-"
	}
	if *m.ScreenMin == *m.ScreenMax {
		return fmt.Sprintf("ecran %.0f€", *m.ScreenMin)
	}
	return fmt.Sprintf("ecran %.0f-%.0f€", *m.ScreenMin, *m.ScreenMax)
}

func amount(r *tarifs.PriceRecord) string {
	if r == nil || r.ClientPrice == nil {
		return "-"
	}
	return fmt.Sprintf("%s %.0f€", strings.ToLower(r.PartCategory), *r.ClientPrice)
}

func (a *app) tarifsUpdate(ctx context.Context, logger zerolog.Logger) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	var reloaded *tarifs.Grid
	var reloadErr error
	r := &tarifs.Refresher{
		Source:       a.client,
		Mode:         a.cfg.TarifsRefreshMode,
		Delay:        a.cfg.TarifsRefreshDelay,
		PollInterval: a.cfg.TarifsPollInterval,
		PollTimeout:  a.cfg.TarifsPollTimeout,
		Logger:       logger,
		OnSettled: func(ctx context.Context) {
			g, err := tarifs.Load(ctx, a.client, "", "")
			reloaded, reloadErr = &g, err
		},
	}
	done, err := r.Trigger(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "price update started, waiting for the backend...")
	<-done
	if ctx.Err() != nil {
		return nil
	}
	if reloadErr != nil {
		return reloadErr
	}
	if reloaded != nil {
		fmt.Fprintf(a.out, "grid reloaded: %d models, %d rows\n", reloaded.Models, reloaded.Rows)
	}
	return nil
}

func (a *app) tarifsImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tarifs-import", flag.ContinueOnError)
	file := fs.String("file", "", "Price list CSV")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("file is required")
	}
	if err := a.requireSession(); err != nil {
		return err
	}
	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer f.Close()

	items, rowErrors := tarifs.ParseCSV(f)
	for _, e := range rowErrors {
		fmt.Fprintln(a.out, "skipped:", e)
	}
	if len(items) == 0 {
		return errors.New("no valid price rows")
	}
	res, err := a.client.ImportTarifs(ctx, items)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "imported %d rows\n", res.Imported)
	return nil
}
