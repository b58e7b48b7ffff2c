package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/klikphone/sav-portal/internal/api"
	"github.com/klikphone/sav-portal/internal/models"
	"github.com/klikphone/sav-portal/internal/tickets"
	"github.com/klikphone/sav-portal/internal/watch"
)

type DashboardView struct {
	Area        string          `json:"area"`
	KPI         models.KPI      `json:"kpi"`
	Tickets     []models.Ticket `json:"tickets"`
	Search      string          `json:"search"`
	Status      string          `json:"status"`
	Statuses    []string        `json:"statuses"`
	RefreshedAt time.Time       `json:"refreshed_at"`
}

func dashboardFilter(c *gin.Context) (models.TicketFilter, bool) {
	f := models.TicketFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Status: strings.TrimSpace(c.Query("status")),
	}
	if f.Status != "" && !tickets.IsValidStatus(f.Status) {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status", tickets.Statuses)
		return f, false
	}
	return f, true
}

// loadDashboard fetches the KPI block and the ticket list together.
func (h *Handler) loadDashboard(ctx context.Context, f models.TicketFilter) (DashboardView, error) {
	view := DashboardView{
		Area:     h.area(),
		Search:   f.Search,
		Status:   f.Status,
		Statuses: tickets.Statuses,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kpi, err := h.API.KPI(gctx)
		view.KPI = kpi
		return err
	})
	g.Go(func() error {
		list, err := h.API.ListTickets(gctx, f)
		view.Tickets = list
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardView{}, err
	}
	if view.Tickets == nil {
		view.Tickets = []models.Ticket{}
	}
	view.RefreshedAt = time.Now().UTC()
	return view, nil
}

// @Summary Staff dashboard
// @Tags dashboard
// @Produce json
// @Param search query string false "Name, phone, code or brand"
// @Param status query string false "Status filter"
// @Success 200 {object} DashboardView
// @Router /accueil [get]
func (h *Handler) Dashboard(c *gin.Context) {
	f, ok := dashboardFilter(c)
	if !ok {
		return
	}
	view, err := h.loadDashboard(c.Request.Context(), f)
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, view)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type dashboardMessage struct {
	Type      string         `json:"type"`
	Dashboard *DashboardView `json:"dashboard,omitempty"`
	Error     string         `json:"error,omitempty"`
	Redirect  string         `json:"redirect,omitempty"`
}

const wsWriteTimeout = 10 * time.Second

// DashboardWS pushes a fresh dashboard every RefreshInterval until the
// socket closes. A rejected credential sends a redirect frame and stops.
func (h *Handler) DashboardWS(c *gin.Context) {
	f, ok := dashboardFilter(c)
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Logger.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	// the reader only watches for the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	err = watch.Every(ctx, h.RefreshInterval, func(ctx context.Context) (DashboardView, error) {
		return h.loadDashboard(ctx, f)
	}, func(view DashboardView, err error) error {
		msg := dashboardMessage{Type: "dashboard", Dashboard: &view}
		if err != nil {
			if errors.Is(err, api.ErrUnauthenticated) {
				_ = writeWS(conn, dashboardMessage{Type: "logout", Redirect: "/"})
				return err
			}
			msg = dashboardMessage{Type: "error", Error: err.Error()}
		}
		return writeWS(conn, msg)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		h.Logger.Debug().Err(err).Msg("dashboard stream ended")
	}
}

func writeWS(conn *websocket.Conn, msg dashboardMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(msg)
}
