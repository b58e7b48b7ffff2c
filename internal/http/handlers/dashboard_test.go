package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/klikphone/sav-portal/internal/models"
	"github.com/klikphone/sav-portal/internal/session"
)

type dashboardBackend struct {
	expired atomic.Bool
	kpis    atomic.Int32
}

func (b *dashboardBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tickets/stats/kpi", func(w http.ResponseWriter, r *http.Request) {
		b.kpis.Add(1)
		if b.expired.Load() {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Token expiré"})
			return
		}
		writeJSON(w, http.StatusOK, models.KPI{TotalActive: 3})
	})
	mux.HandleFunc("GET /tickets", func(w http.ResponseWriter, r *http.Request) {
		if b.expired.Load() {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Token expiré"})
			return
		}
		writeJSON(w, http.StatusOK, []models.Ticket{{ID: 1, TicketCode: "KP-000001", Status: "Awaiting diagnosis"}})
	})
	return mux
}

func dialDashboard(t *testing.T, b *dashboardBackend) (*websocket.Conn, *session.Gate) {
	t.Helper()
	h, gate := newHandler(t, b.handler(), signedIn(session.RoleTechnician))
	h.RefreshInterval = 20 * time.Millisecond
	r := gin.New()
	r.GET("/tech/ws", h.DashboardWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/tech/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn, gate
}

func readFrame(t *testing.T, conn *websocket.Conn) dashboardMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg dashboardMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return msg
}

func TestDashboardWSPushesThenLogsOut(t *testing.T) {
	b := &dashboardBackend{}
	conn, gate := dialDashboard(t, b)

	for i := 0; i < 2; i++ {
		msg := readFrame(t, conn)
		if msg.Type != "dashboard" || msg.Dashboard == nil || msg.Dashboard.KPI.TotalActive != 3 {
			t.Fatalf("frame %d: unexpected %+v", i, msg)
		}
		if len(msg.Dashboard.Tickets) != 1 || msg.Dashboard.Tickets[0].TicketCode != "KP-000001" {
			t.Fatalf("frame %d: unexpected tickets %+v", i, msg.Dashboard.Tickets)
		}
	}

	b.expired.Store(true)
	msg := readFrame(t, conn)
	for msg.Type == "dashboard" {
		msg = readFrame(t, conn)
	}
	if msg.Type != "logout" || msg.Redirect != "/" {
		t.Fatalf("expected logout frame, got %+v", msg)
	}
	if gate.State() != session.Anonymous {
		t.Fatalf("expected anonymous after 401, got %s", gate.State())
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatalf("expected the stream to close after logout")
	}
}

func TestDashboardWSStopsWhenClientLeaves(t *testing.T) {
	b := &dashboardBackend{}
	conn, _ := dialDashboard(t, b)

	if msg := readFrame(t, conn); msg.Type != "dashboard" {
		t.Fatalf("unexpected first frame %+v", msg)
	}
	conn.Close()

	time.Sleep(100 * time.Millisecond)
	settled := b.kpis.Load()
	time.Sleep(200 * time.Millisecond)
	if got := b.kpis.Load(); got != settled {
		t.Fatalf("refresh loop kept fetching after disconnect: %d then %d", settled, got)
	}
}
