package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/klikphone/sav-portal/internal/models"
)

func (c *Client) ListTickets(ctx context.Context, f models.TicketFilter) ([]models.Ticket, error) {
	var out []models.Ticket
	err := c.get(ctx, "/tickets", values("search", f.Search, "status", f.Status), &out)
	return out, err
}

func (c *Client) GetTicket(ctx context.Context, id int64) (models.Ticket, error) {
	var out models.Ticket
	err := c.get(ctx, fmt.Sprintf("/tickets/%d", id), nil, &out)
	return out, err
}

func (c *Client) GetTicketByCode(ctx context.Context, code string) (models.Ticket, error) {
	var out models.Ticket
	err := c.get(ctx, "/tickets/code/"+url.PathEscape(code), nil, &out)
	return out, err
}

func (c *Client) CreateTicket(ctx context.Context, t models.TicketCreate) (models.Ticket, error) {
	var out models.Ticket
	err := c.post(ctx, "/tickets", t, &out)
	return out, err
}

// UpdateTicket pushes a partial update; keys absent from updates stay as the
// backend has them.
func (c *Client) UpdateTicket(ctx context.Context, id int64, updates map[string]any) error {
	return c.patch(ctx, fmt.Sprintf("/tickets/%d", id), updates, nil)
}

func (c *Client) ChangeStatus(ctx context.Context, id int64, status string) error {
	return c.patch(ctx, fmt.Sprintf("/tickets/%d/status", id), models.StatusChange{Status: status}, nil)
}

func (c *Client) DeleteTicket(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/tickets/%d", id), nil)
}

func (c *Client) KPI(ctx context.Context) (models.KPI, error) {
	var out models.KPI
	err := c.get(ctx, "/tickets/stats/kpi", nil, &out)
	return out, err
}

func (c *Client) AddNote(ctx context.Context, id int64, text string) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   fmt.Sprintf("/tickets/%d/note", id),
		query:  url.Values{"text": {text}},
	})
}

func (c *Client) AddHistory(ctx context.Context, id int64, text string) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   fmt.Sprintf("/tickets/%d/history", id),
		query:  url.Values{"text": {text}},
	})
}
