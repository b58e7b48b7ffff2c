package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/klikphone/sav-portal/internal/models"
)

func (c *Client) ListClients(ctx context.Context, search string) ([]models.Client, error) {
	var out []models.Client
	err := c.get(ctx, "/clients", values("search", search), &out)
	return out, err
}

func (c *Client) GetClient(ctx context.Context, id int64) (models.Client, error) {
	var out models.Client
	err := c.get(ctx, fmt.Sprintf("/clients/%d", id), nil, &out)
	return out, err
}

func (c *Client) GetClientByPhone(ctx context.Context, phone string) (models.Client, error) {
	var out models.Client
	err := c.get(ctx, "/clients/phone/"+url.PathEscape(phone), nil, &out)
	return out, err
}

// CreateOrGetClient returns the existing client when the phone number is
// already known to the backend.
func (c *Client) CreateOrGetClient(ctx context.Context, in models.ClientCreate) (models.Client, error) {
	var out models.Client
	err := c.post(ctx, "/clients", in, &out)
	return out, err
}

func (c *Client) UpdateClient(ctx context.Context, id int64, updates map[string]any) (models.Client, error) {
	var out models.Client
	err := c.patch(ctx, fmt.Sprintf("/clients/%d", id), updates, &out)
	return out, err
}

func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/clients/%d", id), nil)
}

func (c *Client) ClientTickets(ctx context.Context, id int64) ([]models.Ticket, error) {
	var out []models.Ticket
	err := c.get(ctx, fmt.Sprintf("/clients/%d/tickets", id), nil, &out)
	return out, err
}
