package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/klikphone/sav-portal/internal/models"
)

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := c.get(ctx, "/catalog/categories", nil, &out)
	return out, err
}

func (c *Client) Faults(ctx context.Context) ([]string, error) {
	var out []string
	err := c.get(ctx, "/catalog/pannes", nil, &out)
	return out, err
}

func (c *Client) Brands(ctx context.Context, category string) ([]models.Brand, error) {
	var out []models.Brand
	err := c.get(ctx, "/catalog/marques", url.Values{"categorie": {category}}, &out)
	return out, err
}

func (c *Client) Models(ctx context.Context, category, brand string) ([]models.ModelRef, error) {
	var out []models.ModelRef
	err := c.get(ctx, "/catalog/modeles", url.Values{"categorie": {category}, "marque": {brand}}, &out)
	return out, err
}

func (c *Client) Team(ctx context.Context, activeOnly bool) ([]models.TeamMember, error) {
	path := "/team"
	if activeOnly {
		path = "/team/active"
	}
	var out []models.TeamMember
	err := c.get(ctx, path, nil, &out)
	return out, err
}

func (c *Client) ListParts(ctx context.Context, ticketID int64) ([]models.Part, error) {
	var q url.Values
	if ticketID > 0 {
		q = url.Values{"ticket_id": {fmt.Sprint(ticketID)}}
	}
	var out []models.Part
	err := c.get(ctx, "/parts", q, &out)
	return out, err
}

func (c *Client) CreatePart(ctx context.Context, p models.Part) (models.Part, error) {
	var out models.Part
	err := c.post(ctx, "/parts", p, &out)
	return out, err
}

func (c *Client) UpdatePart(ctx context.Context, id int64, updates map[string]any) (models.Part, error) {
	var out models.Part
	err := c.patch(ctx, fmt.Sprintf("/parts/%d", id), updates, &out)
	return out, err
}

func (c *Client) DeletePart(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/parts/%d", id), nil)
}

func (c *Client) Config(ctx context.Context) ([]models.Param, error) {
	var out []models.Param
	err := c.get(ctx, "/config", nil, &out)
	return out, err
}

func (c *Client) PublicConfig(ctx context.Context) (map[string]any, error) {
	out := map[string]any{}
	err := c.get(ctx, "/config/public", nil, &out)
	return out, err
}

func (c *Client) Param(ctx context.Context, key string) (models.Param, error) {
	var out models.Param
	err := c.get(ctx, "/config/"+url.PathEscape(key), nil, &out)
	return out, err
}

func (c *Client) SetParam(ctx context.Context, key, value string) error {
	return c.put(ctx, "/config", models.Param{Key: key, Value: value}, nil)
}
