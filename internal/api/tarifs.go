package api

import (
	"context"

	"github.com/klikphone/sav-portal/internal/models"
)

// ListTarifs returns the raw price-list rows; numbers are json.Number.
func (c *Client) ListTarifs(ctx context.Context, q, brand string) ([]map[string]any, error) {
	var out []map[string]any
	err := c.get(ctx, "/tarifs", values("q", q, "marque", brand), &out)
	return out, err
}

func (c *Client) TarifStats(ctx context.Context) (models.TarifStats, error) {
	var out models.TarifStats
	err := c.get(ctx, "/tarifs/stats", nil, &out)
	return out, err
}

// TriggerTarifUpdate starts the backend's supplier re-import. The backend
// answers immediately and reports no progress.
func (c *Client) TriggerTarifUpdate(ctx context.Context) (models.TriggerResult, error) {
	var out models.TriggerResult
	err := c.post(ctx, "/tarifs/update", map[string]any{}, &out)
	return out, err
}

func (c *Client) ImportTarifs(ctx context.Context, items []models.TarifImportItem) (models.TarifImportResult, error) {
	var out models.TarifImportResult
	err := c.post(ctx, "/tarifs/import", models.TarifImportRequest{Tarifs: items}, &out)
	return out, err
}

func (c *Client) ClearTarifs(ctx context.Context) (models.TarifClearResult, error) {
	var out models.TarifClearResult
	err := c.delete(ctx, "/tarifs/clear", &out)
	return out, err
}
