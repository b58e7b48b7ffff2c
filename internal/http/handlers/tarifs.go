package handlers

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/klikphone/sav-portal/internal/models"
	"github.com/klikphone/sav-portal/internal/tarifs"
)

type TarifsView struct {
	Grid     tarifs.Grid `json:"grid"`
	Query    string      `json:"q"`
	Brand    string      `json:"marque"`
	Updating bool        `json:"updating"`
}

func (h *Handler) cachedGrid() (*tarifs.Grid, uint64) {
	h.gridMu.Lock()
	defer h.gridMu.Unlock()
	return h.grid, h.gridGen
}

// invalidateGrid drops the cached grid. Loads started before the call are
// not kept.
func (h *Handler) invalidateGrid() uint64 {
	h.gridMu.Lock()
	defer h.gridMu.Unlock()
	h.gridGen++
	h.grid = nil
	return h.gridGen
}

// keepGrid caches g if the price list has not changed since gen.
func (h *Handler) keepGrid(g *tarifs.Grid, gen uint64) bool {
	h.gridMu.Lock()
	defer h.gridMu.Unlock()
	if h.gridGen != gen {
		return false
	}
	h.grid = g
	return true
}

// ReloadTarifs rebuilds the unfiltered grid. It runs once a price refresh
// has settled.
func (h *Handler) ReloadTarifs(ctx context.Context) {
	gen := h.invalidateGrid()
	g, err := tarifs.Load(ctx, h.API, "", "")
	if err != nil {
		h.Logger.Warn().Err(err).Msg("tarif reload failed")
		return
	}
	if !h.keepGrid(&g, gen) {
		h.Logger.Debug().Msg("price list changed during reload, grid discarded")
		return
	}
	h.Logger.Info().Int("rows", g.Rows).Int("models", g.Models).Int("skipped", g.Skipped).Msg("tarif grid reloaded")
}

func (h *Handler) updating() bool {
	return h.Refresher != nil && h.Refresher.Updating()
}

// @Summary Repair price grid
// @Tags tarifs
// @Produce json
// @Param q query string false "Model search"
// @Param marque query string false "Brand filter"
// @Success 200 {object} TarifsView
// @Router /accueil/tarifs [get]
func (h *Handler) Tarifs(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	brand := strings.TrimSpace(c.Query("marque"))

	// filtered views are always fetched; the full grid is cached until the
	// next refresh, import or clear
	full := q == "" && brand == ""
	var gen uint64
	if full {
		var cached *tarifs.Grid
		if cached, gen = h.cachedGrid(); cached != nil {
			c.JSON(http.StatusOK, TarifsView{Grid: *cached, Updating: h.updating()})
			return
		}
	}
	g, err := tarifs.Load(c.Request.Context(), h.API, q, brand)
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	if g.Skipped > 0 {
		h.Logger.Debug().Int("skipped", g.Skipped).Msg("malformed price rows skipped")
	}
	if full {
		h.keepGrid(&g, gen)
	}
	c.JSON(http.StatusOK, TarifsView{Grid: g, Query: q, Brand: brand, Updating: h.updating()})
}

// @Summary Refresh supplier prices
// @Description Starts the backend bulk update; the grid reloads once it settles
// @Tags tarifs
// @Produce json
// @Success 202 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /accueil/tarifs/update [post]
func (h *Handler) TarifsUpdate(c *gin.Context) {
	if h.Refresher == nil {
		writeError(c, http.StatusServiceUnavailable, "UNAVAILABLE", "Price refresh is not configured", nil)
		return
	}
	if _, err := h.Refresher.Trigger(h.baseCtx()); err != nil {
		if errors.Is(err, tarifs.ErrUpdateInFlight) {
			writeError(c, http.StatusConflict, "UPDATE_IN_PROGRESS", "A price update is already running", nil)
			return
		}
		h.backendError(c, err, "")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"updating": true, "mode": h.Refresher.Mode})
}

// @Summary Import a price list
// @Description Accepts a CSV upload in field "file" or a JSON body {tarifs: [...]}
// @Tags tarifs
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /accueil/tarifs/import [post]
func (h *Handler) TarifsImport(c *gin.Context) {
	var items []models.TarifImportItem
	var rowErrors []string

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "file required", nil)
			return
		}
		if !strings.EqualFold(filepath.Ext(fh.Filename), ".csv") {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "file must be .csv", nil)
			return
		}
		f, err := fh.Open()
		if err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "cannot read file", err.Error())
			return
		}
		items, rowErrors = tarifs.ParseCSV(f)
		f.Close()
	} else {
		var req models.TarifImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
			return
		}
		items = req.Tarifs
	}
	if len(items) == 0 {
		writeError(c, http.StatusBadRequest, "CSV_PARSE_ERROR", "No valid price rows", rowErrors)
		return
	}

	res, err := h.API.ImportTarifs(c.Request.Context(), items)
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	h.invalidateGrid()
	h.Logger.Info().Int("imported", res.Imported).Int("rejected", len(rowErrors)).Msg("price list imported")
	c.JSON(http.StatusOK, gin.H{"imported": res.Imported, "errors": rowErrors})
}

// @Summary Clear the price list
// @Tags tarifs
// @Produce json
// @Success 200 {object} map[string]any
// @Router /accueil/tarifs [delete]
func (h *Handler) TarifsClear(c *gin.Context) {
	res, err := h.API.ClearTarifs(c.Request.Context())
	if err != nil {
		h.backendError(c, err, "")
		return
	}
	h.invalidateGrid()
	h.Logger.Warn().Int("remaining", res.Remaining).Msg("price list cleared")
	c.JSON(http.StatusOK, res)
}
