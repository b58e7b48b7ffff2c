package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/klikphone/sav-portal/internal/api"
	"github.com/klikphone/sav-portal/internal/db"
	"github.com/klikphone/sav-portal/internal/nav"
	"github.com/klikphone/sav-portal/internal/session"
	"github.com/klikphone/sav-portal/internal/tarifs"
)

type Handler struct {
	API       *api.Client
	Gate      *session.Gate
	State     db.StateStore
	Refresher *tarifs.Refresher
	Validator *validator.Validate
	Logger    zerolog.Logger

	RefreshInterval time.Duration
	// BaseCtx outlives single requests; background work started by a
	// request (price refresh) runs under it and stops on shutdown.
	BaseCtx context.Context

	gridMu  sync.Mutex
	grid    *tarifs.Grid
	gridGen uint64
}

func (h *Handler) baseCtx() context.Context {
	if h.BaseCtx == nil {
		return context.Background()
	}
	return h.BaseCtx
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if h.State != nil {
		if err := h.State.Ping(ctx); err != nil {
			writeError(c, http.StatusServiceUnavailable, "STATE_UNAVAILABLE", "Session store unavailable", err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "session": h.Gate.State().String()})
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// backendError answers for a failed backend call. A rejected credential
// has already logged the terminal out, so the caller goes back to "/".
func (h *Handler) backendError(c *gin.Context, err error, notFound string) {
	var apiErr *api.APIError
	switch {
	case errors.Is(err, api.ErrUnauthenticated):
		c.Redirect(http.StatusFound, "/")
	case errors.Is(err, context.Canceled):
		c.Status(499)
	case errors.Is(err, api.ErrNotFound) && notFound != "":
		writeError(c, http.StatusNotFound, "NOT_FOUND", notFound, nil)
	case errors.Is(err, api.ErrTransport):
		h.Logger.Warn().Err(err).Msg("backend unreachable")
		writeError(c, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "Network error, please try again.", nil)
	case errors.As(err, &apiErr):
		writeError(c, apiErr.Status, "BACKEND_ERROR", apiErr.Message, nil)
	default:
		h.Logger.Error().Err(err).Msg("backend call failed")
		writeError(c, http.StatusInternalServerError, "INTERNAL", "Unexpected error", err.Error())
	}
}

func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return false
	}
	if h.Validator != nil {
		if err := h.Validator.Struct(dst); err != nil {
			writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
			return false
		}
	}
	return true
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", name+" must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

// area is the path prefix of the signed-in role.
func (h *Handler) area() string {
	id, _ := h.Gate.Identity()
	return nav.Home(id.Role)
}

// Nav lists the navigation entries of the signed-in role.
func (h *Handler) Nav(c *gin.Context) {
	id, _ := h.Gate.Identity()
	c.JSON(http.StatusOK, gin.H{"items": nav.Items(id.Role), "home": nav.Home(id.Role)})
}
