package httpapi

import (
	"context"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/klikphone/sav-portal/internal/api"
	"github.com/klikphone/sav-portal/internal/config"
	"github.com/klikphone/sav-portal/internal/db"
	"github.com/klikphone/sav-portal/internal/http/handlers"
	"github.com/klikphone/sav-portal/internal/http/middleware"
	"github.com/klikphone/sav-portal/internal/session"
	"github.com/klikphone/sav-portal/internal/tarifs"

	_ "github.com/klikphone/sav-portal/docs"
)

type Deps struct {
	API       *api.Client
	Gate      *session.Gate
	State     db.StateStore
	Refresher *tarifs.Refresher
	Logger    zerolog.Logger
	// BaseCtx bounds background work; cancel it on shutdown.
	BaseCtx context.Context
}

func Router(cfg config.Config, d Deps) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" || cfg.CORSAllowed == "" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		for _, o := range strings.Split(cfg.CORSAllowed, ",") {
			if o = strings.TrimSpace(o); o != "" {
				corsCfg.AllowOrigins = append(corsCfg.AllowOrigins, o)
			}
		}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		API:             d.API,
		Gate:            d.Gate,
		State:           d.State,
		Refresher:       d.Refresher,
		Validator:       validator.New(),
		Logger:          d.Logger,
		RefreshInterval: cfg.RefreshInterval,
		BaseCtx:         d.BaseCtx,
	}
	if d.Refresher != nil {
		d.Refresher.OnSettled = h.ReloadTarifs
	}

	r.GET("/healthz", h.Healthz)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", h.Landing)
	r.GET("/session", h.Session)
	r.POST("/login/:role", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/suivi", h.Track)

	intake := r.Group("/client")
	{
		intake.POST("", h.Intake)
		intake.GET("/catalog/categories", h.CatalogCategories)
		intake.GET("/catalog/pannes", h.CatalogFaults)
		intake.GET("/catalog/marques", h.CatalogBrands)
		intake.GET("/catalog/modeles", h.CatalogModels)
	}

	for _, area := range []struct {
		path string
		role session.Role
	}{
		{"/accueil", session.RoleFrontDesk},
		{"/tech", session.RoleTechnician},
	} {
		g := r.Group(area.path)
		g.Use(middleware.RequireRole(d.Gate, area.role))
		staffRoutes(g, h)
	}

	desk := r.Group("/accueil")
	desk.Use(middleware.RequireRole(d.Gate, session.RoleFrontDesk))
	{
		desk.GET("/clients", h.ClientsList)
		desk.GET("/clients/:id", h.ClientDetail)
		desk.PATCH("/clients/:id", h.ClientUpdate)
		desk.DELETE("/clients/:id", h.ClientDelete)

		desk.GET("/pieces", h.PartsList)
		desk.POST("/pieces", h.PartCreate)
		desk.PATCH("/pieces/:id", h.PartUpdate)
		desk.DELETE("/pieces/:id", h.PartDelete)

		desk.GET("/config", h.ConfigList)
		desk.PUT("/config", h.ConfigSet)

		desk.POST("/tarifs/import", h.TarifsImport)
		desk.DELETE("/tarifs", h.TarifsClear)
	}

	return r
}

// staffRoutes are shared by both staff areas.
func staffRoutes(g *gin.RouterGroup, h *handlers.Handler) {
	g.GET("", h.Dashboard)
	g.GET("/ws", h.DashboardWS)
	g.GET("/nav", h.Nav)

	g.GET("/ticket/:id", h.TicketDetail)
	g.PATCH("/ticket/:id", h.TicketUpdate)
	g.DELETE("/ticket/:id", h.TicketDelete)
	g.PATCH("/ticket/:id/status", h.TicketStatus)
	g.POST("/ticket/:id/note", h.TicketNote)
	g.POST("/ticket/:id/history", h.TicketHistory)

	g.GET("/tarifs", h.Tarifs)
	g.POST("/tarifs/update", h.TarifsUpdate)
}
