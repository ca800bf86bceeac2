// Package httpapi wires the HTTP transport (Gin) to the application service,
// middleware, templates, and route handlers. It centralizes cross-cutting
// concerns: tracing, correlation IDs, logging, panic recovery, metrics,
// compression, rate limiting, and security headers.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/vitaclinic/go-medicos-web/internal/config"
	"github.com/vitaclinic/go-medicos-web/internal/domain"
	"github.com/vitaclinic/go-medicos-web/internal/http/handlers"
	"github.com/vitaclinic/go-medicos-web/internal/http/middleware"
	"github.com/vitaclinic/go-medicos-web/internal/repo"
	"github.com/vitaclinic/go-medicos-web/internal/services"
	"github.com/vitaclinic/go-medicos-web/web"
)

// medicoRepoShim adapts the repository free functions to the
// services.MedicoRepo interface expected by MedicoService. This keeps the
// service decoupled from the concrete repo package while reusing its
// functions.
type medicoRepoShim struct{}

func (medicoRepoShim) ListMedicos(ctx context.Context, db *gorm.DB) ([]domain.Medico, error) {
	return repo.ListMedicos(ctx, db)
}

func (medicoRepoShim) CreateMedico(ctx context.Context, db *gorm.DB, nombre, especialidad, email string) (*domain.Medico, error) {
	return repo.CreateMedico(ctx, db, nombre, especialidad, email)
}

func (medicoRepoShim) GetMedico(ctx context.Context, db *gorm.DB, id int) (*domain.Medico, error) {
	return repo.GetMedico(ctx, db, id)
}

func (medicoRepoShim) UpdateMedico(ctx context.Context, db *gorm.DB, id int, nombre, especialidad, email string) error {
	return repo.UpdateMedico(ctx, db, id, nombre, especialidad, email)
}

func (medicoRepoShim) DeleteMedico(ctx context.Context, db *gorm.DB, id int) (bool, error) {
	return repo.DeleteMedico(ctx, db, id)
}

// RegisterRoutes attaches all middleware, templates, static assets, and
// endpoints to the given Gin engine.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after the logger
//  5. Body size limiter
//  6. Metrics and /metrics endpoint
//  7. Rate limiter (per client IP)
//  8. Gzip compression for rendered pages
//  9. Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(limitBody(64 << 10)) // form submissions are tiny
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst)
	r.Use(rl.Handler())

	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
	}))

	// Pages and assets
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.StaticFS())

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: handlers ← service ← repo/db
	svc := services.NewMedicoService(db, medicoRepoShim{})
	h := handlers.New(svc)

	r.GET("/", h.Index)
	r.GET("/medico/nuevo", h.NuevoMedicoForm)
	r.POST("/medico/nuevo", h.CrearMedico)
	r.GET("/medico/editar/:id", h.EditarMedicoForm)
	r.POST("/medico/editar/:id", h.ActualizarMedico)
	r.DELETE("/medico/:id", h.EliminarMedico)
	r.DELETE("/medico/eliminar/:id", h.EliminarMedico)
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints using http.MaxBytesReader. Requests exceeding the cap cause
// downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
