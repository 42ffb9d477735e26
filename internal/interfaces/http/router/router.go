package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/invoicehub/backend/internal/infrastructure/auth"
	"github.com/invoicehub/backend/internal/infrastructure/config"
	"github.com/invoicehub/backend/internal/infrastructure/logger"
	"github.com/invoicehub/backend/internal/interfaces/http/handler"
	"github.com/invoicehub/backend/internal/interfaces/http/middleware"
)

// Handlers bundles everything the router wires up
type Handlers struct {
	Invoice  *handler.InvoiceHandler
	Customer *handler.CustomerHandler
	Auth     *handler.AuthHandler
	System   *handler.SystemHandler
}

// New builds the gin engine with middleware and all routes registered.
// Everything under /api/v1 except the auth endpoints requires a valid
// access token.
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(logger.GinMiddleware(log))
	r.Use(logger.GinRecovery(log))
	r.Use(middleware.CORS(cfg.HTTP))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = r.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	h.System.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	h.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	h.Invoice.RegisterRoutes(protected)
	h.Customer.RegisterRoutes(protected)

	return r
}
