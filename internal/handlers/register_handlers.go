package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/gstbill/gst_billing_app/internal/core/domain"
	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/middleware"
	"github.com/gstbill/gst_billing_app/internal/platform/config"
)

// RegisterRoutes wires every route group onto the engine. Auth routes stay
// public; everything under /api/v1 requires a valid bearer token.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) {
	registerHomeRoutes(r)
	registerAuthRoutes(r, cfg, services, loginLimiter)

	api := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	registerUserRoutes(api, services)
	registerHeaderRoutes(api, services)
	registerClientRoutes(api, services)
	registerMastersRoutes(api, services)
	registerBillRoutes(api, services)
	registerPaymentRoutes(api, services)
	registerReportingRoutes(api, services)
}

// caOnly gates a route on the CA role. CheckRole runs inside the middleware,
// so CA passes everything it guards.
func caOnly() gin.HandlerFunc {
	return middleware.RequireRole(domain.RoleCA)
}
