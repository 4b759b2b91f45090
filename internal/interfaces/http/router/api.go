package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/pizzeria/backend/internal/infrastructure/config"
	"github.com/pizzeria/backend/internal/infrastructure/logger"
	"github.com/pizzeria/backend/internal/interfaces/http/handler"
	"github.com/pizzeria/backend/internal/interfaces/http/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// EngineConfig holds what the HTTP engine needs from the application config
type EngineConfig struct {
	ServiceName    string
	HTTP           config.HTTPConfig
	TracingEnabled bool
	// Meter receives the request metrics; nil disables them
	Meter metric.Meter
}

// Handlers groups the handlers mounted by NewEngine
type Handlers struct {
	Orders    *handler.OrderHandler
	Customers *handler.CustomerHandler
	Pizzas    *handler.PizzaHandler
	System    *handler.SystemHandler
}

// NewEngine builds the gin engine with the middleware stack, the /api/v1
// resource routes and the service routes.
func NewEngine(cfg EngineConfig, log *zap.Logger, h Handlers) (*gin.Engine, error) {
	middleware.SetupValidator()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			return nil, err
		}
	} else if err := engine.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	// RequestID runs first so recovery, tracing and the request log all see the id
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.ServiceName,
		Enabled:     cfg.TracingEnabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.HTTPMetrics(cfg.Meter, log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfigFrom(cfg.HTTP)))
	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}

	engine.GET("/", h.System.GetSystemInfo)
	engine.GET("/health", h.System.Health)
	engine.NoRoute(staticFallback(cfg.HTTP.StaticDir, h.System.NoRoute))
	engine.NoMethod(h.System.NoMethod)

	api := NewAPI(engine, "v1").Add(
		customerRoutes(h.Customers),
		pizzaRoutes(h.Pizzas),
		orderRoutes(h.Orders),
	)
	api.Mount()
	h.System.RegisterEndpoints(api.Endpoints())

	return engine, nil
}

func customerRoutes(h *handler.CustomerHandler) *Resource {
	return NewResource("customers", "/customers").
		POST("", h.Create).
		GET("", h.List).
		GET("/:id", h.GetByID).
		PUT("/:id", h.Update).
		DELETE("/:id", h.Delete)
}

func pizzaRoutes(h *handler.PizzaHandler) *Resource {
	return NewResource("pizzas", "/pizzas").
		POST("", h.Create).
		GET("", h.List).
		GET("/:id", h.GetByID).
		PUT("/:id", h.Update).
		DELETE("/:id", h.Delete)
}

func orderRoutes(h *handler.OrderHandler) *Resource {
	return NewResource("orders", "/orders").
		POST("", h.Create).
		GET("", h.List).
		GET("/customer/:id", h.ListByCustomer).
		GET("/:id", h.GetByID).
		PATCH("/:id/status", h.UpdateStatus).
		PUT("/:id/status", h.UpdateStatus).
		DELETE("/:id", h.Delete)
}

// staticFallback serves files from dir for GET and HEAD requests that matched
// no route. Anything else, or a missing file, goes to notFound.
func staticFallback(dir string, notFound gin.HandlerFunc) gin.HandlerFunc {
	if dir == "" {
		return notFound
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return notFound
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			notFound(c)
			return
		}
		// path.Clean on a rooted path cannot climb above dir
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+c.Request.URL.Path)))
		if info, err := os.Stat(name); err == nil && info.Mode().IsRegular() {
			c.File(name)
			return
		}
		notFound(c)
	}
}
