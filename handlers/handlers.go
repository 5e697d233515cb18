package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"viaplan/cache"
	"viaplan/planner"
)

// Handler wires the HTTP endpoints to their collaborators. Everything is
// injected; the package keeps no globals.
type Handler struct {
	engine    *planner.Engine
	resolver  planner.LocationResolver
	flights   planner.FlightSearcher
	cache     cache.Store
	searchTTL time.Duration
}

// Dependency carries the handler collaborators.
type Dependency struct {
	Engine    *planner.Engine
	Resolver  planner.LocationResolver
	Flights   planner.FlightSearcher
	Cache     cache.Store
	SearchTTL time.Duration
}

// New builds a Handler.
func New(dep Dependency) *Handler {
	ttl := dep.SearchTTL
	if ttl <= 0 {
		ttl = planner.DefaultCacheTTL
	}
	return &Handler{
		engine:    dep.Engine,
		resolver:  dep.Resolver,
		flights:   dep.Flights,
		cache:     dep.Cache,
		searchTTL: ttl,
	}
}

// Register mounts all endpoints under /api.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/plan", h.Plan)
		api.GET("/plan-sample", h.PlanSample)
		api.POST("/search", h.Search)
		api.POST("/interpret", h.Interpret)
		api.GET("/cache-test", h.CacheTest)
	}
}
