package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CacheTest round-trips a value through the cache so a misbehaving backend
// can be spotted without issuing a paid search.
func (h *Handler) CacheTest(c *gin.Context) {
	ctx := c.Request.Context()
	h.cache.Set(ctx, "ping", []byte("pong"), 60*time.Second)

	value, ok := h.cache.Get(ctx, "ping")
	c.JSON(http.StatusOK, gin.H{"ok": ok, "value": string(value)})
}
