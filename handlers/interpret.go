package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// InterpretRequest carries the raw user input for both trip endpoints.
type InterpretRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// Interpret previews what the location resolver makes of the input without
// running a full plan.
func (h *Handler) Interpret(c *gin.Context) {
	var req InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "from and to are required"})
		return
	}

	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"ok":   true,
		"from": h.resolver.Resolve(ctx, req.From),
		"to":   h.resolver.Resolve(ctx, req.To),
	})
}
