package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"viaplan/planner"
)

// Plan runs the full comparison for a body of the form
// {"from": "...", "to": "...", "date": "YYYY-MM-DD", "adults": 1,
// "preferences": {...}}.
func (h *Handler) Plan(c *gin.Context) {
	var req planner.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	plan, err := h.engine.Plan(c.Request.Context(), req)
	if err != nil {
		var stage *planner.StageError
		if errors.As(err, &stage) {
			status := http.StatusInternalServerError
			switch stage.Stage {
			case "validate":
				status = http.StatusBadRequest
			case "baseline":
				status = http.StatusBadGateway
			}
			c.JSON(status, gin.H{"step": stage.Stage, "error": stage.Err.Error()})
			return
		}
		log.Printf("❌ plan failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// PlanSample runs the canonical sample request through the planner, handy
// for smoke-testing a deployment.
func (h *Handler) PlanSample(c *gin.Context) {
	plan, err := h.engine.Plan(c.Request.Context(), planner.PlanRequest{
		From: "Navarra",
		To:   "Madrid",
		Date: "2025-10-10",
	})
	if err != nil {
		var stage *planner.StageError
		if errors.As(err, &stage) {
			c.JSON(http.StatusBadGateway, gin.H{"step": stage.Stage, "error": stage.Err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}
