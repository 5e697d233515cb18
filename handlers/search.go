package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"viaplan/cache"
	"viaplan/services"
)

// SearchRequest targets one airport pair directly, bypassing location
// resolution and ranking.
type SearchRequest struct {
	OriginIATA string `json:"originIATA" binding:"required"`
	DestIATA   string `json:"destIATA" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Adults     int    `json:"adults"`
}

type searchPayload struct {
	Data *services.FlightOffersResponse `json:"data"`
}

// Search returns the provider-native flight offers for an airport pair,
// memoized under the same TTL as plans.
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "originIATA, destIATA and date are required"})
		return
	}

	req.OriginIATA = strings.ToUpper(strings.TrimSpace(req.OriginIATA))
	req.DestIATA = strings.ToUpper(strings.TrimSpace(req.DestIATA))
	if len(req.OriginIATA) != 3 || len(req.DestIATA) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Airport codes must be exactly 3 characters (e.g. MAD, BCN)"})
		return
	}
	if req.Adults <= 0 {
		req.Adults = 1
	}

	ctx := c.Request.Context()
	key, keyErr := cache.DeriveKey("search", req)
	if keyErr == nil {
		if raw, ok := h.cache.Get(ctx, key); ok {
			var stored searchPayload
			if err := json.Unmarshal(raw, &stored); err == nil {
				c.JSON(http.StatusOK, gin.H{"cached": true, "data": stored.Data})
				return
			}
		}
	}

	data, err := h.flights.SearchFlightOffers(ctx, req.OriginIATA, req.DestIATA, req.Date, req.Adults)
	if err != nil {
		log.Printf("⚠️  search %s-%s failed: %v", req.OriginIATA, req.DestIATA, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if keyErr == nil {
		if raw, err := json.Marshal(searchPayload{Data: data}); err == nil {
			h.cache.Set(ctx, key, raw, h.searchTTL)
		}
	}
	c.JSON(http.StatusOK, gin.H{"cached": false, "data": data})
}
