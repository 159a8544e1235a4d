package handlers

import (
	"net/http"

	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// DrawHandler handles the roulette screen
type DrawHandler struct {
	drawService services.DrawService
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(drawService services.DrawService) *DrawHandler {
	return &DrawHandler{
		drawService: drawService,
	}
}

// View handles GET /draw
func (h *DrawHandler) View(c *gin.Context) {
	view, err := h.drawService.View(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Draw handles POST /draw
func (h *DrawHandler) Draw(c *gin.Context) {
	winner, err := h.drawService.Draw(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, winner)
}

// Stats handles GET /stats
func (h *DrawHandler) Stats(c *gin.Context) {
	stats, err := h.drawService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
