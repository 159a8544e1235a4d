package handlers

import (
	"net/http"
	"strconv"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// WinnerHandler handles the winners gallery
type WinnerHandler struct {
	winnerService services.WinnerService
}

// NewWinnerHandler creates a new WinnerHandler
func NewWinnerHandler(winnerService services.WinnerService) *WinnerHandler {
	return &WinnerHandler{
		winnerService: winnerService,
	}
}

// List handles GET /winners?limit=. Without limit the default page size
// applies; limit=0 returns every winner.
func (h *WinnerHandler) List(c *gin.Context) {
	limit := -1
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	winners, err := h.winnerService.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"winners": winners, "count": len(winners)})
}

// Get handles GET /winners/:id
func (h *WinnerHandler) Get(c *gin.Context) {
	winner, err := h.winnerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, winner)
}

// UpdateStatus handles PATCH /winners/:id/status
func (h *WinnerHandler) UpdateStatus(c *gin.Context) {
	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}

	winner, err := h.winnerService.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, winner)
}
