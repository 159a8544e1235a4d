package handlers

import (
	"net/http"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// EntrantHandler handles the registration form and the pool dashboard
type EntrantHandler struct {
	entrantService services.EntrantService
}

// NewEntrantHandler creates a new EntrantHandler
func NewEntrantHandler(entrantService services.EntrantService) *EntrantHandler {
	return &EntrantHandler{
		entrantService: entrantService,
	}
}

// Register handles POST /entrants
func (h *EntrantHandler) Register(c *gin.Context) {
	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	entrant, err := h.entrantService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entrant)
}

// List handles GET /entrants?q=
func (h *EntrantHandler) List(c *gin.Context) {
	entrants, err := h.entrantService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entrants": entrants, "count": len(entrants)})
}

// Remove handles DELETE /entrants/:id
func (h *EntrantHandler) Remove(c *gin.Context) {
	if err := h.entrantService.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /entrants?confirm=true
func (h *EntrantHandler) Clear(c *gin.Context) {
	if c.Query("confirm") != "true" {
		badRequest(c, "confirm=true is required to clear the pool")
		return
	}

	removed, err := h.entrantService.ClearAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
