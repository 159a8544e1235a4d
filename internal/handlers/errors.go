package handlers

import (
	"errors"
	"net/http"

	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP responses
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var (
		verr *services.ValidationError
		dup  *services.DuplicateEntrantError
		pce  *services.PartialCommitError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, gin.H{"error": dup.Error(), "fields": dup.Fields()})
	case errors.As(err, &pce):
		// checked before ErrNotFound: a double draw unwraps to it
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "draw was only partially committed",
			"anomaly": true,
			"drawId":  pce.DrawID,
		})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrEmptyPool), errors.Is(err, services.ErrDrawInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
