package handlers

import (
	"net/http"

	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// MaintenanceHandler exposes operator repair actions
type MaintenanceHandler struct {
	reconcileService services.ReconcileService
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(reconcileService services.ReconcileService) *MaintenanceHandler {
	return &MaintenanceHandler{
		reconcileService: reconcileService,
	}
}

// Reconcile handles POST /maintenance/reconcile
func (h *MaintenanceHandler) Reconcile(c *gin.Context) {
	report, err := h.reconcileService.Run(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
