// internal/handlers/health.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"marketing-asset-backend/internal/models"
	"marketing-asset-backend/pkg/utils"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{
		store: store,
	}
}

// Root is the API liveness message.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	utils.SendJSONResponse(w, r, http.StatusOK, models.MessageResponse{
		Message: "AI Marketing Asset Platform API",
	})
}

func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		zap.L().Warn("Health check failed", zap.Error(err))
		utils.SendJSONResponse(w, r, http.StatusServiceUnavailable, models.HealthResponse{
			Status:  "unhealthy",
			Message: "storage is unreachable",
		})
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Message: "Server is running and storage is reachable",
	})
}
