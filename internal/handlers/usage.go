// internal/handlers/usage.go
package handlers

import (
	"net/http"

	"marketing-asset-backend/internal/services"
	"marketing-asset-backend/pkg/utils"
)

type UsageHandler struct {
	usageService services.UsageService
}

func NewUsageHandler(usageService services.UsageService) *UsageHandler {
	return &UsageHandler{
		usageService: usageService,
	}
}

func (h *UsageHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	stats, err := h.usageService.GetDashboardStats(r.Context(), identity)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, stats)
}
