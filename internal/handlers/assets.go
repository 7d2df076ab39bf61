// internal/handlers/assets.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"marketing-asset-backend/internal/models"
	"marketing-asset-backend/internal/services"
	"marketing-asset-backend/pkg/utils"
)

type AssetHandler struct {
	assetService services.AssetService
}

func NewAssetHandler(assetService services.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

func (h *AssetHandler) GenerateAsset(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req models.GenerateAssetRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	response, err := h.assetService.Generate(r.Context(), identity, &req)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusCreated, response)
}

func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	assets, err := h.assetService.ListAssets(r.Context(), identity)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, assets)
}

func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := h.assetService.GetAsset(r.Context(), chi.URLParam(r, "assetId"))
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, asset)
}

func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := h.assetService.DeleteAsset(r.Context(), chi.URLParam(r, "assetId")); err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, models.MessageResponse{
		Message: "Asset deleted successfully",
	})
}
