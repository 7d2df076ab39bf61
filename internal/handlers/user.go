// internal/handlers/user.go
package handlers

import (
	"errors"
	"net/http"

	"marketing-asset-backend/internal/middleware"
	"marketing-asset-backend/internal/models"
	"marketing-asset-backend/internal/services"
	apperrors "marketing-asset-backend/pkg/errors"
	"marketing-asset-backend/pkg/utils"
)

var errNoIdentity = errors.New("identity not found in request context")

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetOrCreate(r.Context(), identity)
	if err != nil {
		utils.SendErrorResponse(w, r, err)
		return
	}

	utils.SendJSONResponse(w, r, http.StatusOK, user)
}

// requireIdentity reads the acting identity, writing an error response if it is absent.
func requireIdentity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		utils.SendErrorResponse(w, r, apperrors.NewInternalError(errNoIdentity))
		return models.Identity{}, false
	}
	return identity, true
}
