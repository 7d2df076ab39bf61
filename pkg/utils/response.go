// pkg/utils/response.go
package utils

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	apperrors "marketing-asset-backend/pkg/errors"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Detail    string `json:"detail,omitempty"`
	ErrorCode string `json:"error_code"`
	RequestID string `json:"request_id,omitempty"`
}

// SendJSONResponse writes data as JSON with the given status code.
func SendJSONResponse(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}

// SendErrorResponse maps err onto its status code and writes an ErrorResponse.
// Errors that are not AppErrors are reported as internal errors without leaking their text.
func SendErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetReqID(r.Context())

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		zap.L().Error("unhandled error",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("path", r.URL.Path))
		appErr = apperrors.NewAppError(apperrors.ErrInternalServer, http.StatusInternalServerError, "internal server error")
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("error_code", appErr.Type),
			zap.String("details", appErr.Details),
			zap.String("request_id", requestID))
	} else {
		zap.L().Debug("request rejected",
			zap.String("error_code", appErr.Type),
			zap.String("message", appErr.Message),
			zap.String("request_id", requestID))
	}

	SendJSONResponse(w, r, appErr.StatusCode, ErrorResponse{
		Error:     appErr.Message,
		Detail:    appErr.Details,
		ErrorCode: appErr.Type,
		RequestID: requestID,
	})
}

// DecodeJSONBody decodes the request body into dst.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.NewValidationError("request body is required")
		}
		return apperrors.NewValidationError("invalid JSON format: " + err.Error())
	}
	return nil
}
