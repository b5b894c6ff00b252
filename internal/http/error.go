package httpx

import (
	"errors"
	"net/http"

	"github.com/asutherland/treeherder-service/internal/data"
	apperrors "github.com/asutherland/treeherder-service/internal/errors"
)

// RenderError is the single boundary translation from internal errors to
// HTTP status codes. Business logic returns typed errors; nothing below
// this layer knows about status codes.
func RenderError(w http.ResponseWriter, err error) {
	switch {
	case isNotFound(err):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	case apperrors.IsInvalidState(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_state", Err: err})
	case apperrors.IsMalformed(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "malformed", Err: err})
	case apperrors.IsMissingField(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "missing_field", Err: err})
	case apperrors.IsValidation(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation", Err: err})
	case apperrors.IsConflict(err):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "conflict", Err: err})
	default:
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal", Err: err})
	}
}

func isNotFound(err error) bool {
	return apperrors.IsNotFound(err) ||
		errors.Is(err, data.ErrDatasetNotFound) ||
		errors.Is(err, data.ErrJobNotFound) ||
		errors.Is(err, data.ErrBlobNotFound) ||
		errors.Is(err, data.ErrPushNotFound) ||
		errors.Is(err, data.ErrUnknownRefdataModel)
}
