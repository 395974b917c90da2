package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/earnnest/earnnest-web/internal/pkg/apierr"
)

// FormFailure renders a failed form submission. The submitted draft is
// always echoed back so the user corrects and resubmits without retyping.
// Local validation failures map to 422 with per-field messages; upstream
// status errors keep their status code and detail; anything else is a 502.
func FormFailure(c echo.Context, err error, draft interface{}) error {
	if validationErr, ok := apierr.AsValidationError(err); ok {
		return FormErrorResponse(c, http.StatusUnprocessableEntity,
			"please fix the highlighted fields", draft, validationErr.Fields)
	}

	if statusErr, ok := apierr.AsStatusError(err); ok {
		message := statusErr.Detail
		if message == "" {
			message = "the server rejected the request"
		}
		return FormErrorResponse(c, statusErr.StatusCode, message, draft, statusErr.Fields)
	}

	return FormErrorResponse(c, http.StatusBadGateway,
		"could not reach the server, please try again", draft, nil)
}
