package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/service"
	"github.com/shoplite/storeapi/internal/validator"
	"github.com/shoplite/storeapi/pkg/logger"
	"go.uber.org/zap"
)

func respondOK(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, dto.NewSuccessResponse(status, message, data))
}

func respondError(c echo.Context, status int, message string, errs ...string) error {
	return c.JSON(status, dto.NewErrorResponse(status, message, errs...))
}

// respondServiceError maps the service error kinds onto HTTP statuses.
// Anything unrecognized is a 500 with a generic message; the details stay in
// the logs.
func respondServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return respondError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, service.ErrDuplicateSKU),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrCategoryInUse):
		return respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserInactive):
		return respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrProductInactive):
		return respondError(c, http.StatusBadRequest, err.Error())
	default:
		logger.FromEcho(c).Error("Unhandled service error", zap.Error(err))
		return respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// bindAndValidate binds the request body into req and runs the declarative
// validation rules, answering 400 with per-field messages on failure.
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, respondError(c, http.StatusBadRequest, "Invalid request data")
	}
	if err := c.Validate(req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return false, respondError(c, http.StatusBadRequest, "Validation failed", verr.Fields...)
		}
		return false, respondError(c, http.StatusBadRequest, "Validation failed")
	}
	return true, nil
}
