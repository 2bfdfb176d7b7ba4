package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carelink/practice-api/internal/repository"
	"github.com/carelink/practice-api/internal/service"
)

var notFoundErrors = []error{
	repository.ErrUserNotFound,
	repository.ErrPatientNotFound,
	repository.ErrCaseNotFound,
	repository.ErrAppointmentNotFound,
	repository.ErrExamNotFound,
	repository.ErrTaskNotFound,
	repository.ErrPhysicianNotFound,
	repository.ErrAttorneyNotFound,
	repository.ErrPayerNotFound,
	repository.ErrFacilityNotFound,
	repository.ErrStatusNotFound,
}

// respondError translates service and repository sentinels into envelope
// responses. Anything unrecognized is logged and reported as a generic 500
// so internals never leak to clients.
func respondError(c echo.Context, log zerolog.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrEmailDuplicate):
		return Error(c, http.StatusConflict, "email already exists")
	case errors.Is(err, repository.ErrStatusNameDuplicate):
		return Error(c, http.StatusConflict, "status name already exists")
	}
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return Error(c, http.StatusNotFound, sentinel.Error())
		}
	}
	log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
	return Error(c, http.StatusInternalServerError, "internal server error")
}
