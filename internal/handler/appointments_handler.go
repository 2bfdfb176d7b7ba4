package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/service"
)

// AppointmentsHandler exposes visit scheduling endpoints.
type AppointmentsHandler struct {
	appointments *service.AppointmentService
	log          zerolog.Logger
}

// NewAppointmentsHandler constructs a handler instance.
func NewAppointmentsHandler(appointments *service.AppointmentService, log zerolog.Logger) *AppointmentsHandler {
	return &AppointmentsHandler{appointments: appointments, log: log}
}

// List returns a filtered page of appointments.
func (h *AppointmentsHandler) List(c echo.Context) error {
	var filter dto.ListFilter
	if err := c.Bind(&filter); err != nil {
		return Error(c, http.StatusBadRequest, "invalid query parameters")
	}
	records, err := h.appointments.ListAppointments(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// ListByPatient returns every appointment for one patient.
func (h *AppointmentsHandler) ListByPatient(c echo.Context) error {
	records, err := h.appointments.ListPatientAppointments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// Get returns one appointment.
func (h *AppointmentsHandler) Get(c echo.Context) error {
	record, err := h.appointments.GetAppointment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// Create schedules a visit.
func (h *AppointmentsHandler) Create(c echo.Context) error {
	var req dto.CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.appointments.CreateAppointment(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusCreated, record)
}

// Update applies a partial appointment update.
func (h *AppointmentsHandler) Update(c echo.Context) error {
	var req dto.UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.appointments.UpdateAppointment(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// Delete removes an appointment.
func (h *AppointmentsHandler) Delete(c echo.Context) error {
	if err := h.appointments.DeleteAppointment(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, nil)
}
