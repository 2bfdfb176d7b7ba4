package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/service"
)

// PatientsHandler exposes patient record endpoints.
type PatientsHandler struct {
	patients *service.PatientService
	log      zerolog.Logger
}

// NewPatientsHandler constructs a handler instance.
func NewPatientsHandler(patients *service.PatientService, log zerolog.Logger) *PatientsHandler {
	return &PatientsHandler{patients: patients, log: log}
}

// List returns a filtered page of patients.
func (h *PatientsHandler) List(c echo.Context) error {
	var filter dto.ListFilter
	if err := c.Bind(&filter); err != nil {
		return Error(c, http.StatusBadRequest, "invalid query parameters")
	}
	records, err := h.patients.ListPatients(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// Get returns one patient with its procedures.
func (h *PatientsHandler) Get(c echo.Context) error {
	detail, err := h.patients.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, detail)
}

// Create registers a new patient.
func (h *PatientsHandler) Create(c echo.Context) error {
	var req dto.CreatePatientRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	patient, err := h.patients.CreatePatient(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusCreated, patient)
}

// Update applies a partial update, optionally replacing the procedure set.
func (h *PatientsHandler) Update(c echo.Context) error {
	var req dto.UpdatePatientRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	detail, err := h.patients.UpdatePatient(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, detail)
}

// Delete removes a patient.
func (h *PatientsHandler) Delete(c echo.Context) error {
	if err := h.patients.DeletePatient(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, nil)
}
