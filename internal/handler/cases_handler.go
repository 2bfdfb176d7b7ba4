package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/service"
)

// CasesHandler exposes case lifecycle endpoints.
type CasesHandler struct {
	cases *service.CaseService
	log   zerolog.Logger
}

// NewCasesHandler constructs a handler instance.
func NewCasesHandler(cases *service.CaseService, log zerolog.Logger) *CasesHandler {
	return &CasesHandler{cases: cases, log: log}
}

// List returns a filtered page of cases.
func (h *CasesHandler) List(c echo.Context) error {
	var filter dto.ListFilter
	if err := c.Bind(&filter); err != nil {
		return Error(c, http.StatusBadRequest, "invalid query parameters")
	}
	records, err := h.cases.ListCases(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// ListByPatient returns every case attached to one patient.
func (h *CasesHandler) ListByPatient(c echo.Context) error {
	records, err := h.cases.ListPatientCases(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// Get returns one case.
func (h *CasesHandler) Get(c echo.Context) error {
	record, err := h.cases.GetCase(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// Create opens a new case.
func (h *CasesHandler) Create(c echo.Context) error {
	var req dto.CreateCaseRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.cases.CreateCase(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusCreated, record)
}

// Update applies a partial case update.
func (h *CasesHandler) Update(c echo.Context) error {
	var req dto.UpdateCaseRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.cases.UpdateCase(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// Delete removes a case.
func (h *CasesHandler) Delete(c echo.Context) error {
	if err := h.cases.DeleteCase(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, nil)
}
