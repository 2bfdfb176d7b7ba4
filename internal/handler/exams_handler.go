package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/service"
)

// ExamsHandler exposes diagnostic study endpoints.
type ExamsHandler struct {
	exams *service.ExamService
	log   zerolog.Logger
}

// NewExamsHandler constructs a handler instance.
func NewExamsHandler(exams *service.ExamService, log zerolog.Logger) *ExamsHandler {
	return &ExamsHandler{exams: exams, log: log}
}

// List returns a filtered page of exams.
func (h *ExamsHandler) List(c echo.Context) error {
	var filter dto.ListFilter
	if err := c.Bind(&filter); err != nil {
		return Error(c, http.StatusBadRequest, "invalid query parameters")
	}
	records, err := h.exams.ListExams(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// ListByPatient returns every exam for one patient.
func (h *ExamsHandler) ListByPatient(c echo.Context) error {
	records, err := h.exams.ListPatientExams(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// Get returns one exam.
func (h *ExamsHandler) Get(c echo.Context) error {
	record, err := h.exams.GetExam(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// Create records a study order.
func (h *ExamsHandler) Create(c echo.Context) error {
	var req dto.CreateExamRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.exams.CreateExam(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusCreated, record)
}

// Update applies a partial exam update.
func (h *ExamsHandler) Update(c echo.Context) error {
	var req dto.UpdateExamRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.exams.UpdateExam(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// Delete removes an exam.
func (h *ExamsHandler) Delete(c echo.Context) error {
	if err := h.exams.DeleteExam(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, nil)
}
