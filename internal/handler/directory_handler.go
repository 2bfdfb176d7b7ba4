package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/service"
)

// DirectoryHandler exposes the reference data endpoints: physicians,
// attorneys, payers, facilities and statuses.
type DirectoryHandler struct {
	directory *service.DirectoryService
	log       zerolog.Logger
}

// NewDirectoryHandler constructs a handler instance.
func NewDirectoryHandler(directory *service.DirectoryService, log zerolog.Logger) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, log: log}
}

func (h *DirectoryHandler) bindFilter(c echo.Context) (dto.ListFilter, error) {
	var filter dto.ListFilter
	if err := c.Bind(&filter); err != nil {
		return filter, Error(c, http.StatusBadRequest, "invalid query parameters")
	}
	return filter, nil
}

// ListPhysicians returns a filtered page of providers.
func (h *DirectoryHandler) ListPhysicians(c echo.Context) error {
	filter, err := h.bindFilter(c)
	if err != nil {
		return err
	}
	records, err := h.directory.ListPhysicians(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// GetPhysician returns one provider.
func (h *DirectoryHandler) GetPhysician(c echo.Context) error {
	record, err := h.directory.GetPhysician(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// CreatePhysician adds a provider.
func (h *DirectoryHandler) CreatePhysician(c echo.Context) error {
	var req dto.CreatePhysicianRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.CreatePhysician(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusCreated, record)
}

// UpdatePhysician applies a partial update.
func (h *DirectoryHandler) UpdatePhysician(c echo.Context) error {
	var req dto.UpdatePhysicianRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.UpdatePhysician(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// DeletePhysician removes a provider.
func (h *DirectoryHandler) DeletePhysician(c echo.Context) error {
	if err := h.directory.DeletePhysician(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, nil)
}

// ListAttorneys returns a filtered page of attorneys.
func (h *DirectoryHandler) ListAttorneys(c echo.Context) error {
	filter, err := h.bindFilter(c)
	if err != nil {
		return err
	}
	records, err := h.directory.ListAttorneys(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// GetAttorney returns one attorney.
func (h *DirectoryHandler) GetAttorney(c echo.Context) error {
	record, err := h.directory.GetAttorney(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// CreateAttorney adds outside counsel.
func (h *DirectoryHandler) CreateAttorney(c echo.Context) error {
	var req dto.CreateAttorneyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.CreateAttorney(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusCreated, record)
}

// UpdateAttorney applies a partial update.
func (h *DirectoryHandler) UpdateAttorney(c echo.Context) error {
	var req dto.UpdateAttorneyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.UpdateAttorney(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// DeleteAttorney removes an attorney.
func (h *DirectoryHandler) DeleteAttorney(c echo.Context) error {
	if err := h.directory.DeleteAttorney(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, nil)
}

// ListPayers returns a filtered page of payers.
func (h *DirectoryHandler) ListPayers(c echo.Context) error {
	filter, err := h.bindFilter(c)
	if err != nil {
		return err
	}
	records, err := h.directory.ListPayers(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// GetPayer returns one payer.
func (h *DirectoryHandler) GetPayer(c echo.Context) error {
	record, err := h.directory.GetPayer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// CreatePayer adds a funding source.
func (h *DirectoryHandler) CreatePayer(c echo.Context) error {
	var req dto.CreatePayerRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.CreatePayer(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusCreated, record)
}

// UpdatePayer applies a partial update. Replaying the same payload returns
// the same stored row.
func (h *DirectoryHandler) UpdatePayer(c echo.Context) error {
	var req dto.UpdatePayerRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.UpdatePayer(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// DeletePayer removes a payer.
func (h *DirectoryHandler) DeletePayer(c echo.Context) error {
	if err := h.directory.DeletePayer(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, nil)
}

// ListFacilities returns a filtered page of facilities.
func (h *DirectoryHandler) ListFacilities(c echo.Context) error {
	filter, err := h.bindFilter(c)
	if err != nil {
		return err
	}
	records, err := h.directory.ListFacilities(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// GetFacility returns one facility.
func (h *DirectoryHandler) GetFacility(c echo.Context) error {
	record, err := h.directory.GetFacility(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// CreateFacility adds a service location.
func (h *DirectoryHandler) CreateFacility(c echo.Context) error {
	var req dto.CreateFacilityRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.CreateFacility(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusCreated, record)
}

// UpdateFacility applies a partial update.
func (h *DirectoryHandler) UpdateFacility(c echo.Context) error {
	var req dto.UpdateFacilityRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.UpdateFacility(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// DeleteFacility removes a facility.
func (h *DirectoryHandler) DeleteFacility(c echo.Context) error {
	if err := h.directory.DeleteFacility(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, nil)
}

// ListStatuses returns every status in sort order.
func (h *DirectoryHandler) ListStatuses(c echo.Context) error {
	records, err := h.directory.ListStatuses(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, records)
}

// GetStatus returns one status.
func (h *DirectoryHandler) GetStatus(c echo.Context) error {
	record, err := h.directory.GetStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// CreateStatus adds a case workflow label.
func (h *DirectoryHandler) CreateStatus(c echo.Context) error {
	var req dto.CreateStatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.CreateStatus(c.Request().Context(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusCreated, record)
}

// UpdateStatus applies a partial update.
func (h *DirectoryHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.UpdateStatus(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, record)
}

// DeleteStatus removes a status.
func (h *DirectoryHandler) DeleteStatus(c echo.Context) error {
	if err := h.directory.DeleteStatus(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return Success(c, http.StatusOK, nil)
}
