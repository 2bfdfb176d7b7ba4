package service

import (
	"context"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
)

// DirectoryService owns the reference data the rest of the system links to:
// physicians, attorneys, payers, facilities and case statuses.
type DirectoryService struct {
	physicians repository.PhysiciansRepository
	attorneys  repository.AttorneysRepository
	payers     repository.PayersRepository
	facilities repository.FacilitiesRepository
	statuses   repository.StatusesRepository
	region     string
}

// NewDirectoryService builds a new DirectoryService.
func NewDirectoryService(
	physicians repository.PhysiciansRepository,
	attorneys repository.AttorneysRepository,
	payers repository.PayersRepository,
	facilities repository.FacilitiesRepository,
	statuses repository.StatusesRepository,
	region string,
) *DirectoryService {
	return &DirectoryService{
		physicians: physicians,
		attorneys:  attorneys,
		payers:     payers,
		facilities: facilities,
		statuses:   statuses,
		region:     region,
	}
}

// CreatePhysician adds a provider. Email is mandatory because scheduling
// notices go to it.
func (s *DirectoryService) CreatePhysician(ctx context.Context, req dto.CreatePhysicianRequest) (*entity.Physician, error) {
	phone, err := optionalPhone(req.Phone, s.region)
	if err != nil {
		return nil, err
	}
	email := req.Email
	return s.physicians.Create(ctx, req.Name, optionalString(req.Specialty), &email, phone, optionalString(req.NPI))
}

// GetPhysician returns one provider by id.
func (s *DirectoryService) GetPhysician(ctx context.Context, id string) (*entity.Physician, error) {
	physicianID, err := parseID("physician id", id)
	if err != nil {
		return nil, err
	}
	return s.physicians.FindByID(ctx, physicianID)
}

// ListPhysicians returns a filtered page of providers.
func (s *DirectoryService) ListPhysicians(ctx context.Context, filter dto.ListFilter) ([]entity.Physician, error) {
	return s.physicians.List(ctx, filter)
}

// UpdatePhysician applies a partial update.
func (s *DirectoryService) UpdatePhysician(ctx context.Context, id string, req dto.UpdatePhysicianRequest) (*entity.Physician, error) {
	physicianID, err := parseID("physician id", id)
	if err != nil {
		return nil, err
	}
	phone, err := optionalPhonePtr(req.Phone, s.region)
	if err != nil {
		return nil, err
	}
	return s.physicians.Update(ctx, physicianID, repository.PhysicianUpdate{
		Name:      req.Name,
		Specialty: req.Specialty,
		Email:     req.Email,
		Phone:     phone,
		NPI:       req.NPI,
	})
}

// DeletePhysician removes a provider by id.
func (s *DirectoryService) DeletePhysician(ctx context.Context, id string) error {
	physicianID, err := parseID("physician id", id)
	if err != nil {
		return err
	}
	return s.physicians.Delete(ctx, physicianID)
}

// CreateAttorney adds outside counsel.
func (s *DirectoryService) CreateAttorney(ctx context.Context, req dto.CreateAttorneyRequest) (*entity.Attorney, error) {
	phone, err := optionalPhone(req.Phone, s.region)
	if err != nil {
		return nil, err
	}
	return s.attorneys.Create(ctx, req.Name, optionalString(req.Firm), optionalString(req.Email), phone)
}

// GetAttorney returns one attorney by id.
func (s *DirectoryService) GetAttorney(ctx context.Context, id string) (*entity.Attorney, error) {
	attorneyID, err := parseID("attorney id", id)
	if err != nil {
		return nil, err
	}
	return s.attorneys.FindByID(ctx, attorneyID)
}

// ListAttorneys returns a filtered page of attorneys.
func (s *DirectoryService) ListAttorneys(ctx context.Context, filter dto.ListFilter) ([]entity.Attorney, error) {
	return s.attorneys.List(ctx, filter)
}

// UpdateAttorney applies a partial update.
func (s *DirectoryService) UpdateAttorney(ctx context.Context, id string, req dto.UpdateAttorneyRequest) (*entity.Attorney, error) {
	attorneyID, err := parseID("attorney id", id)
	if err != nil {
		return nil, err
	}
	phone, err := optionalPhonePtr(req.Phone, s.region)
	if err != nil {
		return nil, err
	}
	return s.attorneys.Update(ctx, attorneyID, repository.AttorneyUpdate{
		Name:  req.Name,
		Firm:  req.Firm,
		Email: req.Email,
		Phone: phone,
	})
}

// DeleteAttorney removes an attorney by id.
func (s *DirectoryService) DeleteAttorney(ctx context.Context, id string) error {
	attorneyID, err := parseID("attorney id", id)
	if err != nil {
		return err
	}
	return s.attorneys.Delete(ctx, attorneyID)
}

// CreatePayer adds a funding source. IsActive defaults to true.
func (s *DirectoryService) CreatePayer(ctx context.Context, req dto.CreatePayerRequest) (*entity.Payer, error) {
	phone, err := optionalPhone(req.Phone, s.region)
	if err != nil {
		return nil, err
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return s.payers.Create(ctx, req.Name, req.PayerType, phone, active)
}

// GetPayer returns one payer by id.
func (s *DirectoryService) GetPayer(ctx context.Context, id string) (*entity.Payer, error) {
	payerID, err := parseID("payer id", id)
	if err != nil {
		return nil, err
	}
	return s.payers.FindByID(ctx, payerID)
}

// ListPayers returns a filtered page of payers.
func (s *DirectoryService) ListPayers(ctx context.Context, filter dto.ListFilter) ([]entity.Payer, error) {
	return s.payers.List(ctx, filter)
}

// UpdatePayer applies a partial update. Repeating the same payload yields
// the same stored row, so edit retries are safe.
func (s *DirectoryService) UpdatePayer(ctx context.Context, id string, req dto.UpdatePayerRequest) (*entity.Payer, error) {
	payerID, err := parseID("payer id", id)
	if err != nil {
		return nil, err
	}
	phone, err := optionalPhonePtr(req.Phone, s.region)
	if err != nil {
		return nil, err
	}
	return s.payers.Update(ctx, payerID, repository.PayerUpdate{
		Name:      req.Name,
		PayerType: req.PayerType,
		Phone:     phone,
		IsActive:  req.IsActive,
	})
}

// DeletePayer removes a payer by id.
func (s *DirectoryService) DeletePayer(ctx context.Context, id string) error {
	payerID, err := parseID("payer id", id)
	if err != nil {
		return err
	}
	return s.payers.Delete(ctx, payerID)
}

// CreateFacility adds a service location.
func (s *DirectoryService) CreateFacility(ctx context.Context, req dto.CreateFacilityRequest) (*entity.Facility, error) {
	phone, err := optionalPhone(req.Phone, s.region)
	if err != nil {
		return nil, err
	}
	return s.facilities.Create(ctx, req.Name, optionalString(req.Address), phone)
}

// GetFacility returns one facility by id.
func (s *DirectoryService) GetFacility(ctx context.Context, id string) (*entity.Facility, error) {
	facilityID, err := parseID("facility id", id)
	if err != nil {
		return nil, err
	}
	return s.facilities.FindByID(ctx, facilityID)
}

// ListFacilities returns a filtered page of facilities.
func (s *DirectoryService) ListFacilities(ctx context.Context, filter dto.ListFilter) ([]entity.Facility, error) {
	return s.facilities.List(ctx, filter)
}

// UpdateFacility applies a partial update.
func (s *DirectoryService) UpdateFacility(ctx context.Context, id string, req dto.UpdateFacilityRequest) (*entity.Facility, error) {
	facilityID, err := parseID("facility id", id)
	if err != nil {
		return nil, err
	}
	phone, err := optionalPhonePtr(req.Phone, s.region)
	if err != nil {
		return nil, err
	}
	return s.facilities.Update(ctx, facilityID, repository.FacilityUpdate{
		Name:    req.Name,
		Address: req.Address,
		Phone:   phone,
	})
}

// DeleteFacility removes a facility by id.
func (s *DirectoryService) DeleteFacility(ctx context.Context, id string) error {
	facilityID, err := parseID("facility id", id)
	if err != nil {
		return err
	}
	return s.facilities.Delete(ctx, facilityID)
}

// CreateStatus adds a case workflow label. Names are unique.
func (s *DirectoryService) CreateStatus(ctx context.Context, req dto.CreateStatusRequest) (*entity.Status, error) {
	return s.statuses.Create(ctx, req.Name, req.Color, req.SortOrder)
}

// GetStatus returns one status by id.
func (s *DirectoryService) GetStatus(ctx context.Context, id string) (*entity.Status, error) {
	statusID, err := parseID("status id", id)
	if err != nil {
		return nil, err
	}
	return s.statuses.FindByID(ctx, statusID)
}

// ListStatuses returns every status in sort order.
func (s *DirectoryService) ListStatuses(ctx context.Context) ([]entity.Status, error) {
	return s.statuses.List(ctx)
}

// UpdateStatus applies a partial update.
func (s *DirectoryService) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (*entity.Status, error) {
	statusID, err := parseID("status id", id)
	if err != nil {
		return nil, err
	}
	return s.statuses.Update(ctx, statusID, repository.StatusUpdate{
		Name:      req.Name,
		Color:     req.Color,
		SortOrder: req.SortOrder,
	})
}

// DeleteStatus removes a status by id. Cases pointing at it keep a NULL
// status through the foreign key.
func (s *DirectoryService) DeleteStatus(ctx context.Context, id string) error {
	statusID, err := parseID("status id", id)
	if err != nil {
		return err
	}
	return s.statuses.Delete(ctx, statusID)
}
