package service

import (
	"context"
	"time"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
)

// CaseService owns case lifecycle operations.
type CaseService struct {
	repo     repository.CasesRepository
	patients repository.PatientsRepository
}

// NewCaseService builds a new CaseService.
func NewCaseService(repo repository.CasesRepository, patients repository.PatientsRepository) *CaseService {
	return &CaseService{repo: repo, patients: patients}
}

// CreateCase opens a case for an existing patient. OpenedAt defaults to
// today when omitted.
func (s *CaseService) CreateCase(ctx context.Context, req dto.CreateCaseRequest) (*entity.Case, error) {
	patientID, err := parseID("patient_id", req.PatientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}

	attorneyID, err := optionalID("attorney_id", req.AttorneyID)
	if err != nil {
		return nil, err
	}
	statusID, err := optionalID("status_id", req.StatusID)
	if err != nil {
		return nil, err
	}

	openedAt := time.Now().UTC().Truncate(24 * time.Hour)
	if req.OpenedAt != "" {
		if openedAt, err = parseDate("opened_at", req.OpenedAt); err != nil {
			return nil, err
		}
	}

	return s.repo.Create(ctx, repository.NewCase{
		PatientID:  patientID,
		AttorneyID: attorneyID,
		Title:      req.Title,
		StatusID:   statusID,
		OpenedAt:   openedAt,
	})
}

// GetCase returns one case by id.
func (s *CaseService) GetCase(ctx context.Context, id string) (*entity.Case, error) {
	caseID, err := parseID("case id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, caseID)
}

// ListCases returns a filtered page of cases.
func (s *CaseService) ListCases(ctx context.Context, filter dto.ListFilter) ([]entity.Case, error) {
	return s.repo.List(ctx, filter)
}

// ListPatientCases returns every case attached to a patient.
func (s *CaseService) ListPatientCases(ctx context.Context, patientID string) ([]entity.Case, error) {
	id, err := parseID("patient id", patientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.patients.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, id)
}

// UpdateCase applies a partial update, including closing a case via
// closed_at.
func (s *CaseService) UpdateCase(ctx context.Context, id string, req dto.UpdateCaseRequest) (*entity.Case, error) {
	caseID, err := parseID("case id", id)
	if err != nil {
		return nil, err
	}

	upd := repository.CaseUpdate{Title: req.Title}
	if upd.AttorneyID, err = optionalIDPtr("attorney_id", req.AttorneyID); err != nil {
		return nil, err
	}
	if upd.StatusID, err = optionalIDPtr("status_id", req.StatusID); err != nil {
		return nil, err
	}
	if upd.ClosedAt, err = optionalDatePtr("closed_at", req.ClosedAt); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, caseID, upd)
}

// DeleteCase removes a case by id.
func (s *CaseService) DeleteCase(ctx context.Context, id string) error {
	caseID, err := parseID("case id", id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, caseID)
}
