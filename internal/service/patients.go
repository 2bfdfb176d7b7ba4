package service

import (
	"context"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
)

// PatientDetail bundles a patient row with its procedure set.
type PatientDetail struct {
	entity.Patient
	Procedures []entity.Procedure `json:"procedures"`
}

// PatientService owns patient records and their procedure rows.
type PatientService struct {
	repo   repository.PatientsRepository
	region string
}

// NewPatientService builds a new PatientService. The region seeds phone
// number parsing for nationally formatted input.
func NewPatientService(repo repository.PatientsRepository, region string) *PatientService {
	return &PatientService{repo: repo, region: region}
}

// CreatePatient registers a new patient.
func (s *PatientService) CreatePatient(ctx context.Context, req dto.CreatePatientRequest) (*entity.Patient, error) {
	dob, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	phone, err := optionalPhone(req.Phone, s.region)
	if err != nil {
		return nil, err
	}
	payerID, err := optionalID("payer_id", req.PayerID)
	if err != nil {
		return nil, err
	}
	attorneyID, err := optionalID("attorney_id", req.AttorneyID)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, repository.NewPatient{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Email:       optionalString(req.Email),
		Phone:       phone,
		Address:     optionalString(req.Address),
		PayerID:     payerID,
		AttorneyID:  attorneyID,
	})
}

// GetPatient returns one patient together with its procedures.
func (s *PatientService) GetPatient(ctx context.Context, id string) (*PatientDetail, error) {
	patientID, err := parseID("patient id", id)
	if err != nil {
		return nil, err
	}
	patient, err := s.repo.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	procedures, err := s.repo.ListProcedures(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return &PatientDetail{Patient: *patient, Procedures: procedures}, nil
}

// ListPatients returns a filtered page of patients.
func (s *PatientService) ListPatients(ctx context.Context, filter dto.ListFilter) ([]entity.Patient, error) {
	return s.repo.List(ctx, filter)
}

// UpdatePatient applies a partial update. When the request carries a
// procedure set, the patient row and the full set are written in a single
// transaction so a failure leaves both untouched.
func (s *PatientService) UpdatePatient(ctx context.Context, id string, req dto.UpdatePatientRequest) (*PatientDetail, error) {
	patientID, err := parseID("patient id", id)
	if err != nil {
		return nil, err
	}

	upd := repository.PatientUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Address:   req.Address,
		Active:    req.Active,
	}
	if upd.DateOfBirth, err = optionalDatePtr("date_of_birth", req.DateOfBirth); err != nil {
		return nil, err
	}
	if upd.Phone, err = optionalPhonePtr(req.Phone, s.region); err != nil {
		return nil, err
	}
	if upd.PayerID, err = optionalIDPtr("payer_id", req.PayerID); err != nil {
		return nil, err
	}
	if upd.AttorneyID, err = optionalIDPtr("attorney_id", req.AttorneyID); err != nil {
		return nil, err
	}

	if req.Procedures == nil {
		patient, err := s.repo.Update(ctx, patientID, upd)
		if err != nil {
			return nil, err
		}
		procedures, err := s.repo.ListProcedures(ctx, patientID)
		if err != nil {
			return nil, err
		}
		return &PatientDetail{Patient: *patient, Procedures: procedures}, nil
	}

	rows := make([]repository.NewProcedure, 0, len(*req.Procedures))
	for _, input := range *req.Procedures {
		performed, err := optionalDate("performed_at", input.PerformedAt)
		if err != nil {
			return nil, err
		}
		rows = append(rows, repository.NewProcedure{
			Name:        input.Name,
			Code:        input.Code,
			PerformedAt: performed,
		})
	}

	patient, procedures, err := s.repo.UpdateWithProcedures(ctx, patientID, upd, rows)
	if err != nil {
		return nil, err
	}
	return &PatientDetail{Patient: *patient, Procedures: procedures}, nil
}

// DeletePatient removes a patient and, through cascade, its procedures.
func (s *PatientService) DeletePatient(ctx context.Context, id string) error {
	patientID, err := parseID("patient id", id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, patientID)
}
