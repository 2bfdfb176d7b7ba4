package service

import (
	"context"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
)

// ExamService owns diagnostic study records.
type ExamService struct {
	repo     repository.ExamsRepository
	patients repository.PatientsRepository
}

// NewExamService builds a new ExamService.
func NewExamService(repo repository.ExamsRepository, patients repository.PatientsRepository) *ExamService {
	return &ExamService{repo: repo, patients: patients}
}

// CreateExam records a study order for an existing patient. Status defaults
// to ordered.
func (s *ExamService) CreateExam(ctx context.Context, req dto.CreateExamRequest) (*entity.Exam, error) {
	patientID, err := parseID("patient_id", req.PatientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.patients.FindByID(ctx, patientID); err != nil {
		return nil, err
	}

	caseID, err := optionalID("case_id", req.CaseID)
	if err != nil {
		return nil, err
	}
	facilityID, err := optionalID("facility_id", req.FacilityID)
	if err != nil {
		return nil, err
	}
	performedAt, err := optionalTimestamp("performed_at", req.PerformedAt)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.ExamOrdered
	}

	return s.repo.Create(ctx, repository.NewExam{
		PatientID:   patientID,
		CaseID:      caseID,
		FacilityID:  facilityID,
		ExamType:    req.ExamType,
		PerformedAt: performedAt,
		ReportURL:   optionalString(req.ReportURL),
		Status:      status,
	})
}

// GetExam returns one exam by id.
func (s *ExamService) GetExam(ctx context.Context, id string) (*entity.Exam, error) {
	examID, err := parseID("exam id", id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, examID)
}

// ListExams returns a filtered page of exams.
func (s *ExamService) ListExams(ctx context.Context, filter dto.ListFilter) ([]entity.Exam, error) {
	return s.repo.List(ctx, filter)
}

// ListPatientExams returns every exam for a patient.
func (s *ExamService) ListPatientExams(ctx context.Context, patientID string) ([]entity.Exam, error) {
	id, err := parseID("patient id", patientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.patients.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, id)
}

// UpdateExam applies a partial update.
func (s *ExamService) UpdateExam(ctx context.Context, id string, req dto.UpdateExamRequest) (*entity.Exam, error) {
	examID, err := parseID("exam id", id)
	if err != nil {
		return nil, err
	}

	upd := repository.ExamUpdate{
		ExamType:  req.ExamType,
		ReportURL: req.ReportURL,
		Status:    req.Status,
	}
	if upd.CaseID, err = optionalIDPtr("case_id", req.CaseID); err != nil {
		return nil, err
	}
	if upd.FacilityID, err = optionalIDPtr("facility_id", req.FacilityID); err != nil {
		return nil, err
	}
	if upd.PerformedAt, err = optionalTimestampPtr("performed_at", req.PerformedAt); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, examID, upd)
}

// DeleteExam removes an exam by id.
func (s *ExamService) DeleteExam(ctx context.Context, id string) error {
	examID, err := parseID("exam id", id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, examID)
}
