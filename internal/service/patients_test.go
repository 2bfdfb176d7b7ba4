package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
)

type mockPatientsRepository struct {
	create               func(ctx context.Context, input repository.NewPatient) (*entity.Patient, error)
	findByID             func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	list                 func(ctx context.Context, filter dto.ListFilter) ([]entity.Patient, error)
	update               func(ctx context.Context, id uuid.UUID, upd repository.PatientUpdate) (*entity.Patient, error)
	delete               func(ctx context.Context, id uuid.UUID) error
	listProcedures       func(ctx context.Context, patientID uuid.UUID) ([]entity.Procedure, error)
	updateWithProcedures func(ctx context.Context, id uuid.UUID, upd repository.PatientUpdate, procedures []repository.NewProcedure) (*entity.Patient, []entity.Procedure, error)
}

func (m *mockPatientsRepository) Create(ctx context.Context, input repository.NewPatient) (*entity.Patient, error) {
	if m.create != nil {
		return m.create(ctx, input)
	}
	return nil, errors.New("Create not implemented")
}

func (m *mockPatientsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("FindByID not implemented")
}

func (m *mockPatientsRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Patient, error) {
	if m.list != nil {
		return m.list(ctx, filter)
	}
	return nil, errors.New("List not implemented")
}

func (m *mockPatientsRepository) Update(ctx context.Context, id uuid.UUID, upd repository.PatientUpdate) (*entity.Patient, error) {
	if m.update != nil {
		return m.update(ctx, id, upd)
	}
	return nil, errors.New("Update not implemented")
}

func (m *mockPatientsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return errors.New("Delete not implemented")
}

func (m *mockPatientsRepository) ListProcedures(ctx context.Context, patientID uuid.UUID) ([]entity.Procedure, error) {
	if m.listProcedures != nil {
		return m.listProcedures(ctx, patientID)
	}
	return nil, errors.New("ListProcedures not implemented")
}

func (m *mockPatientsRepository) UpdateWithProcedures(ctx context.Context, id uuid.UUID, upd repository.PatientUpdate, procedures []repository.NewProcedure) (*entity.Patient, []entity.Procedure, error) {
	if m.updateWithProcedures != nil {
		return m.updateWithProcedures(ctx, id, upd, procedures)
	}
	return nil, nil, errors.New("UpdateWithProcedures not implemented")
}

func TestCreatePatientNormalizesPhone(t *testing.T) {
	var got repository.NewPatient
	repo := &mockPatientsRepository{
		create: func(ctx context.Context, input repository.NewPatient) (*entity.Patient, error) {
			got = input
			return &entity.Patient{ID: uuid.New(), FirstName: input.FirstName}, nil
		},
	}
	svc := NewPatientService(repo, "US")

	_, err := svc.CreatePatient(context.Background(), dto.CreatePatientRequest{
		FirstName:   "Maria",
		LastName:    "Santos",
		DateOfBirth: "1984-03-07",
		Phone:       "(212) 555-0182",
	})
	if err != nil {
		t.Fatalf("CreatePatient returned error: %v", err)
	}
	if got.Phone == nil || *got.Phone != "+12125550182" {
		t.Errorf("expected E.164 phone +12125550182, got %v", got.Phone)
	}
	if got.DateOfBirth.Year() != 1984 || got.DateOfBirth.Month() != 3 {
		t.Errorf("unexpected date of birth %s", got.DateOfBirth)
	}
}

func TestCreatePatientRejectsBadPhone(t *testing.T) {
	svc := NewPatientService(&mockPatientsRepository{}, "US")

	_, err := svc.CreatePatient(context.Background(), dto.CreatePatientRequest{
		FirstName:   "Maria",
		LastName:    "Santos",
		DateOfBirth: "1984-03-07",
		Phone:       "123",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdatePatientWithoutProceduresUsesPlainUpdate(t *testing.T) {
	patientID := uuid.New()
	plainCalled := false
	repo := &mockPatientsRepository{
		update: func(ctx context.Context, id uuid.UUID, upd repository.PatientUpdate) (*entity.Patient, error) {
			plainCalled = true
			if id != patientID {
				t.Errorf("expected id %s, got %s", patientID, id)
			}
			return &entity.Patient{ID: id}, nil
		},
		listProcedures: func(ctx context.Context, id uuid.UUID) ([]entity.Procedure, error) {
			return nil, nil
		},
		updateWithProcedures: func(ctx context.Context, id uuid.UUID, upd repository.PatientUpdate, procedures []repository.NewProcedure) (*entity.Patient, []entity.Procedure, error) {
			t.Fatal("transactional update must not run without a procedure set")
			return nil, nil, nil
		},
	}
	svc := NewPatientService(repo, "US")

	first := "Updated"
	_, err := svc.UpdatePatient(context.Background(), patientID.String(), dto.UpdatePatientRequest{FirstName: &first})
	if err != nil {
		t.Fatalf("UpdatePatient returned error: %v", err)
	}
	if !plainCalled {
		t.Error("expected plain update call")
	}
}

func TestUpdatePatientWithProceduresIsTransactional(t *testing.T) {
	patientID := uuid.New()
	var gotProcedures []repository.NewProcedure
	repo := &mockPatientsRepository{
		update: func(ctx context.Context, id uuid.UUID, upd repository.PatientUpdate) (*entity.Patient, error) {
			t.Fatal("plain update must not run when procedures are submitted")
			return nil, nil
		},
		updateWithProcedures: func(ctx context.Context, id uuid.UUID, upd repository.PatientUpdate, procedures []repository.NewProcedure) (*entity.Patient, []entity.Procedure, error) {
			gotProcedures = procedures
			result := make([]entity.Procedure, len(procedures))
			for i, p := range procedures {
				result[i] = entity.Procedure{ID: uuid.New(), PatientID: id, Name: p.Name, Code: p.Code}
			}
			return &entity.Patient{ID: id}, result, nil
		},
	}
	svc := NewPatientService(repo, "US")

	procedures := []dto.ProcedureInput{
		{Name: "MRI Lumbar", Code: "72148", PerformedAt: "2026-08-01"},
		{Name: "X-Ray Chest", Code: "71046"},
	}
	detail, err := svc.UpdatePatient(context.Background(), patientID.String(), dto.UpdatePatientRequest{Procedures: &procedures})
	if err != nil {
		t.Fatalf("UpdatePatient returned error: %v", err)
	}
	if len(gotProcedures) != 2 {
		t.Fatalf("expected 2 procedures passed to repository, got %d", len(gotProcedures))
	}
	if gotProcedures[0].PerformedAt == nil {
		t.Error("expected parsed performed_at on first procedure")
	}
	if gotProcedures[1].PerformedAt != nil {
		t.Error("expected nil performed_at on second procedure")
	}
	if len(detail.Procedures) != 2 {
		t.Errorf("expected 2 procedures in response, got %d", len(detail.Procedures))
	}
}

func TestUpdatePatientEmptyProcedureSetClearsAll(t *testing.T) {
	patientID := uuid.New()
	called := false
	repo := &mockPatientsRepository{
		updateWithProcedures: func(ctx context.Context, id uuid.UUID, upd repository.PatientUpdate, procedures []repository.NewProcedure) (*entity.Patient, []entity.Procedure, error) {
			called = true
			if len(procedures) != 0 {
				t.Errorf("expected empty procedure set, got %d", len(procedures))
			}
			return &entity.Patient{ID: id}, nil, nil
		},
	}
	svc := NewPatientService(repo, "US")

	empty := []dto.ProcedureInput{}
	if _, err := svc.UpdatePatient(context.Background(), patientID.String(), dto.UpdatePatientRequest{Procedures: &empty}); err != nil {
		t.Fatalf("UpdatePatient returned error: %v", err)
	}
	if !called {
		t.Error("expected transactional update for explicit empty set")
	}
}

func TestGetPatientInvalidID(t *testing.T) {
	svc := NewPatientService(&mockPatientsRepository{}, "US")
	if _, err := svc.GetPatient(context.Background(), "not-a-uuid"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
