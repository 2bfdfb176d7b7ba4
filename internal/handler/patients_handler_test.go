package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
	"github.com/carelink/practice-api/internal/service"
)

type patientsRepoStub struct {
	createCalled bool
	create       func(ctx context.Context, input repository.NewPatient) (*entity.Patient, error)
	findByID     func(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	list         func(ctx context.Context, filter dto.ListFilter) ([]entity.Patient, error)
}

func (s *patientsRepoStub) Create(ctx context.Context, input repository.NewPatient) (*entity.Patient, error) {
	s.createCalled = true
	if s.create != nil {
		return s.create(ctx, input)
	}
	return nil, errors.New("Create not implemented")
}

func (s *patientsRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	if s.findByID != nil {
		return s.findByID(ctx, id)
	}
	return nil, errors.New("FindByID not implemented")
}

func (s *patientsRepoStub) List(ctx context.Context, filter dto.ListFilter) ([]entity.Patient, error) {
	if s.list != nil {
		return s.list(ctx, filter)
	}
	return nil, errors.New("List not implemented")
}

func (s *patientsRepoStub) Update(ctx context.Context, id uuid.UUID, upd repository.PatientUpdate) (*entity.Patient, error) {
	return nil, errors.New("Update not implemented")
}

func (s *patientsRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("Delete not implemented")
}

func (s *patientsRepoStub) ListProcedures(ctx context.Context, patientID uuid.UUID) ([]entity.Procedure, error) {
	return nil, errors.New("ListProcedures not implemented")
}

func (s *patientsRepoStub) UpdateWithProcedures(ctx context.Context, id uuid.UUID, upd repository.PatientUpdate, procedures []repository.NewProcedure) (*entity.Patient, []entity.Procedure, error) {
	return nil, nil, errors.New("UpdateWithProcedures not implemented")
}

func newPatientsHandler(repo repository.PatientsRepository) *PatientsHandler {
	return NewPatientsHandler(service.NewPatientService(repo, "US"), zerolog.Nop())
}

func TestCreatePatientMissingFieldRejectedBeforePersistence(t *testing.T) {
	repo := &patientsRepoStub{}
	h := newPatientsHandler(repo)

	e := newTestEcho()
	c, rec := postJSON(e, "/api/patients", `{"first_name":"Maria","date_of_birth":"1984-03-07"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Success {
		t.Error("expected failure envelope")
	}
	if resp.Error == "" {
		t.Error("expected field error message")
	}
	if repo.createCalled {
		t.Error("invalid payload must not reach the repository")
	}
}

func TestCreatePatientSuccess(t *testing.T) {
	repo := &patientsRepoStub{
		create: func(ctx context.Context, input repository.NewPatient) (*entity.Patient, error) {
			return &entity.Patient{ID: uuid.New(), FirstName: input.FirstName, LastName: input.LastName, Active: true}, nil
		},
	}
	h := newPatientsHandler(repo)

	e := newTestEcho()
	c, rec := postJSON(e, "/api/patients", `{"first_name":"Maria","last_name":"Santos","date_of_birth":"1984-03-07"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body %s", rec.Code, rec.Body.String())
	}
	if !decodeEnvelope(t, rec).Success {
		t.Error("expected success envelope")
	}
}

func TestGetPatientNotFound(t *testing.T) {
	repo := &patientsRepoStub{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
			return nil, repository.ErrPatientNotFound
		},
	}
	h := newPatientsHandler(repo)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/patients/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if decodeEnvelope(t, rec).Error != "patient not found" {
		t.Errorf("unexpected message %q", decodeEnvelope(t, rec).Error)
	}
}

func TestGetPatientMalformedID(t *testing.T) {
	h := newPatientsHandler(&patientsRepoStub{})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/patients/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListPatientsRepoOutageIsGeneric500(t *testing.T) {
	repo := &patientsRepoStub{
		list: func(ctx context.Context, filter dto.ListFilter) ([]entity.Patient, error) {
			return nil, errors.New("pq: connection reset")
		},
	}
	h := newPatientsHandler(repo)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Error != "internal server error" {
		t.Errorf("driver details must not leak, got %q", resp.Error)
	}
}
