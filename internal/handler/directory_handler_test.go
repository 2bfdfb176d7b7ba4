package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
	"github.com/carelink/practice-api/internal/service"
)

type payersRepoStub struct {
	store map[uuid.UUID]*entity.Payer
}

func (s *payersRepoStub) Create(ctx context.Context, name, payerType string, phone *string, isActive bool) (*entity.Payer, error) {
	payer := &entity.Payer{ID: uuid.New(), Name: name, PayerType: payerType, Phone: phone, IsActive: isActive}
	s.store[payer.ID] = payer
	return payer, nil
}

func (s *payersRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payer, error) {
	payer, ok := s.store[id]
	if !ok {
		return nil, repository.ErrPayerNotFound
	}
	copied := *payer
	return &copied, nil
}

func (s *payersRepoStub) List(ctx context.Context, filter dto.ListFilter) ([]entity.Payer, error) {
	out := make([]entity.Payer, 0, len(s.store))
	for _, p := range s.store {
		out = append(out, *p)
	}
	return out, nil
}

func (s *payersRepoStub) Update(ctx context.Context, id uuid.UUID, upd repository.PayerUpdate) (*entity.Payer, error) {
	payer, ok := s.store[id]
	if !ok {
		return nil, repository.ErrPayerNotFound
	}
	if upd.Name != nil {
		payer.Name = *upd.Name
	}
	if upd.PayerType != nil {
		payer.PayerType = *upd.PayerType
	}
	if upd.Phone != nil {
		payer.Phone = upd.Phone
	}
	if upd.IsActive != nil {
		payer.IsActive = *upd.IsActive
	}
	payer.UpdatedAt = time.Now()
	copied := *payer
	return &copied, nil
}

func (s *payersRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.store[id]; !ok {
		return repository.ErrPayerNotFound
	}
	delete(s.store, id)
	return nil
}

type statusesRepoStub struct {
	deleteErr error
	createErr error
}

func (s *statusesRepoStub) Create(ctx context.Context, name, color string, sortOrder int) (*entity.Status, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &entity.Status{ID: uuid.New(), Name: name, Color: color, SortOrder: sortOrder}, nil
}

func (s *statusesRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Status, error) {
	return nil, repository.ErrStatusNotFound
}

func (s *statusesRepoStub) List(ctx context.Context) ([]entity.Status, error) {
	return nil, errors.New("List not implemented")
}

func (s *statusesRepoStub) Update(ctx context.Context, id uuid.UUID, upd repository.StatusUpdate) (*entity.Status, error) {
	return nil, errors.New("Update not implemented")
}

func (s *statusesRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteErr
}

func newDirectoryHandler(payers repository.PayersRepository, statuses repository.StatusesRepository) *DirectoryHandler {
	svc := service.NewDirectoryService(nil, nil, payers, nil, statuses, "US")
	return NewDirectoryHandler(svc, zerolog.Nop())
}

func putJSON(e *echo.Echo, path, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestUpdatePayerIsIdempotent(t *testing.T) {
	repo := &payersRepoStub{store: map[uuid.UUID]*entity.Payer{}}
	payer, _ := repo.Create(context.Background(), "Acme Health", entity.PayerInsurance, nil, true)
	h := newDirectoryHandler(repo, &statusesRepoStub{})

	e := newTestEcho()
	body := `{"name":"Acme Health Plans","payer_type":"lien","is_active":false}`

	var first, second APIResponse
	for i, target := range []*APIResponse{&first, &second} {
		c, rec := putJSON(e, "/api/payers/"+payer.ID.String(), payer.ID.String(), body)
		if err := h.UpdatePayer(c); err != nil {
			t.Fatalf("UpdatePayer call %d returned error: %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("call %d: expected 200, got %d", i+1, rec.Code)
		}
		*target = decodeEnvelope(t, rec)
	}

	stored := repo.store[payer.ID]
	if stored.Name != "Acme Health Plans" || stored.PayerType != entity.PayerLien || stored.IsActive {
		t.Errorf("unexpected stored payer after replay: %+v", stored)
	}

	firstData, ok := first.Data.(map[string]any)
	if !ok {
		t.Fatal("expected object payload")
	}
	secondData := second.Data.(map[string]any)
	for _, field := range []string{"id", "name", "payer_type", "is_active"} {
		if firstData[field] != secondData[field] {
			t.Errorf("field %s changed between identical requests: %v vs %v", field, firstData[field], secondData[field])
		}
	}
}

func TestDeleteStatusUnknownIDReturns404(t *testing.T) {
	h := newDirectoryHandler(&payersRepoStub{store: map[uuid.UUID]*entity.Payer{}}, &statusesRepoStub{deleteErr: repository.ErrStatusNotFound})

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/statuses/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	if err := h.DeleteStatus(c); err != nil {
		t.Fatalf("DeleteStatus returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if decodeEnvelope(t, rec).Success {
		t.Error("expected failure envelope")
	}
}

func TestCreateStatusDuplicateNameConflict(t *testing.T) {
	h := newDirectoryHandler(&payersRepoStub{store: map[uuid.UUID]*entity.Payer{}}, &statusesRepoStub{createErr: repository.ErrStatusNameDuplicate})

	e := newTestEcho()
	c, rec := postJSON(e, "/api/statuses", `{"name":"In Treatment","color":"#22AA55","sort_order":1}`)
	if err := h.CreateStatus(c); err != nil {
		t.Fatalf("CreateStatus returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestCreatePhysicianRequiresEmail(t *testing.T) {
	h := newDirectoryHandler(&payersRepoStub{store: map[uuid.UUID]*entity.Payer{}}, &statusesRepoStub{})

	e := newTestEcho()
	c, rec := postJSON(e, "/api/physicians", `{"name":"Dr. Chen","specialty":"Orthopedics"}`)
	if err := h.CreatePhysician(c); err != nil {
		t.Fatalf("CreatePhysician returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(decodeEnvelope(t, rec).Error, "email is required") {
		t.Errorf("expected email requirement message, got %q", decodeEnvelope(t, rec).Error)
	}
}

func TestCreatePayerInvalidTypeRejected(t *testing.T) {
	h := newDirectoryHandler(&payersRepoStub{store: map[uuid.UUID]*entity.Payer{}}, &statusesRepoStub{})

	e := newTestEcho()
	c, rec := postJSON(e, "/api/payers", `{"name":"Acme","payer_type":"barter"}`)
	if err := h.CreatePayer(c); err != nil {
		t.Fatalf("CreatePayer returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
