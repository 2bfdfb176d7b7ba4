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
	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/practice-api/internal/auth"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
	"github.com/carelink/practice-api/internal/service"
	"github.com/carelink/practice-api/internal/validation"
)

type usersRepoStub struct {
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	create      func(ctx context.Context, email, passwordHash, name string, role entity.Role) (*entity.User, error)
}

func (s *usersRepoStub) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if s.findByEmail != nil {
		return s.findByEmail(ctx, email)
	}
	return nil, errors.New("FindByEmail not implemented")
}

func (s *usersRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, errors.New("FindByID not implemented")
}

func (s *usersRepoStub) Create(ctx context.Context, email, passwordHash, name string, role entity.Role) (*entity.User, error) {
	if s.create != nil {
		return s.create(ctx, email, passwordHash, name, role)
	}
	return nil, errors.New("Create not implemented")
}

func (s *usersRepoStub) List(ctx context.Context) ([]entity.User, error) {
	return nil, errors.New("List not implemented")
}

func (s *usersRepoStub) Update(ctx context.Context, id uuid.UUID, email, passwordHash, name, role *string) (*entity.User, error) {
	return nil, errors.New("Update not implemented")
}

func (s *usersRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("Delete not implemented")
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	return e
}

func newAuthHandler(repo repository.UsersRepository, sessions *auth.SessionManager) *AuthHandler {
	svc := service.NewAuthService(repo, sessions, zerolog.Nop())
	return NewAuthHandler(svc, sessions, zerolog.Nop())
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginSetsSessionCookie(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	repo := &usersRepoStub{
		findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{
				ID:           uuid.New(),
				Email:        email,
				PasswordHash: string(hashed),
				Name:         "Front Desk",
				Role:         entity.RoleStaff,
			}, nil
		},
	}
	sessions := auth.NewSessionManager("test-secret", time.Hour, false)
	h := newAuthHandler(repo, sessions)

	e := newTestEcho()
	c, rec := postJSON(e, "/auth/login", `{"email":"staff@example.com","password":"correct horse"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decodeEnvelope(t, rec)
	if !resp.Success {
		t.Error("expected success envelope")
	}

	cookies := rec.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, ck := range cookies {
		if ck.Name == auth.CookieName {
			sessionCookie = ck
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected session cookie to be set")
	}
	if !sessionCookie.HttpOnly {
		t.Error("session cookie must be HTTP-only")
	}
	if _, err := sessions.Parse(sessionCookie.Value); err != nil {
		t.Errorf("cookie does not contain a valid token: %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := &usersRepoStub{
		findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}
	h := newAuthHandler(repo, auth.NewSessionManager("test-secret", time.Hour, false))

	e := newTestEcho()
	c, rec := postJSON(e, "/auth/login", `{"email":"nobody@example.com","password":"guess"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Success {
		t.Error("expected failure envelope")
	}
	if resp.Error != "invalid credentials" {
		t.Errorf("unexpected error message %q", resp.Error)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("failed login must not set a cookie")
	}
}

func TestLoginStoreOutageIsServerError(t *testing.T) {
	repo := &usersRepoStub{
		findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := newAuthHandler(repo, auth.NewSessionManager("test-secret", time.Hour, false))

	e := newTestEcho()
	c, rec := postJSON(e, "/auth/login", `{"email":"staff@example.com","password":"pw"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for provider outage, got %d", rec.Code)
	}
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	h := newAuthHandler(&usersRepoStub{}, auth.NewSessionManager("test-secret", time.Hour, false))

	e := newTestEcho()
	c, rec := postJSON(e, "/auth/login", `{"email":"not-an-email","password":"pw"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	sessions := auth.NewSessionManager("test-secret", time.Hour, false)
	h := newAuthHandler(&usersRepoStub{}, sessions)

	e := newTestEcho()
	c, rec := postJSON(e, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != auth.CookieName {
		t.Fatal("expected clearing session cookie")
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("expected MaxAge -1, got %d", cookies[0].MaxAge)
	}
}

func TestRegisterCreatesStaffAndSetsCookie(t *testing.T) {
	repo := &usersRepoStub{
		create: func(ctx context.Context, email, passwordHash, name string, role entity.Role) (*entity.User, error) {
			if role != entity.RoleStaff {
				t.Errorf("expected STAFF role, got %s", role)
			}
			return &entity.User{ID: uuid.New(), Email: email, Name: name, Role: role}, nil
		},
	}
	h := newAuthHandler(repo, auth.NewSessionManager("test-secret", time.Hour, false))

	e := newTestEcho()
	c, rec := postJSON(e, "/auth/register", `{"email":"new@example.com","password":"long password","name":"New Person"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body %s", rec.Code, rec.Body.String())
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected session cookie after registration")
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	repo := &usersRepoStub{
		create: func(ctx context.Context, email, passwordHash, name string, role entity.Role) (*entity.User, error) {
			return nil, repository.ErrEmailDuplicate
		},
	}
	h := newAuthHandler(repo, auth.NewSessionManager("test-secret", time.Hour, false))

	e := newTestEcho()
	c, rec := postJSON(e, "/auth/register", `{"email":"taken@example.com","password":"long password","name":"Dup"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
