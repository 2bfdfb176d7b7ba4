package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/practice-api/internal/auth"
	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
)

type mockUsersRepository struct {
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	create      func(ctx context.Context, email, passwordHash, name string, role entity.Role) (*entity.User, error)
	list        func(ctx context.Context) ([]entity.User, error)
	update      func(ctx context.Context, id uuid.UUID, email, passwordHash, name, role *string) (*entity.User, error)
	delete      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, errors.New("FindByEmail not implemented")
}

func (m *mockUsersRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("FindByID not implemented")
}

func (m *mockUsersRepository) Create(ctx context.Context, email, passwordHash, name string, role entity.Role) (*entity.User, error) {
	if m.create != nil {
		return m.create(ctx, email, passwordHash, name, role)
	}
	return nil, errors.New("Create not implemented")
}

func (m *mockUsersRepository) List(ctx context.Context) ([]entity.User, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, errors.New("List not implemented")
}

func (m *mockUsersRepository) Update(ctx context.Context, id uuid.UUID, email, passwordHash, name, role *string) (*entity.User, error) {
	if m.update != nil {
		return m.update(ctx, id, email, passwordHash, name, role)
	}
	return nil, errors.New("Update not implemented")
}

func (m *mockUsersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return errors.New("Delete not implemented")
}

func testSessions() *auth.SessionManager {
	return auth.NewSessionManager("test-secret", time.Hour, false)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hashed)
}

func TestLoginSuccess(t *testing.T) {
	userID := uuid.New()
	repo := &mockUsersRepository{
		findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
			if email != "staff@example.com" {
				t.Errorf("expected lowercased email, got %s", email)
			}
			return &entity.User{
				ID:           userID,
				Email:        "staff@example.com",
				PasswordHash: hashPassword(t, "correct horse"),
				Name:         "Front Desk",
				Role:         entity.RoleStaff,
			}, nil
		},
	}
	sessions := testSessions()
	svc := NewAuthService(repo, sessions, zerolog.Nop())

	token, principal, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "  Staff@Example.com ",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	claims, err := sessions.Parse(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Errorf("expected subject %s, got %s", userID, claims.Subject)
	}
	if principal.Role != "STAFF" {
		t.Errorf("expected STAFF principal, got %s", principal.Role)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	unknownRepo := &mockUsersRepository{
		findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}
	wrongPasswordRepo := &mockUsersRepository{
		findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{
				ID:           uuid.New(),
				Email:        email,
				PasswordHash: hashPassword(t, "actual password"),
				Role:         entity.RoleStaff,
			}, nil
		},
	}

	for name, repo := range map[string]*mockUsersRepository{
		"unknown account": unknownRepo,
		"wrong password":  wrongPasswordRepo,
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewAuthService(repo, testSessions(), zerolog.Nop())
			_, _, err := svc.Login(context.Background(), dto.LoginRequest{
				Email:    "someone@example.com",
				Password: "guess",
			})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLoginReportsProviderOutage(t *testing.T) {
	repo := &mockUsersRepository{
		findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewAuthService(repo, testSessions(), zerolog.Nop())

	_, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "staff@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatal("outage must not be reported as bad credentials")
	}
}

func TestRegisterAssignsStaffRole(t *testing.T) {
	var gotRole entity.Role
	repo := &mockUsersRepository{
		create: func(ctx context.Context, email, passwordHash, name string, role entity.Role) (*entity.User, error) {
			gotRole = role
			if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("long password")) != nil {
				t.Error("stored hash does not match password")
			}
			return &entity.User{ID: uuid.New(), Email: email, Name: name, Role: role}, nil
		},
	}
	svc := NewAuthService(repo, testSessions(), zerolog.Nop())

	token, principal, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "long password",
		Name:     "New Person",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if gotRole != entity.RoleStaff {
		t.Errorf("expected STAFF role, got %s", gotRole)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if principal.Name != "New Person" {
		t.Errorf("unexpected principal name %s", principal.Name)
	}
}

func TestRegisterPropagatesDuplicateEmail(t *testing.T) {
	repo := &mockUsersRepository{
		create: func(ctx context.Context, email, passwordHash, name string, role entity.Role) (*entity.User, error) {
			return nil, repository.ErrEmailDuplicate
		},
	}
	svc := NewAuthService(repo, testSessions(), zerolog.Nop())

	_, _, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "long password",
		Name:     "Dup",
	})
	if !errors.Is(err, repository.ErrEmailDuplicate) {
		t.Fatalf("expected ErrEmailDuplicate, got %v", err)
	}
}
