package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/practice-api/internal/auth"
	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown accounts and wrong
	// passwords. Callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrProviderUnavailable signals that the credential store itself
	// failed, not that the credentials were wrong.
	ErrProviderUnavailable = errors.New("authentication provider unavailable")
)

// AuthService coordinates credential validation and session issuance.
type AuthService struct {
	users    repository.UsersRepository
	sessions *auth.SessionManager
	log      zerolog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UsersRepository, sessions *auth.SessionManager, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

// Login validates credentials and returns a signed session token plus the
// authenticated principal.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, *dto.PrincipalResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		s.log.Error().Err(err).Msg("credential lookup failed")
		return "", nil, ErrProviderUnavailable
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user.ID.String(), user.Email, user.Role)
	if err != nil {
		s.log.Error().Err(err).Msg("session issuance failed")
		return "", nil, ErrProviderUnavailable
	}

	return token, principal(user), nil
}

// Register provisions a self-service account. New accounts always start as
// STAFF; only an admin assigns another role afterwards.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (string, *dto.PrincipalResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, email, string(hashed), strings.TrimSpace(req.Name), entity.RoleStaff)
	if err != nil {
		return "", nil, err
	}

	token, err := s.sessions.Issue(user.ID.String(), user.Email, user.Role)
	if err != nil {
		s.log.Error().Err(err).Msg("session issuance failed")
		return "", nil, ErrProviderUnavailable
	}

	return token, principal(user), nil
}

// Principal resolves the account behind a session subject.
func (s *AuthService) Principal(ctx context.Context, subject string) (*dto.PrincipalResponse, error) {
	id, err := parseID("user id", subject)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return principal(user), nil
}

func principal(u *entity.User) *dto.PrincipalResponse {
	return &dto.PrincipalResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}
