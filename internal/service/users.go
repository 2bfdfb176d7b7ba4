package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
	"github.com/carelink/practice-api/internal/repository"
)

// UserService encapsulates administrative operations on accounts.
type UserService struct {
	repo repository.UsersRepository
}

// NewUserService builds a new UserService instance.
func NewUserService(repo repository.UsersRepository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers returns all accounts as DTOs.
func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, userResponse(&u))
	}
	return responses, nil
}

// GetUser returns one account by id.
func (s *UserService) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	userID, err := parseID("user id", id)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := userResponse(user)
	return &resp, nil
}

// CreateUser creates an account with the supplied role.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	role, ok := entity.ParseRole(req.Role)
	if !ok {
		return nil, invalidInput("role must be one of %s", roleNames())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.repo.Create(ctx, email, string(hashed), strings.TrimSpace(req.Name), role)
	if err != nil {
		return nil, err
	}

	resp := userResponse(user)
	return &resp, nil
}

// UpdateUser mutates selected account fields.
func (s *UserService) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	userID, err := parseID("user id", id)
	if err != nil {
		return nil, err
	}

	var emailPtr *string
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			return nil, invalidInput("email cannot be empty")
		}
		emailPtr = &email
	}

	var rolePtr *string
	if req.Role != nil {
		role, ok := entity.ParseRole(*req.Role)
		if !ok {
			return nil, invalidInput("role must be one of %s", roleNames())
		}
		value := string(role)
		rolePtr = &value
	}

	var namePtr *string
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalidInput("name cannot be empty")
		}
		namePtr = &name
	}

	var passwordPtr *string
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		pwd := string(hashed)
		passwordPtr = &pwd
	}

	user, err := s.repo.Update(ctx, userID, emailPtr, passwordPtr, namePtr, rolePtr)
	if err != nil {
		return nil, err
	}

	resp := userResponse(user)
	return &resp, nil
}

// DeleteUser removes an account by id.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	userID, err := parseID("user id", id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, userID)
}

func roleNames() string {
	roles := entity.Roles()
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}

func userResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}
