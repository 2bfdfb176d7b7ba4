package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
)

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	repo := &mockUsersRepository{
		create: func(ctx context.Context, email, passwordHash, name string, role entity.Role) (*entity.User, error) {
			t.Fatal("repository must not be called for an unknown role")
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email:    "new@example.com",
		Password: "s3cret-pass",
		Name:     "New User",
		Role:     "SUPERUSER",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	for _, role := range entity.Roles() {
		if !strings.Contains(err.Error(), string(role)) {
			t.Errorf("error %q should list role %s", err.Error(), role)
		}
	}
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(&mockUsersRepository{})

	role := "ROOT"
	_, err := svc.UpdateUser(context.Background(), "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", dto.UpdateUserRequest{Role: &role})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), string(entity.RoleAttorney)) {
		t.Errorf("error %q should list the valid roles", err.Error())
	}
}
