package service

import (
	"errors"
	"testing"

	"go-bizadmin/internal/repository"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	result, err := svc.Register(&RegisterInput{
		Email:    "owner@example.com",
		Password: "correct-horse",
		FullName: "Owner",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Token == "" {
		t.Error("no token issued on register")
	}
	if result.User.Email != "owner@example.com" {
		t.Errorf("user email = %q", result.User.Email)
	}

	login, err := svc.Login(&LoginInput{Email: "owner@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.Token == "" {
		t.Error("no token issued on login")
	}

	user, err := svc.ValidateToken(login.Token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if user.Email != "owner@example.com" {
		t.Errorf("token resolved to %q", user.Email)
	}
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	in := &RegisterInput{Email: "dup@example.com", Password: "password-1", FullName: "First"}
	if _, err := svc.Register(in); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(&RegisterInput{Email: "dup@example.com", Password: "password-2", FullName: "Second"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestAuthService_InvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	if _, err := svc.Register(&RegisterInput{
		Email:    "owner@example.com",
		Password: "correct-horse",
		FullName: "Owner",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name string
		in   LoginInput
	}{
		{"wrong password", LoginInput{Email: "owner@example.com", Password: "battery-staple"}},
		{"unknown email", LoginInput{Email: "ghost@example.com", Password: "correct-horse"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(&tt.in)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}
