package service

import (
	"errors"
	"testing"
	"time"

	"github.com/classroomquiz/backend/config"
	"github.com/classroomquiz/backend/internal/auth"
	"github.com/classroomquiz/backend/internal/dto"
	"github.com/classroomquiz/backend/internal/model"
	"github.com/classroomquiz/backend/internal/repository"
)

func newAuthService(t *testing.T) (AuthService, *config.Config) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = time.Hour
	return NewAuthService(repository.NewMemoryUserRepository(), cfg), cfg
}

func TestRegister_IssuesTokenWithClaims(t *testing.T) {
	svc, cfg := newAuthService(t)

	token, err := svc.Register(dto.RegisterRequest{
		Name:     "Prof. Silva",
		Email:    "silva@example.com",
		Password: "s3cret-pass",
		Role:     "teacher",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	claims, err := auth.ParseJWT(token, cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Email != "silva@example.com" || claims.Name != "Prof. Silva" {
		t.Errorf("unexpected identity claims: %+v", claims)
	}
	if claims.Role != model.RoleTeacher {
		t.Errorf("expected teacher role, got %q", claims.Role)
	}
	if claims.UserID == 0 {
		t.Error("expected a persisted user id in the claims")
	}
}

func TestRegister_UnknownRoleBecomesStudent(t *testing.T) {
	svc, cfg := newAuthService(t)

	token, err := svc.Register(dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cret-pass",
		Role:     "wizard",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	claims, err := auth.ParseJWT(token, cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != model.RoleStudent {
		t.Errorf("expected unknown role to coerce to student, got %q", claims.Role)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	req := dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cret-pass"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(req)
	if !errors.Is(err, ErrEmailRegistered) {
		t.Errorf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, cfg := newAuthService(t)
	if _, err := svc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		token, err := svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"})
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if _, err := auth.ParseJWT(token, cfg.JWT.Secret); err != nil {
			t.Errorf("issued token does not parse: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "not-it"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestParseJWT_RejectsWrongSecret(t *testing.T) {
	svc, _ := newAuthService(t)
	token, err := svc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := auth.ParseJWT(token, "other-secret"); err == nil {
		t.Error("expected parsing with a different secret to fail")
	}
}
