package services

import (
	"context"
	"errors"
	"testing"

	"github.com/opengrants/hackhub-backend/internal/config"
	"github.com/opengrants/hackhub-backend/internal/models"
	"github.com/opengrants/hackhub-backend/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "organizer@org.dev",
		Name:     "Organizer",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.PasswordHash == "correct-horse-battery" {
		t.Error("password must not be stored in plain text")
	}
	if user.Role != "organizer" {
		t.Errorf("role = %q, want organizer", user.Role)
	}

	resp, err := svc.Login(ctx, &models.LoginRequest{
		Email:    "organizer@org.dev",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token on successful login")
	}

	claims, err := utils.ValidateJWT(resp.Token, testConfig())
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims["email"] != "organizer@org.dev" {
		t.Errorf("token email claim = %v, want organizer@org.dev", claims["email"])
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	req := &models.RegisterRequest{Email: "organizer@org.dev", Name: "Organizer", Password: "password-one"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := svc.Register(ctx, req)
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError on duplicate email, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "organizer@org.dev",
		Name:     "Organizer",
		Password: "the-real-password",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "organizer@org.dev", "not-the-password"},
		{"unknown account", "nobody@org.dev", "the-real-password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &models.LoginRequest{Email: tt.email, Password: tt.password})
			if !errors.Is(err, models.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLoginSurvivesLastLoginWriteFailure(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testConfig())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &models.RegisterRequest{
		Email:    "organizer@org.dev",
		Name:     "Organizer",
		Password: "the-real-password",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	repo.updateErr = errors.New("write unavailable")

	resp, err := svc.Login(ctx, &models.LoginRequest{Email: "organizer@org.dev", Password: "the-real-password"})
	if err != nil {
		t.Fatalf("Login should succeed despite last-login write failure: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
}
