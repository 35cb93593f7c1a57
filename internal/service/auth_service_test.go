package service

import (
	"net/http"
	"testing"

	"github.com/everafterhq/everafter/internal/models"
)

func TestRegister(t *testing.T) {
	env := setupTestServer(t)

	resp := env.do(t, http.MethodPost, "/api/auth/register", "", registerRequest{
		Email:       "ana@example.com",
		DisplayName: "Ana",
		Password:    "password123",
	})
	wantStatus(t, resp, http.StatusCreated)

	body := decodeBody[authResponse](t, resp)
	if body.Token == "" {
		t.Error("expected non-empty token")
	}
	if body.User.ID == "" {
		t.Error("expected non-empty user ID")
	}
	if body.User.Email != "ana@example.com" {
		t.Errorf("email: expected ana@example.com, got %s", body.User.Email)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := setupTestServer(t)
	env.registerUser(t, "ana@example.com")

	resp := env.do(t, http.MethodPost, "/api/auth/register", "", registerRequest{
		Email:       "ana@example.com",
		DisplayName: "Ana Again",
		Password:    "password123",
	})
	wantStatus(t, resp, http.StatusConflict)
}

func TestRegisterWeakPassword(t *testing.T) {
	env := setupTestServer(t)

	resp := env.do(t, http.MethodPost, "/api/auth/register", "", registerRequest{
		Email:       "ana@example.com",
		DisplayName: "Ana",
		Password:    "short",
	})
	wantStatus(t, resp, http.StatusBadRequest)
}

func TestLogin(t *testing.T) {
	env := setupTestServer(t)
	env.registerUser(t, "ana@example.com")

	resp := env.do(t, http.MethodPost, "/api/auth/login", "", loginRequest{
		Email:    "ana@example.com",
		Password: "password123",
	})
	wantStatus(t, resp, http.StatusOK)

	body := decodeBody[authResponse](t, resp)
	if body.Token == "" {
		t.Error("expected non-empty token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestServer(t)
	env.registerUser(t, "ana@example.com")

	resp := env.do(t, http.MethodPost, "/api/auth/login", "", loginRequest{
		Email:    "ana@example.com",
		Password: "not-the-password",
	})
	wantStatus(t, resp, http.StatusUnauthorized)
}

func TestMe(t *testing.T) {
	env := setupTestServer(t)
	token := env.registerUser(t, "ana@example.com")

	resp := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	wantStatus(t, resp, http.StatusOK)

	user := decodeBody[models.User](t, resp)
	if user.Email != "ana@example.com" {
		t.Errorf("email: expected ana@example.com, got %s", user.Email)
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	env := setupTestServer(t)

	resp := env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	wantStatus(t, resp, http.StatusUnauthorized)

	resp = env.do(t, http.MethodGet, "/api/dashboard", "garbage-token", nil)
	wantStatus(t, resp, http.StatusUnauthorized)
}
