package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/everafterhq/everafter/internal/auth"
	"github.com/everafterhq/everafter/internal/middleware"
	"github.com/everafterhq/everafter/internal/models"
	"github.com/everafterhq/everafter/internal/storage/sqlite"
)

// fakeBlobStore is an in-memory blob.Store for upload and delete tests.
type fakeBlobStore struct {
	mu         sync.Mutex
	objects    map[string][]byte
	failRemove bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string][]byte)}
}

func (f *fakeBlobStore) Put(_ context.Context, key, _ string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return "/media/" + key, nil
}

func (f *fakeBlobStore) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRemove {
		return errors.New("remove failed")
	}
	if _, ok := f.objects[key]; !ok {
		return fmt.Errorf("no object with key %s", key)
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeBlobStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

type testEnv struct {
	server *httptest.Server
	blobs  *fakeBlobStore
}

// setupTestServer wires the full API stack against a temp SQLite database:
// public auth routes plus the authenticated mux behind the JWT middleware,
// exactly as the server binary mounts them.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)
	authSvc := NewAuthService(authenticator, jwtManager, store)
	blobs := newFakeBlobStore()

	api := http.NewServeMux()
	authSvc.Register(api)
	NewWeddingService(store).Register(api)
	NewBudgetService(store).Register(api)
	NewGuestService(store).Register(api)
	NewTaskService(store).Register(api)
	NewAppointmentService(store).Register(api)
	NewInspirationService(store, blobs).Register(api)
	NewVendorService(store).Register(api)

	root := http.NewServeMux()
	authSvc.RegisterPublic(root)
	root.Handle("/api/", middleware.RequireAuth(jwtManager)(api))

	server := httptest.NewServer(root)
	t.Cleanup(server.Close)

	return &testEnv{server: server, blobs: blobs}
}

// do sends a JSON request and returns the response. An empty token leaves
// the Authorization header off.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return v
}

func wantStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		t.Fatalf("status: expected %d, got %d (body: %s)", want, resp.StatusCode, body)
	}
}

// registerUser creates an account and returns its token.
func (e *testEnv) registerUser(t *testing.T, email string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/auth/register", "", registerRequest{
		Email:       email,
		DisplayName: "Test User",
		Password:    "password123",
	})
	wantStatus(t, resp, http.StatusCreated)
	return decodeBody[authResponse](t, resp).Token
}

// onboard creates a wedding for the token's user and returns it.
func (e *testEnv) onboard(t *testing.T, token string) models.Wedding {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/wedding", token, map[string]any{
		"wedding_date": "2026-06-20",
		"location":     "Lisbon",
		"total_budget": "25000",
	})
	wantStatus(t, resp, http.StatusCreated)
	return decodeBody[models.Wedding](t, resp)
}
