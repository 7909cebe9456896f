package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yourorg/starchart/internal/handler"
	"github.com/yourorg/starchart/internal/infrastructure/logger"
	"github.com/yourorg/starchart/internal/repository"
	"github.com/yourorg/starchart/internal/seed"
	"github.com/yourorg/starchart/internal/service"
)

// TestServerHelper runs the full API over a fresh in-memory store seeded with
// the real dataset, so endpoint tests see exactly what a running server does.
type TestServerHelper struct {
	Server *httptest.Server
	Store  *repository.MemoryStore
}

func NewTestServer(t *testing.T) *TestServerHelper {
	t.Helper()

	records, err := seed.Constellations()
	if err != nil {
		t.Fatalf("failed to load seed data: %v", err)
	}

	log := logger.NewLogger("error", "test")
	store := repository.NewMemoryStore(records, log)
	catalog := service.NewCatalogService(store, log, false)

	router := handler.NewRouter(handler.RouterDeps{
		Catalog:        catalog,
		Logger:         log,
		AllowedOrigins: []string{"*"},
	})

	return &TestServerHelper{
		Server: httptest.NewServer(router),
		Store:  store,
	}
}

func (h *TestServerHelper) Close() {
	h.Server.Close()
}

func (h *TestServerHelper) URL() string {
	return h.Server.URL
}

// PostJSON sends a JSON body and returns the response.
func (h *TestServerHelper) PostJSON(t *testing.T, path string, payload any) *http.Response {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	resp, err := http.Post(h.URL()+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return resp
}

// GetJSON fetches path and decodes the body into out.
func (h *TestServerHelper) GetJSON(t *testing.T, path string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(h.URL() + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("GET %s: failed to decode body: %v", path, err)
	}
	return resp
}

// AssertStatusCode fails the test when the response status differs.
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
}
