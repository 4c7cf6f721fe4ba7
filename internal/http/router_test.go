package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fuelmeter/internal/http/middleware"
	"fuelmeter/internal/service"
)

func testRouter(t *testing.T) (http.Handler, *service.TokenService) {
	t.Helper()
	tokens := service.NewTokenService("router-test-secret", time.Hour)

	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	routes := Routes{
		Health:       ok,
		Signup:       ok,
		Login:        ok,
		VehiclesList: ok,
		VehiclesGet:  ok,
		TripsCreate:  ok,
	}
	return NewRouter(routes, middleware.Auth(tokens)), tokens
}

func TestRouterOpenEndpoints(t *testing.T) {
	router, _ := testRouter(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodPost, "/auth/signup", http.StatusOK},
		{http.MethodPost, "/auth/login", http.StatusOK},
		{http.MethodGet, "/auth/signup", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Fatalf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
		}
	}
}

func TestRouterProtectedEndpointsRequireToken(t *testing.T) {
	router, tokens := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status = %d, want 401", rec.Code)
	}

	token, err := tokens.GenerateToken(1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200", rec.Code)
	}
}

func TestRouterPathParameters(t *testing.T) {
	tokens := service.NewTokenService("router-test-secret", time.Hour)
	var gotID string
	routes := Routes{
		VehiclesGet: func(w http.ResponseWriter, r *http.Request) {
			gotID = r.PathValue("id")
			w.WriteHeader(http.StatusOK)
		},
	}
	router := NewRouter(routes, middleware.Auth(tokens))

	token, err := tokens.GenerateToken(1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/42", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotID != "42" {
		t.Fatalf("path id = %q, want 42", gotID)
	}
}
