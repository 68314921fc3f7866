package permissions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRepositoryList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/api/permissions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":1,"nombreEmpleado":"Ana","apellidoEmpleado":"Ruiz","tipoPermiso":2,"fechaPermiso":"2024-03-01T00:00:00Z"}]`))
	}))
	defer server.Close()

	repo := NewRepository(server.URL+"/api", time.Second)
	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].FirstName != "Ana" || records[0].TypeID != 2 {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestRepositoryCreate(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/api/permissions/request" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		_, _ = w.Write([]byte(`{"id":7,"nombreEmpleado":"Ana","apellidoEmpleado":"Ruiz","tipoPermiso":2,"fechaPermiso":"2024-03-01T00:00:00Z"}`))
	}))
	defer server.Close()

	repo := NewRepository(server.URL+"/api", time.Second)
	created, err := repo.Create(context.Background(), CreatePermission{
		FirstName: "Ana",
		LastName:  "Ruiz",
		TypeID:    2,
		Date:      "2024-03-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected backend-assigned id 7, got %d", created.ID)
	}
	if _, hasID := payload["id"]; hasID {
		t.Fatal("create payload must not carry an id")
	}
	if payload["fechaPermiso"] != "2024-03-01T00:00:00Z" {
		t.Fatalf("unexpected date in payload: %v", payload["fechaPermiso"])
	}
}

func TestRepositoryUpdate(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/api/permissions/modify/5" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		_, _ = w.Write([]byte(`{"id":5,"nombreEmpleado":"Ana","apellidoEmpleado":"Mora","tipoPermiso":3,"fechaPermiso":"2024-04-01T00:00:00Z"}`))
	}))
	defer server.Close()

	repo := NewRepository(server.URL+"/api", time.Second)
	updated, err := repo.Update(context.Background(), 5, UpdatePermission{
		ID:        5,
		FirstName: "Ana",
		LastName:  "Mora",
		TypeID:    3,
		Date:      "2024-04-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.LastName != "Mora" {
		t.Fatalf("unexpected record: %+v", updated)
	}
	if payload["id"] != float64(5) {
		t.Fatalf("expected id 5 in payload, got %v", payload["id"])
	}
}

func TestRepositoryTransportError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantStatus int
	}{
		{name: "server error", status: http.StatusInternalServerError, wantStatus: 500},
		{name: "not found", status: http.StatusNotFound, wantStatus: 404},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			repo := NewRepository(server.URL, time.Second)
			_, err := repo.List(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			var transportErr *TransportError
			if !errors.As(err, &transportErr) {
				t.Fatalf("expected TransportError, got %T", err)
			}
			if transportErr.Status != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, transportErr.Status)
			}
		})
	}
}

func TestRepositoryNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	repo := NewRepository(server.URL, time.Second)
	_, err := repo.List(context.Background())
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if transportErr.Err == nil {
		t.Fatal("expected wrapped network error")
	}
}

func TestCatalogListTypes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/permissionsTypes/types" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":1,"description":"Consultor"},{"id":2,"description":"Líder"}]`))
	}))
	defer server.Close()

	catalog := NewCatalog(server.URL+"/api", time.Second)
	types, err := catalog.ListTypes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(types) != 2 || types[1].Description != "Líder" {
		t.Fatalf("unexpected types: %+v", types)
	}
}
