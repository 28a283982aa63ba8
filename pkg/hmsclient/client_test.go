package hmsclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListPatients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/patients" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "20" {
			t.Errorf("expected limit=20, got %q", got)
		}
		json.NewEncoder(w).Encode(Page[Patient]{
			Data:  []Patient{{ID: "p1", FirstName: "Ada", LastName: "Obi"}},
			Total: 1, Limit: 20,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	page, err := c.ListPatients(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 1 || len(page.Data) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Data[0].FirstName != "Ada" {
		t.Errorf("unexpected patient: %+v", page.Data[0])
	}
}

func TestCreatePatient_UnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var p Patient
		json.NewDecoder(r.Body).Decode(&p)
		p.ID = "p-new"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Patient registered successfully",
			"data":    p,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	created, err := c.CreatePatient(context.Background(), Patient{FirstName: "Ada", LastName: "Obi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "p-new" {
		t.Errorf("expected server-assigned id, got %q", created.ID)
	}
}

func TestAPIError_CarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "first_name is required"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.CreatePatient(context.Background(), Patient{})
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.Status)
	}
	if ErrorMessage(err) != "first_name is required" {
		t.Errorf("expected server message, got %q", ErrorMessage(err))
	}
}

func TestErrorMessage_Fallback(t *testing.T) {
	if got := ErrorMessage(fmt.Errorf("dial tcp: connection refused")); got != FallbackErrorMessage {
		t.Errorf("expected fallback message, got %q", got)
	}
	if got := ErrorMessage(&APIError{Status: 500}); got != FallbackErrorMessage {
		t.Errorf("expected fallback for empty server message, got %q", got)
	}
}

func TestAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("expected bearer token, got %q", got)
		}
		json.NewEncoder(w).Encode(OverviewStats{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithToken("tok-123"))
	if _, err := c.Overview(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListLabTests_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("page_size") != "10" || q.Get("search") != "blood" {
			t.Errorf("unexpected query: %v", q)
		}
		json.NewEncoder(w).Encode(Page[LabTest]{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ListLabTests(context.Background(), ListLabTestsParams{Page: 2, PageSize: 10, Search: "blood"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
