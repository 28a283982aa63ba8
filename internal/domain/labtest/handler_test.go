package labtest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(NewService(newMockRepo()))
	e := echo.New()
	return h, e
}

func TestHandler_CreateLabTest(t *testing.T) {
	h, e := newTestHandler()
	body := `{"patient_id":"` + uuid.NewString() + `","test_name":"Complete Blood Count"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message == "" {
		t.Error("expected confirmation message in response")
	}
}

func TestHandler_ListLabTests_PagedSearch(t *testing.T) {
	h, e := newTestHandler()
	h.svc.Create(context.Background(), &LabTest{PatientID: uuid.New(), TestName: "Complete Blood Count"})
	h.svc.Create(context.Background(), &LabTest{PatientID: uuid.New(), TestName: "Lipid Panel"})

	req := httptest.NewRequest(http.MethodGet, "/?page=1&page_size=10&search=blood", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("expected 1 match for search, got %d", resp.Total)
	}
}

func TestHandler_ListLabTests_BadStatus(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/?status=bogus", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err == nil {
		t.Error("expected error for invalid status filter")
	}
}

func TestHandler_CompleteLabTest(t *testing.T) {
	h, e := newTestHandler()
	lt := &LabTest{PatientID: uuid.New(), TestName: "CBC"}
	h.svc.Create(context.Background(), lt)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"result":"WBC 7.2"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(lt.ID.String())

	if err := h.Complete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
