package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxWithQuery(t *testing.T, query string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(ctxWithQuery(t, ""))
	if p.Limit != DefaultLimit || p.Offset != 0 {
		t.Errorf("expected defaults, got %+v", p)
	}
}

func TestFromContext_LimitOffset(t *testing.T) {
	p := FromContext(ctxWithQuery(t, "limit=50&offset=100"))
	if p.Limit != 50 || p.Offset != 100 {
		t.Errorf("expected 50/100, got %+v", p)
	}
}

func TestFromContext_PageStyle(t *testing.T) {
	p := FromContext(ctxWithQuery(t, "page=3&page_size=10"))
	if p.Limit != 10 {
		t.Errorf("expected limit 10, got %d", p.Limit)
	}
	if p.Offset != 20 {
		t.Errorf("expected offset 20 for page 3, got %d", p.Offset)
	}
}

func TestFromContext_CapsLimit(t *testing.T) {
	p := FromContext(ctxWithQuery(t, "limit=5000"))
	if p.Limit != MaxLimit {
		t.Errorf("expected limit capped at %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_Search(t *testing.T) {
	p := FromContext(ctxWithQuery(t, "search=blood"))
	if p.Search != "blood" {
		t.Errorf("expected search term, got %q", p.Search)
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	r := NewResponse([]int{1, 2, 3}, 10, 3, 0)
	if !r.HasMore {
		t.Error("expected has_more for partial window")
	}
	r = NewResponse([]int{1}, 10, 3, 9)
	if r.HasMore {
		t.Error("expected no more past the last window")
	}
}
