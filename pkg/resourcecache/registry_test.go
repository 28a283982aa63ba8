package resourcecache

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lifeville/hms/pkg/hmsclient"
	"github.com/lifeville/hms/pkg/pagination"
)

// End-to-end: a bed form with string select values goes through Normalize,
// the client, and the cache refresh, landing as numeric IDs on the server and
// in the refreshed snapshot.
func TestCreateBedFlow(t *testing.T) {
	var beds []hmsclient.Bed
	var listCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/beds", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listCalls.Add(1)
			json.NewEncoder(w).Encode(hmsclient.Page[hmsclient.Bed]{Data: beds, Total: len(beds)})
		case http.MethodPost:
			var b hmsclient.Bed
			json.NewDecoder(r.Body).Decode(&b)
			if b.BedTypeID != 3 || b.BedGroupID != 7 {
				t.Errorf("expected numeric ids 3/7 on the wire, got %d/%d", b.BedTypeID, b.BedGroupID)
			}
			b.ID = "bed-1"
			beds = append(beds, b)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "Bed added successfully",
				"data":    b,
			})
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := hmsclient.NewClient(srv.URL)
	reg := NewRegistry(client, zerolog.Nop())

	form := hmsclient.BedForm{Number: "A-101", BedTypeID: "3", BedGroupID: "7"}
	var s Submitter
	err := s.Submit(context.Background(), &form,
		func(ctx context.Context) error {
			payload, err := form.Normalize()
			if err != nil {
				return err
			}
			_, err = client.CreateBed(ctx, payload)
			return err
		},
		reg.Beds.Refresh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := listCalls.Load(); got != 1 {
		t.Errorf("expected exactly one refresh fetch, got %d", got)
	}
	snapshot := reg.Beds.Data()
	if len(snapshot) != 1 {
		t.Fatalf("expected 1 bed in snapshot, got %d", len(snapshot))
	}
	if snapshot[0].ID != "bed-1" || snapshot[0].BedTypeID != 3 {
		t.Errorf("unexpected snapshot entry: %+v", snapshot[0])
	}
}

// A collection larger than the server's list window cap must land whole in
// the cache: the fetch follows has_more across pages.
func TestRefresh_AccumulatesPages(t *testing.T) {
	all := make([]hmsclient.Bed, 150)
	for i := range all {
		all[i] = hmsclient.Bed{ID: fmt.Sprintf("bed-%d", i), Number: fmt.Sprintf("A-%03d", i)}
	}

	e := echo.New()
	e.GET("/beds", func(c echo.Context) error {
		pg := pagination.FromContext(c)
		end := pg.Offset + pg.Limit
		if end > len(all) {
			end = len(all)
		}
		window := []hmsclient.Bed{}
		if pg.Offset < len(all) {
			window = all[pg.Offset:end]
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(window, len(all), pg.Limit, pg.Offset))
	})
	srv := httptest.NewServer(e)
	defer srv.Close()

	reg := NewRegistry(hmsclient.NewClient(srv.URL), zerolog.Nop())
	reg.Beds.Refresh(context.Background())

	snapshot := reg.Beds.Data()
	if len(snapshot) != len(all) {
		t.Fatalf("expected %d beds in snapshot, got %d", len(all), len(snapshot))
	}
	if snapshot[0].ID != "bed-0" || snapshot[149].ID != "bed-149" {
		t.Errorf("unexpected snapshot bounds: %s .. %s", snapshot[0].ID, snapshot[149].ID)
	}
}

func TestWarmUp_LoadsAllCaches(t *testing.T) {
	mux := http.NewServeMux()
	emptyPage := func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}, "total": 0})
	}
	emptyList := func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]interface{}{})
	}
	mux.HandleFunc("/patients", emptyPage)
	mux.HandleFunc("/doctors", emptyPage)
	mux.HandleFunc("/appointments", emptyPage)
	mux.HandleFunc("/beds", emptyPage)
	mux.HandleFunc("/admissions", emptyPage)
	mux.HandleFunc("/births", emptyPage)
	mux.HandleFunc("/deaths", emptyPage)
	mux.HandleFunc("/bed-types", emptyList)
	mux.HandleFunc("/bed-groups", emptyList)
	mux.HandleFunc("/symptom-types", emptyList)
	mux.HandleFunc("/overview", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(hmsclient.OverviewStats{Patients: 9})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	reg := NewRegistry(hmsclient.NewClient(srv.URL), zerolog.Nop())
	reg.WarmUp(context.Background())

	if !reg.Patients.Loaded() || !reg.Beds.Loaded() || !reg.Overview.Loaded() {
		t.Error("expected all caches loaded after warm-up")
	}
	if reg.Overview.Data().Patients != 9 {
		t.Errorf("unexpected overview snapshot: %+v", reg.Overview.Data())
	}
}

// A warm-up against a dead server must not error out or panic; caches simply
// stay unloaded.
func TestWarmUp_SurvivesDeadServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	reg := NewRegistry(hmsclient.NewClient(srv.URL), zerolog.Nop())
	reg.WarmUp(context.Background())

	if reg.Patients.Loaded() {
		t.Error("expected patients cache to stay unloaded")
	}
	if reg.Patients.Data() != nil {
		t.Errorf("expected nil snapshot, got %v", reg.Patients.Data())
	}
}
