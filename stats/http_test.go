package stats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonwraymond/memocall/memo"
)

func TestHandler(t *testing.T) {
	reg := NewRegistry()
	users := NewCollector("users")
	orders := NewCollector("orders")
	for _, c := range []*Collector{users, orders} {
		if err := reg.Register(c); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}
	observeN(users, memo.EventMiss, 1)
	observeN(users, memo.EventHit, 2)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	Handler(reg)(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var resp StatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Timestamp == "" {
		t.Error("Timestamp is empty")
	}
	if len(resp.Caches) != 2 {
		t.Fatalf("Caches has %d entries, want 2", len(resp.Caches))
	}
	if resp.Caches[0].Name != "orders" || resp.Caches[1].Name != "users" {
		t.Errorf("cache order = %q, %q, want orders, users",
			resp.Caches[0].Name, resp.Caches[1].Name)
	}
	if resp.Caches[1].Hits != 2 || resp.Caches[1].Misses != 1 {
		t.Errorf("users snapshot = %+v, want Hits 2 Misses 1", resp.Caches[1])
	}
}

func TestHandler_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	Handler(NewRegistry())(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestSingleCacheHandler(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector("users")
	if err := reg.Register(c); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	observeN(c, memo.EventMiss, 1)

	req := httptest.NewRequest(http.MethodGet, "/stats/users", nil)
	rec := httptest.NewRecorder()
	SingleCacheHandler(reg, "users")(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var snap Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if snap.Name != "users" || snap.Misses != 1 {
		t.Errorf("snapshot = %+v, want Name users Misses 1", snap)
	}
}

func TestSingleCacheHandler_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/stats/ghost", nil)
	rec := httptest.NewRecorder()
	SingleCacheHandler(NewRegistry(), "ghost")(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRegisterHandlers(t *testing.T) {
	mux := http.NewServeMux()
	RegisterHandlers(mux, NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
