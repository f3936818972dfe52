package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/store"
)

func seedEvents(t *testing.T, st *store.Store, n int) {
	t.Helper()

	base := time.Now().Add(-time.Duration(n) * time.Second)
	for i := 0; i < n; i++ {
		err := st.Events().Record(&store.ActionEvent{
			ID:        uuid.NewString(),
			Type:      "click",
			X:         100 + i,
			Y:         200,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Failed to seed event: %v", err)
		}
	}
}

func TestEventsList(t *testing.T) {
	st := newTestStore(t)
	seedEvents(t, st, 3)
	handler := NewEventsHandler(st)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var response listEventsResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(response.Events))
	}

	// Newest first
	if response.Events[0].X != 102 {
		t.Errorf("Expected newest event first, got X=%d", response.Events[0].X)
	}
}

func TestEventsLimit(t *testing.T) {
	st := newTestStore(t)
	seedEvents(t, st, 5)
	handler := NewEventsHandler(st)

	req := httptest.NewRequest(http.MethodGet, "/api/events?limit=2", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var response listEventsResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Events) != 2 {
		t.Errorf("Expected 2 events, got %d", len(response.Events))
	}
}

func TestEventsBadLimit(t *testing.T) {
	st := newTestStore(t)
	handler := NewEventsHandler(st)

	for _, limit := range []string{"0", "-1", "lots"} {
		req := httptest.NewRequest(http.MethodGet, "/api/events?limit="+limit, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: expected 400, got %d", limit, w.Code)
		}
	}
}

func TestEventsMethodNotAllowed(t *testing.T) {
	st := newTestStore(t)
	handler := NewEventsHandler(st)

	req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", w.Code)
	}
}
