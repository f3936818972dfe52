package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
)

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "data.db")

	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	settings := config.Default()

	srv := server.New(server.Config{Store: s, Settings: settings})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	t.Run("Health", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/health")
		if err != nil {
			t.Fatalf("health request error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
	})

	t.Run("UpdateConfig", func(t *testing.T) {
		req, err := http.NewRequest(
			http.MethodPut,
			ts.URL+"/api/config",
			strings.NewReader(`{"scroll_speed": "20"}`),
		)
		if err != nil {
			t.Fatalf("build request error = %v", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("update config error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
	})

	t.Run("ReadConfigBack", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/config")
		if err != nil {
			t.Fatalf("get config error = %v", err)
		}
		defer resp.Body.Close()

		var cfg config.Config
		if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
			t.Fatalf("decode config error = %v", err)
		}
		if cfg.ScrollSpeed != 20 {
			t.Errorf("ScrollSpeed = %d, want 20", cfg.ScrollSpeed)
		}
	})

	// Drive the control pipeline through the same store the server reads.
	rec := control.NewRecorder()
	application := app.New(app.Config{
		Settings: settings,
		Store:    s,
		Injector: rec,
		ScreenW:  1920,
		ScreenH:  1080,
	})

	mockDetector := detector.NewMockDetector()
	application.SetDetector(mockDetector)

	now := time.Now()

	t.Run("PointMovesCursor", func(t *testing.T) {
		_, actions := application.ProcessFrame(now, []detector.HandLandmarks{detector.PointingHandLandmarks()})
		if len(actions) != 1 || actions[0].Type != control.ActionMove {
			t.Fatalf("actions = %v, want a single move", actions)
		}
	})

	t.Run("PinchClicks", func(t *testing.T) {
		now = now.Add(100 * time.Millisecond)
		_, actions := application.ProcessFrame(now, []detector.HandLandmarks{detector.PinchHandLandmarks()})
		if len(actions) != 1 || actions[0].Type != control.ActionClick {
			t.Fatalf("actions = %v, want a single click", actions)
		}
		if len(rec.ByType(control.ActionClick)) != 1 {
			t.Error("click did not reach the injector")
		}
	})

	t.Run("ScrollTicks", func(t *testing.T) {
		scroll := []detector.HandLandmarks{detector.ScrollHandLandmarks()}
		for i := 0; i < 4; i++ {
			now = now.Add(settings.ScrollIntervalDuration())
			application.ProcessFrame(now, scroll)
		}
		if got := len(rec.ByType(control.ActionScrollTick)); got == 0 {
			t.Error("expected at least one scroll tick")
		}
	})

	t.Run("EventsVisibleOverHTTP", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/events")
		if err != nil {
			t.Fatalf("get events error = %v", err)
		}
		defer resp.Body.Close()

		var payload struct {
			Events []struct {
				Type string `json:"type"`
			} `json:"events"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			t.Fatalf("decode events error = %v", err)
		}

		var clicks, scrolls int
		for _, e := range payload.Events {
			switch e.Type {
			case "click":
				clicks++
			case "scroll":
				scrolls++
			}
		}
		if clicks != 1 {
			t.Errorf("clicks over HTTP = %d, want 1", clicks)
		}
		if scrolls == 0 {
			t.Error("expected scroll events over HTTP")
		}
	})
}
