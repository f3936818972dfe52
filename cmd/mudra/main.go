package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/input"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default ~/.mudra/config.yaml)")
	flag.Parse()

	fmt.Println("Mudra - Hand Cursor Control")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dataDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "mudra.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	cfg, err := loadConfig(*configPath, dataDir, st)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	screenW, screenH := input.ScreenSize()
	log.Printf("Screen size: %dx%d", screenW, screenH)

	a := app.New(app.Config{
		Settings: cfg,
		Store:    st,
		Injector: input.NewRobotInjector(),
		ScreenW:  screenW,
		ScreenH:  screenH,
	})

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start control pipeline: %v", err)
	}
	defer a.Stop()

	if err := a.PruneHistory(); err != nil {
		log.Printf("Failed to prune action history: %v", err)
	}

	// Find web directory
	webDir := findWebDir(dataDir)
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		Camera:    a.Camera(),
		Detector:  a.Detector(),
		Settings:  cfg,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.ListenAddr)
		if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	t := tray.New()
	t.OnToggle(a.SetEnabled)
	t.OnQuit(a.Stop)
	a.OnAction(func(act control.Action) {
		if act.Type != control.ActionMove {
			t.SetLastAction(act.String())
		}
	})

	a.SetEnabled(t.IsEnabled())

	// Blocks until quit
	t.Run()
}

// loadConfig reads the YAML config, layers persisted overrides from the
// settings store on top, and validates the result.
func loadConfig(path, dataDir string, st *store.Store) (config.Config, error) {
	if path == "" {
		path = filepath.Join(dataDir, "config.yaml")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	overrides, err := st.Settings().All()
	if err != nil {
		return cfg, err
	}
	for key, value := range overrides {
		if err := cfg.ApplySetting(key, value); err != nil {
			return cfg, fmt.Errorf("stored setting %q: %w", key, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir(dataDir string) string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeWebDir := filepath.Join(dataDir, "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
