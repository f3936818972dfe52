// Package api provides HTTP API handlers for the Mudra cursor control system.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/store"
)

// ConfigHandler handles HTTP requests for the effective configuration.
// Updates are persisted as per-key overrides in the settings table and take
// effect on the next application start.
type ConfigHandler struct {
	store    *store.Store
	defaults config.Config
}

// NewConfigHandler creates a new ConfigHandler. The defaults argument is the
// configuration loaded at startup, before store overrides.
func NewConfigHandler(s *store.Store, defaults config.Config) *ConfigHandler {
	return &ConfigHandler{store: s, defaults: defaults}
}

// ServeHTTP implements the http.Handler interface.
func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response with the given status code.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// effective returns the startup configuration with store overrides applied.
func (h *ConfigHandler) effective() (config.Config, error) {
	cfg := h.defaults

	overrides, err := h.store.Settings().All()
	if err != nil {
		return cfg, err
	}

	for key, value := range overrides {
		if err := cfg.ApplySetting(key, value); err != nil {
			return cfg, fmt.Errorf("setting %q: %w", key, err)
		}
	}

	return cfg, nil
}

// get handles GET /api/config.
func (h *ConfigHandler) get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.effective()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load configuration")
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

// update handles PUT /api/config. The body is a JSON object mapping setting
// keys to string values. The merged result is validated before anything is
// persisted, so a bad update cannot leave a broken configuration behind.
func (h *ConfigHandler) update(w http.ResponseWriter, r *http.Request) {
	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if len(updates) == 0 {
		writeError(w, http.StatusBadRequest, "No settings provided")
		return
	}

	cfg, err := h.effective()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load configuration")
		return
	}

	for key, value := range updates {
		if err := cfg.ApplySetting(key, value); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := cfg.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	for key, value := range updates {
		if err := h.store.Settings().Set(key, value); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to persist setting")
			return
		}
	}

	writeJSON(w, http.StatusOK, cfg)
}
