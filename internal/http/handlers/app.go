package handlers

import (
	"encoding/json"
	"net/http"

	"pixedit/internal/editor"
	"pixedit/internal/infra"
)

// App bundles the dependencies shared by all handlers.
type App struct {
	Config   *infra.Config
	Logger   infra.Logger
	Sessions *editor.SessionStore
}

func NewApp(cfg *infra.Config, logger infra.Logger, sessions *editor.SessionStore) *App {
	return &App{Config: cfg, Logger: logger, Sessions: sessions}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]string{"error": kind, "message": message})
}
