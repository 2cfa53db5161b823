package handlers

import (
	"net/http"

	"pixedit/internal/http/webui"
)

// Index serves the embedded single-page UI.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(webui.Index)
}
