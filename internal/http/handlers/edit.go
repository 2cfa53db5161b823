package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pixedit/internal/editor"
	"pixedit/internal/middleware"
)

const sessionCookie = "pixedit_session"

type generateRequest struct {
	Prompt *string `json:"prompt"`
}

type stateResponse struct {
	HasImage  bool   `json:"has_image"`
	Filename  string `json:"filename,omitempty"`
	MediaType string `json:"media_type,omitempty"`
	Prompt    string `json:"prompt"`
	Result    string `json:"result,omitempty"`
	Loading   bool   `json:"loading"`
	Error     string `json:"error,omitempty"`
}

func toStateResponse(s editor.State) stateResponse {
	out := stateResponse{
		Prompt:  s.Prompt,
		Result:  s.Result,
		Loading: s.Loading,
		Error:   s.Err,
	}
	if s.Image != nil {
		out.HasImage = true
		out.Filename = s.Image.Filename
		out.MediaType = s.Image.MediaType
	}
	return out
}

// session resolves the caller's workflow, minting a new session when the
// cookie (or X-Session-ID header, for non-browser clients) is absent or
// expired.
func (a *App) session(w http.ResponseWriter, r *http.Request) *editor.Workflow {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	if hdr := r.Header.Get("X-Session-ID"); hdr != "" {
		id = hdr
	}
	current, workflow := a.Sessions.Acquire(id)
	if current != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    current,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	w.Header().Set("X-Session-ID", current)
	return workflow
}

// ImageUpload accepts a multipart "image" part, validates and encodes it, and
// replaces the session's selected image.
func (a *App) ImageUpload(w http.ResponseWriter, r *http.Request) {
	workflow := a.session(w, r)
	r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "image file is required")
		return
	}
	defer file.Close()

	state, err := workflow.Upload(file, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		a.error(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}
	a.json(w, http.StatusOK, toStateResponse(state))
}

// ImageGenerate drives the Generate action. A prompt in the body updates the
// stored instruction before validation runs.
func (a *App) ImageGenerate(w http.ResponseWriter, r *http.Request) {
	workflow := a.session(w, r)
	if r.ContentLength != 0 {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
			return
		}
		if req.Prompt != nil {
			workflow.SetPrompt(*req.Prompt)
		}
	}

	locale := middleware.LocaleFromContext(r.Context())
	requestID := middleware.RequestIDFromContext(r.Context())
	state, err := workflow.Generate(r.Context(), locale, requestID)
	if err != nil {
		switch {
		case errors.Is(err, editor.ErrMissingImage), errors.Is(err, editor.ErrMissingPrompt):
			a.error(w, http.StatusBadRequest, "invalid_input", err.Error())
		case errors.Is(err, editor.ErrBusy):
			a.error(w, http.StatusConflict, "busy", err.Error())
		default:
			a.Logger.Warn().
				Str("request_id", requestID).
				Err(err).
				Msg("edit request failed")
			a.error(w, http.StatusBadGateway, "edit_failed", err.Error())
		}
		return
	}
	a.json(w, http.StatusOK, toStateResponse(state))
}

// SessionState returns the current workflow snapshot so a reloaded page can
// re-render without losing its place.
func (a *App) SessionState(w http.ResponseWriter, r *http.Request) {
	workflow := a.session(w, r)
	a.json(w, http.StatusOK, toStateResponse(workflow.Snapshot()))
}
