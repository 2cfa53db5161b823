package editor

import (
	"context"
	"io"
	"strings"
	"sync"
)

// EditRequest is the normalized request handed to the external edit service.
type EditRequest struct {
	Payload     string
	MediaType   string
	Instruction string
	Locale      string
	RequestID   string
}

// Editor is the opaque boundary to the remote image-editing service. A
// successful edit returns the edited image as a bare base64 payload.
type Editor interface {
	EditImage(ctx context.Context, req EditRequest) (string, error)
}

// Workflow drives the upload → validate → request → display sequence for one
// session. Methods are safe for concurrent use; the service call happens
// outside the lock so a slow edit never blocks state reads.
type Workflow struct {
	mu     sync.Mutex
	state  State
	editor Editor
}

// NewWorkflow starts in the idle state with the default instruction filled in.
func NewWorkflow(editor Editor, defaultPrompt string) *Workflow {
	return &Workflow{editor: editor, state: State{Prompt: defaultPrompt}}
}

// Snapshot returns a copy of the current state.
func (w *Workflow) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Upload replaces the selected image and discards any previous result or
// error. A rejected or failed upload leaves the state untouched.
func (w *Workflow) Upload(r io.Reader, mediaType, filename string) (State, error) {
	img, err := EncodeUpload(r, mediaType, filename)
	if err != nil {
		return w.Snapshot(), err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = w.state.apply(uploadEvent{image: img})
	return w.state, nil
}

// SetPrompt stores the editing instruction as typed.
func (w *Workflow) SetPrompt(prompt string) State {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = w.state.apply(promptEvent{prompt: prompt})
	return w.state
}

// Generate checks the preconditions, calls the edit service exactly once and
// maps the outcome back into the state. The returned error carries the same
// message that ends up in State.Err. The result is composed as a data URI
// using the uploaded image's media type. A resolution arriving after a newer
// upload is discarded by generation matching.
func (w *Workflow) Generate(ctx context.Context, locale, requestID string) (State, error) {
	w.mu.Lock()
	if w.state.Loading {
		state := w.state
		w.mu.Unlock()
		return state, ErrBusy
	}
	if w.state.Image == nil {
		w.state = w.state.apply(rejectEvent{message: MsgMissingImage})
		state := w.state
		w.mu.Unlock()
		return state, ErrMissingImage
	}
	prompt := strings.TrimSpace(w.state.Prompt)
	if prompt == "" {
		w.state = w.state.apply(rejectEvent{message: MsgMissingPrompt})
		state := w.state
		w.mu.Unlock()
		return state, ErrMissingPrompt
	}
	w.state = w.state.apply(generateStartEvent{})
	generation := w.state.Generation
	img := w.state.Image
	w.mu.Unlock()

	payload, err := w.editor.EditImage(ctx, EditRequest{
		Payload:     img.Payload,
		MediaType:   img.MediaType,
		Instruction: prompt,
		Locale:      locale,
		RequestID:   requestID,
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.state = w.state.apply(generateFailureEvent{generation: generation, message: err.Error()})
		return w.state, err
	}
	w.state = w.state.apply(generateSuccessEvent{
		generation: generation,
		result:     "data:" + img.MediaType + ";base64," + payload,
	})
	return w.state, nil
}
