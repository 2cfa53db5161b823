package editor

import (
	"encoding/base64"
	"errors"
	"io"
	"strings"
)

// User-visible messages for the workflow. State.Err and the API error body
// carry these strings exactly as written.
const (
	MsgInvalidImage  = "Please select a valid image file."
	MsgReadFailed    = "Failed to read the image file."
	MsgMissingImage  = "Please upload an image first."
	MsgMissingPrompt = "Please enter an editing prompt."
)

var (
	ErrInvalidImage  = errors.New(MsgInvalidImage)
	ErrReadFailed    = errors.New(MsgReadFailed)
	ErrMissingImage  = errors.New(MsgMissingImage)
	ErrMissingPrompt = errors.New(MsgMissingPrompt)

	// ErrBusy refuses a Generate issued while a request is already in
	// flight. The page disables the button, so only a misbehaving client
	// sees this.
	ErrBusy = errors.New("an edit request is already in progress")
)

// SelectedImage is the transport-ready form of an uploaded file. Payload is
// bare base64 with no data-URI scheme prefix. Instances are never mutated
// after creation; a new upload replaces the whole value.
type SelectedImage struct {
	Filename  string
	Payload   string
	MediaType string
}

// EncodeUpload validates the declared media type and converts the file bytes
// into a base64 payload. The read is one-shot; nothing is retained on failure.
func EncodeUpload(r io.Reader, mediaType, filename string) (*SelectedImage, error) {
	mediaType = strings.TrimSpace(mediaType)
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, ErrInvalidImage
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadFailed
	}
	return &SelectedImage{
		Filename:  filename,
		Payload:   base64.StdEncoding.EncodeToString(data),
		MediaType: mediaType,
	}, nil
}
