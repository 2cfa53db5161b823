package editor

// State is the observable workflow state: the selected image, the prompt
// text, the displayable result, and the loading/error pair. Transitions go
// through apply so every step is testable without an HTTP surface.
//
// Invariants: Loading and Err are mutually exclusive and entering either
// clears Result; Result is set only after the most recent request succeeded.
type State struct {
	Image      *SelectedImage
	Prompt     string
	Result     string
	Loading    bool
	Err        string
	Generation uint64
}

// Idle reports whether no request is in flight and no error is showing.
func (s State) Idle() bool {
	return !s.Loading && s.Err == ""
}

type event interface{ isEvent() }

// uploadEvent replaces the selected image. A fresh upload invalidates any
// prior result and any request still in flight (its generation goes stale).
type uploadEvent struct{ image *SelectedImage }

// promptEvent stores the instruction text as typed, untrimmed.
type promptEvent struct{ prompt string }

// rejectEvent records a precondition failure without entering Loading.
type rejectEvent struct{ message string }

// generateStartEvent enters Loading and stamps a new request generation.
type generateStartEvent struct{}

// generateSuccessEvent and generateFailureEvent resolve the request whose
// generation they carry. Resolutions for a stale generation are discarded
// wholesale so a slow request can never clobber a newer upload's state.
type generateSuccessEvent struct {
	generation uint64
	result     string
}

type generateFailureEvent struct {
	generation uint64
	message    string
}

func (uploadEvent) isEvent()          {}
func (promptEvent) isEvent()          {}
func (rejectEvent) isEvent()          {}
func (generateStartEvent) isEvent()   {}
func (generateSuccessEvent) isEvent() {}
func (generateFailureEvent) isEvent() {}

func (s State) apply(e event) State {
	switch ev := e.(type) {
	case uploadEvent:
		s.Image = ev.image
		s.Result = ""
		s.Err = ""
		s.Loading = false
		s.Generation++
	case promptEvent:
		s.Prompt = ev.prompt
	case rejectEvent:
		s.Err = ev.message
		s.Result = ""
		s.Loading = false
	case generateStartEvent:
		s.Loading = true
		s.Err = ""
		s.Result = ""
		s.Generation++
	case generateSuccessEvent:
		if ev.generation != s.Generation {
			return s
		}
		s.Loading = false
		s.Err = ""
		s.Result = ev.result
	case generateFailureEvent:
		if ev.generation != s.Generation {
			return s
		}
		s.Loading = false
		s.Err = ev.message
		s.Result = ""
	}
	return s
}
