package editor

import "testing"

func testImage(name string) *SelectedImage {
	return &SelectedImage{Filename: name, Payload: "cGF5bG9hZA==", MediaType: "image/png"}
}

func TestApplyUploadClearsResultAndError(t *testing.T) {
	s := State{Prompt: "p", Result: "data:image/png;base64,old", Err: "boom"}
	s = s.apply(uploadEvent{image: testImage("a.png")})
	if s.Result != "" || s.Err != "" {
		t.Fatalf("upload must clear result and error: %+v", s)
	}
	if s.Image == nil || s.Image.Filename != "a.png" {
		t.Fatalf("image not replaced: %+v", s.Image)
	}
	if s.Loading {
		t.Fatal("upload must land in idle")
	}
}

func TestApplyGenerateStartClearsPriorOutcome(t *testing.T) {
	s := State{Result: "stale", Err: "stale error"}
	gen := s.Generation
	s = s.apply(generateStartEvent{})
	if !s.Loading {
		t.Fatal("expected loading")
	}
	if s.Result != "" || s.Err != "" {
		t.Fatalf("start must clear result and error: %+v", s)
	}
	if s.Generation != gen+1 {
		t.Fatalf("generation not bumped: %d", s.Generation)
	}
}

func TestApplyRejectDoesNotEnterLoading(t *testing.T) {
	s := State{Result: "old"}
	s = s.apply(rejectEvent{message: MsgMissingImage})
	if s.Loading {
		t.Fatal("reject must not enter loading")
	}
	if s.Err != MsgMissingImage {
		t.Fatalf("error mismatch: %q", s.Err)
	}
	if s.Result != "" {
		t.Fatal("entering error must clear the result")
	}
}

func TestApplyResolutionMatchingGeneration(t *testing.T) {
	s := State{}.apply(generateStartEvent{})
	gen := s.Generation

	success := s.apply(generateSuccessEvent{generation: gen, result: "data:image/png;base64,ok"})
	if success.Loading || success.Err != "" || success.Result != "data:image/png;base64,ok" {
		t.Fatalf("unexpected success state: %+v", success)
	}

	failure := s.apply(generateFailureEvent{generation: gen, message: "service down"})
	if failure.Loading || failure.Result != "" || failure.Err != "service down" {
		t.Fatalf("unexpected failure state: %+v", failure)
	}
}

func TestApplyStaleResolutionDiscarded(t *testing.T) {
	s := State{}.apply(generateStartEvent{})
	stale := s.Generation
	s = s.apply(uploadEvent{image: testImage("b.png")})

	after := s.apply(generateSuccessEvent{generation: stale, result: "data:image/png;base64,late"})
	if after != s {
		t.Fatalf("stale success must be a no-op: %+v vs %+v", after, s)
	}
	after = s.apply(generateFailureEvent{generation: stale, message: "late failure"})
	if after != s {
		t.Fatalf("stale failure must be a no-op: %+v vs %+v", after, s)
	}
}
