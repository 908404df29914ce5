package task

import (
	"testing"
)

func TestGenerateThumbnailTask_RoundTrip(t *testing.T) {
	tk, err := NewGenerateThumbnailTask("wamid.abc")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if tk.Type() != TypeGenerateThumbnail {
		t.Errorf("unexpected task type %q", tk.Type())
	}

	p, err := ParseGenerateThumbnailPayload(tk)
	if err != nil {
		t.Fatalf("payload should parse back: %v", err)
	}
	if p.MediaID != "wamid.abc" {
		t.Errorf("unexpected media ID %q", p.MediaID)
	}
}
