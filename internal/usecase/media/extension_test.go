package media

import (
	"testing"

	"github.com/chatrelay/media-gateway-go/internal/model"
)

func strPtr(s string) *string { return &s }

func TestResolveExtension_Defaults(t *testing.T) {
	tests := []struct {
		kind model.Kind
		want string
	}{
		{model.KindImage, ".jpg"},
		{model.KindVideo, ".mp4"},
		{model.KindAudio, ".ogg"},
		{model.KindDocument, ".pdf"},
		{model.KindSticker, ".webp"},
	}
	for _, tc := range tests {
		if got := ResolveExtension(nil, nil, tc.kind); got != tc.want {
			t.Errorf("default for %s should be %q, got %q", tc.kind, tc.want, got)
		}
	}
}

func TestResolveExtension_FileNameWins(t *testing.T) {
	got := ResolveExtension(strPtr("image/png"), strPtr("photo.JPEG"), model.KindImage)
	if got != ".jpeg" {
		t.Errorf("expected lowercased file name suffix %q, got %q", ".jpeg", got)
	}
}

func TestResolveExtension_FileNameWithoutDot(t *testing.T) {
	got := ResolveExtension(strPtr("image/png"), strPtr("photo"), model.KindImage)
	if got != ".png" {
		t.Errorf("expected mime lookup %q, got %q", ".png", got)
	}
}

func TestResolveExtension_MimeLookup(t *testing.T) {
	tests := []struct {
		mime string
		kind model.Kind
		want string
	}{
		{"video/3gpp", model.KindVideo, ".3gp"},
		{"audio/mpeg", model.KindAudio, ".mp3"},
		{"application/pdf", model.KindDocument, ".pdf"},
		{"text/csv", model.KindDocument, ".csv"},
	}
	for _, tc := range tests {
		if got := ResolveExtension(&tc.mime, nil, tc.kind); got != tc.want {
			t.Errorf("lookup for %q should be %q, got %q", tc.mime, tc.want, got)
		}
	}
}

func TestResolveExtension_MimeWithParams(t *testing.T) {
	got := ResolveExtension(strPtr("audio/opus; codecs=opus"), nil, model.KindAudio)
	if got != ".opus" {
		t.Errorf("expected %q after stripping params, got %q", ".opus", got)
	}
}

func TestResolveExtension_UnknownMimeFallsBack(t *testing.T) {
	got := ResolveExtension(strPtr("application/octet-stream"), nil, model.KindAudio)
	if got != ".ogg" {
		t.Errorf("unknown mime should fall back to %q, got %q", ".ogg", got)
	}
}
