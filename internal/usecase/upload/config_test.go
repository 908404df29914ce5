package upload

import "testing"

func TestIsMimeTypeAllowed(t *testing.T) {
	allowed := []string{"image/png", "image/jpeg", "image/webp", "image/gif", "application/pdf", "text/csv"}
	for _, mt := range allowed {
		if !IsMimeTypeAllowed(mt) {
			t.Errorf("%q should be accepted", mt)
		}
	}

	forbidden := []string{"", "video/mp4", "audio/ogg", "application/x-msdownload", "text/html"}
	for _, mt := range forbidden {
		if IsMimeTypeAllowed(mt) {
			t.Errorf("%q should be rejected", mt)
		}
	}
}

func TestIsImage(t *testing.T) {
	if !IsImage("image/png") || IsImage("application/pdf") {
		t.Error("only image/* upload types count as images")
	}
}

func TestIsPdf(t *testing.T) {
	if !IsPdf("application/pdf") || IsPdf("image/png") {
		t.Error("only application/pdf counts as pdf")
	}
}
