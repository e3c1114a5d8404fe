package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFontTTF_Builtin(t *testing.T) {
	data, err := FontTTF("")
	if err != nil || len(data) == 0 {
		t.Fatalf("builtin font: len=%d err=%v", len(data), err)
	}
}

func TestFontTTF_Missing(t *testing.T) {
	if _, err := FontTTF(filepath.Join(t.TempDir(), "nope.ttf")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestFontTTF_Empty(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.ttf")
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FontTTF(p); !errors.Is(err, ErrFontEmpty) {
		t.Fatalf("expected ErrFontEmpty, got %v", err)
	}
}
