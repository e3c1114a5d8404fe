package presenter

import (
	"image"
	"testing"

	"github.com/soocke/digitpad-go/ui/layout"
)

func TestKeyPointer_MoveClampsToGrid(t *testing.T) {
	k := NewKeyPointer(testLayout())
	if c := k.Cursor(); c != image.Rect(160, 160, 170, 170) {
		t.Fatalf("start cursor %v", c)
	}
	k.Move(-100, 3)
	if c := k.Cursor(); c != image.Rect(190, 20, 200, 30) {
		t.Fatalf("clamped cursor %v", c)
	}
	k.Move(100, 100)
	if c := k.Cursor(); c != image.Rect(290, 290, 300, 300) {
		t.Fatalf("bottom-right cursor %v", c)
	}
}

func TestKeyPointer_DrivesInputHandler(t *testing.T) {
	a := &mockActions{}
	h := NewInputHandler(testLayout(), a)
	k := NewKeyPointer(testLayout())
	feed := func() {
		for _, p := range k.Samples() {
			if err := h.Handle(p); err != nil {
				t.Fatalf("handle: %v", err)
			}
		}
	}

	k.SetDown(true)
	feed()
	k.Move(0, 1)
	feed()
	k.SetDown(false)
	k.Press(layout.ActionClassify)
	k.Press(layout.ActionReset)
	feed()

	want := []cell{{14, 14}, {14, 15}}
	if len(a.painted) != len(want) || a.painted[0] != want[0] || a.painted[1] != want[1] {
		t.Fatalf("painted %v, want %v", a.painted, want)
	}
	if a.classifies != 1 || a.resets != 1 {
		t.Fatalf("classifies=%d resets=%d", a.classifies, a.resets)
	}
	if s := k.Samples(); len(s) != 1 || s[0].Down {
		t.Fatalf("queue not drained: %v", s)
	}
}

func TestKeyPointer_NilSafe(t *testing.T) {
	var k *KeyPointer
	k.Move(1, 1)
	k.SetDown(true)
	k.Press(layout.ActionReset)
	if k.Samples() != nil || k.Cursor() != (image.Rectangle{}) {
		t.Fatalf("nil pointer misbehaved")
	}
}
