package tool

import (
	"image/color"
	"testing"

	"github.com/example/stickerpad/internal/scene"
)

var black = color.RGBA{0, 0, 0, 255}

func TestSelectorDefaultsToMarker(t *testing.T) {
	s := NewSelector(black, nil)
	m, ok := s.Active().(Marker)
	if !ok {
		t.Fatalf("expected marker by default, got %T", s.Active())
	}
	if m.Thickness != DefaultThickness {
		t.Fatalf("expected thickness %d, got %d", DefaultThickness, m.Thickness)
	}
}

func TestPreviewSuppressedUntilPointerKnown(t *testing.T) {
	s := NewSelector(black, nil)
	if p := s.Preview(); p != nil {
		t.Fatalf("expected nil preview before any pointer event, got %T", p)
	}
	s.MoveTo(12, 8)
	if s.Preview() == nil {
		t.Fatalf("expected a preview once the pointer is known")
	}
	s.Leave()
	if p := s.Preview(); p != nil {
		t.Fatalf("expected nil preview after leave, got %T", p)
	}
}

func TestSelectRecomputesPreviewAtLastPosition(t *testing.T) {
	s := NewSelector(black, nil)
	s.MoveTo(30, 40)
	s.Select(Sticker{Glyph: "⭐", Size: 20, Color: black})
	p, ok := s.Preview().(*scene.StickerPreview)
	if !ok {
		t.Fatalf("expected a sticker preview, got %T", s.Preview())
	}
	if p.At != (scene.Point{X: 30, Y: 40}) {
		t.Fatalf("expected preview at (30,40), got %v", p.At)
	}
	if p.Glyph != "⭐" || p.Size != 20 {
		t.Fatalf("preview does not match the selected tool: %+v", p)
	}
}

func TestSelectNilIsIgnored(t *testing.T) {
	changes := 0
	s := NewSelector(black, func() { changes++ })
	s.Select(nil)
	if changes != 0 {
		t.Fatalf("expected no notification for a nil tool")
	}
	if s.Active() == nil {
		t.Fatalf("nil tool replaced the active one")
	}
}

func TestMarkerDrawableStartsStroke(t *testing.T) {
	m := Marker{Thickness: 6, Color: black}
	d := m.Drawable(3, 4)
	st, ok := d.(*scene.Stroke)
	if !ok {
		t.Fatalf("expected a stroke, got %T", d)
	}
	if st.Thickness != 6 || len(st.Points) != 1 || st.Points[0] != (scene.Point{X: 3, Y: 4}) {
		t.Fatalf("unexpected stroke start: %+v", st)
	}
}

func TestStickerDrawableAnchorsGlyph(t *testing.T) {
	s := Sticker{Glyph: "🙂", Size: 32, Color: black}
	d := s.Drawable(9, 9)
	st, ok := d.(*scene.Sticker)
	if !ok {
		t.Fatalf("expected a sticker, got %T", d)
	}
	if st.Glyph != "🙂" || st.Size != 32 || st.At != (scene.Point{X: 9, Y: 9}) {
		t.Fatalf("unexpected sticker: %+v", st)
	}
}

func TestSelectorNotifies(t *testing.T) {
	changes := 0
	s := NewSelector(black, func() { changes++ })
	s.MoveTo(1, 1)
	s.Select(Marker{Thickness: 2, Color: black})
	s.Leave()
	s.Leave()
	if changes != 3 {
		t.Fatalf("expected 3 notifications, got %d", changes)
	}
}
