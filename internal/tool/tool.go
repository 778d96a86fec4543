// Package tool models the sketchpad's drawing tools and tracks which one is
// active. A tool is a factory for the drawable a press starts plus the
// translucent hint shown while the pointer hovers.
package tool

import (
	"image/color"

	"github.com/example/stickerpad/internal/scene"
)

// DefaultThickness is the marker thickness a fresh selector starts with.
const DefaultThickness = 4

// Tool builds the drawable a gesture begins with and the preview shown at a
// hover position.
type Tool interface {
	Drawable(x, y int) scene.Drawable
	Preview(x, y int) scene.Drawable
	Label() string
}

// Marker draws freehand strokes.
type Marker struct {
	Thickness int
	Color     color.RGBA
}

func (m Marker) Drawable(x, y int) scene.Drawable {
	return scene.NewStroke(x, y, m.Thickness, m.Color)
}

func (m Marker) Preview(x, y int) scene.Drawable {
	return &scene.MarkerPreview{At: scene.Point{X: x, Y: y}, Thickness: m.Thickness, Color: m.Color}
}

func (m Marker) Label() string { return "Marker" }

// Sticker stamps a glyph.
type Sticker struct {
	Glyph string
	Size  int
	Color color.RGBA
}

func (s Sticker) Drawable(x, y int) scene.Drawable {
	return scene.NewSticker(s.Glyph, s.Size, x, y, s.Color)
}

func (s Sticker) Preview(x, y int) scene.Drawable {
	return &scene.StickerPreview{Glyph: s.Glyph, Size: s.Size, At: scene.Point{X: x, Y: y}, Color: s.Color}
}

func (s Sticker) Label() string { return s.Glyph }

// Selector holds the active tool and the last known pointer position. The
// change callback fires whenever the preview may have moved or changed shape.
type Selector struct {
	active   Tool
	pointer  scene.Point
	tracking bool
	onChange func()
}

// NewSelector returns a selector with the marker active at the default
// thickness. onChange may be nil.
func NewSelector(ink color.RGBA, onChange func()) *Selector {
	return &Selector{
		active:   Marker{Thickness: DefaultThickness, Color: ink},
		onChange: onChange,
	}
}

func (s *Selector) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Active returns the current tool.
func (s *Selector) Active() Tool { return s.active }

// Select makes t the active tool. The preview recomputes at the last known
// pointer position on the next Preview call.
func (s *Selector) Select(t Tool) {
	if t == nil {
		return
	}
	s.active = t
	s.notify()
}

// MoveTo records the hover position.
func (s *Selector) MoveTo(x, y int) {
	s.pointer = scene.Point{X: x, Y: y}
	s.tracking = true
	s.notify()
}

// Leave forgets the pointer position, suppressing the preview until the
// pointer returns.
func (s *Selector) Leave() {
	if !s.tracking {
		return
	}
	s.tracking = false
	s.notify()
}

// Preview returns the hover hint for the active tool at the last pointer
// position, or nil when the pointer location is unknown.
func (s *Selector) Preview() scene.Drawable {
	if !s.tracking {
		return nil
	}
	return s.active.Preview(s.pointer.X, s.pointer.Y)
}

// Drawable starts a gesture for the active tool at (x, y).
func (s *Selector) Drawable(x, y int) scene.Drawable {
	return s.active.Drawable(x, y)
}
