// Package scene holds the drawable primitives a sketch is composed of.
// Everything that appears on the canvas implements Drawable: the committed
// marks the user has made and the translucent hover hints the toolbar shows
// before a gesture starts.
package scene

import (
	"image"
	"image/color"
)

// previewAlpha is the opacity used for hover previews.
const previewAlpha = 110

// Point is a canvas pixel coordinate recorded during a gesture.
type Point struct {
	X, Y int
}

// Drawable is a mark the render pass can paint onto the canvas. Extend feeds
// it a new pointer position; what the position means is up to the concrete
// type. Render paints from internal state only, never mutates it, and may be
// called any number of times with identical results.
type Drawable interface {
	Extend(x, y int)
	Render(dst *image.RGBA)
}

// Stroke is a freehand marker path: the ordered points the pointer visited
// during one gesture, traced at a fixed thickness.
type Stroke struct {
	Points    []Point
	Thickness int
	Color     color.RGBA
}

// NewStroke starts a stroke at (x, y). Thickness values below one are
// clamped so a stroke always leaves ink.
func NewStroke(x, y, thickness int, col color.RGBA) *Stroke {
	if thickness < 1 {
		thickness = 1
	}
	return &Stroke{Points: []Point{{x, y}}, Thickness: thickness, Color: col}
}

// Extend appends the next pointer position to the path.
func (s *Stroke) Extend(x, y int) {
	s.Points = append(s.Points, Point{x, y})
}

// Render traces the path as one connected line with round joins and caps.
// A stroke with fewer than two points draws nothing.
func (s *Stroke) Render(dst *image.RGBA) {
	if len(s.Points) < 2 {
		return
	}
	r := s.Thickness / 2
	fillCircle(dst, s.Points[0].X, s.Points[0].Y, r, s.Color)
	for i := 1; i < len(s.Points); i++ {
		p0 := s.Points[i-1]
		p1 := s.Points[i]
		drawLineRound(dst, p0.X, p0.Y, p1.X, p1.Y, r, s.Color)
	}
}

// Sticker is a single glyph stamped on the canvas. Extending a sticker
// repositions its anchor rather than leaving a trail, so dragging before
// release slides the stamp around.
type Sticker struct {
	Glyph string
	Size  int
	At    Point
	Color color.RGBA
}

// NewSticker places glyph centred on (x, y) at the given font size in pixels.
func NewSticker(glyph string, size, x, y int, col color.RGBA) *Sticker {
	if size < 1 {
		size = 1
	}
	return &Sticker{Glyph: glyph, Size: size, At: Point{x, y}, Color: col}
}

// Extend moves the anchor to the new position.
func (st *Sticker) Extend(x, y int) {
	st.At = Point{x, y}
}

// Render paints the glyph centred on the anchor.
func (st *Sticker) Render(dst *image.RGBA) {
	DrawGlyph(dst, st.Glyph, st.At.X, st.At.Y, st.Size, image.NewUniform(st.Color))
}

// MarkerPreview is the hover hint for the marker tool: a translucent dot
// whose diameter matches the stroke thickness.
type MarkerPreview struct {
	At        Point
	Thickness int
	Color     color.RGBA
}

func (p *MarkerPreview) Extend(x, y int) {
	p.At = Point{x, y}
}

func (p *MarkerPreview) Render(dst *image.RGBA) {
	c := p.Color
	fillCircleOver(dst, p.At.X, p.At.Y, p.Thickness/2, color.NRGBA{c.R, c.G, c.B, previewAlpha})
}

// StickerPreview is the hover hint for the sticker tool: the glyph rendered
// translucent at the size a press would stamp it.
type StickerPreview struct {
	Glyph string
	Size  int
	At    Point
	Color color.RGBA
}

func (p *StickerPreview) Extend(x, y int) {
	p.At = Point{x, y}
}

func (p *StickerPreview) Render(dst *image.RGBA) {
	c := p.Color
	src := image.NewUniform(color.NRGBA{c.R, c.G, c.B, previewAlpha})
	DrawGlyph(dst, p.Glyph, p.At.X, p.At.Y, p.Size, src)
}
