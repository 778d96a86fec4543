package ui

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/stickerpad/internal/scene"
	"github.com/example/stickerpad/internal/theme"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
	StateDisabled
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
// It delegates all interface methods to the wrapped Button while
// caching the result of Draw for each state.
type CacheButton struct {
	Button
	cache [4]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) Rect() image.Rectangle { return cb.Button.Rect() }

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [4]*image.RGBA{}
	}
}

func (cb *CacheButton) Activate() { cb.Button.Activate() }

func buttonFill(th *theme.Theme, state ButtonState) (bg, text image.Image) {
	switch state {
	case StateHover:
		return image.NewUniform(th.ButtonBackgroundHover), image.NewUniform(th.ButtonText)
	case StatePressed:
		return image.NewUniform(th.ButtonBackgroundPress), image.NewUniform(th.ButtonText)
	case StateDisabled:
		return image.NewUniform(th.ButtonBackgroundDisabled), image.NewUniform(th.ButtonTextDisabled)
	default:
		return image.NewUniform(th.ButtonBackground), image.NewUniform(th.ButtonText)
	}
}

// ToolButton is a toolbar button with a text label that selects a tool or
// triggers an action.
type ToolButton struct {
	label    string
	th       *theme.Theme
	rect     image.Rectangle
	onSelect func()
}

func (tb *ToolButton) Draw(dst *image.RGBA, state ButtonState) {
	bg, text := buttonFill(tb.th, state)
	draw.Draw(dst, tb.rect, bg, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: text, Face: basicfont.Face7x13,
		Dot: fixed.P(tb.rect.Min.X+4, tb.rect.Min.Y+16)}
	d.DrawString(tb.label)
}

func (tb *ToolButton) Rect() image.Rectangle { return tb.rect }

func (tb *ToolButton) SetRect(r image.Rectangle) {
	if r != tb.rect {
		tb.rect = r
	}
}

func (tb *ToolButton) Activate() {
	if tb.onSelect != nil {
		tb.onSelect()
	}
}

// StickerButton is a toolbar button showing a sticker preset glyph. The
// glyph is drawn with the sticker font so emoji presets look like the stamp
// they produce.
type StickerButton struct {
	glyph    string
	th       *theme.Theme
	rect     image.Rectangle
	onSelect func()
}

func (sb *StickerButton) Draw(dst *image.RGBA, state ButtonState) {
	bg, text := buttonFill(sb.th, state)
	draw.Draw(dst, sb.rect, bg, image.Point{}, draw.Src)
	cx := (sb.rect.Min.X + sb.rect.Max.X) / 2
	cy := (sb.rect.Min.Y + sb.rect.Max.Y) / 2
	scene.DrawGlyph(dst, sb.glyph, cx, cy, 16, text)
}

func (sb *StickerButton) Rect() image.Rectangle { return sb.rect }

func (sb *StickerButton) SetRect(r image.Rectangle) {
	if r != sb.rect {
		sb.rect = r
	}
}

func (sb *StickerButton) Activate() {
	if sb.onSelect != nil {
		sb.onSelect()
	}
}

// Shortcut is a clickable hint in the status bar.
type Shortcut struct {
	label  string
	action func()
	rect   image.Rectangle
}

func (s *Shortcut) Draw(dst *image.RGBA, th *theme.Theme, state ButtonState) {
	bg, text := buttonFill(th, state)
	draw.Draw(dst, s.rect, bg, image.Point{}, draw.Src)
	scene.DrawRect(dst, s.rect, th.ButtonBorder, 1)
	d := &font.Drawer{Dst: dst, Src: text, Face: basicfont.Face7x13,
		Dot: fixed.P(s.rect.Min.X+2, s.rect.Min.Y+14)}
	d.DrawString(s.label)
}

func (s *Shortcut) Activate() {
	if s.action != nil {
		s.action()
	}
}
