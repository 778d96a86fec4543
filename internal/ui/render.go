package ui

import (
	"image"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/stickerpad/internal/scene"
	"github.com/example/stickerpad/internal/theme"
)

const statusHeight = 24

var toolbarWidth = 96

var toolButtons []*CacheButton
var actionButtons []*CacheButton
var shortcutRects []Shortcut
var hoverTool = -1
var hoverAction = -1
var hoverShortcut = -1

// frameState is a snapshot of everything one repaint needs. The canvas is
// rebuilt from the drawables on every frame; nothing is painted
// incrementally.
type frameState struct {
	width, height   int
	th              *theme.Theme
	drawables       []scene.Drawable
	preview         scene.Drawable
	activeTool      int
	canUndo         bool
	canRedo         bool
	canClear        bool
	textInputActive bool
	textInput       string
	message         string
	messageUntil    time.Time
	handleShortcut  func(string)
}

func canvasRect(width, height int) image.Rectangle {
	return image.Rect(toolbarWidth, 0, width, height-statusHeight)
}

func drawFrame(s screen.Screen, w screen.Window, st frameState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	dst := b.RGBA()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(st.th.Background), image.Point{}, draw.Src)

	// Rebuild the sketch from scratch: canvas color, committed marks in
	// insertion order, then the hover preview on top.
	cr := canvasRect(st.width, st.height)
	canvas := image.NewRGBA(image.Rect(0, 0, cr.Dx(), cr.Dy()))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(st.th.Canvas), image.Point{}, draw.Src)
	for _, d := range st.drawables {
		d.Render(canvas)
	}
	if st.preview != nil {
		st.preview.Render(canvas)
	}
	draw.Draw(dst, cr, canvas, image.Point{}, draw.Src)

	drawToolbar(dst, st)
	drawStatus(dst, st)

	if st.message != "" && time.Now().Before(st.messageUntil) {
		drawMessage(dst, st)
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func drawToolbar(dst *image.RGBA, st frameState) {
	draw.Draw(dst, image.Rect(0, 0, toolbarWidth, st.height),
		image.NewUniform(st.th.ToolbarBackground), image.Point{}, draw.Src)

	// program title in the top-left corner
	title := &font.Drawer{Dst: dst, Src: image.NewUniform(st.th.ButtonText), Face: basicfont.Face7x13,
		Dot: fixed.P(4, 16)}
	title.DrawString("StickerPad")

	y := statusHeight
	for i, cb := range toolButtons {
		cb.SetRect(image.Rect(0, y, toolbarWidth, y+24))
		state := StateDefault
		if i == st.activeTool {
			state = StatePressed
		} else if i == hoverTool {
			state = StateHover
		}
		cb.Draw(dst, state)
		y += 24
	}

	y += 8
	enabled := []bool{st.canUndo, st.canRedo, st.canClear, true}
	for i, cb := range actionButtons {
		cb.SetRect(image.Rect(0, y, toolbarWidth, y+24))
		state := StateDefault
		if i < len(enabled) && !enabled[i] {
			state = StateDisabled
		} else if i == hoverAction {
			state = StateHover
		}
		cb.Draw(dst, state)
		y += 24
	}
}

func drawStatus(dst *image.RGBA, st frameState) {
	rect := image.Rect(0, st.height-statusHeight, st.width, st.height)
	draw.Draw(dst, rect, image.NewUniform(st.th.StatusBackground), image.Point{}, draw.Src)
	shortcutRects = shortcutRects[:0]

	var shortcuts []Shortcut
	if st.textInputActive {
		shortcuts = []Shortcut{
			{label: "Enter:add", action: func() { st.handleShortcut("stickerdone") }},
			{label: "Esc:cancel", action: func() { st.handleShortcut("stickercancel") }},
		}
	} else {
		shortcuts = []Shortcut{
			{label: "^Z:undo", action: func() { st.handleShortcut("undo") }},
			{label: "^Y:redo", action: func() { st.handleShortcut("redo") }},
			{label: "^K:clear", action: func() { st.handleShortcut("clear") }},
			{label: "^C:copy", action: func() { st.handleShortcut("copy") }},
			{label: "N:sticker", action: func() { st.handleShortcut("newsticker") }},
			{label: "Q:quit", action: func() { st.handleShortcut("quit") }},
		}
	}

	x := toolbarWidth + 4
	y := st.height - statusHeight + 16
	meas := &font.Drawer{Face: basicfont.Face7x13}
	for i := range shortcuts {
		sc := &shortcuts[i]
		w := meas.MeasureString(sc.label).Ceil()
		sc.rect = image.Rect(x-2, y-14, x+w+2, y+4)
		state := StateDefault
		if i == hoverShortcut {
			state = StateHover
		}
		sc.Draw(dst, st.th, state)
		shortcutRects = append(shortcutRects, *sc)
		x = sc.rect.Max.X + 8
	}

	if st.textInputActive {
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(st.th.StatusText), Face: basicfont.Face7x13,
			Dot: fixed.P(x+8, y)}
		d.DrawString("New sticker: " + st.textInput + "|")
	}
}

func drawMessage(dst *image.RGBA, st frameState) {
	const msgSize = 24
	wmsg := scene.GlyphWidth(st.message, msgSize)
	cx := st.width / 2
	cy := st.height / 2
	rect := image.Rect(cx-wmsg/2-8, cy-msgSize, cx+wmsg/2+8, cy+msgSize)
	draw.Draw(dst, rect, image.NewUniform(st.th.StatusBackground), image.Point{}, draw.Src)
	scene.DrawRect(dst, rect, st.th.ButtonBorder, 2)
	scene.DrawGlyph(dst, st.message, cx, cy, msgSize, image.NewUniform(st.th.StatusText))
}
