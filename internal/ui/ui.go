// Package ui runs the sketchpad window: a shiny event loop that feeds
// pointer gestures into the history engine and repaints the whole frame
// from the committed drawables on every change.
package ui

import (
	"image"
	"image/draw"
	"log"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/stickerpad/internal/clipboard"
	"github.com/example/stickerpad/internal/history"
	"github.com/example/stickerpad/internal/notify"
	"github.com/example/stickerpad/internal/scene"
	"github.com/example/stickerpad/internal/sticker"
	"github.com/example/stickerpad/internal/theme"
	"github.com/example/stickerpad/internal/tool"
)

const defaultStickerSize = 24

// UI holds configuration for the sketchpad window.
type UI struct {
	Theme           *theme.Theme
	Width, Height   int
	MarkerThickness int
	Presets         []sticker.Preset
	Store           *sticker.Store
	Notifier        *notify.Notifier

	onClose   func()
	closeOnce sync.Once
}

// Option modifies a UI during creation.
type Option func(*UI)

// WithTheme sets the color palette for the window chrome.
func WithTheme(th *theme.Theme) Option { return func(u *UI) { u.Theme = th } }

// WithSize sets the initial window dimensions.
func WithSize(width, height int) Option {
	return func(u *UI) { u.Width, u.Height = width, height }
}

// WithMarkerThickness sets the initial marker stroke thickness.
func WithMarkerThickness(t int) Option { return func(u *UI) { u.MarkerThickness = t } }

// WithPresets sets the sticker palette shown in the toolbar.
func WithPresets(presets []sticker.Preset) Option {
	return func(u *UI) { u.Presets = presets }
}

// WithStore sets the store new sticker presets are saved through.
func WithStore(s *sticker.Store) Option { return func(u *UI) { u.Store = s } }

// WithNotifier sets the desktop notifier for copy and palette events.
func WithNotifier(n *notify.Notifier) Option { return func(u *UI) { u.Notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(u *UI) { u.onClose = fn } }

// New creates a UI with the provided options.
func New(opts ...Option) *UI {
	u := &UI{
		Theme:           theme.Default(),
		Width:           800,
		Height:          600,
		MarkerThickness: tool.DefaultThickness,
		Presets:         sticker.Defaults(),
	}
	for _, o := range opts {
		o(u)
	}
	if u.MarkerThickness < 1 {
		u.MarkerThickness = tool.DefaultThickness
	}
	return u
}

func (u *UI) notifyClose() {
	u.closeOnce.Do(func() {
		if u.onClose != nil {
			u.onClose()
		}
	})
}

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// shortcutList is a helper to attach shortcuts to a registered action.
type shortcutList []KeyShortcut

// Run executes the UI loop using shiny's driver.
func (u *UI) Run() { driver.Main(u.Main) }

func (u *UI) Main(s screen.Screen) {
	th := u.Theme

	// Ensure the toolbar is wide enough to fit the program title and all
	// button labels so the UI contents are not clipped on start up.
	d := &font.Drawer{Face: basicfont.Face7x13}
	max := d.MeasureString("StickerPad").Ceil() + 8 // padding
	for _, lbl := range []string{"B:Marker", "Z:Undo", "Y:Redo", "K:Clear", "N:New..."} {
		w := d.MeasureString(lbl).Ceil() + 8
		if w > max {
			max = w
		}
	}
	if max > toolbarWidth {
		toolbarWidth = max
	}

	width := u.Width
	height := u.Height
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "StickerPad"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer u.notifyClose()

	repaint := func() { w.Send(paint.Event{}) }

	engine := history.New(repaint)
	selector := tool.NewSelector(th.Ink, repaint)

	presets := append([]sticker.Preset(nil), u.Presets...)
	activeTool := 0
	var message string
	var messageUntil time.Time
	var textInputActive bool
	var textInput string

	showMessage := func(msg string) {
		message = msg
		log.Print(msg)
		messageUntil = time.Now().Add(2 * time.Second)
	}

	// renderSketch rebuilds the committed drawables into a standalone image,
	// without chrome or preview, for the clipboard.
	renderSketch := func() *image.RGBA {
		cr := canvasRect(width, height)
		img := image.NewRGBA(image.Rect(0, 0, cr.Dx(), cr.Dy()))
		draw.Draw(img, img.Bounds(), image.NewUniform(th.Canvas), image.Point{}, draw.Src)
		for _, drawable := range engine.Drawables() {
			drawable.Render(img)
		}
		return img
	}

	rebuildToolbar := func() {
		buttons := []*CacheButton{
			{Button: &ToolButton{label: "B:Marker", th: th, onSelect: func() {
				activeTool = 0
				selector.Select(tool.Marker{Thickness: u.MarkerThickness, Color: th.Ink})
			}}},
		}
		for i, p := range presets {
			idx := i + 1
			preset := p
			buttons = append(buttons, &CacheButton{Button: &StickerButton{glyph: preset.Glyph, th: th, onSelect: func() {
				activeTool = idx
				selector.Select(tool.Sticker{Glyph: preset.Glyph, Size: preset.Size, Color: th.Ink})
			}}})
		}
		toolButtons = buttons
	}

	keyboardAction := map[KeyShortcut]string{}
	actions := map[string]func(){}
	register := func(name string, keys shortcutList, fn func()) {
		actions[name] = fn
		for _, sc := range keys {
			keyboardAction[sc] = name
		}
	}

	quit := false

	register("undo", shortcutList{{Rune: 'z', Modifiers: key.ModControl}}, func() {
		engine.Undo()
	})
	register("redo", shortcutList{{Rune: 'y', Modifiers: key.ModControl}}, func() {
		engine.Redo()
	})
	register("clear", shortcutList{{Rune: 'k', Modifiers: key.ModControl}}, func() {
		engine.Clear()
	})
	register("copy", shortcutList{{Rune: 'c', Modifiers: key.ModControl}}, func() {
		img := renderSketch()
		if err := clipboard.WriteImage(img); err != nil {
			log.Printf("copy: %v", err)
			showMessage("copy failed")
			return
		}
		showMessage("sketch copied to clipboard")
		if u.Notifier != nil {
			u.Notifier.Copy("sketch", img)
		}
	})
	register("newsticker", shortcutList{{Rune: 'n'}}, func() {
		textInputActive = true
		textInput = ""
	})
	register("stickerdone", shortcutList{{Code: key.CodeReturnEnter}}, func() {
		glyph := strings.TrimSpace(textInput)
		textInputActive = false
		if glyph == "" {
			return
		}
		presets = append(presets, sticker.Preset{Glyph: glyph, Size: defaultStickerSize})
		rebuildToolbar()
		if u.Store != nil {
			if err := u.Store.Save(presets); err != nil {
				log.Printf("save stickers: %v", err)
				showMessage("saving sticker palette failed")
			} else if u.Notifier != nil {
				u.Notifier.Stickers(u.Store.Path)
			}
		}
	})
	register("stickercancel", shortcutList{{Code: key.CodeEscape}}, func() {
		textInputActive = false
	})
	register("quit", shortcutList{}, func() { quit = true })

	handleShortcut := func(action string) {
		if fn, ok := actions[action]; ok {
			fn()
		}
		w.Send(paint.Event{})
	}

	rebuildToolbar()

	actionButtons = []*CacheButton{
		{Button: &ToolButton{label: "Z:Undo", th: th, onSelect: func() { engine.Undo() }}},
		{Button: &ToolButton{label: "Y:Redo", th: th, onSelect: func() { engine.Redo() }}},
		{Button: &ToolButton{label: "K:Clear", th: th, onSelect: func() { engine.Clear() }}},
		{Button: &ToolButton{label: "N:New...", th: th, onSelect: func() { handleShortcut("newsticker") }}},
	}

	selector.Select(tool.Marker{Thickness: u.MarkerThickness, Color: th.Ink})

	for {
		if quit {
			return
		}
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			var preview scene.Drawable
			if !engine.Drawing() {
				preview = selector.Preview()
			}
			drawFrame(s, w, frameState{
				width:           width,
				height:          height,
				th:              th,
				drawables:       engine.Drawables(),
				preview:         preview,
				activeTool:      activeTool,
				canUndo:         engine.CanUndo(),
				canRedo:         engine.CanRedo(),
				canClear:        engine.CanUndo() || engine.CanRedo(),
				textInputActive: textInputActive,
				textInput:       textInput,
				message:         message,
				messageUntil:    messageUntil,
				handleShortcut:  handleShortcut,
			})
		case mouse.Event:
			if message != "" && time.Now().Before(messageUntil) && e.Direction == mouse.DirPress {
				messageUntil = time.Time{}
				w.Send(paint.Event{})
				continue
			}

			px := int(e.X)
			py := int(e.Y)
			cx := px - toolbarWidth
			cy := py

			// An active gesture owns the pointer until release, even when
			// the pointer strays over the chrome.
			if engine.Drawing() {
				switch e.Direction {
				case mouse.DirNone:
					engine.Extend(cx, cy)
				case mouse.DirRelease:
					if e.Button == mouse.ButtonLeft {
						engine.End()
					}
				}
				continue
			}

			if py >= height-statusHeight {
				selector.Leave()
				hoverTool = -1
				hoverAction = -1
				hoverShortcut = -1
				p := image.Point{px, py}
				for i, sc := range shortcutRects {
					if p.In(sc.rect) {
						hoverShortcut = i
						if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
							sc.Activate()
						}
						break
					}
				}
				if e.Direction == mouse.DirNone {
					w.Send(paint.Event{})
				}
				continue
			}

			if px < toolbarWidth {
				selector.Leave()
				hoverShortcut = -1
				hoverTool = -1
				hoverAction = -1
				p := image.Point{px, py}
				for i, cb := range toolButtons {
					if p.In(cb.Rect()) {
						hoverTool = i
						if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
							cb.Activate()
						}
						break
					}
				}
				for i, cb := range actionButtons {
					if p.In(cb.Rect()) {
						hoverAction = i
						if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
							cb.Activate()
						}
						break
					}
				}
				if e.Direction == mouse.DirNone {
					w.Send(paint.Event{})
				}
				continue
			}

			// Canvas area.
			hoverTool = -1
			hoverAction = -1
			hoverShortcut = -1
			switch e.Direction {
			case mouse.DirPress:
				if e.Button == mouse.ButtonLeft {
					engine.Begin(selector.Drawable(cx, cy))
				}
			case mouse.DirNone:
				selector.MoveTo(cx, cy)
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if textInputActive {
				switch e.Code {
				case key.CodeReturnEnter:
					handleShortcut("stickerdone")
					continue
				case key.CodeEscape:
					handleShortcut("stickercancel")
					continue
				case key.CodeDeleteBackspace:
					if len(textInput) > 0 {
						r := []rune(textInput)
						textInput = string(r[:len(r)-1])
						w.Send(paint.Event{})
					}
					continue
				}
				if e.Rune > 0 {
					textInput += string(e.Rune)
					w.Send(paint.Event{})
				}
				continue
			}
			// Shortcuts register either a rune or a key code, never both.
			if action, ok := keyboardAction[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers}]; ok {
				handleShortcut(action)
				continue
			}
			if action, ok := keyboardAction[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]; ok {
				handleShortcut(action)
				continue
			}
			switch e.Rune {
			case 'b', 'B':
				toolButtons[0].Activate()
				w.Send(paint.Event{})
			case 'z', 'Z':
				handleShortcut("undo")
			case 'y', 'Y':
				handleShortcut("redo")
			case 'k', 'K':
				handleShortcut("clear")
			case '1', '2', '3', '4', '5', '6', '7', '8', '9':
				idx := int(e.Rune - '0')
				if idx < len(toolButtons) {
					toolButtons[idx].Activate()
					w.Send(paint.Event{})
				}
			case 'q', 'Q':
				return
			}
		}
	}
}
