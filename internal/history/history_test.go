package history

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/stickerpad/internal/scene"
)

func TestBeginExtendEndScenario(t *testing.T) {
	changes := 0
	e := New(func() { changes++ })

	e.Begin(scene.NewStroke(10, 10, 4, color.RGBA{0, 0, 0, 255}))
	e.Extend(20, 20)
	e.End()

	marks := e.Drawables()
	if len(marks) != 1 {
		t.Fatalf("expected 1 committed drawable, got %d", len(marks))
	}
	s, ok := marks[0].(*scene.Stroke)
	if !ok {
		t.Fatalf("expected a stroke, got %T", marks[0])
	}
	want := []scene.Point{{X: 10, Y: 10}, {X: 20, Y: 20}}
	if len(s.Points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(s.Points))
	}
	for i, p := range want {
		if s.Points[i] != p {
			t.Fatalf("point %d: expected %v, got %v", i, p, s.Points[i])
		}
	}
	if !e.CanUndo() || e.CanRedo() {
		t.Fatalf("expected CanUndo && !CanRedo, got %v %v", e.CanUndo(), e.CanRedo())
	}
	if changes != 3 {
		t.Fatalf("expected 3 change notifications, got %d", changes)
	}

	e.Undo()
	if e.CanUndo() || !e.CanRedo() {
		t.Fatalf("after undo: expected !CanUndo && CanRedo")
	}
	if len(e.Drawables()) != 0 {
		t.Fatalf("after undo: expected empty committed stack")
	}
	e.Redo()
	if got := e.Drawables(); len(got) != 1 || got[0] != marks[0] {
		t.Fatalf("redo did not restore the same drawable")
	}
}

func TestCommittedCountMatchesBegins(t *testing.T) {
	e := New(nil)
	for i := 0; i < 5; i++ {
		e.Begin(scene.NewStroke(i, i, 2, color.RGBA{}))
		e.Extend(i+1, i+1)
		e.End()
	}
	if got := len(e.Drawables()); got != 5 {
		t.Fatalf("expected 5 committed drawables, got %d", got)
	}
}

func TestBeginClearsRedoStack(t *testing.T) {
	e := New(nil)
	e.Begin(scene.NewStroke(0, 0, 2, color.RGBA{}))
	e.End()
	e.Undo()
	if !e.CanRedo() {
		t.Fatalf("expected redo available after undo")
	}
	e.Begin(scene.NewStroke(1, 1, 2, color.RGBA{}))
	if e.CanRedo() {
		t.Fatalf("expected redo stack cleared by a new gesture")
	}
}

func TestBeginWhileDrawingEndsPriorGesture(t *testing.T) {
	e := New(nil)
	first := scene.NewStroke(0, 0, 2, color.RGBA{})
	e.Begin(first)
	second := scene.NewStroke(5, 5, 2, color.RGBA{})
	e.Begin(second)
	e.Extend(9, 9)
	if len(first.Points) != 1 {
		t.Fatalf("extend reached the finished gesture: %v", first.Points)
	}
	if second.Points[len(second.Points)-1] != (scene.Point{X: 9, Y: 9}) {
		t.Fatalf("extend missed the active gesture: %v", second.Points)
	}
	if got := len(e.Drawables()); got != 2 {
		t.Fatalf("expected both drawables committed, got %d", got)
	}
}

func TestSilentNoOpsFromIdle(t *testing.T) {
	changes := 0
	e := New(func() { changes++ })
	e.Extend(1, 1)
	e.End()
	e.Undo()
	e.Redo()
	if changes != 0 {
		t.Fatalf("expected no notifications from idle no-ops, got %d", changes)
	}
}

func TestUndoDuringGestureEndsIt(t *testing.T) {
	e := New(nil)
	e.Begin(scene.NewStroke(0, 0, 2, color.RGBA{}))
	if !e.Drawing() {
		t.Fatalf("expected an active gesture")
	}
	e.Undo()
	if e.Drawing() {
		t.Fatalf("expected undo to end the gesture it removed")
	}
	// Further extends must not resurrect the undone drawable.
	changes := 0
	e2 := New(func() { changes++ })
	st := scene.NewStroke(0, 0, 2, color.RGBA{})
	e2.Begin(st)
	e2.Undo()
	changes = 0
	e2.Extend(3, 3)
	if changes != 0 || len(st.Points) != 1 {
		t.Fatalf("extend after undo reached the undone drawable")
	}
}

func TestClearEmptiesEverything(t *testing.T) {
	e := New(nil)
	e.Begin(scene.NewSticker("*", 12, 4, 4, color.RGBA{}))
	e.End()
	e.Begin(scene.NewStroke(1, 1, 2, color.RGBA{}))
	e.Undo()
	e.Clear()
	if e.CanUndo() || e.CanRedo() || e.Drawing() {
		t.Fatalf("expected a fully empty engine after clear")
	}
	if len(e.Drawables()) != 0 {
		t.Fatalf("expected no drawables after clear")
	}
}

func TestClearNotifiesOnce(t *testing.T) {
	changes := 0
	e := New(func() { changes++ })
	e.Begin(scene.NewStroke(0, 0, 2, color.RGBA{}))
	e.End()
	changes = 0
	e.Clear()
	if changes != 1 {
		t.Fatalf("expected exactly one notification, got %d", changes)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := New(nil)
	for i := 0; i < 3; i++ {
		e.Begin(scene.NewStroke(i, i, 2, color.RGBA{}))
		e.End()
	}
	before := e.Drawables()
	e.Undo()
	e.Undo()
	e.Redo()
	e.Redo()
	after := e.Drawables()
	if len(before) != len(after) {
		t.Fatalf("round trip changed committed length: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("round trip reordered drawable %d", i)
		}
	}
}

func TestDrawablesReturnsCopy(t *testing.T) {
	e := New(nil)
	e.Begin(scene.NewStroke(0, 0, 2, color.RGBA{}))
	e.End()
	got := e.Drawables()
	got[0] = nil
	if e.Drawables()[0] == nil {
		t.Fatalf("mutating the returned slice leaked into the engine")
	}
}

func TestRenderAfterUndoOmitsDrawable(t *testing.T) {
	e := New(nil)
	e.Begin(scene.NewStroke(2, 2, 4, color.RGBA{0, 0, 0, 255}))
	e.Extend(30, 30)
	e.End()
	e.Undo()
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for _, d := range e.Drawables() {
		d.Render(img)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatalf("expected a blank canvas after undo")
		}
	}
}
