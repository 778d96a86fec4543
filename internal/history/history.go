// Package history tracks the marks committed to a sketch and provides
// linear undo and redo over them.
package history

import (
	"github.com/example/stickerpad/internal/scene"
)

// Engine owns every drawable on the canvas. Committed marks live on one
// stack and undone marks on another; at most one committed mark is also the
// in-progress gesture. Moving a mark between the stacks never copies or
// rebuilds it, so undoing and redoing a half-megabyte stroke is free.
//
// Engine is not safe for concurrent use. The event loop that feeds it is
// single threaded, and the change callback runs synchronously inside each
// mutating call.
type Engine struct {
	committed  []scene.Drawable
	undone     []scene.Drawable
	inProgress scene.Drawable
	onChange   func()
}

// New returns an empty engine. onChange fires after every state change and
// may be nil.
func New(onChange func()) *Engine {
	return &Engine{onChange: onChange}
}

func (e *Engine) notify() {
	if e.onChange != nil {
		e.onChange()
	}
}

// Begin starts a gesture with d: the drawable is committed immediately so a
// single render pass covers finished and in-flight marks alike, and the redo
// stack is discarded. If a gesture is already active it is ended first, as
// if the previous release event had been delivered.
func (e *Engine) Begin(d scene.Drawable) {
	if d == nil {
		return
	}
	e.inProgress = d
	e.committed = append(e.committed, d)
	e.undone = e.undone[:0]
	e.notify()
}

// Extend forwards the pointer position to the in-progress drawable. Without
// an active gesture it does nothing.
func (e *Engine) Extend(x, y int) {
	if e.inProgress == nil {
		return
	}
	e.inProgress.Extend(x, y)
	e.notify()
}

// End finishes the active gesture. The drawable stays committed; only the
// in-progress reference is dropped. Without an active gesture it does
// nothing.
func (e *Engine) End() {
	if e.inProgress == nil {
		return
	}
	e.inProgress = nil
	e.notify()
}

// Undo moves the most recent committed drawable onto the undone stack. If
// that drawable is the in-progress gesture, the gesture ends with it. With
// nothing committed it does nothing.
func (e *Engine) Undo() {
	n := len(e.committed)
	if n == 0 {
		return
	}
	d := e.committed[n-1]
	e.committed = e.committed[:n-1]
	e.undone = append(e.undone, d)
	if d == e.inProgress {
		e.inProgress = nil
	}
	e.notify()
}

// Redo moves the most recently undone drawable back onto the committed
// stack. With nothing undone it does nothing.
func (e *Engine) Redo() {
	n := len(e.undone)
	if n == 0 {
		return
	}
	d := e.undone[n-1]
	e.undone = e.undone[:n-1]
	e.committed = append(e.committed, d)
	e.notify()
}

// Clear discards both stacks and any active gesture in one step.
func (e *Engine) Clear() {
	e.committed = nil
	e.undone = nil
	e.inProgress = nil
	e.notify()
}

// CanUndo reports whether Undo would change anything.
func (e *Engine) CanUndo() bool { return len(e.committed) > 0 }

// CanRedo reports whether Redo would change anything.
func (e *Engine) CanRedo() bool { return len(e.undone) > 0 }

// Drawing reports whether a gesture is active.
func (e *Engine) Drawing() bool { return e.inProgress != nil }

// Drawables returns the committed drawables in insertion order. The slice is
// a copy; the drawables are shared.
func (e *Engine) Drawables() []scene.Drawable {
	out := make([]scene.Drawable, len(e.committed))
	copy(out, e.committed)
	return out
}
