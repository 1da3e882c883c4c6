package editor

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"

	"cube-stack/grid"
	"cube-stack/palette"
)

// Options tunes the editor. Zero fields take the values from DefaultOptions.
type Options struct {
	HeightMax         int
	ScaleMin          float32
	ScaleMax          float32
	RotateSensitivity float32 // degrees per pixel of horizontal drag
	ZoomStep          float32 // scale change per scroll unit
	DefaultColour     int     // colour written to every cell on reset
}

// DefaultOptions returns the stock editor tuning.
func DefaultOptions() Options {
	return Options{
		HeightMax:         5,
		ScaleMin:          0.5,
		ScaleMax:          2.0,
		RotateSensitivity: 0.1,
		ZoomStep:          0.05,
		DefaultColour:     0,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.HeightMax <= 0 {
		o.HeightMax = d.HeightMax
	}
	if o.ScaleMin <= 0 {
		o.ScaleMin = d.ScaleMin
	}
	if o.ScaleMax <= 0 {
		o.ScaleMax = d.ScaleMax
	}
	if o.ScaleMax < o.ScaleMin {
		o.ScaleMax = o.ScaleMin
	}
	if o.RotateSensitivity == 0 {
		o.RotateSensitivity = d.RotateSensitivity
	}
	if o.ZoomStep == 0 {
		o.ZoomStep = d.ZoomStep
	}
	return o
}

// ColourError reports a colour index outside the palette. SetActiveColour
// panics with it.
type ColourError struct {
	Index int
}

func (e *ColourError) Error() string {
	return fmt.Sprintf("editor: colour index %d outside palette [0, %d)", e.Index, palette.Size)
}

// Editor owns the grid together with the cursor, the active colour and the
// view parameters. It is driven from a single goroutine.
type Editor struct {
	grid *grid.Grid
	opts Options

	cursorX, cursorY int
	colour           int
	angle            float32
	scale            float32
	shift            bool

	// Mouse drag tracking for RotateView.
	dragging bool
	lastX    float64

	quit bool
}

// New wraps g and puts everything into its initial state, clearing g.
func New(g *grid.Grid, opts Options) *Editor {
	e := &Editor{grid: g, opts: opts.withDefaults()}
	e.ResetState()
	return e
}

// Grid returns the edited grid. Callers must treat it as read-only.
func (e *Editor) Grid() *grid.Grid { return e.grid }

// Cursor returns the selected cell.
func (e *Editor) Cursor() (x, y int) { return e.cursorX, e.cursorY }

// ActiveColour returns the colour index applied by edits.
func (e *Editor) ActiveColour() int { return e.colour }

// HeightMax returns the stack height ceiling.
func (e *Editor) HeightMax() int { return e.opts.HeightMax }

// Angle returns the view rotation about the vertical axis, in degrees.
func (e *Editor) Angle() float32 { return e.angle }

// Scale returns the view zoom factor.
func (e *Editor) Scale() float32 { return e.scale }

// ShiftHeld reports whether cursor moves currently copy cells.
func (e *Editor) ShiftHeld() bool { return e.shift }

// QuitRequested reports whether the quit key was pressed.
func (e *Editor) QuitRequested() bool { return e.quit }

// RequestQuit asks the main loop to stop.
func (e *Editor) RequestQuit() { e.quit = true }

// IncrementCell adds one cube to (x, y), saturating at HeightMax, and paints
// the cell with the active colour even when the height did not change.
func (e *Editor) IncrementCell(x, y int) {
	e.writeCell(x, y, e.grid.Height(x, y)+1)
}

// DecrementCell removes one cube from (x, y), flooring at 0, and paints the
// cell with the active colour even when it was already empty.
func (e *Editor) DecrementCell(x, y int) {
	e.writeCell(x, y, e.grid.Height(x, y)-1)
}

func (e *Editor) writeCell(x, y, h int) {
	h = clamp(h, 0, e.opts.HeightMax)
	e.grid.SetHeight(x, y, h)
	e.grid.SetColour(x, y, e.colour)
}

// CopyCell copies height and colour of the source cell onto the destination.
func (e *Editor) CopyCell(srcX, srcY, dstX, dstY int) {
	h := e.grid.Height(srcX, srcY)
	c := e.grid.Colour(srcX, srcY)
	if srcX == dstX && srcY == dstY {
		return
	}
	e.grid.SetHeight(dstX, dstY, h)
	e.grid.SetColour(dstX, dstY, c)
}

// SetActiveCell moves the cursor to (x, y). The cell must be in bounds.
func (e *Editor) SetActiveCell(x, y int) {
	if !e.grid.InBounds(x, y) {
		panic(&grid.BoundsError{X: x, Y: y, Dim: e.grid.Dim()})
	}
	e.cursorX, e.cursorY = x, y
}

// MoveCursor shifts the cursor by (dx, dy), stopping at the grid edges. With
// shift held the cell under the cursor is copied to the destination first.
func (e *Editor) MoveCursor(dx, dy int) {
	last := e.grid.Dim() - 1
	nx := clamp(e.cursorX+dx, 0, last)
	ny := clamp(e.cursorY+dy, 0, last)
	if e.shift {
		e.CopyCell(e.cursorX, e.cursorY, nx, ny)
	}
	e.SetActiveCell(nx, ny)
}

// SetActiveColour selects the colour for future edits. If the cursor stands
// on a non-empty stack, that stack is recoloured immediately.
func (e *Editor) SetActiveColour(index int) {
	if !palette.Valid(index) {
		panic(&ColourError{Index: index})
	}
	e.colour = index
	if e.grid.Height(e.cursorX, e.cursorY) > 0 {
		e.grid.SetColour(e.cursorX, e.cursorY, index)
	}
	slog.Debug("active colour changed", "colour", index, "x", e.cursorX, "y", e.cursorY)
}

// AdjustZoom changes the view scale by delta within [ScaleMin, ScaleMax].
func (e *Editor) AdjustZoom(delta float32) {
	e.scale = clamp(e.scale+delta, e.opts.ScaleMin, e.opts.ScaleMax)
}

// RotateView turns the view by units times the rotate sensitivity. The angle
// is kept in [0, 360).
func (e *Editor) RotateView(units float32) {
	a := math.Mod(float64(e.angle+units*e.opts.RotateSensitivity), 360)
	if a < 0 {
		a += 360
	}
	e.angle = float32(a)
}

// SetShift sets the copy-on-move modifier.
func (e *Editor) SetShift(held bool) { e.shift = held }

// ResetState restores the cursor, colour, view and modifiers to their initial
// values and clears the grid. The scale starts at 1 or the nearest bound.
func (e *Editor) ResetState() {
	e.cursorX, e.cursorY = 0, 0
	e.colour = 0
	e.scale = clamp(1, e.opts.ScaleMin, e.opts.ScaleMax)
	e.angle = 0
	e.shift = false
	e.dragging = false
	e.grid.Reset(e.opts.DefaultColour)
	slog.Debug("editor reset", "dim", e.grid.Dim())
}

func clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
