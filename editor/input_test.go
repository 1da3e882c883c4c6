package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrowKeysMoveCursor(t *testing.T) {
	e := newEditor(t, 8)

	assert.True(t, e.HandleKey(KeyRight, Press))
	assert.False(t, e.HandleKey(KeyRight, Repeat))
	assert.True(t, e.HandleKey(KeyRight, Press))
	assert.True(t, e.HandleKey(KeyDown, Press))
	x, y := e.Cursor()
	assert.Equal(t, [2]int{2, 1}, [2]int{x, y})

	assert.True(t, e.HandleKey(KeyUp, Press))
	assert.True(t, e.HandleKey(KeyLeft, Press))
	x, y = e.Cursor()
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y})

	assert.False(t, e.HandleKey(KeyLeft, Release))
	x, y = e.Cursor()
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y})
}

func TestSpaceAndBackspaceEditCursorCell(t *testing.T) {
	e := newEditor(t, 4)
	e.SetActiveCell(2, 2)

	assert.True(t, e.HandleKey(KeySpace, Press))
	assert.False(t, e.HandleKey(KeySpace, Repeat))
	assert.True(t, e.HandleKey(KeySpace, Press))
	assert.Equal(t, 2, e.Grid().Height(2, 2))

	assert.True(t, e.HandleKey(KeyBackspace, Press))
	assert.Equal(t, 1, e.Grid().Height(2, 2))

	assert.False(t, e.HandleKey(KeySpace, Release))
	assert.Equal(t, 1, e.Grid().Height(2, 2))
}

func TestShiftKeyTogglesCopy(t *testing.T) {
	e := newEditor(t, 4)
	e.HandleKey(KeySpace, Press)

	assert.True(t, e.HandleKey(KeyRightShift, Press))
	assert.True(t, e.ShiftHeld())
	e.HandleKey(KeyRight, Press)
	assert.Equal(t, 1, e.Grid().Height(1, 0))

	assert.True(t, e.HandleKey(KeyLeftShift, Release))
	assert.False(t, e.ShiftHeld())
	e.SetActiveCell(0, 0)
	e.HandleKey(KeyDown, Press)
	assert.Equal(t, 0, e.Grid().Height(0, 1))
}

func TestResetAndQuitKeys(t *testing.T) {
	e := newEditor(t, 4)
	e.HandleKey(KeySpace, Press)
	e.HandleKey(KeyRight, Press)

	assert.True(t, e.HandleKey(KeyR, Press))
	assert.Equal(t, 0, e.Grid().Height(0, 0))
	x, y := e.Cursor()
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})

	assert.False(t, e.HandleKey(KeyR, Repeat), "reset fires once per press")
	assert.False(t, e.QuitRequested())
	assert.True(t, e.HandleKey(KeyQ, Press))
	assert.True(t, e.QuitRequested())
}

func TestUnknownKeyIgnored(t *testing.T) {
	e := newEditor(t, 4)
	assert.False(t, e.HandleKey(KeyUnknown, Press))
	assert.False(t, e.HandleKey(KeyUnknown, Action(42)))
}

func TestDragRotatesView(t *testing.T) {
	e := newEditor(t, 4)

	assert.False(t, e.HandleCursorPos(100, 0, false), "no drag yet")
	assert.True(t, e.HandleMouseButton(MouseLeft, Press, false))
	assert.True(t, e.Dragging())

	assert.True(t, e.HandleCursorPos(150, 20, false))
	assert.InDelta(t, 5.0, e.Angle(), 1e-4)

	assert.False(t, e.HandleMouseButton(MouseLeft, Release, false))
	assert.False(t, e.Dragging())
	assert.False(t, e.HandleCursorPos(300, 20, false))
	assert.InDelta(t, 5.0, e.Angle(), 1e-4)
}

func TestDragIgnoredOverGUI(t *testing.T) {
	e := newEditor(t, 4)

	assert.False(t, e.HandleMouseButton(MouseLeft, Press, true))
	assert.False(t, e.Dragging())

	e.HandleMouseButton(MouseLeft, Press, false)
	e.HandleCursorPos(10, 0, false)
	assert.False(t, e.HandleCursorPos(500, 0, true))
	e.HandleCursorPos(520, 0, false)
	assert.InDelta(t, 2.0+1.0, e.Angle(), 1e-4, "motion over the GUI is skipped, not accumulated")
}

func TestRightButtonDoesNotDrag(t *testing.T) {
	e := newEditor(t, 4)
	e.HandleMouseButton(MouseLeft, Press, false)
	assert.False(t, e.HandleMouseButton(MouseRight, Press, false))
	assert.False(t, e.Dragging())
}

func TestScrollZooms(t *testing.T) {
	e := newEditor(t, 4)

	assert.True(t, e.HandleScroll(0, 2))
	assert.InDelta(t, 1.1, e.Scale(), 1e-5)

	e.HandleScroll(3, 0)
	assert.InDelta(t, 1.1, e.Scale(), 1e-5, "horizontal scroll does not zoom")

	for i := 0; i < 100; i++ {
		e.HandleScroll(0, -1)
	}
	assert.Equal(t, float32(0.5), e.Scale())
}

func TestHeldKeysEditOnce(t *testing.T) {
	e := newEditor(t, 16)

	e.HandleKey(KeySpace, Press)
	for i := 0; i < 10; i++ {
		assert.False(t, e.HandleKey(KeySpace, Repeat))
	}
	assert.Equal(t, 1, e.Grid().Height(0, 0))

	e.HandleKey(KeyLeftShift, Press)
	e.HandleKey(KeyRight, Press)
	for i := 0; i < 10; i++ {
		assert.False(t, e.HandleKey(KeyRight, Repeat))
	}
	x, y := e.Cursor()
	assert.Equal(t, [2]int{1, 0}, [2]int{x, y})
	assert.Equal(t, 1, e.Grid().Height(1, 0))
	assert.Equal(t, 0, e.Grid().Height(2, 0), "held shift-move copies only once")
}

func TestKeyAndActionNames(t *testing.T) {
	assert.Equal(t, "backspace", KeyBackspace.String())
	assert.Equal(t, "unknown", Key(99).String())
	assert.Equal(t, "repeat", Repeat.String())
	assert.Equal(t, "release", Release.String())
}
