package core

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"cube-stack/editor"
)

var keyTable = map[glfw.Key]editor.Key{
	glfw.KeyQ:          editor.KeyQ,
	glfw.KeyR:          editor.KeyR,
	glfw.KeyEscape:     editor.KeyEscape,
	glfw.KeySpace:      editor.KeySpace,
	glfw.KeyBackspace:  editor.KeyBackspace,
	glfw.KeyLeftShift:  editor.KeyLeftShift,
	glfw.KeyRightShift: editor.KeyRightShift,
	glfw.KeyLeft:       editor.KeyLeft,
	glfw.KeyRight:      editor.KeyRight,
	glfw.KeyUp:         editor.KeyUp,
	glfw.KeyDown:       editor.KeyDown,
}

// TranslateKey maps a GLFW key to the editor's key set.
func TranslateKey(k glfw.Key) editor.Key {
	if ek, ok := keyTable[k]; ok {
		return ek
	}
	return editor.KeyUnknown
}

// TranslateAction maps a GLFW action to an editor action.
func TranslateAction(a glfw.Action) editor.Action {
	switch a {
	case glfw.Press:
		return editor.Press
	case glfw.Repeat:
		return editor.Repeat
	default:
		return editor.Release
	}
}
