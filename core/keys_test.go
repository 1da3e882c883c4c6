package core

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"cube-stack/editor"
)

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, editor.KeySpace, TranslateKey(glfw.KeySpace))
	assert.Equal(t, editor.KeyRightShift, TranslateKey(glfw.KeyRightShift))
	assert.Equal(t, editor.KeyUp, TranslateKey(glfw.KeyUp))
	assert.Equal(t, editor.KeyUnknown, TranslateKey(glfw.KeyF5))
}

func TestTranslateAction(t *testing.T) {
	assert.Equal(t, editor.Press, TranslateAction(glfw.Press))
	assert.Equal(t, editor.Repeat, TranslateAction(glfw.Repeat))
	assert.Equal(t, editor.Release, TranslateAction(glfw.Release))
}
