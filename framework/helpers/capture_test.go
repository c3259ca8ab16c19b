package helpers

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureOutputReturnsCapturedText(t *testing.T) {
	out, err := CaptureOutput(func() {
		fmt.Println("hello")
		fmt.Print("world")
	})
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", out)
}

func TestCaptureOutputRestoresStdout(t *testing.T) {
	saved := os.Stdout
	_, err := CaptureOutput(func() {})
	require.NoError(t, err)
	assert.Same(t, saved, os.Stdout)
}

func TestCaptureOutputRestoresStdoutOnPanic(t *testing.T) {
	saved := os.Stdout
	assert.Panics(t, func() {
		_, _ = CaptureOutput(func() { panic("boom") })
	})
	assert.Same(t, saved, os.Stdout)
}
