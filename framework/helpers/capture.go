package helpers

import (
	"bytes"
	"io"
	"os"
)

// CaptureOutput redirects the process-wide standard output to an in-memory
// buffer for the scope of fn, restores the original target afterward on every
// exit path, and returns the captured text.
func CaptureOutput(fn func()) (captured string, err error) {
	reader, writer, err := os.Pipe()
	if err != nil {
		return "", err
	}

	saved := os.Stdout
	os.Stdout = writer

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		_, _ = io.Copy(&buf, reader)
		close(done)
	}()

	defer func() {
		os.Stdout = saved
		_ = writer.Close()
		<-done
		_ = reader.Close()
		captured = buf.String()
	}()

	fn()
	return // the deferred restore fills in the captured text
}
