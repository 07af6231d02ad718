package testutil

import (
	"bytes"

	"itw/internal/logging"
)

// BufferLogger returns a verbose logger writing every record to the returned buffer.
func BufferLogger() (*logging.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.New(logging.Options{
		Verbose:    true,
		StdStreams: true,
		Stdout:     &buf,
		Stderr:     &buf,
	}), &buf
}
