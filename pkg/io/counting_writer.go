package io

import "io"

// CountingWriter tallies the bytes successfully written to Delegate.
type CountingWriter struct {
	Delegate     io.Writer
	BytesWritten int64
}

func (w *CountingWriter) Write(p []byte) (int, error) {
	n, err := w.Delegate.Write(p)
	w.BytesWritten += int64(n)
	return n, err
}
