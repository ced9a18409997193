package io

import (
	"io"
)

type File interface {
	Path() string
	WriteTo(io.Writer) (int64, error)
	Clone() File
}

// RawFile is a file whose full content is already in memory.
type RawFile struct {
	FPath   string
	Content []byte
}

func (r *RawFile) Clone() File {
	nf := &RawFile{
		FPath:   r.FPath,
		Content: make([]byte, len(r.Content)),
	}
	copy(nf.Content, r.Content)
	return nf
}

func (r *RawFile) Path() string {
	return r.FPath
}

func (r *RawFile) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Content)
	return int64(n), err
}
