package ioutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type limitWriter struct {
	sb    strings.Builder
	limit int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.sb.Len()+len(p) > w.limit {
		return 0, errors.New("limit reached")
	}
	return w.sb.Write(p)
}

func TestWriteToHelper(t *testing.T) {
	assert := assert.New(t)

	var (
		sb  strings.Builder
		n   int64
		err error
	)
	wh := NewWriteToHelper(&sb, &n, &err)
	wh.Write("<diagram")
	wh.WriteAttr("name", `A & "B"`)
	wh.Writef(` grid="%d"`, 1)
	wh.Write("/>")

	assert.NoError(err)
	assert.Equal(`<diagram name="A &amp; &#34;B&#34;" grid="1"/>`, sb.String())
	assert.EqualValues(sb.Len(), n)
}

func TestWriteToHelper_stopsAfterError(t *testing.T) {
	assert := assert.New(t)

	w := &limitWriter{limit: 4}
	var (
		n   int64
		err error
	)
	wh := NewWriteToHelper(w, &n, &err)
	wh.Write("abc")
	wh.Write("defg")
	wh.Write("h")

	assert.EqualError(err, "limit reached")
	assert.Equal("abc", w.sb.String())
	assert.EqualValues(3, n)
}

func TestWriteToHelper_AddErr(t *testing.T) {
	assert := assert.New(t)

	var (
		sb  strings.Builder
		n   int64
		err error
	)
	wh := NewWriteToHelper(&sb, &n, &err)
	errA, errB := errors.New("a"), errors.New("b")
	wh.AddErr(errA)
	wh.AddErr(errB)
	wh.Write("ignored")

	assert.ErrorIs(err, errA)
	assert.ErrorIs(err, errB)
	assert.Empty(sb.String())
}
