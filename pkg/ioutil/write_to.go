package ioutil

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

type (
	// WriteToHelper wraps an [io.Writer] together with the count and err of an [io.WriterTo] implementation.
	// Each write is delegated while there has been no error and updates count and err; after the first error,
	// writes are dropped.
	WriteToHelper struct {
		out   io.Writer
		count *int64
		err   *error
	}
)

// NewWriteToHelper creates a new WriteToHelper which delegates to out and updates count and err as needed.
//
//	func (f *MyFile) WriteTo(w io.Writer) (n int64, err error) {
//		wh := ioutil.NewWriteToHelper(w, &n, &err)
//		wh.Write("<doc")
//		wh.WriteAttr("name", f.Name)
//		wh.Write("/>")
//		return
//	}
func NewWriteToHelper(out io.Writer, count *int64, err *error) WriteToHelper {
	return WriteToHelper{
		out:   out,
		count: count,
		err:   err,
	}
}

// AddErr records err alongside any error already recorded.
func (w WriteToHelper) AddErr(err error) {
	*w.err = errors.Join(*w.err, err)
}

func (w WriteToHelper) Write(s string) {
	if *w.err != nil {
		return
	}
	count, err := io.WriteString(w.out, s)
	*w.count += int64(count)
	*w.err = err
}

func (w WriteToHelper) Writef(format string, a ...any) {
	if *w.err != nil {
		return
	}
	count, err := fmt.Fprintf(w.out, format, a...)
	*w.count += int64(count)
	*w.err = err
}

// WriteAttr writes ` key="value"` with value escaped for use in an XML attribute.
func (w WriteToHelper) WriteAttr(key, value string) {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(value)); err != nil {
		w.AddErr(err)
		return
	}
	w.Writef(` %s="%s"`, key, sb.String())
}
