package drawio

import (
	"io"
	"time"

	"github.com/google/uuid"
	klotho_io "github.com/klothoplatform/archdraw/pkg/io"
	"github.com/klothoplatform/archdraw/pkg/ioutil"
)

const (
	DefaultHost        = "archdraw"
	DefaultAgent       = "archdraw"
	DefaultVersion     = "24.7.17"
	DefaultDiagramName = "Page-1"

	// modifiedFormat is the timestamp layout draw.io writes in the `modified` attribute.
	modifiedFormat = "2006-01-02T15:04:05.000Z"
)

type (
	// File is a complete .drawio document: the static envelope around a converted cell fragment.
	File struct {
		FPath string

		Host     string
		Agent    string
		Version  string
		Modified time.Time
		// ETag is an opaque token draw.io uses to detect concurrent modification.
		ETag string

		DiagramID   string
		DiagramName string
		Canvas      Canvas

		// Fragment is the draw.io cells, as returned by [Convert]. It is written verbatim.
		Fragment string
	}

	// Canvas holds the settings written on the mxGraphModel element.
	Canvas struct {
		DX, DY     int
		Grid       bool
		GridSize   int
		Guides     bool
		Tooltips   bool
		Connect    bool
		Arrows     bool
		Fold       bool
		Page       bool
		PageScale  float64
		PageWidth  int
		PageHeight int
		Math       bool
		Shadow     bool
	}
)

func DefaultCanvas() Canvas {
	return Canvas{
		DX:         1426,
		DY:         794,
		Grid:       true,
		GridSize:   10,
		Guides:     true,
		Tooltips:   true,
		Connect:    true,
		Arrows:     true,
		Fold:       true,
		Page:       true,
		PageScale:  1,
		PageWidth:  850,
		PageHeight: 1100,
	}
}

// NewFile creates a file at path for the fragment, with fresh metadata.
func NewFile(path, fragment string) *File {
	return &File{
		FPath:       path,
		Host:        DefaultHost,
		Agent:       DefaultAgent,
		Version:     DefaultVersion,
		Modified:    time.Now(),
		ETag:        uuid.NewString(),
		DiagramID:   uuid.NewString(),
		DiagramName: DefaultDiagramName,
		Canvas:      DefaultCanvas(),
		Fragment:    fragment,
	}
}

func (f *File) Path() string {
	return f.FPath
}

func (f *File) Clone() klotho_io.File {
	nf := *f
	return &nf
}

func (f *File) WriteTo(w io.Writer) (n int64, err error) {
	wh := ioutil.NewWriteToHelper(w, &n, &err)
	c := f.Canvas

	wh.Write("<mxfile")
	wh.WriteAttr("host", f.Host)
	wh.WriteAttr("modified", f.Modified.UTC().Format(modifiedFormat))
	wh.WriteAttr("agent", f.Agent)
	wh.WriteAttr("etag", f.ETag)
	wh.WriteAttr("version", f.Version)
	wh.WriteAttr("type", "device")
	wh.Write(">\n")

	wh.Write("  <diagram")
	wh.WriteAttr("id", f.DiagramID)
	wh.WriteAttr("name", f.DiagramName)
	wh.Write(">\n")

	wh.Write("    <mxGraphModel")
	wh.Writef(` dx="%d" dy="%d"`, c.DX, c.DY)
	wh.Writef(` grid="%s" gridSize="%d"`, flag(c.Grid), c.GridSize)
	wh.Writef(` guides="%s" tooltips="%s" connect="%s" arrows="%s" fold="%s"`,
		flag(c.Guides), flag(c.Tooltips), flag(c.Connect), flag(c.Arrows), flag(c.Fold))
	wh.Writef(` page="%s" pageScale="%g" pageWidth="%d" pageHeight="%d"`, flag(c.Page), c.PageScale, c.PageWidth, c.PageHeight)
	wh.Writef(` math="%s" shadow="%s"`, flag(c.Math), flag(c.Shadow))
	wh.Write(">\n")

	wh.Write("      <root>")
	wh.Write(f.Fragment)
	wh.Write("</root>\n")

	wh.Write("    </mxGraphModel>\n")
	wh.Write("  </diagram>\n")
	wh.Write("</mxfile>\n")
	return
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
