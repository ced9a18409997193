package diagram

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Element and attribute names of the model's native XML encoding.
const (
	ModelTag    = "GraphDataModel"
	RootTag     = "root"
	CellTag     = "Cell"
	GeometryTag = "Geometry"
	ObjectTag   = "Object"

	// AsAttr names the field of the parent an encoded object is assigned to.
	AsAttr     = "as"
	GeometryAs = "geometry"
	StyleAs    = "style"

	// GeometryAttrPrefix is prepended to the position and size fields of an encoded geometry.
	GeometryAttrPrefix = "_"
)

// Document encodes the model into its native XML dialect. Tabs and line breaks in attribute values are
// written as character references so they survive attribute value normalization.
func (m *Model) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalAttrVal = true
	root := doc.CreateElement(ModelTag).CreateElement(RootTag)
	for _, c := range m.cells {
		encodeCell(root, c)
	}
	return doc
}

// Serialize renders the native XML dialect of the model as a string.
func (m *Model) Serialize() (string, error) {
	for _, c := range m.cells {
		if err := c.Style.Validate(); err != nil {
			return "", errors.Wrapf(err, "could not serialize cell %q", c.ID)
		}
	}
	doc := m.Document()
	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, "could not serialize diagram model")
	}
	m.log.Debug("serialized model", zap.Int("cells", len(m.cells)), zap.Int("bytes", len(s)))
	return s, nil
}

func encodeCell(parent *etree.Element, c *Cell) {
	el := parent.CreateElement(CellTag)
	el.CreateAttr("id", c.ID)
	if c.Value != "" {
		el.CreateAttr("value", c.Value)
	}
	if c.Vertex {
		el.CreateAttr("vertex", "1")
	}
	if c.Edge {
		el.CreateAttr("edge", "1")
	}
	if c.Parent != "" {
		el.CreateAttr("parent", c.Parent)
	}
	if c.Source != "" {
		el.CreateAttr("source", c.Source)
	}
	if c.Target != "" {
		el.CreateAttr("target", c.Target)
	}

	if c.Geometry != nil {
		encodeGeometry(el, c.Geometry)
	}
	if len(c.Style) > 0 {
		style := el.CreateElement(ObjectTag)
		for _, p := range c.Style {
			style.CreateAttr(p.Key, p.Value)
		}
		style.CreateAttr(AsAttr, StyleAs)
	}
}

func encodeGeometry(parent *etree.Element, g *Geometry) {
	el := parent.CreateElement(GeometryTag)
	if g.Relative {
		el.CreateAttr("relative", "1")
	} else {
		el.CreateAttr(GeometryAttrPrefix+"x", formatNumber(g.X))
		el.CreateAttr(GeometryAttrPrefix+"y", formatNumber(g.Y))
		el.CreateAttr(GeometryAttrPrefix+"width", formatNumber(g.Width))
		el.CreateAttr(GeometryAttrPrefix+"height", formatNumber(g.Height))
	}
	el.CreateAttr(AsAttr, GeometryAs)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
