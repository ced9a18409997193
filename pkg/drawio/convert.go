package drawio

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/klothoplatform/archdraw/pkg/diagram"
)

const (
	CellTag     = "mxCell"
	GeometryTag = "mxGeometry"
	StyleAttr   = "style"
)

// geometryFields are the geometry attributes whose native names carry [diagram.GeometryAttrPrefix].
var geometryFields = map[string]struct{}{
	"x":      {},
	"y":      {},
	"width":  {},
	"height": {},
}

// Convert rewrites a document in the diagram model's native dialect into a draw.io fragment: the cells as
// sibling elements, without a prolog or enclosing root.
func Convert(native string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(native); err != nil {
		return "", fmt.Errorf("could not parse native diagram: %w", err)
	}
	fragment, err := ConvertDocument(doc).WriteToString()
	if err != nil {
		return "", fmt.Errorf("could not write draw.io fragment: %w", err)
	}
	return fragment, nil
}

// ConvertDocument returns a new document containing the draw.io cells for every native cell in doc.
// Any container elements around the cells are dropped.
func ConvertDocument(doc *etree.Document) *etree.Document {
	out := etree.NewDocument()
	out.WriteSettings.CanonicalAttrVal = true
	for _, native := range nativeCells(&doc.Element) {
		convertCell(&out.Element, native)
	}
	return out
}

func nativeCells(el *etree.Element) []*etree.Element {
	var cells []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == diagram.CellTag {
			cells = append(cells, child)
		} else {
			cells = append(cells, nativeCells(child)...)
		}
	}
	return cells
}

func convertCell(parent, native *etree.Element) {
	cell := parent.CreateElement(CellTag)
	for _, a := range native.Attr {
		cell.CreateAttr(attrKey(a), a.Value)
	}
	for _, child := range native.ChildElements() {
		switch {
		case child.Tag == diagram.GeometryTag:
			convertGeometry(cell, child)

		case isStyleDescriptor(child):
			if style := flattenStyle(child); style != "" {
				cell.CreateAttr(StyleAttr, style)
			}

		default:
			cell.AddChild(child.Copy())
		}
	}
}

func convertGeometry(cell, native *etree.Element) {
	geo := cell.CreateElement(GeometryTag)
	for _, a := range native.Attr {
		key := attrKey(a)
		if bare := strings.TrimPrefix(key, diagram.GeometryAttrPrefix); bare != key {
			if _, ok := geometryFields[bare]; ok {
				key = bare
			}
		}
		geo.CreateAttr(key, a.Value)
	}
	for _, child := range native.ChildElements() {
		geo.AddChild(child.Copy())
	}
}

func isStyleDescriptor(el *etree.Element) bool {
	return el.SelectAttrValue(diagram.AsAttr, "") == diagram.StyleAs
}

// flattenStyle renders the properties of a style descriptor as `key=value;` pairs in document order.
// Values are not quoted; draw.io's style parser reads everything up to the `;`.
func flattenStyle(descriptor *etree.Element) string {
	var sb strings.Builder
	for _, a := range descriptor.Attr {
		if a.Space == "" && a.Key == diagram.AsAttr {
			continue
		}
		sb.WriteString(attrKey(a))
		sb.WriteByte('=')
		sb.WriteString(a.Value)
		sb.WriteByte(';')
	}
	return sb.String()
}

func attrKey(a etree.Attr) string {
	if a.Space == "" {
		return a.Key
	}
	return a.Space + ":" + a.Key
}
