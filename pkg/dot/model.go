package dot

import (
	"errors"
	"fmt"
	"io"

	"github.com/klothoplatform/archdraw/pkg/diagram"
)

func vertexAttributes(c *diagram.Cell) map[string]string {
	a := map[string]string{
		"label": c.Value,
		"shape": "box",
	}
	if fill, ok := c.Style.Get("fillColor"); ok && fill != "none" {
		a["style"] = "filled"
		a["fillcolor"] = fill
		a["fontcolor"] = "white"
	}
	if c.Geometry != nil && !c.Geometry.Relative {
		// pin the node where it sits on the draw.io page, 72 points per inch
		a["pos"] = fmt.Sprintf("%g,%g!", c.Geometry.X/72, -c.Geometry.Y/72)
	}
	return a
}

func edgeAttributes(c *diagram.Cell) map[string]string {
	a := map[string]string{}
	if c.Value != "" {
		a["label"] = c.Value
	}
	if dashed, _ := c.Style.Get("dashed"); dashed == "1" {
		a["style"] = "dashed"
	}
	return a
}

// ModelToDot renders the vertices and edges of m as a Graphviz digraph, in model order.
func ModelToDot(m *diagram.Model, out io.Writer) error {
	var errs error
	printf := func(s string, args ...any) {
		_, err := fmt.Fprintf(out, s, args...)
		errs = errors.Join(errs, err)
	}
	printf("digraph {\n  rankdir = LR\n")
	for _, c := range m.Vertices() {
		printf("  %q%s;\n", c.ID, AttributesToString(vertexAttributes(c)))
	}
	for _, c := range m.Edges() {
		printf("  %q -> %q%s;\n", c.Source, c.Target, AttributesToString(edgeAttributes(c)))
	}
	printf("}\n")
	return errs
}
