package architecture

import (
	"fmt"

	"github.com/klothoplatform/archdraw/pkg/diagram"
	"go.uber.org/zap"
)

// titleGeometry places the title above the default row of icons.
var titleGeometry = diagram.Geometry{X: 20, Y: 20, Width: 520, Height: 40}

// Build populates a new diagram model with the architecture's title, nodes and edges, in that order.
func Build(a *Architecture) (*diagram.Model, error) {
	log := zap.L().Named("architecture")
	m := diagram.NewModel()

	if a.Title != "" {
		text, _ := LookupShape(TextShape)
		if _, err := m.InsertVertex("", TitleID, a.Title, titleGeometry, text.Style); err != nil {
			return nil, fmt.Errorf("could not add title: %w", err)
		}
	}

	for _, n := range a.Nodes {
		shape, ok := LookupShape(n.Shape)
		if !ok {
			return nil, fmt.Errorf("node %q: unknown shape %q", n.ID, n.Shape)
		}
		geo := diagram.Geometry{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
		if geo.Width == 0 {
			geo.Width = shape.Width
		}
		if geo.Height == 0 {
			geo.Height = shape.Height
		}
		if _, err := m.InsertVertex("", n.ID, n.Name, geo, shape.Style.Merge(n.Style)); err != nil {
			return nil, fmt.Errorf("could not add node: %w", err)
		}
	}

	for _, e := range a.Edges {
		if _, err := m.InsertEdge("", e.ID, e.Label, e.From, e.To, EdgeStyle.Merge(e.Style)); err != nil {
			return nil, fmt.Errorf("could not add edge: %w", err)
		}
	}

	log.Debug("built architecture",
		zap.String("title", a.Title),
		zap.Int("nodes", len(a.Nodes)),
		zap.Int("edges", len(a.Edges)),
	)
	return m, nil
}
