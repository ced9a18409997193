package diagram

import (
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	RootCellID      = "0"
	DefaultParentID = "1"

	edgeIDPrefix = "edge-"
)

type (
	Geometry struct {
		X, Y, Width, Height float64
		// Relative geometries are positioned relative to their cell's terminals, used for edges.
		Relative bool
	}

	// Cell is a single element of the diagram, either a vertex, an edge or a container (the root and layers).
	Cell struct {
		ID     string
		Value  string
		Parent string

		Vertex bool
		Edge   bool
		Source string
		Target string

		Geometry *Geometry
		Style    Style
	}

	// Model is a headless diagram model. Cells are kept in insertion order, which is the order they are serialized in,
	// while the connectivity of vertices is tracked in a directed graph whose edges carry the edge cells.
	Model struct {
		cells []*Cell
		index map[string]int
		graph graph.Graph[string, *Cell]
		log   *zap.Logger
	}
)

func NewModel() *Model {
	m := &Model{
		index: make(map[string]int),
		graph: graph.New(func(c *Cell) string { return c.ID }, graph.Directed()),
		log:   zap.L().Named("diagram"),
	}
	m.add(&Cell{ID: RootCellID})
	m.add(&Cell{ID: DefaultParentID, Parent: RootCellID})
	return m
}

// WithLogger replaces the logger used for debug output, mostly useful for tests.
func (m *Model) WithLogger(log *zap.Logger) *Model {
	m.log = log
	return m
}

func (m *Model) add(c *Cell) {
	m.index[c.ID] = len(m.cells)
	m.cells = append(m.cells, c)
}

func (m *Model) checkNew(id, parent string, style Style) error {
	if id == "" {
		return fmt.Errorf("cell id must not be empty")
	}
	if err := style.Validate(); err != nil {
		return fmt.Errorf("cell %q: %w", id, err)
	}
	if _, ok := m.index[id]; ok {
		return fmt.Errorf("cell %q: %w", id, graph.ErrVertexAlreadyExists)
	}
	if _, ok := m.index[parent]; !ok {
		return fmt.Errorf("parent %q of cell %q: %w", parent, id, graph.ErrVertexNotFound)
	}
	return nil
}

// InsertVertex adds a vertex cell under parent, or the default layer if parent is empty.
func (m *Model) InsertVertex(parent, id, value string, geo Geometry, style Style) (*Cell, error) {
	if parent == "" {
		parent = DefaultParentID
	}
	if err := m.checkNew(id, parent, style); err != nil {
		return nil, err
	}
	c := &Cell{
		ID:       id,
		Value:    value,
		Parent:   parent,
		Vertex:   true,
		Geometry: &geo,
		Style:    style.Clone(),
	}
	if err := m.graph.AddVertex(c); err != nil {
		return nil, fmt.Errorf("could not add vertex %q: %w", id, err)
	}
	m.add(c)
	m.log.Debug("inserted vertex", zap.Object("cell", c))
	return c, nil
}

// InsertEdge adds an edge cell from source to target. If id is empty, one is derived from the endpoints.
func (m *Model) InsertEdge(parent, id, value, source, target string, style Style) (*Cell, error) {
	if parent == "" {
		parent = DefaultParentID
	}
	if id == "" {
		id = fmt.Sprintf("%s%s-%s", edgeIDPrefix, source, target)
	}
	if err := m.checkNew(id, parent, style); err != nil {
		return nil, err
	}
	c := &Cell{
		ID:       id,
		Value:    value,
		Parent:   parent,
		Edge:     true,
		Source:   source,
		Target:   target,
		Geometry: &Geometry{Relative: true},
		Style:    style.Clone(),
	}
	if err := m.graph.AddEdge(source, target, graph.EdgeData(c)); err != nil {
		return nil, fmt.Errorf("could not add edge %q (%s -> %s): %w", id, source, target, err)
	}
	m.add(c)
	m.log.Debug("inserted edge", zap.Object("cell", c))
	return c, nil
}

// Cells returns every cell in insertion order, including the root and default layer.
func (m *Model) Cells() []*Cell {
	cells := make([]*Cell, len(m.cells))
	copy(cells, m.cells)
	return cells
}

func (m *Model) Cell(id string) (*Cell, bool) {
	i, ok := m.index[id]
	if !ok {
		return nil, false
	}
	return m.cells[i], true
}

func (m *Model) Vertices() []*Cell {
	return m.filter(func(c *Cell) bool { return c.Vertex })
}

func (m *Model) Edges() []*Cell {
	return m.filter(func(c *Cell) bool { return c.Edge })
}

func (m *Model) filter(keep func(*Cell) bool) []*Cell {
	var cells []*Cell
	for _, c := range m.cells {
		if keep(c) {
			cells = append(cells, c)
		}
	}
	return cells
}

// Outgoing returns the edge cells whose source is the vertex id, in insertion order.
func (m *Model) Outgoing(id string) ([]*Cell, error) {
	adj, err := m.graph.AdjacencyMap()
	if err != nil {
		return nil, err
	}
	targets, ok := adj[id]
	if !ok {
		return nil, fmt.Errorf("vertex %q: %w", id, graph.ErrVertexNotFound)
	}
	edges := make([]*Cell, 0, len(targets))
	for _, e := range targets {
		c, ok := e.Properties.Data.(*Cell)
		if !ok {
			return nil, fmt.Errorf("edge %s -> %s has no cell", e.Source, e.Target)
		}
		edges = append(edges, c)
	}
	sort.Slice(edges, func(i, j int) bool {
		return m.index[edges[i].ID] < m.index[edges[j].ID]
	})
	return edges, nil
}

func (c *Cell) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("id", c.ID)
	if c.Value != "" {
		enc.AddString("value", c.Value)
	}
	if c.Edge {
		enc.AddString("source", c.Source)
		enc.AddString("target", c.Target)
	}
	if len(c.Style) > 0 {
		enc.AddString("style", c.Style.String())
	}
	return nil
}
