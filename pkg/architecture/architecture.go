package architecture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/iancoleman/strcase"
	"github.com/klothoplatform/archdraw/pkg/diagram"
	"gopkg.in/yaml.v3"
)

const TitleID = "title"

type (
	// Architecture is a set of cloud resources and the connections between them, with their positions on the page.
	Architecture struct {
		Title string `yaml:"title,omitempty"`
		Nodes []Node `yaml:"nodes"`
		Edges []Edge `yaml:"edges,omitempty"`
	}

	Node struct {
		// ID defaults to the kebab-cased Name.
		ID     string        `yaml:"id,omitempty"`
		Name   string        `yaml:"name"`
		Shape  string        `yaml:"shape"`
		X      float64       `yaml:"x"`
		Y      float64       `yaml:"y"`
		Width  float64       `yaml:"width,omitempty"`
		Height float64       `yaml:"height,omitempty"`
		Style  diagram.Style `yaml:"style,omitempty"`
	}

	Edge struct {
		// ID defaults to `<from>-<to>`.
		ID    string        `yaml:"id,omitempty"`
		From  string        `yaml:"from"`
		To    string        `yaml:"to"`
		Label string        `yaml:"label,omitempty"`
		Style diagram.Style `yaml:"style,omitempty"`
	}
)

// Default is the serverless API this tool draws when no architecture file is given.
func Default() *Architecture {
	arch := &Architecture{
		Title: "AWS Serverless Architecture",
		Nodes: []Node{
			{ID: "api-gateway", Name: "API Gateway", Shape: "api_gateway", X: 40, Y: 120},
			{ID: "lambda", Name: "Lambda", Shape: "lambda", X: 240, Y: 120},
			{ID: "dynamodb", Name: "DynamoDB", Shape: "dynamodb", X: 440, Y: 120},
		},
		Edges: []Edge{
			{From: "api-gateway", To: "lambda", Label: "invokes"},
			{From: "lambda", To: "dynamodb", Label: "reads/writes"},
		},
	}
	arch.ApplyDefaults()
	return arch
}

func Load(path string) (*Architecture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open architecture file: %w", err)
	}
	defer f.Close()
	arch, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not load architecture from %s: %w", path, err)
	}
	return arch, nil
}

func Parse(b []byte) (*Architecture, error) {
	return Decode(bytes.NewReader(b))
}

// Decode reads a YAML architecture, fills in defaults and validates it.
func Decode(r io.Reader) (*Architecture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var arch Architecture
	if err := dec.Decode(&arch); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("architecture is empty")
		}
		return nil, err
	}
	arch.ApplyDefaults()
	if err := arch.Validate(); err != nil {
		return nil, err
	}
	return &arch, nil
}

// ApplyDefaults fills in IDs and sizes that were left empty.
func (a *Architecture) ApplyDefaults() {
	for i := range a.Nodes {
		n := &a.Nodes[i]
		if n.ID == "" {
			n.ID = strcase.ToKebab(n.Name)
		}
		if shape, ok := LookupShape(n.Shape); ok {
			if n.Width == 0 {
				n.Width = shape.Width
			}
			if n.Height == 0 {
				n.Height = shape.Height
			}
		}
	}
	for i := range a.Edges {
		e := &a.Edges[i]
		if e.ID == "" {
			e.ID = e.From + "-" + e.To
		}
	}
}

// Validate reports every problem with the architecture, not just the first.
func (a *Architecture) Validate() error {
	var errs error
	ids := make(map[string]struct{}, len(a.Nodes))
	if a.Title != "" {
		ids[TitleID] = struct{}{}
	}
	for i, n := range a.Nodes {
		if n.Name == "" {
			errs = errors.Join(errs, fmt.Errorf("node %d: name is required", i))
		}
		if _, ok := LookupShape(n.Shape); !ok {
			errs = errors.Join(errs, fmt.Errorf("node %q: unknown shape %q (expected one of %v)", n.ID, n.Shape, ShapeNames()))
		}
		if n.ID == "" {
			continue
		}
		if _, dup := ids[n.ID]; dup {
			errs = errors.Join(errs, fmt.Errorf("node %q: duplicate id", n.ID))
		}
		ids[n.ID] = struct{}{}
	}
	// The title is a text cell, not a node, so it can't be connected.
	isTitle := func(id string) bool { return a.Title != "" && id == TitleID }
	for _, e := range a.Edges {
		if _, ok := ids[e.From]; !ok || isTitle(e.From) {
			errs = errors.Join(errs, fmt.Errorf("edge %q: unknown source node %q", e.ID, e.From))
		}
		if _, ok := ids[e.To]; !ok || isTitle(e.To) {
			errs = errors.Join(errs, fmt.Errorf("edge %q: unknown target node %q", e.ID, e.To))
		}
	}
	return errs
}
