package architecture

import (
	"testing"

	"github.com/klothoplatform/archdraw/pkg/diagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_default(t *testing.T) {
	assert := assert.New(t)

	m, err := Build(Default())
	require.NoError(t, err)

	var vertices []string
	for _, c := range m.Vertices() {
		vertices = append(vertices, c.ID)
	}
	assert.Equal([]string{TitleID, "api-gateway", "lambda", "dynamodb"}, vertices)

	title, ok := m.Cell(TitleID)
	require.True(t, ok)
	assert.Equal("AWS Serverless Architecture", title.Value)

	lambda, ok := m.Cell("lambda")
	require.True(t, ok)
	assert.Equal(&diagram.Geometry{X: 240, Y: 120, Width: iconSize, Height: iconSize}, lambda.Geometry)
	icon, _ := lambda.Style.Get("resIcon")
	assert.Equal("mxgraph.aws4.lambda", icon)

	out, err := m.Outgoing("lambda")
	require.NoError(t, err)
	if assert.Len(out, 1) {
		assert.Equal("dynamodb", out[0].Target)
		assert.Equal("reads/writes", out[0].Value)
		assert.Equal(EdgeStyle, out[0].Style)
	}
}

func TestBuild_styleOverrides(t *testing.T) {
	assert := assert.New(t)

	arch := &Architecture{
		Nodes: []Node{
			{ID: "q", Name: "Queue", Shape: "sqs", Style: diagram.NewStyle("fillColor", "#000000", "opacity", "50")},
			{ID: "fn", Name: "Fn", Shape: "lambda"},
		},
		Edges: []Edge{
			{ID: "q-fn", From: "q", To: "fn", Style: diagram.NewStyle("dashed", "1")},
		},
	}
	m, err := Build(arch)
	require.NoError(t, err)

	_, hasTitle := m.Cell(TitleID)
	assert.False(hasTitle)

	q, _ := m.Cell("q")
	fill, _ := q.Style.Get("fillColor")
	assert.Equal("#000000", fill)
	last := q.Style[q.Style.Len()-1]
	assert.Equal(diagram.StyleProperty{Key: "opacity", Value: "50"}, last)
	assert.EqualValues(iconSize, q.Geometry.Width)

	sqs, _ := LookupShape("sqs")
	fill, _ = sqs.Style.Get("fillColor")
	assert.Equal("#BC1356", fill, "catalog style must not be modified")

	e, _ := m.Cell("q-fn")
	dashed, _ := e.Style.Get("dashed")
	assert.Equal("1", dashed)
}

func TestBuild_errors(t *testing.T) {
	tests := []struct {
		name string
		arch *Architecture
	}{
		{
			name: "unknown shape",
			arch: &Architecture{Nodes: []Node{{ID: "a", Name: "A", Shape: "nope"}}},
		},
		{
			name: "dangling edge",
			arch: &Architecture{
				Nodes: []Node{{ID: "a", Name: "A", Shape: "lambda"}},
				Edges: []Edge{{ID: "a-b", From: "a", To: "b"}},
			},
		},
		{
			name: "duplicate node",
			arch: &Architecture{Nodes: []Node{
				{ID: "a", Name: "A", Shape: "lambda"},
				{ID: "a", Name: "A", Shape: "lambda"},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.arch)
			assert.Error(t, err)
		})
	}
}

func TestShapeNames(t *testing.T) {
	assert.Equal(t, []string{"api_gateway", "dynamodb", "lambda", "s3", "sqs", "text"}, ShapeNames())
}
