package dot

import (
	"strings"
	"testing"

	"github.com/klothoplatform/archdraw/pkg/diagram"
	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesToString(t *testing.T) {
	tests := []struct {
		name    string
		attribs map[string]string
		want    string
	}{
		{name: "empty", want: ""},
		{name: "sorted", attribs: map[string]string{"shape": "box", "label": "Fn"}, want: ` [label="Fn", shape="box"]`},
		{name: "quotes escaped", attribs: map[string]string{"label": `say "hi"`}, want: ` [label="say \"hi\""]`},
		{name: "html label", attribs: map[string]string{"label": "<<b>Fn</b>>"}, want: ` [label=<<b>Fn</b>>]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AttributesToString(tt.attribs))
		})
	}
}

func TestModelToDot(t *testing.T) {
	m := diagram.NewModel()
	_, err := m.InsertVertex("", "api", "API", diagram.Geometry{X: 72, Y: 144, Width: 78, Height: 78}, diagram.NewStyle("fillColor", "#BC1356"))
	require.NoError(t, err)
	_, err = m.InsertVertex("", "fn", "Fn", diagram.Geometry{X: 144, Y: 144, Width: 78, Height: 78}, diagram.NewStyle("fillColor", "none"))
	require.NoError(t, err)
	_, err = m.InsertEdge("", "", "invokes", "api", "fn", diagram.NewStyle("dashed", "1"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, ModelToDot(m, &sb))

	want := dedent.Dedent(`
		digraph {
		  rankdir = LR
		  "api" [fillcolor="#BC1356", fontcolor="white", label="API", pos="1,-2!", shape="box", style="filled"];
		  "fn" [label="Fn", pos="2,-2!", shape="box"];
		  "api" -> "fn" [label="invokes", style="dashed"];
		}
		`)
	assert.Equal(t, strings.TrimPrefix(want, "\n"), sb.String())
}
