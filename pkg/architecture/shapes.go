package architecture

import (
	"sort"

	"github.com/klothoplatform/archdraw/pkg/diagram"
)

type Shape struct {
	Name          string
	Width, Height float64
	Style         diagram.Style
}

const (
	iconSize = 78

	TextShape = "text"
)

var shapes = map[string]Shape{
	"api_gateway": awsIcon("api_gateway", "#FF4F8B", "#BC1356"),
	"lambda":      awsIcon("lambda", "#F78E04", "#D05C17"),
	"dynamodb":    awsIcon("dynamodb", "#4D72F3", "#3334B9"),
	"s3":          awsIcon("s3", "#60A337", "#277116"),
	"sqs":         awsIcon("sqs", "#FF4F8B", "#BC1356"),
	TextShape: {
		Name:   TextShape,
		Width:  480,
		Height: 40,
		Style: diagram.NewStyle(
			"html", "1",
			"align", "center",
			"verticalAlign", "middle",
			"fontSize", "20",
			"fontStyle", "1",
			"strokeColor", "none",
			"fillColor", "none",
			"whiteSpace", "wrap",
		),
	},
}

// EdgeStyle is applied to every edge before any per-edge overrides.
var EdgeStyle = diagram.NewStyle(
	"edgeStyle", "orthogonalEdgeStyle",
	"rounded", "0",
	"orthogonalLoop", "1",
	"html", "1",
	"endArrow", "classic",
	"fontSize", "11",
)

func awsIcon(name, gradient, fill string) Shape {
	return Shape{
		Name:   name,
		Width:  iconSize,
		Height: iconSize,
		Style: diagram.NewStyle(
			"sketch", "0",
			"outlineConnect", "0",
			"fontColor", "#232F3E",
			"gradientColor", gradient,
			"gradientDirection", "north",
			"fillColor", fill,
			"strokeColor", "#ffffff",
			"dashed", "0",
			"verticalLabelPosition", "bottom",
			"verticalAlign", "top",
			"align", "center",
			"html", "1",
			"fontSize", "12",
			"fontStyle", "0",
			"aspect", "fixed",
			"shape", "mxgraph.aws4.resourceIcon",
			"resIcon", "mxgraph.aws4."+name,
		),
	}
}

func LookupShape(name string) (Shape, bool) {
	s, ok := shapes[name]
	return s, ok
}

func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
