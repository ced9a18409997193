package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/klothoplatform/archdraw/pkg/architecture"
	"github.com/klothoplatform/archdraw/pkg/dot"
	"github.com/klothoplatform/archdraw/pkg/drawio"
	klotho_io "github.com/klothoplatform/archdraw/pkg/io"
	"github.com/klothoplatform/archdraw/pkg/logging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultOutput = "aws-architecture.drawio"

type generateConfig struct {
	output  string
	input   string
	dot     string
	verbose bool
	jsonLog bool
	color   string
}

func generate(ctx context.Context, cfg generateConfig, out io.Writer) error {
	log := logging.GetLogger(ctx).Named("generate")

	arch := architecture.Default()
	if cfg.input != "" {
		var err error
		arch, err = architecture.Load(cfg.input)
		if err != nil {
			return err
		}
	}

	model, err := architecture.Build(arch)
	if err != nil {
		return errors.Wrap(err, "failed to build diagram")
	}
	native, err := model.Serialize()
	if err != nil {
		return err
	}
	fragment, err := drawio.Convert(native)
	if err != nil {
		return errors.Wrap(err, "failed to convert diagram")
	}
	log.Debug("Converted diagram", zap.Int("native_bytes", len(native)), zap.Int("fragment_bytes", len(fragment)))

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not determine working directory: %w", err)
	}
	output := cfg.output
	if output == "" {
		output = defaultOutput
	}
	path := resolvePath(wd, output)

	// The diagram is written last so that it only exists once every other output did.
	var files []klotho_io.File
	if cfg.dot != "" {
		var gv strings.Builder
		if err := dot.ModelToDot(model, &gv); err != nil {
			return errors.Wrap(err, "failed to render graphviz")
		}
		files = append(files, &klotho_io.RawFile{FPath: cfg.dot, Content: []byte(gv.String())})
	}
	files = append(files, drawio.NewFile(output, fragment))
	if err := klotho_io.OutputTo(files, wd); err != nil {
		return errors.Wrap(err, "failed to write diagram")
	}
	log.Info("Wrote diagram", zap.String("path", path), zap.Int("cells", len(model.Cells())))

	_, err = color.New(color.FgHiGreen).Fprintf(out, "Diagram written to %s\n", path)
	return err
}

// resolvePath matches how [klotho_io.OutputTo] places a file relative to dest.
func resolvePath(dest, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dest, path)
}
