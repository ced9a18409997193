package main

import (
	"fmt"
	"os"

	"github.com/klothoplatform/archdraw/pkg/closenicely"
	"github.com/klothoplatform/archdraw/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Version = "0.1.0"

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &generateConfig{}
	root := &cobra.Command{
		Use:           "archdraw",
		Short:         "Draw an AWS architecture as a draw.io diagram",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := logging.LogOpts{
				Verbose:  cfg.verbose,
				Color:    cfg.color,
				Encoding: encoding(cfg.jsonLog),
				DefaultLevels: map[string]zapcore.Level{
					"io": zapcore.InfoLevel,
				},
			}.NewLogger()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			defer closenicely.FuncOrDebug(z.Sync)
			zap.ReplaceGlobals(z)

			err = generate(logging.WithLogger(cmd.Context(), z), *cfg, cmd.OutOrStdout())
			if err != nil {
				z.Error("Failed to generate diagram", zap.Error(err))
			}
			return err
		},
	}

	flags := root.Flags()
	flags.StringVarP(&cfg.output, "output", "o", defaultOutput, "Output .drawio file, relative to the working directory")
	flags.StringVarP(&cfg.input, "input", "i", "", "Architecture YAML file (defaults to the built-in serverless API)")
	flags.StringVar(&cfg.dot, "dot", "", "Also write the architecture as a Graphviz .gv file")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "Verbose flag")
	flags.BoolVar(&cfg.jsonLog, "json-log", false, "Output logs in JSON format.")
	flags.StringVar(&cfg.color, "color", "auto", "Colorize logs: auto, always or never")
	return root
}

func encoding(jsonLog bool) string {
	if jsonLog {
		return "json"
	}
	return "console"
}
