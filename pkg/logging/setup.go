package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// LevelEnvVar overrides levels per logger name, for example `LOG_LEVEL=diagram=debug,io=warn`.
const LevelEnvVar = "LOG_LEVEL"

type LogOpts struct {
	Verbose bool
	// Color is one of "auto" (the default), "always"/"on" or "never"/"off".
	Color         string
	Encoding      string
	DefaultLevels map[string]zapcore.Level
}

func (opts LogOpts) useColor() bool {
	switch opts.Color {
	case "always", "on":
		return true
	case "never", "off":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

func (opts LogOpts) Encoder() (zapcore.Encoder, error) {
	switch opts.Encoding {
	case "json":
		if opts.Verbose {
			return zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig()), nil
		}
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil

	case "console", "":
		color := opts.useColor()
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = TimeOffsetFormatter(time.Now(), color)
		if color {
			cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		if !opts.Verbose {
			cfg.CallerKey = zapcore.OmitKey
		}
		return zapcore.NewConsoleEncoder(cfg), nil

	default:
		return nil, fmt.Errorf("unknown log encoding %q", opts.Encoding)
	}
}

// Levels returns the per-logger levels, taken from [LevelEnvVar] when it is set and DefaultLevels otherwise.
func (opts LogOpts) Levels() map[string]zapcore.Level {
	if levelEnv, ok := os.LookupEnv(LevelEnvVar); ok {
		return ParseLevels(levelEnv)
	}
	return opts.DefaultLevels
}

// ParseLevels parses comma-separated `name=level` pairs, skipping malformed entries.
func ParseLevels(s string) map[string]zapcore.Level {
	values := strings.Split(s, ",")
	levels := make(map[string]zapcore.Level, len(values))
	for _, v := range values {
		name, lvl, ok := strings.Cut(strings.TrimSpace(v), "=")
		if !ok {
			continue
		}
		level, err := zapcore.ParseLevel(lvl)
		if err != nil {
			continue
		}
		levels[name] = level
	}
	return levels
}

func (opts LogOpts) NewCore(w zapcore.WriteSyncer) (zapcore.Core, error) {
	enc, err := opts.Encoder()
	if err != nil {
		return nil, err
	}

	leveller := zap.NewAtomicLevel()
	if opts.Verbose {
		leveller.SetLevel(zap.DebugLevel)
	} else {
		leveller.SetLevel(zap.InfoLevel)
	}

	core := zapcore.NewCore(enc, w, leveller)
	if levels := opts.Levels(); len(levels) > 0 {
		core = NewEntryLeveller(core, levels)
	}
	return core, nil
}

func (opts LogOpts) NewLogger() (*zap.Logger, error) {
	core, err := opts.NewCore(zapcore.Lock(os.Stderr))
	if err != nil {
		return nil, err
	}
	var zapOpts []zap.Option
	if opts.Verbose {
		zapOpts = append(zapOpts, zap.AddCaller())
	}
	return zap.New(core, zapOpts...), nil
}

// TimeOffsetFormatter returns a time encoder that formats the time as an offset from the start time.
// This is meant for short CLI runs; long offsets are shown in minutes.
func TimeOffsetFormatter(start time.Time, color bool) zapcore.TimeEncoder {
	var colStart = "\x1b[90m"
	var colEnd = "\x1b[0m"
	if !color {
		colStart = ""
		colEnd = ""
	}
	return func(t time.Time, e zapcore.PrimitiveArrayEncoder) {
		diff := t.Sub(start)
		switch {
		case diff < time.Second:
			e.AppendString(fmt.Sprintf(" %s%3dms%s", colStart, diff.Milliseconds(), colEnd))
		case diff < 5*time.Minute:
			e.AppendString(fmt.Sprintf("%s%5.1fs%s", colStart, diff.Seconds(), colEnd))
		default:
			e.AppendString(fmt.Sprintf("%s%5.1fm%s", colStart, diff.Minutes(), colEnd))
		}
	}
}
