package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// EntryLeveller is a zapcore.Core that applies a minimum level per logger name. A name matches its own level
// or, failing that, the nearest dotted ancestor's (`diagram.codec` falls back to `diagram`), then the "" entry.
// Loggers with no matching entry are left to the wrapped core.
type EntryLeveller struct {
	zapcore.Core

	levels map[string]zapcore.Level
}

func NewEntryLeveller(core zapcore.Core, levels map[string]zapcore.Level) *EntryLeveller {
	el := &EntryLeveller{Core: core, levels: make(map[string]zapcore.Level, len(levels))}
	for k, v := range levels {
		el.levels[k] = v
	}
	return el
}

func (el *EntryLeveller) With(f []zapcore.Field) zapcore.Core {
	return &EntryLeveller{
		Core:   el.Core.With(f),
		levels: el.levels,
	}
}

func (el *EntryLeveller) levelFor(name string) (zapcore.Level, bool) {
	for {
		if lvl, ok := el.levels[name]; ok {
			return lvl, true
		}
		if name == "" {
			return 0, false
		}
		i := strings.LastIndex(name, ".")
		if i < 0 {
			name = ""
		} else {
			name = name[:i]
		}
	}
}

func (el *EntryLeveller) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	lvl, ok := el.levelFor(e.LoggerName)
	if !ok {
		return el.Core.Check(e, ce)
	}
	if e.Level < lvl {
		return ce
	}
	return ce.AddCore(e, el)
}

func (el *EntryLeveller) Enabled(lvl zapcore.Level) bool {
	return true
}
