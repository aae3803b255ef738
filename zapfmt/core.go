package zapfmt

import (
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/tgoram/jsonrec/formatter"
	"github.com/tgoram/jsonrec/record"
)

// Core is a zapcore.Core that renders entries through the JSON record
// formatter and writes them to a WriteSyncer.
type Core struct {
	zapcore.LevelEnabler

	json  *formatter.JSONFormatter
	ws    zapcore.WriteSyncer
	extra []record.Field
}

// NewCore creates a Core writing rendered lines to ws.
func NewCore(cfg formatter.Config, ws zapcore.WriteSyncer, enab zapcore.LevelEnabler) *Core {
	return &Core{
		LevelEnabler: enab,
		json:         formatter.NewJSONFormatter(cfg),
		ws:           ws,
	}
}

// With adds accumulated context fields to a clone of the core.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.extra = append(c.extra[:len(c.extra):len(c.extra)], convertFields(fields)...)
	return &clone
}

// Check adds the core to the checked entry when its level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and its fields as one JSON line.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	rec := record.GetRecord()
	defer record.PutRecord(rec)

	rec.Time = ent.Time
	rec.Level = convertLevel(ent.Level)
	rec.Logger = ent.LoggerName
	rec.Message = ent.Message
	if ent.Caller.Defined {
		rec.Source = record.SourceFromCaller(ent.Caller.File, ent.Caller.Function, ent.Caller.Line)
	}

	if len(c.extra) > 0 {
		rec.Extra = append(rec.Extra, c.extra...)
	}
	if len(fields) > 0 {
		rec.Extra = append(rec.Extra, convertFields(fields)...)
	}

	if ent.Stack != "" {
		rec.Stack = strings.Split(ent.Stack, "\n")
	}

	return c.json.FormatTo(rec, c.ws)
}

// Sync flushes the underlying writer.
func (c *Core) Sync() error {
	return c.ws.Sync()
}

// convertFields turns zap fields into record fields, preserving the
// call-site order. Fields nested under a zap namespace stay inside the
// namespace's map value.
func convertFields(fields []zapcore.Field) []record.Field {
	if len(fields) == 0 {
		return nil
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	out := make([]record.Field, 0, len(fields))
	for _, f := range fields {
		v, ok := enc.Fields[f.Key]
		if !ok {
			continue
		}
		// The map keeps one value per key; deleting after the read
		// makes a repeated key emit once instead of surfacing the
		// last value at every occurrence.
		delete(enc.Fields, f.Key)
		out = append(out, record.Any(f.Key, v))
	}
	return out
}

// convertLevel maps a zapcore.Level to a record.Level
func convertLevel(level zapcore.Level) record.Level {
	switch {
	case level <= zapcore.DebugLevel:
		return record.DebugLevel
	case level == zapcore.InfoLevel:
		return record.InfoLevel
	case level == zapcore.WarnLevel:
		return record.WarnLevel
	case level == zapcore.ErrorLevel:
		return record.ErrorLevel
	case level == zapcore.FatalLevel:
		return record.FatalLevel
	default: // DPanic and Panic
		return record.PanicLevel
	}
}
