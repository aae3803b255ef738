package slogfmt

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/tgoram/jsonrec/formatter"
	"github.com/tgoram/jsonrec/record"
)

// Handler is a slog.Handler that renders records through the JSON
// record formatter and writes them to w.
type Handler struct {
	w     io.Writer
	mu    *sync.Mutex
	json  *formatter.JSONFormatter
	level slog.Leveler
	name  string
	attrs []record.Field
	group string
}

// NewHandler creates a handler writing rendered lines to w. A nil
// level means slog.LevelInfo.
func NewHandler(w io.Writer, cfg formatter.Config, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		w:     w,
		mu:    &sync.Mutex{},
		json:  formatter.NewJSONFormatter(cfg),
		level: level,
	}
}

// WithLoggerName returns a handler whose records carry the given
// logger name; slog has no named loggers of its own.
func (h *Handler) WithLoggerName(name string) *Handler {
	clone := *h
	clone.name = name
	return &clone
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle converts the slog.Record and writes one rendered line.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	rec := record.GetRecord()
	defer record.PutRecord(rec)

	if !r.Time.IsZero() {
		rec.Time = r.Time
	}
	rec.Level = slogLevelToRecord(r.Level)
	rec.Logger = h.name
	rec.Message = r.Message
	rec.Source = record.SourceFromPC(r.PC)

	// Add pre-configured attrs
	if len(h.attrs) > 0 {
		rec.Extra = append(rec.Extra, h.attrs...)
	}

	// Add record attrs
	r.Attrs(func(a slog.Attr) bool {
		rec.Extra = appendAttr(rec.Extra, h.group, a)
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.json.FormatTo(rec, h.w)
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]record.Field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, h.group, a)
	}
	clone := *h
	clone.attrs = newAttrs
	return &clone
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if h.group != "" {
		clone.group = h.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// slogLevelToRecord converts a slog.Level to a record.Level.
func slogLevelToRecord(level slog.Level) record.Level {
	switch {
	case level >= slog.LevelError:
		return record.ErrorLevel
	case level >= slog.LevelWarn:
		return record.WarnLevel
	case level >= slog.LevelInfo:
		return record.InfoLevel
	default:
		return record.DebugLevel
	}
}

// appendAttr converts a slog.Attr and appends the resulting fields.
// Group attrs flatten into one field per member with the group name as
// a key prefix; empty groups and zero attrs are elided per the
// slog.Handler contract.
func appendAttr(fields []record.Field, group string, a slog.Attr) []record.Field {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		if len(members) == 0 {
			return fields
		}
		prefix := group
		if a.Key != "" {
			if prefix != "" {
				prefix = prefix + "." + a.Key
			} else {
				prefix = a.Key
			}
		}
		for _, m := range members {
			fields = appendAttr(fields, prefix, m)
		}
		return fields
	}

	if a.Equal(slog.Attr{}) {
		return fields
	}
	return append(fields, slogAttrToField(group, a))
}

// slogAttrToField converts a non-group slog.Attr to a record.Field,
// prepending the group prefix if present.
func slogAttrToField(group string, a slog.Attr) record.Field {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return record.Field{Key: key, Type: record.StringType, Str: a.Value.String()}
	case slog.KindInt64:
		return record.Field{Key: key, Type: record.Int64Type, Int64: a.Value.Int64()}
	case slog.KindFloat64:
		return record.Field{Key: key, Type: record.Float64Type, Float64: a.Value.Float64()}
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return record.Field{Key: key, Type: record.BoolType, Int64: val}
	case slog.KindTime:
		return record.Field{Key: key, Type: record.TimeType, Int64: a.Value.Time().UnixNano()}
	case slog.KindDuration:
		return record.Field{Key: key, Type: record.DurationType, Int64: int64(a.Value.Duration())}
	default:
		if err, ok := a.Value.Any().(error); ok {
			return record.Field{Key: key, Type: record.ErrorType, Str: err.Error()}
		}
		return record.Field{Key: key, Type: record.AnyType, Any: a.Value.Any()}
	}
}
