package formatter

import (
	"bytes"
	"io"

	"github.com/tgoram/jsonrec/record"
)

// millisecond precision; the offset is literal because the time is
// always converted to UTC first
const timestampLayout = "2006-01-02T15:04:05.000"
const timestampOffset = "+00:00"

// JSONFormatter renders one log record as one JSON object. Standard
// fields come first in the configured order, extra fields follow in
// insertion order, and the exception object (if any) comes last.
//
// Format is total: it never returns a non-nil error and never panics
// for any well-typed record. Values that cannot be represented in JSON
// degrade to their string form individually instead of failing the
// whole record.
//
// A JSONFormatter holds no per-call state and is safe for concurrent
// use by any number of goroutines.
type JSONFormatter struct {
	Config
	fields []string
}

// NewJSONFormatter creates a new JSON formatter. Unknown names in
// cfg.Fields are dropped silently here so that Format never has to
// deal with them.
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampKey == "" {
		cfg.TimestampKey = "timestamp"
	}

	selected := cfg.Fields
	if len(selected) == 0 {
		selected = DefaultFields
	}
	fields := make([]string, 0, len(selected))
	for _, name := range selected {
		if isReserved(name) {
			fields = append(fields, name)
		}
	}

	return &JSONFormatter{Config: cfg, fields: fields}
}

// isReserved reports whether name is one of the standard output fields
func isReserved(name string) bool {
	switch name {
	case "timestamp", "level", "logger", "message", "module", "function", "line":
		return true
	}
	return false
}

// Format formats a record as a JSON document without trailing newline
func (f *JSONFormatter) Format(rec *record.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it to the writer as one
// newline-terminated line
func (f *JSONFormatter) FormatTo(rec *record.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats a record into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatEntry(rec *record.Record, buf *bytes.Buffer) {
	f.formatToBuffer(rec, buf)
}

// formatToBuffer builds the JSON object into the buffer
func (f *JSONFormatter) formatToBuffer(rec *record.Record, buf *bytes.Buffer) {
	enc := jsonEncoder{
		buf:           buf,
		indent:        f.Indent,
		escapeUnicode: f.EscapeUnicode,
	}

	enc.beginObject()

	// Standard fields in configured order
	for _, name := range f.fields {
		switch name {
		case "timestamp":
			enc.key(f.TimestampKey)
			buf.WriteByte('"')
			buf.Write(rec.Time.UTC().AppendFormat(buf.AvailableBuffer(), timestampLayout))
			buf.WriteString(timestampOffset)
			buf.WriteByte('"')
			enc.needComma = true
		case "level":
			enc.key("level")
			enc.str(rec.Level.String())
		case "logger":
			enc.key("logger")
			enc.str(rec.Logger)
		case "message":
			enc.key("message")
			enc.str(rec.Message)
		case "module":
			enc.key("module")
			enc.str(rec.Source.Module)
		case "function":
			enc.key("function")
			enc.str(rec.Source.Function)
		case "line":
			enc.key("line")
			enc.int(int64(rec.Source.Line))
		}
	}

	// Extra fields in insertion order. Keys that collide with a reserved
	// name (or the timestamp key) keep the canonical value: the extra is
	// dropped. Later duplicates of an extra key are dropped too.
	for i, field := range rec.Extra {
		if isReserved(field.Key) || field.Key == f.TimestampKey {
			continue
		}
		if seenBefore(rec.Extra[:i], field.Key) {
			continue
		}
		enc.key(field.Key)
		enc.field(field)
	}

	if rec.Exception != nil {
		enc.key("exception")
		enc.exception(rec.Exception)
	}

	if len(rec.Stack) > 0 {
		enc.key("stack")
		enc.stringArray(rec.Stack)
	}

	enc.endObject()
}

// seenBefore reports whether key occurs in the already-emitted prefix
func seenBefore(prefix []record.Field, key string) bool {
	for _, f := range prefix {
		if f.Key == key {
			return true
		}
	}
	return false
}
