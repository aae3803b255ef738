package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/tgoram/jsonrec/record"
)

// Formatter defines the interface for log record formatters
type Formatter interface {
	// Format formats a log record into bytes
	Format(rec *record.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log record and writes it directly to the writer
	FormatTo(rec *record.Record, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry formats a log record into the given buffer.
	FormatEntry(rec *record.Record, buf *bytes.Buffer)
}

// DefaultFields is the canonical set and order of standard output fields.
var DefaultFields = []string{
	"timestamp",
	"level",
	"logger",
	"message",
	"module",
	"function",
	"line",
}

// Config holds formatter configuration
type Config struct {
	// Fields selects and orders the standard output fields. Empty means
	// the full default set. Unknown names are dropped at construction
	// time so that formatting itself can never fail on configuration.
	Fields []string
	// Indent enables pretty-printed output with that many spaces per
	// nesting level. Zero means compact single-line output.
	Indent int
	// TimestampKey overrides the key the timestamp is emitted under
	// (empty for "timestamp"). The selector name in Fields stays
	// "timestamp" either way.
	TimestampKey string
	// EscapeUnicode escapes all non-ASCII characters as \uXXXX so the
	// output is pure ASCII.
	EscapeUnicode bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
