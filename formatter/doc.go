// Package formatter renders log records into JSON documents.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which fills a caller-provided buffer. Host
// integrations check for the narrower interfaces at construction time
// and prefer them when available, eliminating the intermediate byte
// slice allocation on the write path.
//
// JSONFormatter emits the standard fields (timestamp, level, logger,
// message, module, function, line) in a configurable order, merges
// caller-supplied extra context without letting it shadow a standard
// field, and appends structured exception data last. Formatting is
// total: malformed or non-serializable extra values degrade to their
// string form one value at a time, so the formatter can never be the
// reason an application crashes.
//
// The JSON is built by hand into a pooled bytes.Buffer using Go's
// Append-style functions (time.AppendFormat, strconv.AppendInt) to
// avoid per-call allocations. Buffers larger than 64 KiB are not
// returned to the pool to prevent a single large log line from
// permanently inflating memory usage.
package formatter
