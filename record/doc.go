// Package record defines the log record value object consumed by the
// formatters in this module.
//
// It provides the Level type for severity names, the Record type that
// represents a single log event, the Field type for zero-allocation
// structured key-value context, and ExceptionInfo for structured error
// metadata.
//
// Record objects are pooled via sync.Pool so that high-rate hosts can
// keep the emit path allocation-free. Hosts get a Record with GetRecord
// and must return it with PutRecord once the formatter has consumed it.
// The pool pre-allocates the Extra slice with capacity 8, which covers
// most log calls without triggering a slice growth.
//
// Field encodes values into fixed-size numeric slots (Int64, Float64)
// wherever possible so that common types like int, bool, and time.Time
// never escape to the heap. The Any slot exists as a fallback for
// arbitrary types but will cause an allocation.
package record
