package record

import (
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Record represents a single log event with all its metadata.
// The formatter treats it as read-only.
type Record struct {
	Time      time.Time
	Level     Level
	Logger    string
	Message   string
	Source    SourceLocation
	Extra     []Field
	Exception *ExceptionInfo
	Stack     []string
}

// SourceLocation identifies the origin of a log call site. The zero
// value means the host could not determine the call site; formatters
// render it as empty strings and line 0 rather than failing.
type SourceLocation struct {
	Module   string
	Function string
	Line     int
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			Extra: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.Extra = r.Extra[:0]
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	r.Extra = r.Extra[:0]
	r.Logger = ""
	r.Message = ""
	r.Source = SourceLocation{}
	r.Exception = nil
	r.Stack = nil
	recordPool.Put(r)
}

// CaptureSource derives the call-site location skip frames up the stack.
// The module is the base file name without its extension and the
// function is the bare name without package qualifier.
func CaptureSource(skip int) SourceLocation {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return SourceLocation{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}
	return SourceFromCaller(file, funcName, line)
}

// SourceFromCaller normalizes a host-supplied caller frame into a
// SourceLocation, applying the same module and function shortening as
// CaptureSource.
func SourceFromCaller(file, function string, line int) SourceLocation {
	return SourceLocation{
		Module:   strings.TrimSuffix(filepath.Base(file), ".go"),
		Function: shortFuncName(function),
		Line:     line,
	}
}

// SourceFromPC resolves a program counter (as carried by slog records)
// into a SourceLocation. A zero pc yields the zero location.
func SourceFromPC(pc uintptr) SourceLocation {
	if pc == 0 {
		return SourceLocation{}
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return SourceLocation{}
	}
	return SourceFromCaller(frame.File, frame.Function, frame.Line)
}

// shortFuncName reduces "github.com/x/y.(*T).Method" to "Method"
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
