package record

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// ExceptionInfo carries structured error metadata: the dynamic type
// name of the error, its message, and formatted stack frames. It is
// attached to a Record only when the log call happened while handling
// an error.
type ExceptionInfo struct {
	Kind    string
	Message string
	Stack   []string
}

// FromError builds an ExceptionInfo from err, capturing the stack of
// the caller. Returns nil for a nil error.
func FromError(err error) *ExceptionInfo {
	if err == nil {
		return nil
	}
	return &ExceptionInfo{
		Kind:    ErrorKind(err),
		Message: err.Error(),
		Stack:   captureStack(2),
	}
}

// ErrorKind returns the dynamic type name of err without the pointer
// star, the closest Go analog of an exception class name.
func ErrorKind(err error) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
}

// captureStack formats the current goroutine's stack as one string per
// frame, "Function (file.go:123)", skipping runtime internals.
func captureStack(skip int) []string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			var b strings.Builder
			b.WriteString(frame.Function)
			b.WriteString(" (")
			b.WriteString(shortFile(frame.File))
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(frame.Line))
			b.WriteByte(')')
			stack = append(stack, b.String())
		}
		if !more {
			break
		}
	}
	return stack
}

func shortFile(file string) string {
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		return file[i+1:]
	}
	return file
}
