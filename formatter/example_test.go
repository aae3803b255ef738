package formatter_test

import (
	"fmt"
	"time"

	"github.com/tgoram/jsonrec/formatter"
	"github.com/tgoram/jsonrec/record"
)

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{})

	rec := &record.Record{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   record.InfoLevel,
		Logger:  "app",
		Message: "request handled",
		Source:  record.SourceLocation{Module: "server", Function: "handle", Line: 42},
		Extra: []record.Field{
			record.Int("status", 200),
		},
	}

	out, _ := f.Format(rec)
	fmt.Println(string(out))
	// Output:
	// {"timestamp":"2026-01-15T12:00:00.000+00:00","level":"INFO","logger":"app","message":"request handled","module":"server","function":"handle","line":42,"status":200}
}

func ExampleNewJSONFormatter_fieldSubset() {
	f := formatter.NewJSONFormatter(formatter.Config{
		Fields: []string{"level", "message"},
	})

	rec := &record.Record{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   record.WarnLevel,
		Logger:  "app",
		Message: "disk almost full",
	}

	out, _ := f.Format(rec)
	fmt.Println(string(out))
	// Output:
	// {"level":"WARN","message":"disk almost full"}
}

func ExampleNewJSONFormatter_indent() {
	f := formatter.NewJSONFormatter(formatter.Config{
		Fields: []string{"level", "message"},
		Indent: 2,
	})

	rec := &record.Record{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   record.InfoLevel,
		Message: "ready",
	}

	out, _ := f.Format(rec)
	fmt.Println(string(out))
	// Output:
	// {
	//   "level": "INFO",
	//   "message": "ready"
	// }
}
