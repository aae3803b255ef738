package logrusfmt

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/tgoram/jsonrec/formatter"
	"github.com/tgoram/jsonrec/record"
)

// Formatter adapts the JSON record formatter to the logrus.Formatter
// interface. It holds only immutable configuration and is safe for
// concurrent use.
type Formatter struct {
	// LoggerName fills the logger field of every record; logrus has no
	// named loggers of its own.
	LoggerName string

	json *formatter.JSONFormatter
}

// New creates a logrus formatter that renders entries with the given
// configuration.
func New(loggerName string, cfg formatter.Config) *Formatter {
	return &Formatter{
		LoggerName: loggerName,
		json:       formatter.NewJSONFormatter(cfg),
	}
}

// Format renders a logrus entry as one newline-terminated JSON line.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	rec := record.GetRecord()
	defer record.PutRecord(rec)

	rec.Time = entry.Time
	rec.Level = convertLevel(entry.Level)
	rec.Logger = f.LoggerName
	rec.Message = entry.Message
	if entry.Caller != nil {
		rec.Source = record.SourceFromCaller(entry.Caller.File, entry.Caller.Function, entry.Caller.Line)
	}

	// Sort data keys; logrus hands over an unordered map
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := entry.Data[k]
		if k == logrus.ErrorKey {
			if err, ok := v.(error); ok {
				rec.Exception = record.FromError(err)
				continue
			}
		}
		rec.Extra = append(rec.Extra, record.Any(k, v))
	}

	out, err := f.json.Format(rec)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// convertLevel maps a logrus.Level to a record.Level
func convertLevel(level logrus.Level) record.Level {
	switch level {
	case logrus.TraceLevel, logrus.DebugLevel:
		return record.DebugLevel
	case logrus.InfoLevel:
		return record.InfoLevel
	case logrus.WarnLevel:
		return record.WarnLevel
	case logrus.ErrorLevel:
		return record.ErrorLevel
	case logrus.FatalLevel:
		return record.FatalLevel
	case logrus.PanicLevel:
		return record.PanicLevel
	default:
		return record.InfoLevel
	}
}
