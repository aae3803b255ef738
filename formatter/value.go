package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tgoram/jsonrec/record"
)

// jsonEncoder writes JSON members into a buffer, tracking comma and
// indentation state. With indent == 0 output is a single compact line;
// otherwise members are newline-separated with indent spaces per
// nesting level, matching json.MarshalIndent conventions.
type jsonEncoder struct {
	buf           *bytes.Buffer
	indent        int
	escapeUnicode bool
	depth         int
	needComma     bool
}

func (e *jsonEncoder) newlineIndent() {
	if e.indent == 0 {
		return
	}
	e.buf.WriteByte('\n')
	for i := 0; i < e.depth*e.indent; i++ {
		e.buf.WriteByte(' ')
	}
}

func (e *jsonEncoder) beginObject() {
	e.buf.WriteByte('{')
	e.depth++
	e.needComma = false
}

func (e *jsonEncoder) endObject() {
	hadMembers := e.needComma
	e.depth--
	if hadMembers {
		e.newlineIndent()
	}
	e.buf.WriteByte('}')
	e.needComma = true
}

func (e *jsonEncoder) beginArray() {
	e.buf.WriteByte('[')
	e.depth++
	e.needComma = false
}

func (e *jsonEncoder) endArray() {
	hadMembers := e.needComma
	e.depth--
	if hadMembers {
		e.newlineIndent()
	}
	e.buf.WriteByte(']')
	e.needComma = true
}

// key writes the separator, the quoted key and the colon. The next
// value write completes the member.
func (e *jsonEncoder) key(k string) {
	if e.needComma {
		e.buf.WriteByte(',')
	}
	e.newlineIndent()
	e.buf.WriteByte('"')
	e.writeEscaped(k)
	e.buf.WriteByte('"')
	e.buf.WriteByte(':')
	if e.indent > 0 {
		e.buf.WriteByte(' ')
	}
	e.needComma = false
}

// element writes the separator before an array element
func (e *jsonEncoder) element() {
	if e.needComma {
		e.buf.WriteByte(',')
	}
	e.newlineIndent()
	e.needComma = false
}

func (e *jsonEncoder) str(s string) {
	e.buf.WriteByte('"')
	e.writeEscaped(s)
	e.buf.WriteByte('"')
	e.needComma = true
}

func (e *jsonEncoder) int(v int64) {
	e.buf.Write(strconv.AppendInt(e.buf.AvailableBuffer(), v, 10))
	e.needComma = true
}

// float writes a JSON number, degrading NaN and infinities to their
// quoted string form since JSON has no literals for them
func (e *jsonEncoder) float(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		e.str(strconv.FormatFloat(v, 'f', -1, 64))
		return
	}
	e.buf.Write(strconv.AppendFloat(e.buf.AvailableBuffer(), v, 'f', -1, 64))
	e.needComma = true
}

func (e *jsonEncoder) boolean(v bool) {
	e.buf.Write(strconv.AppendBool(e.buf.AvailableBuffer(), v))
	e.needComma = true
}

func (e *jsonEncoder) null() {
	e.buf.WriteString("null")
	e.needComma = true
}

// field writes a typed field value
func (e *jsonEncoder) field(f record.Field) {
	switch f.Type {
	case record.StringType:
		e.str(f.Str)
	case record.IntType, record.Int64Type:
		e.int(f.Int64)
	case record.Float64Type:
		e.float(f.Float64)
	case record.BoolType:
		e.boolean(f.Int64 == 1)
	case record.TimeType:
		e.buf.WriteByte('"')
		e.buf.Write(time.Unix(0, f.Int64).AppendFormat(e.buf.AvailableBuffer(), time.RFC3339Nano))
		e.buf.WriteByte('"')
		e.needComma = true
	case record.DurationType:
		e.int(f.Int64)
	case record.ErrorType:
		e.str(f.Str)
	case record.NilType:
		e.null()
	case record.AnyType:
		e.anyValue(f.Any)
	default:
		e.str(f.StringValue())
	}
}

// anyValue writes an arbitrary value through encoding/json. Values the
// encoder rejects degrade to a quoted string so a single bad extra can
// never fail the whole record.
func (e *jsonEncoder) anyValue(v interface{}) {
	switch n := v.(type) {
	case float64:
		e.float(n)
		return
	case float32:
		e.float(float64(n))
		return
	}

	var (
		data []byte
		err  error
	)
	if e.indent > 0 {
		data, err = json.MarshalIndent(v, strings.Repeat(" ", e.depth*e.indent), strings.Repeat(" ", e.indent))
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		e.str(fallbackString(v, err))
		return
	}
	e.buf.Write(data)
	e.needComma = true
}

// fallbackString picks a safe textual form for a value encoding/json
// rejected. Container kinds use the encoder's error text because fmt
// would follow a cyclic value forever; scalars print as themselves.
func fallbackString(v interface{}, err error) string {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Ptr, reflect.Interface:
		return err.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// exception writes the structured exception object
func (e *jsonEncoder) exception(exc *record.ExceptionInfo) {
	e.beginObject()
	e.key("kind")
	e.str(exc.Kind)
	e.key("message")
	e.str(exc.Message)
	if len(exc.Stack) > 0 {
		e.key("stack")
		e.stringArray(exc.Stack)
	}
	e.endObject()
}

func (e *jsonEncoder) stringArray(items []string) {
	e.beginArray()
	for _, item := range items {
		e.element()
		e.str(item)
	}
	e.endArray()
}

func (e *jsonEncoder) writeEscaped(s string) {
	if e.escapeUnicode {
		appendJSONStringASCII(e.buf, s)
		return
	}
	appendJSONString(e.buf, s)
}

// appendJSONString writes a JSON-escaped string (without surrounding
// quotes) to the buffer. Invalid UTF-8 bytes become U+FFFD so the
// output stays a well-formed UTF-8 document.
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); {
		if c := s[i]; c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			// Flush unescaped prefix
			if start < i {
				buf.WriteString(s[start:i])
			}
			switch c {
			case '"':
				buf.WriteString(`\"`)
			case '\\':
				buf.WriteString(`\\`)
			case '\n':
				buf.WriteString(`\n`)
			case '\r':
				buf.WriteString(`\r`)
			case '\t':
				buf.WriteString(`\t`)
			default:
				buf.WriteString(`\u00`)
				buf.WriteByte(hexChars[c>>4])
				buf.WriteByte(hexChars[c&0x0f])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			if start < i {
				buf.WriteString(s[start:i])
			}
			buf.WriteString("�")
			i++
			start = i
			continue
		}
		i += size
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

// appendJSONStringASCII is the EscapeUnicode variant: every rune above
// 0x7F becomes a \uXXXX sequence (a surrogate pair beyond the BMP)
func appendJSONStringASCII(buf *bytes.Buffer, s string) {
	for _, r := range s {
		switch {
		case r == '"':
			buf.WriteString(`\"`)
		case r == '\\':
			buf.WriteString(`\\`)
		case r == '\n':
			buf.WriteString(`\n`)
		case r == '\r':
			buf.WriteString(`\r`)
		case r == '\t':
			buf.WriteString(`\t`)
		case r < 0x20:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[r>>4])
			buf.WriteByte(hexChars[r&0x0f])
		case r < utf8.RuneSelf:
			buf.WriteByte(byte(r))
		case r <= 0xFFFF:
			writeUnicodeEscape(buf, uint16(r))
		default:
			r1, r2 := utf16.EncodeRune(r)
			writeUnicodeEscape(buf, uint16(r1))
			writeUnicodeEscape(buf, uint16(r2))
		}
	}
}

func writeUnicodeEscape(buf *bytes.Buffer, r uint16) {
	buf.WriteString(`\u`)
	buf.WriteByte(hexChars[r>>12&0x0f])
	buf.WriteByte(hexChars[r>>8&0x0f])
	buf.WriteByte(hexChars[r>>4&0x0f])
	buf.WriteByte(hexChars[r&0x0f])
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
