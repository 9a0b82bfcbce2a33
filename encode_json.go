// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"bufio"
	"bytes"
	"io"
	"reflect"
	"strconv"

	segjson "github.com/segmentio/encoding/json"
)

// JSONEncoder renders records as newline-delimited JSON objects (ndjson),
// per spec.md §4.F. Large integers are serialized as strings to avoid
// precision loss unless pretty_px/pretty_ts has already converted them to a
// more specific textual form.
type JSONEncoder struct {
	w    *bufio.Writer
	opts EncodeOptions
}

func NewJSONEncoder(w io.Writer, opts EncodeOptions) *JSONEncoder {
	return &JSONEncoder{w: bufio.NewWriter(w), opts: opts}
}

func (e *JSONEncoder) EncodeRecordRef(rr RecordRef, symbolCstrLen uint16, symbol string) error {
	enum, err := ToRecordEnum(rr, symbolCstrLen)
	if err != nil {
		return err
	}
	rec := recordValue(enum)
	if rec == nil {
		return ErrUnknownRType
	}
	fields := flattenRecord(rec)

	var buf bytes.Buffer
	if err := writeJSONObject(&buf, fields, e.opts, symbol); err != nil {
		return err
	}
	if _, err := e.w.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := e.w.WriteByte('\n'); err != nil {
		return err
	}
	return e.w.Flush()
}

// EncodeMetadata writes meta as a single JSON object followed by a newline
// (spec.md §4.F's encode_metadata).
func (e *JSONEncoder) EncodeMetadata(meta *Metadata) error {
	b, err := segjson.Marshal(meta)
	if err != nil {
		return err
	}
	if e.opts.ShouldPrettyPrint {
		var pretty bytes.Buffer
		if err := segjson.Indent(&pretty, b, "", "    "); err != nil {
			return err
		}
		b = pretty.Bytes()
	}
	if _, err := e.w.Write(b); err != nil {
		return err
	}
	if err := e.w.WriteByte('\n'); err != nil {
		return err
	}
	return e.w.Flush()
}

func writeJSONObject(buf *bytes.Buffer, fields []namedField, opts EncodeOptions, symbol string) error {
	buf.WriteByte('{')
	sep := ","
	if opts.ShouldPrettyPrint {
		sep = ",\n    "
		buf.WriteString("\n    ")
	}
	for i, f := range fields {
		if i > 0 {
			buf.WriteString(sep)
		}
		key, err := segjson.Marshal(f.name)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := jsonFieldValue(f, opts)
		if err != nil {
			return err
		}
		buf.Write(val)
	}
	if opts.WithSymbol {
		if len(fields) > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(`"symbol":`)
		v, _ := segjson.Marshal(symbol)
		buf.Write(v)
	}
	if opts.ShouldPrettyPrint {
		buf.WriteString("\n")
	}
	buf.WriteByte('}')
	return nil
}

// jsonFieldValue renders one field per spec.md §4.F: pretty_px/pretty_ts
// take priority (rendered as decimal/ISO-8601 strings, or null for
// undefined); otherwise u64/i64 fields serialize as JSON strings, other
// scalars serialize natively, and char-like uint8 "action"/"side" fields
// follow the NUL->null, printable->string, non-printable->escaped rule.
func jsonFieldValue(f namedField, opts EncodeOptions) ([]byte, error) {
	fv := f.value
	if isPriceField(f.name) && opts.PrettyPx && fv.Kind() == reflect.Int64 {
		px := fv.Int()
		if px == UndefPrice {
			return []byte("null"), nil
		}
		return segjson.Marshal(FormatPx(px))
	}
	if isTimestampField(f.name) && opts.PrettyTs && fv.Kind() == reflect.Uint64 {
		ts := fv.Uint()
		if ts == 0 || ts == UndefTimestamp {
			return []byte("null"), nil
		}
		return segjson.Marshal(TimestampToTime(ts).UTC().Format("2006-01-02T15:04:05.000000000Z"))
	}
	if isCharField(f.name) && fv.Kind() == reflect.Uint8 {
		c := byte(fv.Uint())
		if c == 0 {
			return []byte("null"), nil
		}
		return segjson.Marshal(renderCharField(c))
	}
	switch fv.Kind() {
	case reflect.Int64:
		return segjson.Marshal(strconv.FormatInt(fv.Int(), 10))
	case reflect.Uint64:
		return segjson.Marshal(strconv.FormatUint(fv.Uint(), 10))
	case reflect.String:
		return segjson.Marshal(fv.String())
	default:
		return segjson.Marshal(fv.Interface())
	}
}

func (e *JSONEncoder) Flush() error { return e.w.Flush() }
func (e *JSONEncoder) Close() error { return e.w.Flush() }
