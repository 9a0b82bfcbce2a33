// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"bufio"
	"io"
	"strings"
)

// CSVEncoder renders records field-by-field in a fixed order per schema,
// flattening book levels with _NN suffixes, per spec.md §4.F.
type CSVEncoder struct {
	w           *bufio.Writer
	opts        EncodeOptions
	wroteHeader bool
}

// NewCSVEncoder returns a CSV encoder. The header row (if opts.WriteHeader)
// is emitted lazily on the first record, since the column set is schema
// dependent and not known until the first concrete record type is seen.
func NewCSVEncoder(w io.Writer, opts EncodeOptions) *CSVEncoder {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	return &CSVEncoder{w: bufio.NewWriter(w), opts: opts}
}

func (e *CSVEncoder) EncodeRecordRef(rr RecordRef, symbolCstrLen uint16, symbol string) error {
	enum, err := ToRecordEnum(rr, symbolCstrLen)
	if err != nil {
		return err
	}
	rec := recordValue(enum)
	if rec == nil {
		return ErrUnknownRType
	}
	fields := flattenRecord(rec)

	if e.opts.WriteHeader && !e.wroteHeader {
		e.writeHeaderRow(fields)
		e.wroteHeader = true
	}

	delim := string(e.opts.Delimiter)
	parts := make([]string, 0, len(fields)+2)
	for _, f := range fields {
		parts = append(parts, csvEscape(renderValue(f.name, f.value, e.opts), e.opts.Delimiter))
	}
	if e.opts.WithSymbol {
		parts = append(parts, csvEscape(symbol, e.opts.Delimiter))
	}
	if e.opts.TsOut {
		parts = append(parts, "") // always empty: no ts_out value is read from the record
	}
	e.w.WriteString(strings.Join(parts, delim))
	e.w.WriteByte('\n')
	return e.w.Flush()
}

func (e *CSVEncoder) writeHeaderRow(fields []namedField) {
	delim := string(e.opts.Delimiter)
	cols := make([]string, 0, len(fields)+2)
	for _, f := range fields {
		cols = append(cols, f.name)
	}
	if e.opts.WithSymbol {
		cols = append(cols, "symbol")
	}
	if e.opts.TsOut {
		cols = append(cols, "ts_out")
	}
	e.w.WriteString(strings.Join(cols, delim))
	e.w.WriteByte('\n')
}

func csvEscape(s string, delim byte) string {
	if strings.ContainsAny(s, string(delim)+"\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func (e *CSVEncoder) Flush() error { return e.w.Flush() }
func (e *CSVEncoder) Close() error { return e.w.Flush() }
