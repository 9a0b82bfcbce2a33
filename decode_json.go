// Copyright (c) 2024 Neomantra Corp
//
// JSON fragment decoder: ingests the ndjson stream a JSONEncoder (in its
// default, non-pretty mode) produces, reversing §4.F's JSON encoding back
// into typed records. Symmetric to the encoder: where JSONEncoder flattens
// a record's header and body into one JSON object, this reads that same
// flat object straight into FillRHeaderJson/Fill_Json, which already expect
// exactly that shape (large 64-bit fields as quoted decimal strings,
// everything else as a plain JSON number).

package bf

import (
	"bufio"
	"io"

	"github.com/valyala/fastjson"
)

// JSONDecoder reads one JSON record object per line. Pretty-printed output
// (pretty_px/pretty_ts or indented JSON) is not parseable here: those modes
// trade losslessness for human readability.
type JSONDecoder struct {
	scanner *bufio.Scanner
	parser  fastjson.Parser
}

// NewJSONDecoder wraps r for line-delimited JSON record ingestion.
func NewJSONDecoder(r io.Reader) *JSONDecoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &JSONDecoder{scanner: scanner}
}

// Next parses the next ndjson line into a RecordRefEnum, or returns io.EOF
// once the source is exhausted.
func (d *JSONDecoder) Next() (RecordRefEnum, error) {
	for {
		if !d.scanner.Scan() {
			if err := d.scanner.Err(); err != nil {
				return RecordRefEnum{}, err
			}
			return RecordRefEnum{}, io.EOF
		}
		line := d.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		val, err := d.parser.ParseBytes(line)
		if err != nil {
			return RecordRefEnum{}, err
		}
		var header RHeader
		if err := FillRHeaderJson(val, &header); err != nil {
			return RecordRefEnum{}, err
		}
		return recordEnumFromJson(val, &header, SymbolCstrLenV2)
	}
}
