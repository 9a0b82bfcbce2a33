// Copyright (c) 2024 Neomantra Corp
//
// Metadata preamble encode/decode: the self-describing header that precedes
// every record stream.

package bf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Header versions. V1 predates symbol_cstr_len and ts_out being explicit;
// V3 widens raw_instrument_id and StatMsg.Quantity and extends symbol width.
const (
	HeaderVersion1 uint8 = 1
	HeaderVersion2 uint8 = 2
	HeaderVersion3 uint8 = 3

	CurrentVersion = HeaderVersion3
)

// SymbolCstrLenV1/V2/V3 are the fixed symbol-field widths per version.
const (
	SymbolCstrLenV1 uint16 = 22
	SymbolCstrLenV2 uint16 = 71
	SymbolCstrLenV3 uint16 = 71
)

// magicPrefix is the 3-byte ASCII prefix opening every metadata block,
// followed by a single version byte.
var magicPrefix = [3]byte{'B', 'F', 0}

const datasetLen = 16

// Metadata describes a BF record stream: its dataset, schema, symbology, and
// symbol resolution tables.
type Metadata struct {
	Version       uint8   `json:"version"`
	Dataset       string  `json:"dataset"`
	Schema        *Schema `json:"schema"` // nil means "mixed / unset"
	Start         uint64  `json:"start"`
	End           uint64  `json:"end"` // 0 = unknown
	Limit         uint64  `json:"limit"` // 0 = unbounded
	StypeIn       *SType  `json:"stype_in"` // nil = null sentinel (0xFF)
	StypeOut      SType   `json:"stype_out"`
	TsOut         bool    `json:"ts_out"`
	SymbolCstrLen uint16  `json:"symbol_cstr_len"`
	Symbols       []string        `json:"symbols"`
	Partial       []string        `json:"partial"`
	NotFound      []string        `json:"not_found"`
	Mappings      []SymbolMapping `json:"mappings"`
}

// SymbolMapping is the set of mapping intervals for one raw_symbol.
type SymbolMapping struct {
	RawSymbol string            `json:"raw_symbol"`
	Intervals []MappingInterval `json:"intervals"`
}

// MappingInterval is a single [StartDate, EndDate) mapping to Symbol.
type MappingInterval struct {
	StartDate uint32 `json:"start_date"` // YYYYMMDD
	EndDate   uint32 `json:"end_date"`   // YYYYMMDD
	Symbol    string `json:"symbol"`
}

func symbolCstrLenForVersion(version uint8) uint16 {
	switch version {
	case HeaderVersion1:
		return SymbolCstrLenV1
	default:
		return SymbolCstrLenV2
	}
}

// IsInverseMapping reports whether m's symbol mappings run from
// instrument_id to some other symbology (true), or the reverse (false).
// Returns an error if neither stype_in nor stype_out is InstrumentId.
func (m *Metadata) IsInverseMapping() (bool, error) {
	if m.StypeIn != nil && *m.StypeIn == SType_InstrumentId {
		return true, nil
	}
	if m.StypeOut == SType_InstrumentId {
		return false, nil
	}
	return false, fmt.Errorf("can only build symbol maps when stype_in or stype_out is instrument_id")
}

// Encode writes m's wire representation to w, validating that every symbol
// string fits within m.SymbolCstrLen and padding to 8-byte alignment.
func (m *Metadata) Encode(w io.Writer) error {
	if m.Version > CurrentVersion {
		return fmt.Errorf("encode: can't encode Metadata with version %d > %d: %w", m.Version, CurrentVersion, ErrVersionUnsupported)
	}
	cstrLen := m.SymbolCstrLen
	if cstrLen == 0 {
		cstrLen = symbolCstrLenForVersion(m.Version)
	}

	var body bytes.Buffer
	if err := writeFixedString(&body, m.Dataset, datasetLen); err != nil {
		return err
	}
	var schemaVal uint16 = 0xFFFF
	if m.Schema != nil {
		schemaVal = uint16(*m.Schema)
	}
	binary.Write(&body, binary.LittleEndian, schemaVal)
	binary.Write(&body, binary.LittleEndian, m.Start)
	binary.Write(&body, binary.LittleEndian, m.End)
	binary.Write(&body, binary.LittleEndian, m.Limit)
	var stypeIn uint8 = 0xFF
	if m.StypeIn != nil {
		stypeIn = uint8(*m.StypeIn)
	}
	body.WriteByte(stypeIn)
	body.WriteByte(uint8(m.StypeOut))
	if m.TsOut {
		body.WriteByte(1)
	} else {
		body.WriteByte(0)
	}
	binary.Write(&body, binary.LittleEndian, cstrLen)
	body.Write(make([]byte, 53)) // reserved
	binary.Write(&body, binary.LittleEndian, uint32(0)) // schema_def_len

	if err := encodeRepeatedSymbols(&body, m.Symbols, cstrLen); err != nil {
		return err
	}
	if err := encodeRepeatedSymbols(&body, m.Partial, cstrLen); err != nil {
		return err
	}
	if err := encodeRepeatedSymbols(&body, m.NotFound, cstrLen); err != nil {
		return err
	}
	if err := encodeMappings(&body, m.Mappings, cstrLen); err != nil {
		return err
	}

	if _, err := w.Write(magicPrefix[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{m.Version}); err != nil {
		return err
	}
	// len covers the end padding too, so the padding is part of body.
	if rem := (fixedPrefixLen + body.Len()) % 8; rem != 0 {
		body.Write(make([]byte, 8-rem))
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(body.Len())); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	return writeAlignmentPadding(w, fixedPrefixLen+body.Len())
}

const fixedPrefixLen = 3 + 1 + 4

func writeAlignmentPadding(w io.Writer, written int) error {
	if rem := written % 8; rem != 0 {
		_, err := w.Write(make([]byte, 8-rem))
		return err
	}
	return nil
}

func writeFixedString(w io.Writer, s string, width int) error {
	if len(s) >= width {
		return fmt.Errorf("encode: %q exceeds fixed width %d: %w", s, width, ErrSymbolTooLong)
	}
	if !isASCII(s) {
		return ErrNonASCII
	}
	buf := make([]byte, width)
	copy(buf, s)
	_, err := w.Write(buf)
	return err
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

func encodeRepeatedSymbols(w io.Writer, symbols []string, cstrLen uint16) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(symbols))); err != nil {
		return err
	}
	for _, s := range symbols {
		if err := writeFixedString(w, s, int(cstrLen)); err != nil {
			return err
		}
	}
	return nil
}

func encodeMappings(w io.Writer, mappings []SymbolMapping, cstrLen uint16) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(mappings))); err != nil {
		return err
	}
	for _, mp := range mappings {
		if err := writeFixedString(w, mp.RawSymbol, int(cstrLen)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(mp.Intervals))); err != nil {
			return err
		}
		for _, iv := range mp.Intervals {
			if err := validateYMD(iv.StartDate); err != nil {
				return err
			}
			if err := validateYMD(iv.EndDate); err != nil {
				return err
			}
			binary.Write(w, binary.LittleEndian, iv.StartDate)
			binary.Write(w, binary.LittleEndian, iv.EndDate)
			if err := writeFixedString(w, iv.Symbol, int(cstrLen)); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateYMD(ymd uint32) error {
	month := (ymd / 100) % 100
	day := ymd % 100
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return fmt.Errorf("encode: invalid date %d: %w", ymd, ErrInvalidVersion)
	}
	return nil
}

// Decode reads a Metadata preamble from r. On a truncated read it returns
// io.ErrUnexpectedEOF distinctly so a streaming caller can buffer more bytes
// and retry without having consumed anything observable by the caller.
func Decode(r io.Reader) (*Metadata, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, wrapShortRead(err)
	}
	if prefix[0] != magicPrefix[0] || prefix[1] != magicPrefix[1] {
		return nil, ErrInvalidFile
	}
	version := prefix[3]

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, wrapShortRead(err)
	}
	bodyLen := binary.LittleEndian.Uint32(lenBuf[:])
	body := make([]byte, bodyLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, wrapShortRead(err)
	}

	m := &Metadata{Version: version}
	pos := 0
	m.Dataset = TrimNullBytes(body[pos : pos+datasetLen])
	pos += datasetLen
	schemaVal := binary.LittleEndian.Uint16(body[pos : pos+2])
	pos += 2
	if schemaVal != 0xFFFF {
		s := Schema(schemaVal)
		m.Schema = &s
	}
	m.Start = binary.LittleEndian.Uint64(body[pos : pos+8])
	pos += 8
	m.End = binary.LittleEndian.Uint64(body[pos : pos+8])
	pos += 8
	m.Limit = binary.LittleEndian.Uint64(body[pos : pos+8])
	pos += 8
	stypeIn := body[pos]
	pos++
	if stypeIn != 0xFF {
		s := SType(stypeIn)
		m.StypeIn = &s
	}
	m.StypeOut = SType(body[pos])
	pos++
	m.TsOut = body[pos] != 0
	pos++

	if version >= HeaderVersion2 {
		m.SymbolCstrLen = binary.LittleEndian.Uint16(body[pos : pos+2])
		pos += 2
	} else {
		m.SymbolCstrLen = SymbolCstrLenV1
		pos += 2 // Encode writes the cstr-len slot for every version
	}
	pos += 53 // reserved
	pos += 4  // schema_def_len, must be 0

	var err error
	m.Symbols, pos, err = decodeRepeatedSymbols(body, pos, m.SymbolCstrLen)
	if err != nil {
		return nil, err
	}
	m.Partial, pos, err = decodeRepeatedSymbols(body, pos, m.SymbolCstrLen)
	if err != nil {
		return nil, err
	}
	m.NotFound, pos, err = decodeRepeatedSymbols(body, pos, m.SymbolCstrLen)
	if err != nil {
		return nil, err
	}
	m.Mappings, pos, err = decodeMappings(body, pos, m.SymbolCstrLen)
	if err != nil {
		return nil, err
	}
	_ = pos
	return m, nil
}

func wrapShortRead(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func decodeRepeatedSymbols(body []byte, pos int, cstrLen uint16) ([]string, int, error) {
	if pos+4 > len(body) {
		return nil, pos, ErrHeaderTooShort
	}
	count := binary.LittleEndian.Uint32(body[pos : pos+4])
	pos += 4
	out := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		if pos+int(cstrLen) > len(body) {
			return nil, pos, ErrHeaderTooShort
		}
		out = append(out, TrimNullBytes(body[pos:pos+int(cstrLen)]))
		pos += int(cstrLen)
	}
	return out, pos, nil
}

func decodeMappings(body []byte, pos int, cstrLen uint16) ([]SymbolMapping, int, error) {
	if pos+4 > len(body) {
		return nil, pos, ErrHeaderTooShort
	}
	count := binary.LittleEndian.Uint32(body[pos : pos+4])
	pos += 4
	out := make([]SymbolMapping, 0, count)
	for i := uint32(0); i < count; i++ {
		if pos+int(cstrLen) > len(body) {
			return nil, pos, ErrHeaderTooShort
		}
		raw := TrimNullBytes(body[pos : pos+int(cstrLen)])
		pos += int(cstrLen)
		if pos+4 > len(body) {
			return nil, pos, ErrHeaderTooShort
		}
		ivCount := binary.LittleEndian.Uint32(body[pos : pos+4])
		pos += 4
		intervals := make([]MappingInterval, 0, ivCount)
		for j := uint32(0); j < ivCount; j++ {
			if pos+8+int(cstrLen) > len(body) {
				return nil, pos, ErrHeaderTooShort
			}
			start := binary.LittleEndian.Uint32(body[pos : pos+4])
			end := binary.LittleEndian.Uint32(body[pos+4 : pos+8])
			pos += 8
			sym := TrimNullBytes(body[pos : pos+int(cstrLen)])
			pos += int(cstrLen)
			intervals = append(intervals, MappingInterval{StartDate: start, EndDate: end, Symbol: sym})
		}
		out = append(out, SymbolMapping{RawSymbol: raw, Intervals: intervals})
	}
	return out, pos, nil
}

// UpdateEncoded overwrites the start/end/limit fields of an already-encoded
// metadata block in place, then restores the writer's seek position. This is
// the only supported post-hoc metadata mutation.
func UpdateEncoded(rw io.ReadWriteSeeker, start, end, limit uint64) error {
	cur, err := rw.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	defer rw.Seek(cur, io.SeekStart)

	// magic(3) + version(1) + len(4) + dataset(16) + schema(2) precede start/end/limit.
	offset := int64(fixedPrefixLen) + datasetLen + 2
	if _, err := rw.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], start)
	binary.LittleEndian.PutUint64(buf[8:16], end)
	binary.LittleEndian.PutUint64(buf[16:24], limit)
	n, err := rw.Write(buf[:])
	if err != nil {
		return err
	}
	if n != len(buf) {
		return seekShortfallError(n, len(buf))
	}
	return nil
}
