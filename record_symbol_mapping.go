// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
)

// SymbolMappingMsg records a change in the mapping from one symbology to
// another over some interval. Its wire size is not fixed: the two symbol
// fields are each SymbolCstrLen bytes wide, a metadata-level setting.
type SymbolMappingMsg struct {
	Header         RHeader `json:"hd" csv:"hd"`
	StypeIn        SType   `json:"stype_in" csv:"stype_in"`
	StypeInSymbol  string  `json:"stype_in_symbol" csv:"stype_in_symbol"`
	StypeOut       SType   `json:"stype_out" csv:"stype_out"`
	StypeOutSymbol string  `json:"stype_out_symbol" csv:"stype_out_symbol"`
	StartTs        uint64  `json:"start_ts" csv:"start_ts"`
	EndTs          uint64  `json:"end_ts" csv:"end_ts"`
}

// SymbolMappingMsgMinSize is the size with 0-length symbol strings; add
// 2*symbolCstrLen to get the actual record size for a given metadata setting.
const SymbolMappingMsgMinSize = RHeaderSize + 18

func (*SymbolMappingMsg) RType() RType { return RType_SymbolMapping }

func (r *SymbolMappingMsg) RSize(symbolCstrLen uint16) uint16 {
	return SymbolMappingMsgMinSize + 2*symbolCstrLen
}

func (r *SymbolMappingMsg) Fill_Raw(b []byte, symbolCstrLen uint16) error {
	want := int(r.RSize(symbolCstrLen))
	if len(b) < want {
		return unexpectedBytesError(len(b), want)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.StypeIn = SType(body[0])
	r.StypeInSymbol = TrimNullBytes(body[1 : 1+symbolCstrLen])
	pos := 1 + symbolCstrLen
	r.StypeOut = SType(body[pos])
	r.StypeOutSymbol = TrimNullBytes(body[pos+1 : pos+1+symbolCstrLen])
	pos = pos + 1 + symbolCstrLen
	r.StartTs = binary.LittleEndian.Uint64(body[pos : pos+8])
	r.EndTs = binary.LittleEndian.Uint64(body[pos+8 : pos+16])
	return nil
}

func (r *SymbolMappingMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.StypeIn = SType(val.GetUint("stype_in"))
	r.StypeInSymbol = string(val.GetStringBytes("stype_in_symbol"))
	r.StypeOut = SType(val.GetUint("stype_out"))
	r.StypeOutSymbol = string(val.GetStringBytes("stype_out_symbol"))
	r.StartTs = val.GetUint64("start_ts")
	r.EndTs = val.GetUint64("end_ts")
	return nil
}
