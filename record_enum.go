// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
)

// RecordRef is a non-owning view over a single record's raw wire bytes.
// Its lifetime is bound to the buffer it points into; copy out a concrete
// Msg type (via AsXxx) before the underlying buffer is reused.
type RecordRef struct {
	bytes  []byte
	header RHeader
}

// NewRecordRef decodes just the header of bytes and wraps the slice as a RecordRef.
// bytes must hold at least a full record (header.Length*4 bytes).
func NewRecordRef(bytes []byte) (RecordRef, error) {
	var h RHeader
	if err := FillRHeaderRaw(bytes, &h); err != nil {
		return RecordRef{}, err
	}
	size := h.RecordSize()
	if size < RHeaderSize || size > len(bytes) {
		return RecordRef{}, ErrMalformedRecord
	}
	return RecordRef{bytes: bytes[:size], header: h}, nil
}

func (rr RecordRef) Header() RHeader { return rr.header }
func (rr RecordRef) Bytes() []byte   { return rr.bytes }
func (rr RecordRef) RType() RType    { return rr.header.RType }

// IndexTs returns the timestamp used for ordering this record: ts_recv when
// the record carries one, ts_event otherwise.
func (rr RecordRef) IndexTs() uint64 {
	if ts, ok := recordRefTsRecv(rr); ok {
		return ts
	}
	return rr.header.TsEvent
}

// tsRecvOffset gives the byte offset of ts_recv within a record's body (i.e.
// relative to RHeaderSize), for every rtype that carries one. It varies by
// schema: Status/InstrumentDef/Imbalance/Statistics lead with ts_recv, Mbo
// carries order_id and price first, and every trade/quote schema built on
// tradeHeader (or its fixed BboMsg/CbboMsg look-alike) carries price/size/
// action/side/flags/depth first.
func tsRecvOffset(rtype RType) (int, bool) {
	switch rtype {
	case RType_Status, RType_InstrumentDef, RType_Imbalance, RType_Statistics:
		return 0, true
	case RType_Mbo:
		return 24, true
	case RType_Mbp0, RType_Mbp1, RType_Mbp10,
		RType_Bbo1S, RType_Bbo1M, RType_Cbbo, RType_Cbbo1S, RType_Cbbo1M,
		RType_Cmbp1, RType_Tcbbo:
		return 16, true
	default:
		return 0, false
	}
}

func recordRefTsRecv(rr RecordRef) (uint64, bool) {
	off, ok := tsRecvOffset(rr.header.RType)
	if !ok {
		return 0, false
	}
	start := RHeaderSize + off
	if len(rr.bytes) < start+8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(rr.bytes[start : start+8]), true
}

// AsRecord decodes a RecordRef into a concrete record type, dispatched via the
// generic RecordPtr constraint. Returns ErrUnknownRType if rr's rtype is not
// IsCompatibleWith RP's declared RType() (candle rtypes share one struct, so
// a plain equality check would reject every OhlcvMsg but OHLCV_EOD).
func AsRecord[R any, RP RecordPtr[R]](rr RecordRef) (R, error) {
	var rec R
	var rp RP = &rec
	if !rr.header.RType.IsCompatibleWith(rp.RType()) {
		return rec, unexpectedRTypeError(rr.header.RType, rp.RType())
	}
	if err := rp.Fill_Raw(rr.bytes); err != nil {
		return rec, err
	}
	return rec, nil
}

// RecordRefEnum is an owning tagged union over the closed set of record
// variants, produced by copying a RecordRef out of a reused decode buffer.
type RecordRefEnum struct {
	RType      RType
	Mbo        *MboMsg
	Trade      *TradeMsg
	Mbp1       *Mbp1Msg
	Mbp10      *Mbp10Msg
	Bbo        *BboMsg
	Cbbo       *CbboMsg
	Cmbp1      *Cmbp1Msg
	Ohlcv      *OhlcvMsg
	Status     *StatusMsg
	Instrument *InstrumentDefMsg
	Imbalance  *ImbalanceMsg
	Stat       *StatMsg
	ErrorMsg   *ErrorMsg
	System     *SystemMsg
	SymbolMap  *SymbolMappingMsg
}

// ToRecordEnum copies the bytes referenced by rr into an owning RecordRefEnum.
// symbolCstrLen is required to size the variable-width InstrumentDef and
// SymbolMapping bodies; pass the stream's current metadata.SymbolCstrLen.
func ToRecordEnum(rr RecordRef, symbolCstrLen uint16) (RecordRefEnum, error) {
	out := RecordRefEnum{RType: rr.header.RType}
	var err error
	switch rr.header.RType {
	case RType_Mbo:
		out.Mbo = new(MboMsg)
		err = out.Mbo.Fill_Raw(rr.bytes)
	case RType_Mbp0:
		out.Trade = new(TradeMsg)
		err = out.Trade.Fill_Raw(rr.bytes)
	case RType_Mbp1:
		out.Mbp1 = new(Mbp1Msg)
		err = out.Mbp1.Fill_Raw(rr.bytes)
	case RType_Mbp10:
		out.Mbp10 = new(Mbp10Msg)
		err = out.Mbp10.Fill_Raw(rr.bytes)
	case RType_Bbo1S, RType_Bbo1M:
		out.Bbo = new(BboMsg)
		err = out.Bbo.Fill_Raw(rr.bytes)
	case RType_Cbbo, RType_Cbbo1S, RType_Cbbo1M:
		out.Cbbo = new(CbboMsg)
		err = out.Cbbo.Fill_Raw(rr.bytes)
	case RType_Cmbp1, RType_Tcbbo:
		out.Cmbp1 = new(Cmbp1Msg)
		err = out.Cmbp1.Fill_Raw(rr.bytes)
	case RType_Ohlcv1S, RType_Ohlcv1M, RType_Ohlcv1H, RType_Ohlcv1D, RType_OhlcvEod, RType_OhlcvDeprecated:
		out.Ohlcv = new(OhlcvMsg)
		err = out.Ohlcv.Fill_Raw(rr.bytes)
	case RType_Status:
		out.Status = new(StatusMsg)
		err = out.Status.Fill_Raw(rr.bytes)
	case RType_InstrumentDef:
		out.Instrument = new(InstrumentDefMsg)
		err = out.Instrument.Fill_Raw(rr.bytes, int(symbolCstrLen))
	case RType_Imbalance:
		out.Imbalance = new(ImbalanceMsg)
		err = out.Imbalance.Fill_Raw(rr.bytes)
	case RType_Statistics:
		out.Stat = new(StatMsg)
		err = out.Stat.Fill_Raw(rr.bytes)
	case RType_Error:
		out.ErrorMsg = new(ErrorMsg)
		err = out.ErrorMsg.Fill_Raw(rr.bytes)
	case RType_System:
		out.System = new(SystemMsg)
		err = out.System.Fill_Raw(rr.bytes)
	case RType_SymbolMapping:
		out.SymbolMap = new(SymbolMappingMsg)
		err = out.SymbolMap.Fill_Raw(rr.bytes, symbolCstrLen)
	default:
		return out, ErrUnknownRType
	}
	return out, err
}

// recordEnumFromJson builds a RecordRefEnum from a parsed JSON record, given
// its already-decoded header (whose rtype selects the variant).
func recordEnumFromJson(val *fastjson.Value, header *RHeader, symbolCstrLen uint16) (RecordRefEnum, error) {
	out := RecordRefEnum{RType: header.RType}
	var err error
	switch header.RType {
	case RType_Mbo:
		out.Mbo = new(MboMsg)
		err = out.Mbo.Fill_Json(val, header)
	case RType_Mbp0:
		out.Trade = new(TradeMsg)
		err = out.Trade.Fill_Json(val, header)
	case RType_Mbp1:
		out.Mbp1 = new(Mbp1Msg)
		err = out.Mbp1.Fill_Json(val, header)
	case RType_Mbp10:
		out.Mbp10 = new(Mbp10Msg)
		err = out.Mbp10.Fill_Json(val, header)
	case RType_Bbo1S, RType_Bbo1M:
		out.Bbo = new(BboMsg)
		err = out.Bbo.Fill_Json(val, header)
	case RType_Cbbo, RType_Cbbo1S, RType_Cbbo1M:
		out.Cbbo = new(CbboMsg)
		err = out.Cbbo.Fill_Json(val, header)
	case RType_Cmbp1, RType_Tcbbo:
		out.Cmbp1 = new(Cmbp1Msg)
		err = out.Cmbp1.Fill_Json(val, header)
	case RType_Ohlcv1S, RType_Ohlcv1M, RType_Ohlcv1H, RType_Ohlcv1D, RType_OhlcvEod, RType_OhlcvDeprecated:
		out.Ohlcv = new(OhlcvMsg)
		err = out.Ohlcv.Fill_Json(val, header)
	case RType_Status:
		out.Status = new(StatusMsg)
		err = out.Status.Fill_Json(val, header)
	case RType_InstrumentDef:
		out.Instrument = new(InstrumentDefMsg)
		err = out.Instrument.Fill_Json(val, header)
	case RType_Imbalance:
		out.Imbalance = new(ImbalanceMsg)
		err = out.Imbalance.Fill_Json(val, header)
	case RType_Statistics:
		out.Stat = new(StatMsg)
		err = out.Stat.Fill_Json(val, header)
	case RType_Error:
		out.ErrorMsg = new(ErrorMsg)
		err = out.ErrorMsg.Fill_Json(val, header)
	case RType_System:
		out.System = new(SystemMsg)
		err = out.System.Fill_Json(val, header)
	case RType_SymbolMapping:
		out.SymbolMap = new(SymbolMappingMsg)
		err = out.SymbolMap.Fill_Json(val, header)
	default:
		return out, ErrUnknownRType
	}
	return out, err
}
