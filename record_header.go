// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
	"github.com/valyala/fastjson/fastfloat"
)

// Record is the marker interface implemented by every concrete record body type.
type Record interface {
}

// RecordPtr constrains a pointer-to-record type to also implement the
// methods needed to decode it from raw bytes or a parsed JSON value.
// Binding *T this way lets generic decoders allocate a T and operate
// on it through the pointer without reflection.
type RecordPtr[T any] interface {
	*T
	Record

	RType() RType
	RSize() uint8
	Fill_Raw([]byte) error
	Fill_Json(val *fastjson.Value, header *RHeader) error
}

func fastjsonGetInt64FromString(val *fastjson.Value, key string) int64 {
	return fastfloat.ParseInt64BestEffort(string(val.GetStringBytes(key)))
}

func fastjsonGetUint64FromString(val *fastjson.Value, key string) uint64 {
	return fastfloat.ParseUint64BestEffort(string(val.GetStringBytes(key)))
}

func (rtype RType) IsCompatibleWith(other RType) bool {
	if rtype == other {
		return true
	}
	return rtype.IsCandle() && other.IsCandle()
}

func (rtype RType) IsCandle() bool {
	switch rtype {
	case RType_Ohlcv1S, RType_Ohlcv1M, RType_Ohlcv1H, RType_Ohlcv1D, RType_OhlcvEod, RType_OhlcvDeprecated:
		return true
	default:
		return false
	}
}

// RHeader is the 16-byte header prefixing every record.
type RHeader struct {
	Length       uint8  `json:"len,omitempty" csv:"len"`
	RType        RType  `json:"rtype" csv:"rtype"`
	PublisherID  uint16 `json:"publisher_id" csv:"publisher_id"`
	InstrumentID uint32 `json:"instrument_id" csv:"instrument_id"`
	TsEvent      uint64 `json:"ts_event" csv:"ts_event"`
}

const RHeaderSize = 16

func (h *RHeader) RSize() uint8 {
	return RHeaderSize
}

// RecordSize returns the real on-wire byte length this header declares.
func (h *RHeader) RecordSize() int {
	return int(h.Length) * 4
}

func FillRHeaderRaw(b []byte, h *RHeader) error {
	if len(b) < RHeaderSize {
		return unexpectedBytesError(len(b), RHeaderSize)
	}
	h.Length = b[0]
	h.RType = RType(b[1])
	h.PublisherID = binary.LittleEndian.Uint16(b[2:4])
	h.InstrumentID = binary.LittleEndian.Uint32(b[4:8])
	h.TsEvent = binary.LittleEndian.Uint64(b[8:16])
	return nil
}

func FillRHeaderJson(val *fastjson.Value, h *RHeader) error {
	h.TsEvent = fastjsonGetUint64FromString(val, "ts_event")
	h.PublisherID = uint16(val.GetUint("publisher_id"))
	h.InstrumentID = uint32(val.GetUint("instrument_id"))
	h.RType = RType(val.GetUint("rtype"))
	return nil
}

func PutRHeaderRaw(b []byte, h *RHeader) {
	b[0] = h.Length
	b[1] = uint8(h.RType)
	binary.LittleEndian.PutUint16(b[2:4], h.PublisherID)
	binary.LittleEndian.PutUint32(b[4:8], h.InstrumentID)
	binary.LittleEndian.PutUint64(b[8:16], h.TsEvent)
}

// BidAskPair is a single book level in a market-by-price record.
type BidAskPair struct {
	BidPx int64  `json:"bid_px" csv:"bid_px"`
	AskPx int64  `json:"ask_px" csv:"ask_px"`
	BidSz uint32 `json:"bid_sz" csv:"bid_sz"`
	AskSz uint32 `json:"ask_sz" csv:"ask_sz"`
	BidCt uint32 `json:"bid_ct" csv:"bid_ct"`
	AskCt uint32 `json:"ask_ct" csv:"ask_ct"`
}

const BidAskPairSize = 32

func fillBidAskPairRaw(b []byte, p *BidAskPair) {
	p.BidPx = int64(binary.LittleEndian.Uint64(b[0:8]))
	p.AskPx = int64(binary.LittleEndian.Uint64(b[8:16]))
	p.BidSz = binary.LittleEndian.Uint32(b[16:20])
	p.AskSz = binary.LittleEndian.Uint32(b[20:24])
	p.BidCt = binary.LittleEndian.Uint32(b[24:28])
	p.AskCt = binary.LittleEndian.Uint32(b[28:32])
}

func putBidAskPairRaw(b []byte, p *BidAskPair) {
	binary.LittleEndian.PutUint64(b[0:8], uint64(p.BidPx))
	binary.LittleEndian.PutUint64(b[8:16], uint64(p.AskPx))
	binary.LittleEndian.PutUint32(b[16:20], p.BidSz)
	binary.LittleEndian.PutUint32(b[20:24], p.AskSz)
	binary.LittleEndian.PutUint32(b[24:28], p.BidCt)
	binary.LittleEndian.PutUint32(b[28:32], p.AskCt)
}

func fillBidAskPairJson(val *fastjson.Value, p *BidAskPair) {
	p.BidPx = fastjsonGetInt64FromString(val, "bid_px")
	p.AskPx = fastjsonGetInt64FromString(val, "ask_px")
	p.BidSz = uint32(val.GetUint("bid_sz"))
	p.AskSz = uint32(val.GetUint("ask_sz"))
	p.BidCt = uint32(val.GetUint("bid_ct"))
	p.AskCt = uint32(val.GetUint("ask_ct"))
}

// ConsolidatedBidAskPair is a single book level in a consolidated (CBBO/CMBP1) record.
// ts_recv differs per contributing publisher, so each level carries its own.
type ConsolidatedBidAskPair struct {
	BidPx        int64  `json:"bid_px" csv:"bid_px"`
	AskPx        int64  `json:"ask_px" csv:"ask_px"`
	BidSz        uint32 `json:"bid_sz" csv:"bid_sz"`
	AskSz        uint32 `json:"ask_sz" csv:"ask_sz"`
	BidPublisher uint16 `json:"bid_pb" csv:"bid_pb"`
	AskPublisher uint16 `json:"ask_pb" csv:"ask_pb"`
}

const ConsolidatedBidAskPairSize = 28

func fillConsolidatedBidAskPairRaw(b []byte, p *ConsolidatedBidAskPair) {
	p.BidPx = int64(binary.LittleEndian.Uint64(b[0:8]))
	p.AskPx = int64(binary.LittleEndian.Uint64(b[8:16]))
	p.BidSz = binary.LittleEndian.Uint32(b[16:20])
	p.AskSz = binary.LittleEndian.Uint32(b[20:24])
	p.BidPublisher = binary.LittleEndian.Uint16(b[24:26])
	p.AskPublisher = binary.LittleEndian.Uint16(b[26:28])
}

func fillConsolidatedBidAskPairJson(val *fastjson.Value, p *ConsolidatedBidAskPair) {
	p.BidPx = fastjsonGetInt64FromString(val, "bid_px")
	p.AskPx = fastjsonGetInt64FromString(val, "ask_px")
	p.BidSz = uint32(val.GetUint("bid_sz"))
	p.AskSz = uint32(val.GetUint("ask_sz"))
	p.BidPublisher = uint16(val.GetUint("bid_pb"))
	p.AskPublisher = uint16(val.GetUint("ask_pb"))
}
