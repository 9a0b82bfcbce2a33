// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
)

// MboMsg is a single market-by-order tick: one order-book event per price level.
type MboMsg struct {
	Header    RHeader `json:"hd" csv:"hd"`
	OrderID   uint64  `json:"order_id" csv:"order_id"`
	Price     int64   `json:"price" csv:"price"`
	Size      uint32  `json:"size" csv:"size"`
	Flags     uint8   `json:"flags" csv:"flags"`
	ChannelID uint8   `json:"channel_id" csv:"channel_id"`
	Action    uint8   `json:"action" csv:"action"`
	Side      uint8   `json:"side" csv:"side"`
	TsRecv    uint64  `json:"ts_recv" csv:"ts_recv"`
	TsInDelta int32   `json:"ts_in_delta" csv:"ts_in_delta"`
	Sequence  uint32  `json:"sequence" csv:"sequence"`
}

const MboMsgSize = RHeaderSize + 40

func (*MboMsg) RType() RType { return RType_Mbo }
func (*MboMsg) RSize() uint8 { return MboMsgSize }

func (r *MboMsg) Fill_Raw(b []byte) error {
	if len(b) < MboMsgSize {
		return unexpectedBytesError(len(b), MboMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.OrderID = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Flags = body[20]
	r.ChannelID = body[21]
	r.Action = body[22]
	r.Side = body[23]
	r.TsRecv = binary.LittleEndian.Uint64(body[24:32])
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[32:36]))
	r.Sequence = binary.LittleEndian.Uint32(body[36:40])
	return nil
}

func (r *MboMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.OrderID = fastjsonGetUint64FromString(val, "order_id")
	r.Price = fastjsonGetInt64FromString(val, "price")
	r.Size = uint32(val.GetUint("size"))
	r.Flags = uint8(val.GetUint("flags"))
	r.ChannelID = uint8(val.GetUint("channel_id"))
	r.Action = uint8(val.GetUint("action"))
	r.Side = uint8(val.GetUint("side"))
	r.TsRecv = fastjsonGetUint64FromString(val, "ts_recv")
	r.TsInDelta = int32(val.GetInt("ts_in_delta"))
	r.Sequence = uint32(val.GetUint("sequence"))
	return nil
}

// tradeHeader is the field layout shared by TradeMsg (MBP-0) and every
// market-by-price variant before their trailing book levels.
type tradeHeader struct {
	Price     int64  `json:"price" csv:"price"`
	Size      uint32 `json:"size" csv:"size"`
	Action    uint8  `json:"action" csv:"action"`
	Side      uint8  `json:"side" csv:"side"`
	Flags     uint8  `json:"flags" csv:"flags"`
	Depth     uint8  `json:"depth" csv:"depth"`
	TsRecv    uint64 `json:"ts_recv" csv:"ts_recv"`
	TsInDelta int32  `json:"ts_in_delta" csv:"ts_in_delta"`
	Sequence  uint32 `json:"sequence" csv:"sequence"`
}

const tradeHeaderSize = 32

func fillTradeHeaderRaw(b []byte, t *tradeHeader) {
	t.Price = int64(binary.LittleEndian.Uint64(b[0:8]))
	t.Size = binary.LittleEndian.Uint32(b[8:12])
	t.Action = b[12]
	t.Side = b[13]
	t.Flags = b[14]
	t.Depth = b[15]
	t.TsRecv = binary.LittleEndian.Uint64(b[16:24])
	t.TsInDelta = int32(binary.LittleEndian.Uint32(b[24:28]))
	t.Sequence = binary.LittleEndian.Uint32(b[28:32])
}

func putTradeHeaderRaw(b []byte, t *tradeHeader) {
	binary.LittleEndian.PutUint64(b[0:8], uint64(t.Price))
	binary.LittleEndian.PutUint32(b[8:12], t.Size)
	b[12] = t.Action
	b[13] = t.Side
	b[14] = t.Flags
	b[15] = t.Depth
	binary.LittleEndian.PutUint64(b[16:24], t.TsRecv)
	binary.LittleEndian.PutUint32(b[24:28], uint32(t.TsInDelta))
	binary.LittleEndian.PutUint32(b[28:32], t.Sequence)
}

func fillTradeHeaderJson(val *fastjson.Value, t *tradeHeader) {
	t.Price = fastjsonGetInt64FromString(val, "price")
	t.Size = uint32(val.GetUint("size"))
	t.Action = uint8(val.GetUint("action"))
	t.Side = uint8(val.GetUint("side"))
	t.Flags = uint8(val.GetUint("flags"))
	t.Depth = uint8(val.GetUint("depth"))
	t.TsRecv = fastjsonGetUint64FromString(val, "ts_recv")
	t.TsInDelta = int32(val.GetInt("ts_in_delta"))
	t.Sequence = uint32(val.GetUint("sequence"))
}

// TradeMsg is a trade event, i.e. market-by-price with a book depth of 0.
type TradeMsg struct {
	Header RHeader `json:"hd" csv:"hd"`
	tradeHeader
}

const TradeMsgSize = RHeaderSize + tradeHeaderSize

func (*TradeMsg) RType() RType { return RType_Mbp0 }
func (*TradeMsg) RSize() uint8 { return TradeMsgSize }

func (r *TradeMsg) Fill_Raw(b []byte) error {
	if len(b) < TradeMsgSize {
		return unexpectedBytesError(len(b), TradeMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	fillTradeHeaderRaw(b[RHeaderSize:TradeMsgSize], &r.tradeHeader)
	return nil
}

func (r *TradeMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	fillTradeHeaderJson(val, &r.tradeHeader)
	return nil
}

// Mbp1Msg is market-by-price with a known book depth of 1, a.k.a. TBBO/BBO top-of-book.
type Mbp1Msg struct {
	Header RHeader `json:"hd" csv:"hd"`
	tradeHeader
	Levels [1]BidAskPair `json:"levels" csv:"levels"`
}

const Mbp1MsgSize = RHeaderSize + tradeHeaderSize + BidAskPairSize

func (*Mbp1Msg) RType() RType { return RType_Mbp1 }
func (*Mbp1Msg) RSize() uint8 { return Mbp1MsgSize }

func (r *Mbp1Msg) Fill_Raw(b []byte) error {
	if len(b) < Mbp1MsgSize {
		return unexpectedBytesError(len(b), Mbp1MsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	fillTradeHeaderRaw(body[0:tradeHeaderSize], &r.tradeHeader)
	fillBidAskPairRaw(body[tradeHeaderSize:tradeHeaderSize+BidAskPairSize], &r.Levels[0])
	return nil
}

func (r *Mbp1Msg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	fillTradeHeaderJson(val, &r.tradeHeader)
	levels := val.GetArray("levels")
	if len(levels) > 0 {
		fillBidAskPairJson(levels[0], &r.Levels[0])
	}
	return nil
}

// TbboMsg is an alias schema for Mbp1Msg: trade messages joined with the BBO.
type TbboMsg = Mbp1Msg

// Mbp10Msg is market-by-price with a known book depth of 10.
type Mbp10Msg struct {
	Header RHeader `json:"hd" csv:"hd"`
	tradeHeader
	Levels [10]BidAskPair `json:"levels" csv:"levels"`
}

const Mbp10MsgSize = RHeaderSize + tradeHeaderSize + 10*BidAskPairSize

func (*Mbp10Msg) RType() RType { return RType_Mbp10 }
func (*Mbp10Msg) RSize() uint8 { return Mbp10MsgSize }

func (r *Mbp10Msg) Fill_Raw(b []byte) error {
	if len(b) < Mbp10MsgSize {
		return unexpectedBytesError(len(b), Mbp10MsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	fillTradeHeaderRaw(body[0:tradeHeaderSize], &r.tradeHeader)
	pos := tradeHeaderSize
	for i := 0; i < 10; i++ {
		fillBidAskPairRaw(body[pos:pos+BidAskPairSize], &r.Levels[i])
		pos += BidAskPairSize
	}
	return nil
}

func (r *Mbp10Msg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	fillTradeHeaderJson(val, &r.tradeHeader)
	levels := val.GetArray("levels")
	for i := 0; i < len(levels) && i < 10; i++ {
		fillBidAskPairJson(levels[i], &r.Levels[i])
	}
	return nil
}

// BboMsg is a subsampled top-of-book snapshot (BBO-1S/1M schemas).
type BboMsg struct {
	Header    RHeader       `json:"hd" csv:"hd"`
	Price     int64         `json:"price" csv:"price"`
	Size      uint32        `json:"size" csv:"size"`
	Side      uint8         `json:"side" csv:"side"`
	Flags     uint8         `json:"flags" csv:"flags"`
	Reserved1 uint8         `json:"-" csv:"-"`
	Reserved2 uint8         `json:"-" csv:"-"`
	TsRecv    uint64        `json:"ts_recv" csv:"ts_recv"`
	Sequence  uint32        `json:"sequence" csv:"sequence"`
	Reserved3 uint32        `json:"-" csv:"-"`
	Levels    [1]BidAskPair `json:"levels" csv:"levels"`
}

const BboMsgSize = RHeaderSize + 32 + BidAskPairSize

func (*BboMsg) RType() RType { return RType_Bbo1S }
func (*BboMsg) RSize() uint8 { return BboMsgSize }

func (r *BboMsg) Fill_Raw(b []byte) error {
	if len(b) < BboMsgSize {
		return unexpectedBytesError(len(b), BboMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.Price = int64(binary.LittleEndian.Uint64(body[0:8]))
	r.Size = binary.LittleEndian.Uint32(body[8:12])
	r.Side = body[12]
	r.Flags = body[13]
	r.TsRecv = binary.LittleEndian.Uint64(body[16:24])
	r.Sequence = binary.LittleEndian.Uint32(body[24:28])
	fillBidAskPairRaw(body[32:32+BidAskPairSize], &r.Levels[0])
	return nil
}

func (r *BboMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.Price = fastjsonGetInt64FromString(val, "price")
	r.Size = uint32(val.GetUint("size"))
	r.Side = uint8(val.GetUint("side"))
	r.Flags = uint8(val.GetUint("flags"))
	r.TsRecv = fastjsonGetUint64FromString(val, "ts_recv")
	r.Sequence = uint32(val.GetUint("sequence"))
	levels := val.GetArray("levels")
	if len(levels) > 0 {
		fillBidAskPairJson(levels[0], &r.Levels[0])
	}
	return nil
}

// CbboMsg is a consolidated (cross-publisher) top-of-book snapshot.
type CbboMsg struct {
	Header    RHeader                    `json:"hd" csv:"hd"`
	Price     int64                      `json:"price" csv:"price"`
	Size      uint32                     `json:"size" csv:"size"`
	Side      uint8                      `json:"side" csv:"side"`
	Flags     uint8                      `json:"flags" csv:"flags"`
	Reserved1 uint8                      `json:"-" csv:"-"`
	Reserved2 uint8                      `json:"-" csv:"-"`
	TsRecv    uint64                     `json:"ts_recv" csv:"ts_recv"`
	Reserved3 uint32                     `json:"-" csv:"-"`
	Levels    [1]ConsolidatedBidAskPair  `json:"levels" csv:"levels"`
}

const CbboMsgSize = RHeaderSize + 28 + ConsolidatedBidAskPairSize

func (*CbboMsg) RType() RType { return RType_Cbbo1S }
func (*CbboMsg) RSize() uint8 { return CbboMsgSize }

func (r *CbboMsg) Fill_Raw(b []byte) error {
	if len(b) < CbboMsgSize {
		return unexpectedBytesError(len(b), CbboMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.Price = int64(binary.LittleEndian.Uint64(body[0:8]))
	r.Size = binary.LittleEndian.Uint32(body[8:12])
	r.Side = body[12]
	r.Flags = body[13]
	r.TsRecv = binary.LittleEndian.Uint64(body[16:24])
	fillConsolidatedBidAskPairRaw(body[28:28+ConsolidatedBidAskPairSize], &r.Levels[0])
	return nil
}

func (r *CbboMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.Price = fastjsonGetInt64FromString(val, "price")
	r.Size = uint32(val.GetUint("size"))
	r.Side = uint8(val.GetUint("side"))
	r.Flags = uint8(val.GetUint("flags"))
	r.TsRecv = fastjsonGetUint64FromString(val, "ts_recv")
	levels := val.GetArray("levels")
	if len(levels) > 0 {
		fillConsolidatedBidAskPairJson(levels[0], &r.Levels[0])
	}
	return nil
}

// Cmbp1Msg pairs a consolidated trade/quote event with its top consolidated book level.
type Cmbp1Msg struct {
	Header RHeader `json:"hd" csv:"hd"`
	tradeHeader
	Levels [1]ConsolidatedBidAskPair `json:"levels" csv:"levels"`
}

const Cmbp1MsgSize = RHeaderSize + tradeHeaderSize + ConsolidatedBidAskPairSize

func (*Cmbp1Msg) RType() RType { return RType_Cmbp1 }
func (*Cmbp1Msg) RSize() uint8 { return Cmbp1MsgSize }

func (r *Cmbp1Msg) Fill_Raw(b []byte) error {
	if len(b) < Cmbp1MsgSize {
		return unexpectedBytesError(len(b), Cmbp1MsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	fillTradeHeaderRaw(body[0:tradeHeaderSize], &r.tradeHeader)
	fillConsolidatedBidAskPairRaw(body[tradeHeaderSize:tradeHeaderSize+ConsolidatedBidAskPairSize], &r.Levels[0])
	return nil
}

func (r *Cmbp1Msg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	fillTradeHeaderJson(val, &r.tradeHeader)
	levels := val.GetArray("levels")
	if len(levels) > 0 {
		fillConsolidatedBidAskPairJson(levels[0], &r.Levels[0])
	}
	return nil
}

// TcbboMsg pairs a consolidated trade with the top consolidated book level at the time of trade.
type TcbboMsg = Cmbp1Msg
