// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
)

// OhlcvMsg is an open/high/low/close/volume bar.
type OhlcvMsg struct {
	Header RHeader `json:"hd" csv:"hd"`
	Open   int64   `json:"open" csv:"open"`
	High   int64   `json:"high" csv:"high"`
	Low    int64   `json:"low" csv:"low"`
	Close  int64   `json:"close" csv:"close"`
	Volume uint64  `json:"volume" csv:"volume"`
}

const OhlcvMsgSize = RHeaderSize + 40

func (*OhlcvMsg) RType() RType { return RType_OhlcvEod }
func (*OhlcvMsg) RSize() uint8 { return OhlcvMsgSize }

func (r *OhlcvMsg) Fill_Raw(b []byte) error {
	if len(b) < OhlcvMsgSize {
		return unexpectedBytesError(len(b), OhlcvMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.Open = int64(binary.LittleEndian.Uint64(body[0:8]))
	r.High = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Low = int64(binary.LittleEndian.Uint64(body[16:24]))
	r.Close = int64(binary.LittleEndian.Uint64(body[24:32]))
	r.Volume = binary.LittleEndian.Uint64(body[32:40])
	return nil
}

func (r *OhlcvMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.Open = fastjsonGetInt64FromString(val, "open")
	r.High = fastjsonGetInt64FromString(val, "high")
	r.Low = fastjsonGetInt64FromString(val, "low")
	r.Close = fastjsonGetInt64FromString(val, "close")
	r.Volume = fastjsonGetUint64FromString(val, "volume")
	return nil
}

// StatusMsg is a trading status update: venue/instrument halt, resume, or quoting state change.
type StatusMsg struct {
	Header                RHeader   `json:"hd" csv:"hd"`
	TsRecv                 uint64    `json:"ts_recv" csv:"ts_recv"`
	Action                 uint16    `json:"action" csv:"action"`
	Reason                 uint16    `json:"reason" csv:"reason"`
	TradingEvent           uint16    `json:"trading_event" csv:"trading_event"`
	IsTrading              TriState  `json:"is_trading" csv:"is_trading"`
	IsQuoting              TriState  `json:"is_quoting" csv:"is_quoting"`
	IsShortSellRestricted  TriState  `json:"is_short_sell_restricted" csv:"is_short_sell_restricted"`
	Reserved               [7]uint8  `json:"-" csv:"-"`
}

const StatusMsgSize = RHeaderSize + 24

func (*StatusMsg) RType() RType { return RType_Status }
func (*StatusMsg) RSize() uint8 { return StatusMsgSize }

func (r *StatusMsg) Fill_Raw(b []byte) error {
	if len(b) < StatusMsgSize {
		return unexpectedBytesError(len(b), StatusMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Action = binary.LittleEndian.Uint16(body[8:10])
	r.Reason = binary.LittleEndian.Uint16(body[10:12])
	r.TradingEvent = binary.LittleEndian.Uint16(body[12:14])
	r.IsTrading = TriState(body[14])
	r.IsQuoting = TriState(body[15])
	r.IsShortSellRestricted = TriState(body[16])
	copy(r.Reserved[:], body[17:24])
	return nil
}

func (r *StatusMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjsonGetUint64FromString(val, "ts_recv")
	r.Action = uint16(val.GetUint("action"))
	r.Reason = uint16(val.GetUint("reason"))
	r.TradingEvent = uint16(val.GetUint("trading_event"))
	r.IsTrading = TriState(val.GetUint("is_trading"))
	r.IsQuoting = TriState(val.GetUint("is_quoting"))
	r.IsShortSellRestricted = TriState(val.GetUint("is_short_sell_restricted"))
	return nil
}
