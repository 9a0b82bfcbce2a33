// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
)

// StatMsg is a single exchange-published statistic (e.g. open interest, settlement price).
// StatMsg.Quantity is i64 in V3; V1's and V2's is i32, widened on upgrade (see upgrade.go).
type StatMsg struct {
	Header        RHeader   `json:"hd" csv:"hd"`
	TsRecv        uint64    `json:"ts_recv" csv:"ts_recv"`
	TsRef         uint64    `json:"ts_ref" csv:"ts_ref"`
	Price         int64     `json:"price" csv:"price"`
	Quantity      int64     `json:"quantity" csv:"quantity"`
	Sequence      uint32    `json:"sequence" csv:"sequence"`
	TsInDelta     int32     `json:"ts_in_delta" csv:"ts_in_delta"`
	StatType      StatType  `json:"stat_type" csv:"stat_type"`
	ChannelID     uint16    `json:"channel_id" csv:"channel_id"`
	UpdateAction  StatUpdateAction `json:"update_action" csv:"update_action"`
	StatFlags     uint8     `json:"stat_flags" csv:"stat_flags"`
	Reserved      [18]uint8 `json:"-" csv:"-"`
}

const StatMsgSize = RHeaderSize + 64

func (*StatMsg) RType() RType { return RType_Statistics }
func (*StatMsg) RSize() uint8 { return StatMsgSize }

func (r *StatMsg) Fill_Raw(b []byte) error {
	if len(b) < StatMsgSize {
		return unexpectedBytesError(len(b), StatMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.TsRef = binary.LittleEndian.Uint64(body[8:16])
	r.Price = int64(binary.LittleEndian.Uint64(body[16:24]))
	r.Quantity = int64(binary.LittleEndian.Uint64(body[24:32]))
	r.Sequence = binary.LittleEndian.Uint32(body[32:36])
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[36:40]))
	r.StatType = StatType(binary.LittleEndian.Uint16(body[40:42]))
	r.ChannelID = binary.LittleEndian.Uint16(body[42:44])
	r.UpdateAction = StatUpdateAction(body[44])
	r.StatFlags = body[45]
	copy(r.Reserved[:], body[46:64])
	return nil
}

func (r *StatMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjsonGetUint64FromString(val, "ts_recv")
	r.TsRef = fastjsonGetUint64FromString(val, "ts_ref")
	r.Price = fastjsonGetInt64FromString(val, "price")
	r.Quantity = fastjsonGetInt64FromString(val, "quantity")
	r.Sequence = uint32(val.GetUint("sequence"))
	r.TsInDelta = int32(val.GetInt("ts_in_delta"))
	r.StatType = StatType(val.GetUint("stat_type"))
	r.ChannelID = uint16(val.GetUint("channel_id"))
	r.UpdateAction = StatUpdateAction(val.GetUint("update_action"))
	r.StatFlags = uint8(val.GetUint("stat_flags"))
	return nil
}

// ErrorMsg is an error response from the upstream gateway.
type ErrorMsg struct {
	Header  RHeader `json:"hd" csv:"hd"`
	Err     string  `json:"err" csv:"err"`
	Code    uint8   `json:"code" csv:"code"`
	IsLast  uint8   `json:"is_last" csv:"is_last"`
}

const (
	errMsgErrLen = 302
	ErrorMsgSize = RHeaderSize + errMsgErrLen + 2
)

func (*ErrorMsg) RType() RType { return RType_Error }
func (*ErrorMsg) RSize() uint8 { return ErrorMsgSize }

func (r *ErrorMsg) Fill_Raw(b []byte) error {
	if len(b) < ErrorMsgSize {
		return unexpectedBytesError(len(b), ErrorMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.Err = TrimNullBytes(body[0:errMsgErrLen])
	r.Code = body[errMsgErrLen]
	r.IsLast = body[errMsgErrLen+1]
	return nil
}

func (r *ErrorMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.Err = string(val.GetStringBytes("err"))
	r.Code = uint8(val.GetUint("code"))
	r.IsLast = uint8(val.GetUint("is_last"))
	return nil
}

// SystemMsg is an informational (heartbeat/sub-ack) message from the upstream gateway.
type SystemMsg struct {
	Header RHeader `json:"hd" csv:"hd"`
	Msg    string  `json:"msg" csv:"msg"`
	Code   uint8   `json:"code" csv:"code"`
}

const (
	systemMsgMsgLen = 303
	SystemMsgSize   = RHeaderSize + systemMsgMsgLen + 1
)

func (*SystemMsg) RType() RType { return RType_System }
func (*SystemMsg) RSize() uint8 { return SystemMsgSize }

func (r *SystemMsg) Fill_Raw(b []byte) error {
	if len(b) < SystemMsgSize {
		return unexpectedBytesError(len(b), SystemMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.Msg = TrimNullBytes(body[0:systemMsgMsgLen])
	r.Code = body[systemMsgMsgLen]
	return nil
}

func (r *SystemMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.Msg = string(val.GetStringBytes("msg"))
	r.Code = uint8(val.GetUint("code"))
	return nil
}

// IsHeartbeat reports whether this SystemMsg is a keep-alive heartbeat rather
// than a subscription acknowledgment or informational notice.
func (r *SystemMsg) IsHeartbeat() bool {
	return r.Msg == "Heartbeat"
}
