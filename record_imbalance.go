// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
)

// ImbalanceMsg is an auction imbalance message.
type ImbalanceMsg struct {
	Header               RHeader `json:"hd" csv:"hd"`
	TsRecv               uint64  `json:"ts_recv" csv:"ts_recv"`
	RefPrice             int64   `json:"ref_price" csv:"ref_price"`
	AuctionTime          uint64  `json:"auction_time" csv:"auction_time"`
	ContBookClrPrice     int64   `json:"cont_book_clr_price" csv:"cont_book_clr_price"`
	AuctInterestClrPrice int64   `json:"auct_interest_clr_price" csv:"auct_interest_clr_price"`
	SsrFillingPrice      int64   `json:"ssr_filling_price" csv:"ssr_filling_price"`
	IndMatchPrice        int64   `json:"ind_match_price" csv:"ind_match_price"`
	UpperCollar          int64   `json:"upper_collar" csv:"upper_collar"`
	LowerCollar          int64   `json:"lower_collar" csv:"lower_collar"`
	PairedQty            uint32  `json:"paired_qty" csv:"paired_qty"`
	TotalImbalanceQty    uint32  `json:"total_imbalance_qty" csv:"total_imbalance_qty"`
	MarketImbalanceQty   uint32  `json:"market_imbalance_qty" csv:"market_imbalance_qty"`
	UnpairedQty          int32   `json:"unpaired_qty" csv:"unpaired_qty"`
	AuctionType          uint8   `json:"auction_type" csv:"auction_type"`
	Side                 uint8   `json:"side" csv:"side"`
	AuctionStatus        uint8   `json:"auction_status" csv:"auction_status"`
	FreezeStatus         uint8   `json:"freeze_status" csv:"freeze_status"`
	NumExtensions        uint8   `json:"num_extensions" csv:"num_extensions"`
	UnpairedSide         uint8   `json:"unpaired_side" csv:"unpaired_side"`
	SignificantImbalance uint8   `json:"significant_imbalance" csv:"significant_imbalance"`
	Reserved             uint8   `json:"-" csv:"-"`
}

const ImbalanceMsgSize = RHeaderSize + 96

func (*ImbalanceMsg) RType() RType { return RType_Imbalance }
func (*ImbalanceMsg) RSize() uint8 { return ImbalanceMsgSize }

func (r *ImbalanceMsg) Fill_Raw(b []byte) error {
	if len(b) < ImbalanceMsgSize {
		return unexpectedBytesError(len(b), ImbalanceMsgSize)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.RefPrice = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.AuctionTime = binary.LittleEndian.Uint64(body[16:24])
	r.ContBookClrPrice = int64(binary.LittleEndian.Uint64(body[24:32]))
	r.AuctInterestClrPrice = int64(binary.LittleEndian.Uint64(body[32:40]))
	r.SsrFillingPrice = int64(binary.LittleEndian.Uint64(body[40:48]))
	r.IndMatchPrice = int64(binary.LittleEndian.Uint64(body[48:56]))
	r.UpperCollar = int64(binary.LittleEndian.Uint64(body[56:64]))
	r.LowerCollar = int64(binary.LittleEndian.Uint64(body[64:72]))
	r.PairedQty = binary.LittleEndian.Uint32(body[72:76])
	r.TotalImbalanceQty = binary.LittleEndian.Uint32(body[76:80])
	r.MarketImbalanceQty = binary.LittleEndian.Uint32(body[80:84])
	r.UnpairedQty = int32(binary.LittleEndian.Uint32(body[84:88]))
	r.AuctionType = body[88]
	r.Side = body[89]
	r.AuctionStatus = body[90]
	r.FreezeStatus = body[91]
	r.NumExtensions = body[92]
	r.UnpairedSide = body[93]
	r.SignificantImbalance = body[94]
	r.Reserved = body[95]
	return nil
}

func (r *ImbalanceMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjsonGetUint64FromString(val, "ts_recv")
	r.RefPrice = fastjsonGetInt64FromString(val, "ref_price")
	r.AuctionTime = fastjsonGetUint64FromString(val, "auction_time")
	r.ContBookClrPrice = fastjsonGetInt64FromString(val, "cont_book_clr_price")
	r.AuctInterestClrPrice = fastjsonGetInt64FromString(val, "auct_interest_clr_price")
	r.SsrFillingPrice = fastjsonGetInt64FromString(val, "ssr_filling_price")
	r.IndMatchPrice = fastjsonGetInt64FromString(val, "ind_match_price")
	r.UpperCollar = fastjsonGetInt64FromString(val, "upper_collar")
	r.LowerCollar = fastjsonGetInt64FromString(val, "lower_collar")
	r.PairedQty = uint32(val.GetUint("paired_qty"))
	r.TotalImbalanceQty = uint32(val.GetUint("total_imbalance_qty"))
	r.MarketImbalanceQty = uint32(val.GetUint("market_imbalance_qty"))
	r.UnpairedQty = int32(val.GetInt("unpaired_qty"))
	r.AuctionType = uint8(val.GetUint("auction_type"))
	r.Side = uint8(val.GetUint("side"))
	r.AuctionStatus = uint8(val.GetUint("auction_status"))
	r.FreezeStatus = uint8(val.GetUint("freeze_status"))
	r.NumExtensions = uint8(val.GetUint("num_extensions"))
	r.UnpairedSide = uint8(val.GetUint("unpaired_side"))
	r.SignificantImbalance = uint8(val.GetUint("significant_imbalance"))
	return nil
}
