// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
)

// InstrumentDefMsg is the definition of an instrument: the full venue reference
// data record. V1/V2 layouts are narrower (raw_instrument_id is u32, symbol
// fields use the V1/V2 cstr width); this is the V3 shape. See upgrade.go for
// the V1/V2 -> V3 conversion.
type InstrumentDefMsg struct {
	Header                  RHeader `json:"hd" csv:"hd"`
	TsRecv                  uint64  `json:"ts_recv" csv:"ts_recv"`
	MinPriceIncrement       int64   `json:"min_price_increment" csv:"min_price_increment"`
	DisplayFactor           int64   `json:"display_factor" csv:"display_factor"`
	Expiration              uint64  `json:"expiration" csv:"expiration"`
	Activation              uint64  `json:"activation" csv:"activation"`
	HighLimitPrice          int64   `json:"high_limit_price" csv:"high_limit_price"`
	LowLimitPrice           int64   `json:"low_limit_price" csv:"low_limit_price"`
	MaxPriceVariation       int64   `json:"max_price_variation" csv:"max_price_variation"`
	UnitOfMeasureQty        int64   `json:"unit_of_measure_qty" csv:"unit_of_measure_qty"`
	MinPriceIncrementAmount int64   `json:"min_price_increment_amount" csv:"min_price_increment_amount"`
	PriceRatio              int64   `json:"price_ratio" csv:"price_ratio"`
	StrikePrice             int64   `json:"strike_price" csv:"strike_price"`
	RawInstrumentID         uint64  `json:"raw_instrument_id" csv:"raw_instrument_id"`
	InstAttribValue         int32   `json:"inst_attrib_value" csv:"inst_attrib_value"`
	UnderlyingID            uint32  `json:"underlying_id" csv:"underlying_id"`
	MarketDepthImplied      int32   `json:"market_depth_implied" csv:"market_depth_implied"`
	MarketDepth             int32   `json:"market_depth" csv:"market_depth"`
	MarketSegmentID         uint32  `json:"market_segment_id" csv:"market_segment_id"`
	MaxTradeVol             uint32  `json:"max_trade_vol" csv:"max_trade_vol"`
	MinLotSize              int32   `json:"min_lot_size" csv:"min_lot_size"`
	MinLotSizeBlock         int32   `json:"min_lot_size_block" csv:"min_lot_size_block"`
	MinLotSizeRoundLot      int32   `json:"min_lot_size_round_lot" csv:"min_lot_size_round_lot"`
	MinTradeVol             uint32  `json:"min_trade_vol" csv:"min_trade_vol"`
	ContractMultiplier      int32   `json:"contract_multiplier" csv:"contract_multiplier"`
	DecayQuantity           int32   `json:"decay_quantity" csv:"decay_quantity"`
	OriginalContractSize    int32   `json:"original_contract_size" csv:"original_contract_size"`
	TradingReferenceDate    uint16  `json:"trading_reference_date" csv:"trading_reference_date"`
	ApplID                  int16   `json:"appl_id" csv:"appl_id"`
	MaturityYear            uint16  `json:"maturity_year" csv:"maturity_year"`
	DecayStartDate          uint16  `json:"decay_start_date" csv:"decay_start_date"`
	ChannelID               uint16  `json:"channel_id" csv:"channel_id"`
	Currency                string  `json:"currency" csv:"currency"`
	SettlCurrency           string  `json:"settl_currency" csv:"settl_currency"`
	SecSubType              string  `json:"secsubtype" csv:"secsubtype"`
	RawSymbol               string  `json:"raw_symbol" csv:"raw_symbol"`
	Group                   string  `json:"group" csv:"group"`
	Exchange                string  `json:"exchange" csv:"exchange"`
	Asset                   string  `json:"asset" csv:"asset"`
	CFI                     string  `json:"cfi" csv:"cfi"`
	SecurityType            string  `json:"security_type" csv:"security_type"`
	UnitOfMeasure           string  `json:"unit_of_measure" csv:"unit_of_measure"`
	Underlying              string  `json:"underlying" csv:"underlying"`
	StrikePriceCurrency     string  `json:"strike_price_currency" csv:"strike_price_currency"`
	InstrumentClass         uint8   `json:"instrument_class" csv:"instrument_class"`
	MatchAlgorithm          uint8   `json:"match_algorithm" csv:"match_algorithm"`
	MainFraction            uint8   `json:"main_fraction" csv:"main_fraction"`
	PriceDisplayFormat      uint8   `json:"price_display_format" csv:"price_display_format"`
	SubFraction             uint8   `json:"sub_fraction" csv:"sub_fraction"`
	UnderlyingProduct       uint8   `json:"underlying_product" csv:"underlying_product"`
	SecurityUpdateAction    uint8   `json:"security_update_action" csv:"security_update_action"`
	MaturityMonth           uint8   `json:"maturity_month" csv:"maturity_month"`
	MaturityDay             uint8   `json:"maturity_day" csv:"maturity_day"`
	MaturityWeek            uint8   `json:"maturity_week" csv:"maturity_week"`
	UserDefinedInstrument   uint8   `json:"user_defined_instrument" csv:"user_defined_instrument"`
	ContractMultiplierUnit  int8    `json:"contract_multiplier_unit" csv:"contract_multiplier_unit"`
	FlowScheduleType        int8    `json:"flow_schedule_type" csv:"flow_schedule_type"`
	TickRule                uint8   `json:"tick_rule" csv:"tick_rule"`
}

// cstr widths for the fixed string fields, V3 (symbol_cstr_len = 71; the others
// are not affected by SYMBOL_CSTR_LEN and keep their historical widths).
const (
	instrumentCurrencyLen = 4
	instrumentSecSubLen   = 6
	instrumentGroupLen    = 21
	instrumentExchangeLen = 5
	instrumentAssetLen    = 7
	instrumentCfiLen      = 7
	instrumentSecTypeLen  = 7
	instrumentUnitOfMeaLen = 31
	instrumentUnderlyingLen = 21
	instrumentStrikeCcyLen  = 4
)

// InstrumentDefMsgSize returns the V3 on-wire size for a given symbol_cstr_len.
func InstrumentDefMsgSize(symbolCstrLen int) int {
	strs := instrumentCurrencyLen + instrumentSecSubLen + symbolCstrLen + instrumentGroupLen +
		instrumentExchangeLen + instrumentAssetLen + instrumentCfiLen + instrumentSecTypeLen +
		instrumentUnitOfMeaLen + instrumentUnderlyingLen + instrumentStrikeCcyLen + instrumentCurrencyLen
	numeric := 8*12 /* int64/uint64 fields */ + 8 /* raw_instrument_id */ +
		4*4 /* inst_attrib_value..market_depth */ + 4*9 /* market_segment_id..original_contract_size */ +
		2*5 /* trading_reference_date..channel_id */ + 14 /* trailing u8/i8 fields */
	total := RHeaderSize + numeric + strs
	// pad to 4-byte alignment
	if rem := total % 4; rem != 0 {
		total += 4 - rem
	}
	return total
}

func (*InstrumentDefMsg) RType() RType { return RType_InstrumentDef }
func (*InstrumentDefMsg) RSize() uint8 { return 0 } // variable width; use InstrumentDefMsgSize

func (r *InstrumentDefMsg) Fill_Raw(b []byte, symbolCstrLen int) error {
	want := InstrumentDefMsgSize(symbolCstrLen)
	if len(b) < want {
		return unexpectedBytesError(len(b), want)
	}
	if err := FillRHeaderRaw(b[0:RHeaderSize], &r.Header); err != nil {
		return err
	}
	body := b[RHeaderSize:]
	pos := 0
	nextI64 := func() int64 { v := int64(binary.LittleEndian.Uint64(body[pos : pos+8])); pos += 8; return v }
	nextU64 := func() uint64 { v := binary.LittleEndian.Uint64(body[pos : pos+8]); pos += 8; return v }
	nextI32 := func() int32 { v := int32(binary.LittleEndian.Uint32(body[pos : pos+4])); pos += 4; return v }
	nextU32 := func() uint32 { v := binary.LittleEndian.Uint32(body[pos : pos+4]); pos += 4; return v }
	nextU16 := func() uint16 { v := binary.LittleEndian.Uint16(body[pos : pos+2]); pos += 2; return v }
	nextI16 := func() int16 { v := int16(binary.LittleEndian.Uint16(body[pos : pos+2])); pos += 2; return v }
	nextStr := func(n int) string { s := TrimNullBytes(body[pos : pos+n]); pos += n; return s }
	nextU8 := func() uint8 { v := body[pos]; pos++; return v }
	nextI8 := func() int8 { v := int8(body[pos]); pos++; return v }

	r.TsRecv = nextU64()
	r.MinPriceIncrement = nextI64()
	r.DisplayFactor = nextI64()
	r.Expiration = nextU64()
	r.Activation = nextU64()
	r.HighLimitPrice = nextI64()
	r.LowLimitPrice = nextI64()
	r.MaxPriceVariation = nextI64()
	r.UnitOfMeasureQty = nextI64()
	r.MinPriceIncrementAmount = nextI64()
	r.PriceRatio = nextI64()
	r.StrikePrice = nextI64()
	r.RawInstrumentID = nextU64()
	r.InstAttribValue = nextI32()
	r.UnderlyingID = nextU32()
	r.MarketDepthImplied = nextI32()
	r.MarketDepth = nextI32()
	r.MarketSegmentID = nextU32()
	r.MaxTradeVol = nextU32()
	r.MinLotSize = nextI32()
	r.MinLotSizeBlock = nextI32()
	r.MinLotSizeRoundLot = nextI32()
	r.MinTradeVol = nextU32()
	r.ContractMultiplier = nextI32()
	r.DecayQuantity = nextI32()
	r.OriginalContractSize = nextI32()
	r.TradingReferenceDate = nextU16()
	r.ApplID = nextI16()
	r.MaturityYear = nextU16()
	r.DecayStartDate = nextU16()
	r.ChannelID = nextU16()
	r.Currency = nextStr(instrumentCurrencyLen)
	r.SettlCurrency = nextStr(instrumentCurrencyLen)
	r.SecSubType = nextStr(instrumentSecSubLen)
	r.RawSymbol = nextStr(symbolCstrLen)
	r.Group = nextStr(instrumentGroupLen)
	r.Exchange = nextStr(instrumentExchangeLen)
	r.Asset = nextStr(instrumentAssetLen)
	r.CFI = nextStr(instrumentCfiLen)
	r.SecurityType = nextStr(instrumentSecTypeLen)
	r.UnitOfMeasure = nextStr(instrumentUnitOfMeaLen)
	r.Underlying = nextStr(instrumentUnderlyingLen)
	r.StrikePriceCurrency = nextStr(instrumentStrikeCcyLen)
	r.InstrumentClass = nextU8()
	r.MatchAlgorithm = nextU8()
	r.MainFraction = nextU8()
	r.PriceDisplayFormat = nextU8()
	r.SubFraction = nextU8()
	r.UnderlyingProduct = nextU8()
	r.SecurityUpdateAction = nextU8()
	r.MaturityMonth = nextU8()
	r.MaturityDay = nextU8()
	r.MaturityWeek = nextU8()
	r.UserDefinedInstrument = nextU8()
	r.ContractMultiplierUnit = nextI8()
	r.FlowScheduleType = nextI8()
	r.TickRule = nextU8()
	return nil
}

// putRaw encodes r into b using symbolCstrLen as the RawSymbol field width,
// the inverse of Fill_Raw. Used by the upgrade layer to re-emit a record
// decoded at an older, narrower symbol width in the current wire shape.
func (r *InstrumentDefMsg) putRaw(b []byte, symbolCstrLen int) error {
	want := InstrumentDefMsgSize(symbolCstrLen)
	if len(b) < want {
		return unexpectedBytesError(len(b), want)
	}
	PutRHeaderRaw(b[0:RHeaderSize], &r.Header)
	body := b[RHeaderSize:]
	pos := 0
	putI64 := func(v int64) { binary.LittleEndian.PutUint64(body[pos:pos+8], uint64(v)); pos += 8 }
	putU64 := func(v uint64) { binary.LittleEndian.PutUint64(body[pos:pos+8], v); pos += 8 }
	putI32 := func(v int32) { binary.LittleEndian.PutUint32(body[pos:pos+4], uint32(v)); pos += 4 }
	putU32 := func(v uint32) { binary.LittleEndian.PutUint32(body[pos:pos+4], v); pos += 4 }
	putU16 := func(v uint16) { binary.LittleEndian.PutUint16(body[pos:pos+2], v); pos += 2 }
	putI16 := func(v int16) { binary.LittleEndian.PutUint16(body[pos:pos+2], uint16(v)); pos += 2 }
	putStr := func(s string, n int) {
		clear(body[pos : pos+n])
		copy(body[pos:pos+n], s)
		pos += n
	}
	putU8 := func(v uint8) { body[pos] = v; pos++ }
	putI8 := func(v int8) { body[pos] = uint8(v); pos++ }

	putU64(r.TsRecv)
	putI64(r.MinPriceIncrement)
	putI64(r.DisplayFactor)
	putU64(r.Expiration)
	putU64(r.Activation)
	putI64(r.HighLimitPrice)
	putI64(r.LowLimitPrice)
	putI64(r.MaxPriceVariation)
	putI64(r.UnitOfMeasureQty)
	putI64(r.MinPriceIncrementAmount)
	putI64(r.PriceRatio)
	putI64(r.StrikePrice)
	putU64(r.RawInstrumentID)
	putI32(r.InstAttribValue)
	putU32(r.UnderlyingID)
	putI32(r.MarketDepthImplied)
	putI32(r.MarketDepth)
	putU32(r.MarketSegmentID)
	putU32(r.MaxTradeVol)
	putI32(r.MinLotSize)
	putI32(r.MinLotSizeBlock)
	putI32(r.MinLotSizeRoundLot)
	putU32(r.MinTradeVol)
	putI32(r.ContractMultiplier)
	putI32(r.DecayQuantity)
	putI32(r.OriginalContractSize)
	putU16(r.TradingReferenceDate)
	putI16(r.ApplID)
	putU16(r.MaturityYear)
	putU16(r.DecayStartDate)
	putU16(r.ChannelID)
	putStr(r.Currency, instrumentCurrencyLen)
	putStr(r.SettlCurrency, instrumentCurrencyLen)
	putStr(r.SecSubType, instrumentSecSubLen)
	putStr(r.RawSymbol, symbolCstrLen)
	putStr(r.Group, instrumentGroupLen)
	putStr(r.Exchange, instrumentExchangeLen)
	putStr(r.Asset, instrumentAssetLen)
	putStr(r.CFI, instrumentCfiLen)
	putStr(r.SecurityType, instrumentSecTypeLen)
	putStr(r.UnitOfMeasure, instrumentUnitOfMeaLen)
	putStr(r.Underlying, instrumentUnderlyingLen)
	putStr(r.StrikePriceCurrency, instrumentStrikeCcyLen)
	putU8(r.InstrumentClass)
	putU8(r.MatchAlgorithm)
	putU8(r.MainFraction)
	putU8(r.PriceDisplayFormat)
	putU8(r.SubFraction)
	putU8(r.UnderlyingProduct)
	putU8(r.SecurityUpdateAction)
	putU8(r.MaturityMonth)
	putU8(r.MaturityDay)
	putU8(r.MaturityWeek)
	putU8(r.UserDefinedInstrument)
	putI8(r.ContractMultiplierUnit)
	putI8(r.FlowScheduleType)
	putU8(r.TickRule)
	return nil
}

func (r *InstrumentDefMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjsonGetUint64FromString(val, "ts_recv")
	r.MinPriceIncrement = fastjsonGetInt64FromString(val, "min_price_increment")
	r.DisplayFactor = fastjsonGetInt64FromString(val, "display_factor")
	r.Expiration = fastjsonGetUint64FromString(val, "expiration")
	r.Activation = fastjsonGetUint64FromString(val, "activation")
	r.HighLimitPrice = fastjsonGetInt64FromString(val, "high_limit_price")
	r.LowLimitPrice = fastjsonGetInt64FromString(val, "low_limit_price")
	r.MaxPriceVariation = fastjsonGetInt64FromString(val, "max_price_variation")
	r.UnitOfMeasureQty = fastjsonGetInt64FromString(val, "unit_of_measure_qty")
	r.MinPriceIncrementAmount = fastjsonGetInt64FromString(val, "min_price_increment_amount")
	r.PriceRatio = fastjsonGetInt64FromString(val, "price_ratio")
	r.StrikePrice = fastjsonGetInt64FromString(val, "strike_price")
	r.RawInstrumentID = fastjsonGetUint64FromString(val, "raw_instrument_id")
	r.InstAttribValue = int32(val.GetInt("inst_attrib_value"))
	r.UnderlyingID = uint32(val.GetUint("underlying_id"))
	r.MarketDepthImplied = int32(val.GetInt("market_depth_implied"))
	r.MarketDepth = int32(val.GetInt("market_depth"))
	r.MarketSegmentID = uint32(val.GetUint("market_segment_id"))
	r.MaxTradeVol = uint32(val.GetUint("max_trade_vol"))
	r.MinLotSize = int32(val.GetInt("min_lot_size"))
	r.MinLotSizeBlock = int32(val.GetInt("min_lot_size_block"))
	r.MinLotSizeRoundLot = int32(val.GetInt("min_lot_size_round_lot"))
	r.MinTradeVol = uint32(val.GetUint("min_trade_vol"))
	r.ContractMultiplier = int32(val.GetInt("contract_multiplier"))
	r.DecayQuantity = int32(val.GetInt("decay_quantity"))
	r.OriginalContractSize = int32(val.GetInt("original_contract_size"))
	r.TradingReferenceDate = uint16(val.GetUint("trading_reference_date"))
	r.ApplID = int16(val.GetInt("appl_id"))
	r.MaturityYear = uint16(val.GetUint("maturity_year"))
	r.DecayStartDate = uint16(val.GetUint("decay_start_date"))
	r.ChannelID = uint16(val.GetUint("channel_id"))
	r.Currency = string(val.GetStringBytes("currency"))
	r.SettlCurrency = string(val.GetStringBytes("settl_currency"))
	r.SecSubType = string(val.GetStringBytes("secsubtype"))
	r.RawSymbol = string(val.GetStringBytes("raw_symbol"))
	r.Group = string(val.GetStringBytes("group"))
	r.Exchange = string(val.GetStringBytes("exchange"))
	r.Asset = string(val.GetStringBytes("asset"))
	r.CFI = string(val.GetStringBytes("cfi"))
	r.SecurityType = string(val.GetStringBytes("security_type"))
	r.UnitOfMeasure = string(val.GetStringBytes("unit_of_measure"))
	r.Underlying = string(val.GetStringBytes("underlying"))
	r.StrikePriceCurrency = string(val.GetStringBytes("strike_price_currency"))
	r.InstrumentClass = uint8(val.GetUint("instrument_class"))
	r.MatchAlgorithm = uint8(val.GetUint("match_algorithm"))
	r.MainFraction = uint8(val.GetUint("main_fraction"))
	r.PriceDisplayFormat = uint8(val.GetUint("price_display_format"))
	r.SubFraction = uint8(val.GetUint("sub_fraction"))
	r.UnderlyingProduct = uint8(val.GetUint("underlying_product"))
	r.SecurityUpdateAction = uint8(val.GetUint("security_update_action"))
	r.MaturityMonth = uint8(val.GetUint("maturity_month"))
	r.MaturityDay = uint8(val.GetUint("maturity_day"))
	r.MaturityWeek = uint8(val.GetUint("maturity_week"))
	r.UserDefinedInstrument = uint8(val.GetUint("user_defined_instrument"))
	r.ContractMultiplierUnit = int8(val.GetInt("contract_multiplier_unit"))
	r.FlowScheduleType = int8(val.GetInt("flow_schedule_type"))
	r.TickRule = uint8(val.GetUint("tick_rule"))
	return nil
}
