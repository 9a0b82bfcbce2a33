// Copyright (c) 2024 Neomantra Corp

package bf

// Visitor receives one callback per decoded record, dispatched by rtype.
// Grounded on the teacher's visitor.go, extended to the full record
// universe (BBO/CBBO/CMBP1 and split Error/System messages).
type Visitor interface {
	OnMbo(record *MboMsg) error
	OnTrade(record *TradeMsg) error
	OnMbp1(record *Mbp1Msg) error
	OnMbp10(record *Mbp10Msg) error
	OnBbo(record *BboMsg) error
	OnCbbo(record *CbboMsg) error
	OnCmbp1(record *Cmbp1Msg) error

	OnOhlcv(record *OhlcvMsg) error
	OnStatus(record *StatusMsg) error
	OnInstrumentDef(record *InstrumentDefMsg) error
	OnImbalance(record *ImbalanceMsg) error
	OnStat(record *StatMsg) error

	OnErrorMsg(record *ErrorMsg) error
	OnSystemMsg(record *SystemMsg) error
	OnSymbolMappingMsg(record *SymbolMappingMsg) error

	OnStreamEnd() error
}

// Dispatch calls the Visitor method matching rr's active variant.
func Dispatch(v Visitor, rr RecordRefEnum) error {
	switch {
	case rr.Mbo != nil:
		return v.OnMbo(rr.Mbo)
	case rr.Trade != nil:
		return v.OnTrade(rr.Trade)
	case rr.Mbp1 != nil:
		return v.OnMbp1(rr.Mbp1)
	case rr.Mbp10 != nil:
		return v.OnMbp10(rr.Mbp10)
	case rr.Bbo != nil:
		return v.OnBbo(rr.Bbo)
	case rr.Cbbo != nil:
		return v.OnCbbo(rr.Cbbo)
	case rr.Cmbp1 != nil:
		return v.OnCmbp1(rr.Cmbp1)
	case rr.Ohlcv != nil:
		return v.OnOhlcv(rr.Ohlcv)
	case rr.Status != nil:
		return v.OnStatus(rr.Status)
	case rr.Instrument != nil:
		return v.OnInstrumentDef(rr.Instrument)
	case rr.Imbalance != nil:
		return v.OnImbalance(rr.Imbalance)
	case rr.Stat != nil:
		return v.OnStat(rr.Stat)
	case rr.ErrorMsg != nil:
		return v.OnErrorMsg(rr.ErrorMsg)
	case rr.System != nil:
		return v.OnSystemMsg(rr.System)
	case rr.SymbolMap != nil:
		return v.OnSymbolMappingMsg(rr.SymbolMap)
	default:
		return ErrUnknownRType
	}
}
