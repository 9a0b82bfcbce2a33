// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"strconv"
	"time"
)

// TsSymbolMap resolves (date, instrument_id) to a human-readable symbol,
// built once from a stream's Metadata at parse time (spec.md §4.I).
type TsSymbolMap struct {
	symbols map[tsSymbolKey]string
}

type tsSymbolKey struct {
	ymd uint32
	id  uint32
}

func NewTsSymbolMap() *TsSymbolMap {
	return &TsSymbolMap{symbols: make(map[tsSymbolKey]string)}
}

func (tsm *TsSymbolMap) IsEmpty() bool { return len(tsm.symbols) == 0 }
func (tsm *TsSymbolMap) Len() int      { return len(tsm.symbols) }

// Get returns the symbol active for instrID on dt's UTC calendar date, or ""
// if no mapping covers that date.
func (tsm *TsSymbolMap) Get(dt time.Time, instrID uint32) string {
	return tsm.symbols[tsSymbolKey{ymd: TimeToYMD(dt), id: instrID}]
}

// FillFromMetadata rebuilds the map from metadata's mappings, expanding each
// interval into one entry per calendar day it spans.
func (tsm *TsSymbolMap) FillFromMetadata(metadata *Metadata) error {
	tsm.symbols = make(map[tsSymbolKey]string)

	inverse, err := metadata.IsInverseMapping()
	if err != nil {
		return err
	}
	for _, mapping := range metadata.Mappings {
		if inverse {
			instrID, err := strconv.Atoi(mapping.RawSymbol)
			if err != nil {
				return err
			}
			for _, interval := range mapping.Intervals {
				if interval.Symbol == "" {
					continue
				}
				if err := tsm.insert(uint32(instrID), interval.StartDate, interval.EndDate, interval.Symbol); err != nil {
					return err
				}
			}
		} else {
			for _, interval := range mapping.Intervals {
				if interval.Symbol == "" {
					continue
				}
				instrID, err := strconv.Atoi(interval.Symbol)
				if err != nil {
					return err
				}
				if err := tsm.insert(uint32(instrID), interval.StartDate, interval.EndDate, mapping.RawSymbol); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// insert records ticker for instrID across every UTC calendar day in
// [startDate, endDate], both given as YYYYMMDD.
func (tsm *TsSymbolMap) insert(instrID uint32, startDate, endDate uint32, ticker string) error {
	start, err := YMDToTime(startDate)
	if err != nil {
		return err
	}
	end, err := YMDToTime(endDate)
	if err != nil {
		return err
	}
	if start.After(end) {
		return metadataMismatchError("mapping interval (start after end)")
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		tsm.symbols[tsSymbolKey{ymd: TimeToYMD(d), id: instrID}] = ticker
	}
	return nil
}

// PitSymbolMap is a point-in-time symbol map: a single instrument_id <->
// symbol bijection valid at one instant, useful for live feeds or a
// single-day historical request where mappings don't change mid-stream.
type PitSymbolMap struct {
	mapping    map[uint32]string
	mappingInv map[string]uint32
}

func NewPitSymbolMap() *PitSymbolMap {
	return &PitSymbolMap{
		mapping:    make(map[uint32]string),
		mappingInv: make(map[string]uint32),
	}
}

func (p *PitSymbolMap) IsEmpty() bool { return len(p.mapping) == 0 }
func (p *PitSymbolMap) Len() int      { return len(p.mapping) }
func (p *PitSymbolMap) Get(instrumentID uint32) string { return p.mapping[instrumentID] }

// OnSymbolMappingMsg applies a live SYMBOL_MAPPING record to the map.
func (p *PitSymbolMap) OnSymbolMappingMsg(msg *SymbolMappingMsg) {
	p.mapping[msg.Header.InstrumentID] = msg.StypeOutSymbol
	p.mappingInv[msg.StypeOutSymbol] = msg.Header.InstrumentID
}

// FillFromMetadata rebuilds the map from metadata for the UTC calendar date
// containing timestamp (nanoseconds since epoch), clearing prior contents.
func (p *PitSymbolMap) FillFromMetadata(metadata *Metadata, timestamp uint64) error {
	if (metadata.StypeIn == nil || *metadata.StypeIn != SType_InstrumentId) && metadata.StypeOut != SType_InstrumentId {
		return ErrWrongStypesMapping
	}
	if timestamp < metadata.Start || (metadata.End != 0 && timestamp >= metadata.End) {
		return ErrDateOutsideRange
	}
	ymd := TimeToYMD(TimestampToTime(timestamp))

	inverse, err := metadata.IsInverseMapping()
	if err != nil {
		return err
	}

	p.mapping = make(map[uint32]string, len(metadata.Mappings))
	p.mappingInv = make(map[string]uint32, len(metadata.Mappings))

	for _, mapping := range metadata.Mappings {
		for _, interval := range mapping.Intervals {
			if ymd < interval.StartDate || ymd >= interval.EndDate {
				continue
			}
			if interval.Symbol == "" {
				continue
			}
			if inverse {
				instrID, err := strconv.Atoi(mapping.RawSymbol)
				if err != nil {
					return err
				}
				p.mapping[uint32(instrID)] = interval.Symbol
				p.mappingInv[interval.Symbol] = uint32(instrID)
			} else {
				instrID, err := strconv.Atoi(interval.Symbol)
				if err != nil {
					return err
				}
				p.mapping[uint32(instrID)] = mapping.RawSymbol
				p.mappingInv[mapping.RawSymbol] = uint32(instrID)
			}
		}
	}
	return nil
}
