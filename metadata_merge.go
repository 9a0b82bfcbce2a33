// Copyright (c) 2024 Neomantra Corp
//
// Metadata merge: combines the preambles of multiple decoders being fed into
// the k-way merge decoder into one consistent Metadata.

package bf

import "sort"

// MergeMetadata combines inputs into a single Metadata per the merge rules:
// dataset/stype_in/stype_out/ts_out/symbol_cstr_len/version must all agree;
// schema is kept only if every input agrees; start/end become the min/max of
// inputs; symbols/partial/not_found are unioned; mappings are merged per
// raw_symbol using interval ordering (see IntervalOrdering).
func MergeMetadata(inputs []*Metadata) (*Metadata, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyDecoderList
	}
	first := inputs[0]
	out := &Metadata{
		Version:       first.Version,
		Dataset:       first.Dataset,
		StypeOut:      first.StypeOut,
		TsOut:         first.TsOut,
		SymbolCstrLen: first.SymbolCstrLen,
		Start:         first.Start,
		End:           first.End,
	}
	if first.StypeIn != nil {
		v := *first.StypeIn
		out.StypeIn = &v
	}
	if first.Schema != nil {
		v := *first.Schema
		out.Schema = &v
	}

	symbolSet := map[string]struct{}{}
	partialSet := map[string]struct{}{}
	notFoundSet := map[string]struct{}{}
	mappingsByRawSymbol := map[string][]MappingInterval{}
	rawSymbolOrder := []string{}

	for i, m := range inputs {
		if i > 0 {
			if m.Dataset != out.Dataset {
				return nil, metadataMismatchError("dataset")
			}
			if m.StypeOut != out.StypeOut {
				return nil, metadataMismatchError("stype_out")
			}
			if m.TsOut != out.TsOut {
				return nil, metadataMismatchError("ts_out")
			}
			if m.SymbolCstrLen != out.SymbolCstrLen {
				return nil, metadataMismatchError("symbol_cstr_len")
			}
			if m.Version != out.Version {
				return nil, metadataMismatchError("version")
			}
			if !stypeInEqual(m.StypeIn, out.StypeIn) {
				return nil, metadataMismatchError("stype_in")
			}
			if !schemaEqual(m.Schema, out.Schema) {
				out.Schema = nil
			}
			if m.Start < out.Start {
				out.Start = m.Start
			}
			if m.End > out.End {
				out.End = m.End
			}
		}
		for _, s := range m.Symbols {
			symbolSet[s] = struct{}{}
		}
		for _, s := range m.Partial {
			partialSet[s] = struct{}{}
		}
		for _, s := range m.NotFound {
			notFoundSet[s] = struct{}{}
		}
		for _, mp := range m.Mappings {
			if _, ok := mappingsByRawSymbol[mp.RawSymbol]; !ok {
				rawSymbolOrder = append(rawSymbolOrder, mp.RawSymbol)
			}
			mappingsByRawSymbol[mp.RawSymbol] = append(mappingsByRawSymbol[mp.RawSymbol], mp.Intervals...)
		}
	}

	out.Limit = 0
	out.Symbols = setToSortedSlice(symbolSet)
	out.Partial = setToSortedSlice(partialSet)
	out.NotFound = setToSortedSlice(notFoundSet)

	out.Mappings = make([]SymbolMapping, 0, len(rawSymbolOrder))
	for _, rawSymbol := range rawSymbolOrder {
		merged, err := mergeIntervals(mappingsByRawSymbol[rawSymbol])
		if err != nil {
			return nil, err
		}
		out.Mappings = append(out.Mappings, SymbolMapping{RawSymbol: rawSymbol, Intervals: merged})
	}
	return out, nil
}

func stypeInEqual(a, b *SType) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func schemaEqual(a, b *Schema) bool {
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

func setToSortedSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// IntervalOrder classifies the relationship between two mapping intervals
// sharing the same raw_symbol.
type IntervalOrder int

const (
	IntervalLess IntervalOrder = iota
	IntervalGreater
	IntervalOverlap
	IntervalEqual
)

// IntervalOrdering compares a against b per §4.G.1: equal bounds coalesce if
// the symbols match (IntervalEqual) or conflict otherwise (err); disjoint
// bounds order by which starts first; overlapping bounds with matching
// symbols coalesce (IntervalOverlap), with differing symbols conflict.
func IntervalOrdering(a, b MappingInterval) (IntervalOrder, error) {
	if a.StartDate == b.StartDate && a.EndDate == b.EndDate {
		if a.Symbol == b.Symbol {
			return IntervalEqual, nil
		}
		return 0, conflictingIntervalError(a.Symbol, b.Symbol)
	}
	if a.EndDate <= b.StartDate {
		return IntervalLess, nil
	}
	if a.StartDate >= b.EndDate {
		return IntervalGreater, nil
	}
	// strict overlap
	if a.Symbol == b.Symbol {
		return IntervalOverlap, nil
	}
	return 0, conflictingIntervalError(a.Symbol, b.Symbol)
}

// mergeIntervals sorts intervals by start date and coalesces any that are
// equal or overlapping per IntervalOrdering, failing on symbol conflicts.
func mergeIntervals(intervals []MappingInterval) ([]MappingInterval, error) {
	if len(intervals) <= 1 {
		return intervals, nil
	}
	sorted := make([]MappingInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartDate != sorted[j].StartDate {
			return sorted[i].StartDate < sorted[j].StartDate
		}
		return sorted[i].EndDate < sorted[j].EndDate
	})

	merged := []MappingInterval{sorted[0]}
	for _, next := range sorted[1:] {
		last := &merged[len(merged)-1]
		order, err := IntervalOrdering(*last, next)
		if err != nil {
			return nil, err
		}
		switch order {
		case IntervalLess:
			merged = append(merged, next)
		case IntervalEqual, IntervalOverlap:
			if next.EndDate > last.EndDate {
				last.EndDate = next.EndDate
			}
			if next.StartDate < last.StartDate {
				last.StartDate = next.StartDate
			}
		case IntervalGreater:
			merged = append(merged, next)
		}
	}
	return merged, nil
}
