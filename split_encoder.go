// Copyright (c) 2024 Neomantra Corp
//
// Split encoder: routes records to one of N child encoders keyed by symbol,
// schema, publisher, or a calendar bucket of the record's index timestamp, per
// spec.md §4.H. Grounded on the per-key file-routing loop in the teacher's
// internal/file/split.go, generalized from a single hard-coded
// "<rtype>-<instrument_id>-<ymd>" file key into a pluggable Key/BuildSink
// pair so any of the SplitKey dimensions can drive it.

package bf

import (
	"fmt"
)

// SplitKey identifies which dimension of a record routes it to a child encoder.
type SplitKey int

const (
	SplitBySymbol SplitKey = iota
	SplitBySchema
	SplitByDay
	SplitByWeek
	SplitByMonth
	SplitByPublisher
)

// SplitEncoder lazily creates and routes to child encoders keyed by
// SplitKey, flushing/closing them in the deterministic order they were
// first created.
type SplitEncoder struct {
	key       SplitKey
	symbolMap *TsSymbolMap // required (non-nil) only for SplitBySymbol
	meta      *Metadata    // nil when encoding a fragment with no metadata
	buildSink func(key string, meta *Metadata) (Encoder, error)

	children map[string]Encoder
	order    []string
}

// NewSplitEncoder constructs a split encoder. meta may be nil for fragment
// input (a byte range with no metadata preamble); symbolMap may be nil
// unless key is SplitBySymbol, in which case every record triggers
// ErrFragmentNoSymbolMap.
func NewSplitEncoder(key SplitKey, symbolMap *TsSymbolMap, meta *Metadata, buildSink func(string, *Metadata) (Encoder, error)) *SplitEncoder {
	return &SplitEncoder{
		key:       key,
		symbolMap: symbolMap,
		meta:      meta,
		buildSink: buildSink,
		children:  make(map[string]Encoder),
	}
}

func (s *SplitEncoder) keyFor(rr RecordRef) (string, error) {
	switch s.key {
	case SplitBySymbol:
		if s.symbolMap == nil {
			return "", ErrFragmentNoSymbolMap
		}
		dt := TimestampToTime(rr.IndexTs()).UTC()
		symbol := s.symbolMap.Get(dt, rr.Header().InstrumentID)
		if symbol == "" {
			symbol = fmt.Sprintf("instrument-%d", rr.Header().InstrumentID)
		}
		return symbol, nil
	case SplitBySchema:
		return fmt.Sprintf("rtype-%02x", uint8(rr.RType())), nil
	case SplitByDay:
		return bucketKey(rr.IndexTs(), "2006-01-02"), nil
	case SplitByWeek:
		t := TimestampToTime(rr.IndexTs()).UTC()
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week), nil
	case SplitByMonth:
		return bucketKey(rr.IndexTs(), "2006-01"), nil
	case SplitByPublisher:
		id := rr.Header().PublisherID
		if name := Publisher(id).String(); name != "" {
			return name, nil
		}
		return fmt.Sprintf("publisher-%d", id), nil
	default:
		return "", ErrInvalidFile
	}
}

func bucketKey(ts uint64, layout string) string {
	return TimestampToTime(ts).UTC().Format(layout)
}

// EncodeRecordRef routes rr to its key's child encoder, creating it via
// buildSink on first use.
func (s *SplitEncoder) EncodeRecordRef(rr RecordRef, symbolCstrLen uint16, symbol string) error {
	key, err := s.keyFor(rr)
	if err != nil {
		return err
	}
	child, ok := s.children[key]
	if !ok {
		child, err = s.buildSink(key, s.meta)
		if err != nil {
			return err
		}
		s.children[key] = child
		s.order = append(s.order, key)
	}
	return child.EncodeRecordRef(rr, symbolCstrLen, symbol)
}

// Flush flushes every child encoder in creation order.
func (s *SplitEncoder) Flush() error {
	for _, key := range s.order {
		if err := s.children[key].Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes and closes every child encoder in creation order, returning
// the first error encountered but still attempting to close the rest.
func (s *SplitEncoder) Close() error {
	var firstErr error
	for _, key := range s.order {
		if err := s.children[key].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
