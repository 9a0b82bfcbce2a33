// Copyright (c) 2024 Neomantra Corp

package bf

import "io"

// Encoder is the common contract satisfied by every concrete encoder and by
// DynEncoder: write metadata once (via the constructor), then stream records.
type Encoder interface {
	EncodeRecordRef(rr RecordRef, symbolCstrLen uint16, symbol string) error
	Flush() error
	Close() error
}

// BFEncoder re-serializes records verbatim: the BF wire format is already
// the in-memory RecordRef representation, so encoding a record is a single
// write_all of its exact byte span (spec.md §4.F).
type BFEncoder struct {
	w io.Writer
}

// NewBFEncoder writes meta once (if non-nil; a nil meta means the caller is
// re-emitting a fragment with no preamble), then returns an encoder ready
// for records.
func NewBFEncoder(w io.Writer, meta *Metadata) (*BFEncoder, error) {
	if meta != nil {
		if err := meta.Encode(w); err != nil {
			return nil, err
		}
	}
	return &BFEncoder{w: w}, nil
}

func (e *BFEncoder) EncodeRecordRef(rr RecordRef, _ uint16, _ string) error {
	_, err := e.w.Write(rr.Bytes())
	return err
}

func (e *BFEncoder) Flush() error {
	if f, ok := e.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (e *BFEncoder) Close() error {
	if c, ok := e.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
