// Copyright (c) 2024 Neomantra Corp

package bf

import "io"

// DynEncoder tags-unions over the three concrete encoders, chosen at
// construction time by Encoding, per spec.md §4.F. It owns the optional
// Zstd-compressing writer wrapping the underlying sink.
type DynEncoder struct {
	inner  Encoder
	closer io.Closer
}

// NewDynEncoder wraps w (optionally Zstd-compressing it) and returns a
// ready-to-use DynEncoder. meta is written only for the Bf encoding; the
// CSV/JSON encodings write no metadata, and the DynEncoder does not expose
// its inner encoder, so metadata in those formats has to be written through
// a separate encoder (e.g. a JSONEncoder's EncodeMetadata).
func NewDynEncoder(w io.Writer, encoding Encoding, compression Compression, meta *Metadata, opts EncodeOptions) (*DynEncoder, error) {
	sink, err := WrapCompressingWriter(w, compression)
	if err != nil {
		return nil, err
	}
	d := &DynEncoder{closer: sink}
	switch encoding {
	case Bf:
		enc, err := NewBFEncoder(sink, meta)
		if err != nil {
			sink.Close()
			return nil, err
		}
		d.inner = enc
	case Csv:
		d.inner = NewCSVEncoder(sink, opts)
	case Json:
		d.inner = NewJSONEncoder(sink, opts)
	default:
		sink.Close()
		return nil, ErrInvalidFile
	}
	return d, nil
}

func (d *DynEncoder) EncodeRecordRef(rr RecordRef, symbolCstrLen uint16, symbol string) error {
	return d.inner.EncodeRecordRef(rr, symbolCstrLen, symbol)
}

func (d *DynEncoder) Flush() error {
	return d.inner.Flush()
}

func (d *DynEncoder) Close() error {
	if err := d.inner.Close(); err != nil {
		d.closer.Close()
		return err
	}
	return d.closer.Close()
}
