// Copyright (c) 2024 Neomantra Corp
//
// Streaming record decoder: consumes bytes incrementally and yields fully
// formed records, tolerant of the input arriving in arbitrarily small writes.

package bf

import (
	"bufio"
	"io"
)

const defaultDecodeBufferSize = 64 * 1024

// Decoder incrementally decodes a BF byte stream (metadata preamble followed
// by a packed record stream) into typed records. It owns an 8-byte-aligned
// internal buffer that survives across Decode calls; bytes belonging to a
// record that has not fully arrived are never consumed.
type Decoder struct {
	src    io.Reader
	buf    *AlignedBuffer
	policy VersionUpgradePolicy

	metadata           *Metadata
	hasDecodedMetadata bool

	upgradeScratch [maxRecordScratchSize]byte
}

// maxRecordScratchSize bounds the widest current-version record the upgrade
// layer may need to materialize in place (InstrumentDefMsg at V3 width).
const maxRecordScratchSize = 512

// NewDecoder wraps src for incremental decoding. Compression, if any, must
// already be stripped by the caller (see compression.go).
func NewDecoder(src io.Reader, policy VersionUpgradePolicy) *Decoder {
	return &Decoder{
		src:    src,
		buf:    NewAlignedBuffer(defaultDecodeBufferSize),
		policy: policy,
	}
}

// Metadata returns the decoded preamble, or nil if Decode has not yet
// successfully decoded it.
func (d *Decoder) Metadata() *Metadata {
	return d.metadata
}

// fill reads as many bytes as are immediately available from src into the
// buffer's writable tail, growing the buffer if it's full. Returns the
// number of bytes read; io.EOF is reported once the source is exhausted.
func (d *Decoder) fill() (int, error) {
	if d.buf.AvailableSpace() == 0 {
		d.buf.Grow(d.buf.Capacity() * 2)
	}
	n, err := d.src.Read(d.buf.Space())
	if n > 0 {
		d.buf.Fill(n)
	}
	return n, err
}

// fillUntil reads from src until at least want bytes are available or the
// source returns an error (including io.EOF).
func (d *Decoder) fillUntil(want int) error {
	for d.buf.AvailableData() < want {
		if d.buf.AvailableSpace() < want-d.buf.AvailableData() {
			d.buf.Grow(d.buf.Capacity() + want)
		}
		n, err := d.fill()
		if n == 0 {
			if err == nil {
				err = io.EOF
			}
			return err
		}
	}
	return nil
}

func (d *Decoder) decodeMetadata() error {
	if err := d.fillUntil(8); err != nil {
		return wrapShortRead(err)
	}
	// Metadata.Decode needs the whole variable-length block; read
	// opportunistically in a loop, growing the buffer as needed, since we
	// don't know its length until the fixed header's len field is parsed.
	for {
		r := &peekReader{data: d.buf.Data()}
		m, err := Decode(r)
		if err == io.ErrUnexpectedEOF {
			before := d.buf.AvailableData()
			if fillErr := d.fillUntil(before + 4096); fillErr != nil && d.buf.AvailableData() == before {
				return io.ErrUnexpectedEOF
			}
			continue
		}
		if err != nil {
			return err
		}
		d.buf.ConsumeNoShift(r.consumed)
		d.metadata = m
		return nil
	}
}

// peekReader lets Metadata.Decode run against an in-memory slice while
// tracking how many bytes it actually consumed, so the caller can advance
// the real AlignedBuffer by the same amount on success.
type peekReader struct {
	data     []byte
	consumed int
}

func (p *peekReader) Read(b []byte) (int, error) {
	if p.consumed >= len(p.data) {
		return 0, io.EOF
	}
	n := copy(b, p.data[p.consumed:])
	p.consumed += n
	if n < len(b) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}

// DecodeRecordRef returns the next record as a non-owning view into the
// decoder's internal buffer, or (RecordRef{}, io.EOF) once the source is
// exhausted with no partial record pending, or (RecordRef{}, nil) if no
// complete record is yet available (the caller should supply more input and
// retry, for a push-based source).
func (d *Decoder) DecodeRecordRef() (RecordRef, error) {
	if !d.hasDecodedMetadata {
		if err := d.decodeMetadata(); err != nil {
			return RecordRef{}, err
		}
		d.hasDecodedMetadata = true
	}

	for d.buf.AvailableData() < 1 {
		n, err := d.fill()
		if n == 0 {
			return RecordRef{}, err
		}
	}
	length := int(d.buf.Data()[0])
	recordSize := length * 4
	if recordSize < RHeaderSize {
		return RecordRef{}, ErrMalformedRecord
	}

	for d.buf.AvailableData() < recordSize {
		n, err := d.fill()
		if n == 0 {
			if err == io.EOF {
				return RecordRef{}, io.ErrUnexpectedEOF
			}
			return RecordRef{}, err
		}
	}

	rr, err := NewRecordRef(d.buf.Data()[:recordSize])
	if err != nil {
		return RecordRef{}, err
	}
	d.buf.ConsumeNoShift(recordSize)

	if d.policy == Upgrade && d.metadata != nil && d.metadata.Version < CurrentVersion {
		return d.upgradeRecordRef(rr)
	}
	return rr, nil
}

// Next decodes the next record into an owning RecordRefEnum.
func (d *Decoder) Next() (RecordRefEnum, error) {
	rr, err := d.DecodeRecordRef()
	if err != nil {
		return RecordRefEnum{}, err
	}
	cstrLen := SymbolCstrLenV2
	if d.metadata != nil {
		cstrLen = d.metadata.SymbolCstrLen
	}
	return ToRecordEnum(rr, cstrLen)
}

func (d *Decoder) upgradeRecordRef(rr RecordRef) (RecordRef, error) {
	upgraded, ok, err := UpgradeRecordBytes(rr.Bytes(), d.metadata.Version, d.upgradeScratch[:])
	if err != nil {
		return RecordRef{}, err
	}
	if !ok {
		return rr, nil
	}
	return NewRecordRef(upgraded)
}

// bufferedSource wraps any io.Reader with a *bufio.Reader sized for
// comfortable decode throughput; callers that already have a buffered
// reader (e.g. from DetectCompression) can pass it straight to NewDecoder.
func bufferedSource(r io.Reader) io.Reader {
	if _, ok := r.(*bufio.Reader); ok {
		return r
	}
	return bufio.NewReaderSize(r, defaultDecodeBufferSize)
}

// OpenDecoder detects Zstd compression on r, wraps accordingly, and returns
// a ready-to-use Decoder. This is the common entry point tying together the
// compression adapter and the decoder: bytes -> [compression] -> [decoder].
func OpenDecoder(r io.Reader, policy VersionUpgradePolicy) (*Decoder, error) {
	compression, br, err := DetectCompression(r)
	if err != nil {
		return nil, err
	}
	src, err := WrapDecompressingReader(br, compression)
	if err != nil {
		return nil, err
	}
	return NewDecoder(bufferedSource(src), policy), nil
}

// NewFragmentDecoder wraps src for decoding a bare record stream with no
// metadata preamble. Metadata() stays nil for the life of the decoder; the
// upgrade layer is skipped since there's no version to compare against.
func NewFragmentDecoder(src io.Reader, policy VersionUpgradePolicy) *Decoder {
	d := NewDecoder(src, policy)
	d.hasDecodedMetadata = true
	return d
}

// OpenFragmentDecoder is OpenDecoder for a fragment: a record stream with no
// metadata preamble, per the --fragment CLI flag.
func OpenFragmentDecoder(r io.Reader, policy VersionUpgradePolicy) (*Decoder, error) {
	compression, br, err := DetectCompression(r)
	if err != nil {
		return nil, err
	}
	src, err := WrapDecompressingReader(br, compression)
	if err != nil {
		return nil, err
	}
	return NewFragmentDecoder(bufferedSource(src), policy), nil
}
