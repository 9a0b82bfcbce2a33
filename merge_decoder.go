// Copyright (c) 2024 Neomantra Corp
//
// K-way merge decoder: combines N BF record streams into one time-ordered
// stream keyed by each record's index timestamp (ts_recv if present, else
// ts_event), per spec.md §4.G.

package bf

import "container/heap"

// MergingDecoder wraps N decoders and delivers their records in index-
// timestamp order via a binary min-heap over each stream's current head.
type MergingDecoder struct {
	metadata *Metadata
	decoders []*Decoder
	heap     streamHeap
	isFirst  bool
}

// streamHead is one inner decoder's current position in the merge: either a
// Real head already decoded and cached (rec), or a Hint taken from that
// decoder's metadata.Start, letting a stream with no activity yet stay
// unopened until its turn comes up. A Hint is replaced by a Real head on
// first touch.
type streamHead struct {
	ts         uint64
	isHint     bool
	decoderIdx int
	rec        RecordRef
}

type streamHeap []streamHead

func (h streamHeap) Len() int { return len(h) }
func (h streamHeap) Less(i, j int) bool {
	if h[i].ts != h[j].ts {
		return h[i].ts < h[j].ts
	}
	return h[i].decoderIdx < h[j].decoderIdx
}
func (h streamHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *streamHeap) Push(x any)   { *h = append(*h, x.(streamHead)) }
func (h *streamHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// NewMergingDecoder merges decoders, whose metadata must agree per
// MergeMetadata. Each decoder's metadata.Start seeds its initial Hint so
// streams are opened lazily — a decoder whose hint is higher than every
// other stream's real head is never read until it would actually win.
func NewMergingDecoder(decoders []*Decoder) (*MergingDecoder, error) {
	if len(decoders) == 0 {
		return nil, ErrEmptyDecoderList
	}
	metas := make([]*Metadata, 0, len(decoders))
	for _, d := range decoders {
		if d.Metadata() == nil {
			// Decodes only the metadata preamble, without consuming a record
			// the merge hasn't asked for yet.
			if !d.hasDecodedMetadata {
				if err := d.decodeMetadata(); err != nil {
					return nil, err
				}
				d.hasDecodedMetadata = true
			}
		}
		metas = append(metas, d.Metadata())
	}
	merged, err := MergeMetadata(metas)
	if err != nil {
		return nil, err
	}

	h := make(streamHeap, 0, len(decoders))
	for i, d := range decoders {
		start := uint64(0)
		if d.Metadata() != nil {
			start = d.Metadata().Start
		}
		h = append(h, streamHead{ts: start, isHint: true, decoderIdx: i})
	}
	heap.Init(&h)

	return &MergingDecoder{
		metadata: merged,
		decoders: decoders,
		heap:     h,
		isFirst:  true,
	}, nil
}

func (m *MergingDecoder) Metadata() *Metadata { return m.metadata }

// resolveHints pops and decodes every Hint currently at the top of the heap,
// re-pushing each as a Real head, until a Real head surfaces on top or the
// heap empties.
func (m *MergingDecoder) resolveHints() error {
	for m.heap.Len() > 0 && m.heap[0].isHint {
		top := heap.Pop(&m.heap).(streamHead)
		rr, err := m.decoders[top.decoderIdx].DecodeRecordRef()
		if err != nil {
			continue // stream exhausted: contributes no more heads
		}
		heap.Push(&m.heap, streamHead{ts: rr.IndexTs(), isHint: false, decoderIdx: top.decoderIdx, rec: rr})
	}
	return nil
}

// Next returns the next record in time order across all merged streams, or
// ErrNoRecord once every stream is exhausted.
func (m *MergingDecoder) Next() (RecordRefEnum, error) {
	if m.isFirst {
		m.isFirst = false
	} else {
		if m.heap.Len() == 0 {
			return RecordRefEnum{}, ErrNoRecord
		}
		winner := heap.Pop(&m.heap).(streamHead)
		rr, err := m.decoders[winner.decoderIdx].DecodeRecordRef()
		if err == nil {
			heap.Push(&m.heap, streamHead{ts: rr.IndexTs(), isHint: false, decoderIdx: winner.decoderIdx, rec: rr})
		}
	}

	if err := m.resolveHints(); err != nil {
		return RecordRefEnum{}, err
	}
	if m.heap.Len() == 0 {
		return RecordRefEnum{}, ErrNoRecord
	}
	top := m.heap[0]
	cstrLen := SymbolCstrLenV2
	if meta := m.decoders[top.decoderIdx].Metadata(); meta != nil {
		cstrLen = meta.SymbolCstrLen
	}
	return ToRecordEnum(top.rec, cstrLen)
}
