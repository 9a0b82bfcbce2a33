// Copyright (c) 2024 Neomantra Corp
//
// Aligned byte buffer for streaming record decoding.
//
// Forked in spirit from oval (MIT) via the original Rust aligned_buffer.rs:
// backed by a []uint64 slab to guarantee 8-byte alignment of the readable
// byte window, with a mutable getter for readable data.

package bf

import "unsafe"

// AlignedBuffer is a growable byte buffer whose readable window always
// starts at an 8-byte-aligned address. Records in a BF stream start on an
// 8-byte boundary; keeping the buffer aligned lets a decoder later view a
// record's bytes without a copy, the same guarantee unsafe pointer casts
// give the original Rust decoder.
type AlignedBuffer struct {
	memory   []uint64
	position int
	end      int
}

// NewAlignedBuffer allocates a buffer with at least capacity usable bytes.
func NewAlignedBuffer(capacity int) *AlignedBuffer {
	u64Len := (capacity + 7) / 8
	return &AlignedBuffer{memory: make([]uint64, u64Len)}
}

func (b *AlignedBuffer) asByteSlice() []byte {
	if len(b.memory) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.memory[0])), b.Capacity())
}

// Data returns the currently readable bytes.
func (b *AlignedBuffer) Data() []byte {
	return b.asByteSlice()[b.position:b.end]
}

// Space returns the currently writable bytes.
func (b *AlignedBuffer) Space() []byte {
	return b.asByteSlice()[b.end:b.Capacity()]
}

// AvailableData returns how many bytes are available to read.
func (b *AlignedBuffer) AvailableData() int {
	return b.end - b.position
}

// AvailableSpace returns how many bytes are available to write.
func (b *AlignedBuffer) AvailableSpace() int {
	return b.Capacity() - b.end
}

// Capacity returns the buffer's total byte capacity.
func (b *AlignedBuffer) Capacity() int {
	return len(b.memory) * 8
}

func (b *AlignedBuffer) IsEmpty() bool {
	return b.position == b.end
}

// Consume advances the read position by up to count bytes, shifting data to
// the front once the position passes the halfway mark.
func (b *AlignedBuffer) Consume(count int) int {
	cnt := min(count, b.AvailableData())
	b.position += cnt
	if b.position > b.Capacity()/2 {
		b.Shift()
	}
	return cnt
}

// ConsumeNoShift advances the read position without ever shifting.
func (b *AlignedBuffer) ConsumeNoShift(count int) int {
	cnt := min(count, b.AvailableData())
	b.position += cnt
	return cnt
}

// Fill marks count bytes (capped to available space) as written.
func (b *AlignedBuffer) Fill(count int) int {
	cnt := min(count, b.AvailableSpace())
	b.end += cnt
	if b.AvailableSpace() < b.AvailableData()+cnt {
		b.Shift()
	}
	return cnt
}

// Grow enlarges the buffer to at least newSize bytes, preserving its
// contents. Returns true if a reallocation happened.
func (b *AlignedBuffer) Grow(newSize int) bool {
	if b.Capacity() >= newSize {
		return false
	}
	newU64Len := (newSize + 7) / 8
	newMemory := make([]uint64, newU64Len)
	src := b.asByteSlice()
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&newMemory[0])), len(newMemory)*8)
	copy(dst, src)
	b.memory = newMemory
	return true
}

// Reset clears the buffer, discarding any readable data.
func (b *AlignedBuffer) Reset() {
	b.position = 0
	b.end = 0
}

// Shift moves any readable data to the front of the buffer, restoring the
// 8-byte alignment of the read window.
func (b *AlignedBuffer) Shift() {
	if b.position > 0 {
		length := b.end - b.position
		bytes := b.asByteSlice()
		copy(bytes[0:length], bytes[b.position:b.end])
		b.position = 0
		b.end = length
	}
}
