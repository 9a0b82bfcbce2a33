// Copyright (c) 2024 Neomantra Corp

package bf_test

import (
	"encoding/binary"
	"io"

	"github.com/quantbin/bf-go"
)

// putOhlcvRaw builds the raw wire bytes of one OhlcvMsg: a 16-byte RHeader
// followed by five little-endian int64/uint64 fields.
func putOhlcvRaw(h bf.RHeader, open, high, low, closePx int64, volume uint64) []byte {
	h.Length = uint8(bf.OhlcvMsgSize / 4)
	b := make([]byte, bf.OhlcvMsgSize)
	bf.PutRHeaderRaw(b[0:bf.RHeaderSize], &h)
	body := b[bf.RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], uint64(open))
	binary.LittleEndian.PutUint64(body[8:16], uint64(high))
	binary.LittleEndian.PutUint64(body[16:24], uint64(low))
	binary.LittleEndian.PutUint64(body[24:32], uint64(closePx))
	binary.LittleEndian.PutUint64(body[32:40], volume)
	return b
}

// putTradeRaw builds the raw wire bytes of one TradeMsg (MBP-0): a 16-byte
// RHeader followed by the 32-byte tradeHeader layout.
func putTradeRaw(h bf.RHeader, price int64, size uint32, action, side uint8) []byte {
	h.Length = uint8(bf.TradeMsgSize / 4)
	b := make([]byte, bf.TradeMsgSize)
	bf.PutRHeaderRaw(b[0:bf.RHeaderSize], &h)
	body := b[bf.RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], uint64(price))
	binary.LittleEndian.PutUint32(body[8:12], size)
	body[12] = action
	body[13] = side
	return b
}

// binaryPutTsRecv patches the ts_recv field of a TradeMsg's raw wire bytes in
// place. tradeHeader.TsRecv sits at body offset 16 (after price/size/action/
// side/flags/depth), i.e. absolute offset RHeaderSize+16.
func binaryPutTsRecv(raw []byte, ts uint64) {
	binary.LittleEndian.PutUint64(raw[bf.RHeaderSize+16:bf.RHeaderSize+24], ts)
}

// chunkReader serves data in fixed-size pieces (or smaller, for the final
// piece), one Read call at a time, then io.EOF. It never blocks, letting
// tests exercise the decoder's tolerance of arbitrarily small reads without
// needing a real push-based source.
type chunkReader struct {
	data      []byte
	chunkSize int
	pos       int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}
	n := c.chunkSize
	if n > len(p) {
		n = len(p)
	}
	if c.pos+n > len(c.data) {
		n = len(c.data) - c.pos
	}
	copy(p, c.data[c.pos:c.pos+n])
	c.pos += n
	return n, nil
}
