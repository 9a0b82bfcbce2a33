// Copyright (c) 2024 Neomantra Corp

package bf_test

import (
	"bytes"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quantbin/bf-go"
)

var _ = Describe("Decoder", func() {
	Context("byte-exact record round trip", func() {
		It("decodes an OhlcvMsg identically to what was encoded", func() {
			meta := &bf.Metadata{Version: bf.CurrentVersion, Dataset: "GLBX.MDP3", StypeOut: bf.SType_InstrumentId}

			var stream bytes.Buffer
			enc, err := bf.NewBFEncoder(&stream, meta)
			Expect(err).ToNot(HaveOccurred())

			header := bf.RHeader{
				RType:        bf.RType_Ohlcv1S,
				PublisherID:  1,
				InstrumentID: 323,
				TsEvent:      1_658_441_851_000_000_000,
			}
			raw := putOhlcvRaw(header, 5_000, 8_000, 3_000, 6_000, 55_000)
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())
			Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
			Expect(enc.Close()).To(Succeed())

			dec, err := bf.OpenDecoder(&stream, bf.AsIs)
			Expect(err).ToNot(HaveOccurred())

			decodedRef, err := dec.DecodeRecordRef()
			Expect(err).ToNot(HaveOccurred())
			Expect(dec.Metadata()).ToNot(BeNil())
			Expect(dec.Metadata().Dataset).To(Equal("GLBX.MDP3"))

			ohlcv, err := bf.AsRecord[bf.OhlcvMsg](decodedRef)
			Expect(err).ToNot(HaveOccurred())
			Expect(ohlcv.Header.RType).To(Equal(bf.RType_Ohlcv1S))
			Expect(ohlcv.Header.PublisherID).To(Equal(uint16(1)))
			Expect(ohlcv.Header.InstrumentID).To(Equal(uint32(323)))
			Expect(ohlcv.Header.TsEvent).To(Equal(uint64(1_658_441_851_000_000_000)))
			Expect(ohlcv.Open).To(Equal(int64(5_000)))
			Expect(ohlcv.High).To(Equal(int64(8_000)))
			Expect(ohlcv.Low).To(Equal(int64(3_000)))
			Expect(ohlcv.Close).To(Equal(int64(6_000)))
			Expect(ohlcv.Volume).To(Equal(uint64(55_000)))

			_, err = dec.DecodeRecordRef()
			Expect(err).To(Equal(io.EOF))
		})
	})

	Context("incremental reads", func() {
		It("decodes metadata delivered in two halves", func() {
			meta := &bf.Metadata{Version: bf.CurrentVersion, Dataset: "XNAS.ITCH", StypeOut: bf.SType_RawSymbol}
			var metaBuf bytes.Buffer
			Expect(meta.Encode(&metaBuf)).To(Succeed())

			src := &chunkReader{data: metaBuf.Bytes(), chunkSize: metaBuf.Len()/2 + 1}
			dec := bf.NewDecoder(src, bf.AsIs)

			_, err := dec.DecodeRecordRef()
			Expect(err).To(Equal(io.EOF)) // no record follows the metadata in this stream
			Expect(dec.Metadata()).ToNot(BeNil())
			Expect(dec.Metadata().Dataset).To(Equal("XNAS.ITCH"))
		})

		It("decodes a record delivered one byte at a time", func() {
			meta := &bf.Metadata{Version: bf.CurrentVersion, Dataset: "XNAS.ITCH", StypeOut: bf.SType_RawSymbol}
			var stream bytes.Buffer
			Expect(meta.Encode(&stream)).To(Succeed())

			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 2, InstrumentID: 99, TsEvent: 42}
			raw := putTradeRaw(header, 1_000_000_000, 10, 'T', 'B')
			stream.Write(raw)

			src := &chunkReader{data: stream.Bytes(), chunkSize: 1}
			dec := bf.NewDecoder(src, bf.AsIs)

			rr, err := dec.DecodeRecordRef()
			Expect(err).ToNot(HaveOccurred())
			Expect(rr.Header().InstrumentID).To(Equal(uint32(99)))

			trade, err := bf.AsRecord[bf.TradeMsg](rr)
			Expect(err).ToNot(HaveOccurred())
			Expect(trade.Price).To(Equal(int64(1_000_000_000)))
			Expect(trade.Size).To(Equal(uint32(10)))

			_, err = dec.DecodeRecordRef()
			Expect(err).To(Equal(io.EOF))
		})
	})

	Context("AsRecord and candle rtypes", func() {
		It("accepts every candle rtype through AsRecord[OhlcvMsg], not just OHLCV_EOD", func() {
			for _, rtype := range []bf.RType{
				bf.RType_Ohlcv1S, bf.RType_Ohlcv1M, bf.RType_Ohlcv1H, bf.RType_Ohlcv1D, bf.RType_OhlcvEod,
			} {
				header := bf.RHeader{RType: rtype, PublisherID: 1, InstrumentID: 1, TsEvent: 1}
				raw := putOhlcvRaw(header, 1, 2, 3, 4, 5)
				rr, err := bf.NewRecordRef(raw)
				Expect(err).ToNot(HaveOccurred())

				ohlcv, err := bf.AsRecord[bf.OhlcvMsg](rr)
				Expect(err).ToNot(HaveOccurred(), "rtype %v should decode via AsRecord[OhlcvMsg]", rtype)
				Expect(ohlcv.Open).To(Equal(int64(1)))
			}
		})

		It("rejects a record whose rtype doesn't match the requested type", func() {
			header := bf.RHeader{RType: bf.RType_Mbp1, PublisherID: 1, InstrumentID: 1, TsEvent: 1}
			raw := putTradeRaw(header, 1, 1, 'T', 'B')
			// Force the header's declared length to match a Mbp0-sized body so
			// NewRecordRef accepts it; the mismatch under test is the rtype.
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())

			_, err = bf.AsRecord[bf.TradeMsg](rr)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("fragment decoding", func() {
		It("decodes a bare record stream with no metadata preamble", func() {
			header := bf.RHeader{RType: bf.RType_Ohlcv1M, PublisherID: 7, InstrumentID: 55, TsEvent: 100}
			raw := putOhlcvRaw(header, 10, 20, 5, 15, 1_000)

			dec := bf.NewFragmentDecoder(bytes.NewReader(raw), bf.AsIs)
			Expect(dec.Metadata()).To(BeNil())

			rr, err := dec.DecodeRecordRef()
			Expect(err).ToNot(HaveOccurred())
			Expect(dec.Metadata()).To(BeNil())

			ohlcv, err := bf.AsRecord[bf.OhlcvMsg](rr)
			Expect(err).ToNot(HaveOccurred())
			Expect(ohlcv.Header.InstrumentID).To(Equal(uint32(55)))
			Expect(ohlcv.Volume).To(Equal(uint64(1_000)))
		})
	})
})
