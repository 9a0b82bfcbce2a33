// Copyright (c) 2024 Neomantra Corp

package bf_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quantbin/bf-go"
)

// buildTradeStream encodes one metadata preamble (with Start as its merge
// hint) followed by one TradeMsg per ts, each carrying ts as both ts_event
// and ts_recv so IndexTs() picks it up via the ts_recv fast path.
func buildTradeStream(start uint64, tss []uint64) *bf.Decoder {
	meta := &bf.Metadata{Version: bf.CurrentVersion, Dataset: "XNAS.ITCH", StypeOut: bf.SType_InstrumentId, Start: start}
	var stream bytes.Buffer
	enc, err := bf.NewBFEncoder(&stream, meta)
	Expect(err).ToNot(HaveOccurred())

	for _, ts := range tss {
		header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 1, TsEvent: ts}
		raw := putTradeRaw(header, 1, 1, 'T', 'B')
		binaryPutTsRecv(raw, ts)
		rr, err := bf.NewRecordRef(raw)
		Expect(err).ToNot(HaveOccurred())
		Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
	}
	Expect(enc.Close()).To(Succeed())

	dec, err := bf.OpenDecoder(&stream, bf.AsIs)
	Expect(err).ToNot(HaveOccurred())
	return dec
}

var _ = Describe("MergingDecoder", func() {
	It("merges three hinted streams into one time-ordered sequence", func() {
		decA := buildTradeStream(5, []uint64{10, 100, 1000})
		decB := buildTradeStream(1, []uint64{11, 12, 13, 14, 15, 101, 102, 103, 104, 105})
		decC := buildTradeStream(50, []uint64{50, 105, 500, 5000})

		merger, err := bf.NewMergingDecoder([]*bf.Decoder{decA, decB, decC})
		Expect(err).ToNot(HaveOccurred())

		want := []uint64{10, 11, 12, 13, 14, 15, 50, 100, 101, 102, 103, 104, 105, 105, 500, 1000, 5000}
		var got []uint64
		for {
			enum, err := merger.Next()
			if err == bf.ErrNoRecord {
				break
			}
			Expect(err).ToNot(HaveOccurred())
			Expect(enum.Trade).ToNot(BeNil())
			got = append(got, enum.Trade.Header.TsEvent)
		}
		Expect(got).To(Equal(want))
	})
})
