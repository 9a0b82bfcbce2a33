// Copyright (c) 2024 Neomantra Corp

package bf_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quantbin/bf-go"
)

var _ = Describe("SplitEncoder", func() {
	It("routes records to one child encoder per resolved symbol", func() {
		meta := &bf.Metadata{
			StypeOut: bf.SType_InstrumentId,
			Mappings: []bf.SymbolMapping{
				{RawSymbol: "ES", Intervals: []bf.MappingInterval{{StartDate: 20230310, EndDate: 20230310, Symbol: "1"}}},
				{RawSymbol: "NG", Intervals: []bf.MappingInterval{{StartDate: 20230310, EndDate: 20230310, Symbol: "2"}}},
			},
		}
		symbolMap := bf.NewTsSymbolMap()
		Expect(symbolMap.FillFromMetadata(meta)).To(Succeed())

		buffers := make(map[string]*bytes.Buffer)
		buildSink := func(key string, _ *bf.Metadata) (bf.Encoder, error) {
			buf := &bytes.Buffer{}
			buffers[key] = buf
			return bf.NewCSVEncoder(buf, bf.DefaultEncodeOptions()), nil
		}
		split := bf.NewSplitEncoder(bf.SplitBySymbol, symbolMap, meta, buildSink)

		ts := uint64(1_678_481_869_000_000_000) // 2023-03-10T20:57:49Z
		for i, instrumentID := range []uint32{1, 1, 2, 1} {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: instrumentID, TsEvent: ts}
			raw := putTradeRaw(header, int64(i), 1, 'T', 'B')
			binaryPutTsRecv(raw, ts)
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())
			Expect(split.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
		}
		Expect(split.Close()).To(Succeed())

		Expect(buffers).To(HaveKey("ES"))
		Expect(buffers).To(HaveKey("NG"))

		esLines := strings.Split(strings.TrimRight(buffers["ES"].String(), "\n"), "\n")
		Expect(esLines).To(HaveLen(4), "ES: header row plus 3 records for instrument 1")

		ngLines := strings.Split(strings.TrimRight(buffers["NG"].String(), "\n"), "\n")
		Expect(ngLines).To(HaveLen(2), "NG: header row plus 1 record for instrument 2")
	})

	It("falls back to an instrument-id key when the symbol map has no entry", func() {
		symbolMap := bf.NewTsSymbolMap()
		buffers := make(map[string]*bytes.Buffer)
		buildSink := func(key string, _ *bf.Metadata) (bf.Encoder, error) {
			buf := &bytes.Buffer{}
			buffers[key] = buf
			return bf.NewCSVEncoder(buf, bf.DefaultEncodeOptions()), nil
		}
		split := bf.NewSplitEncoder(bf.SplitBySymbol, symbolMap, nil, buildSink)

		header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 42, TsEvent: 1}
		raw := putTradeRaw(header, 1, 1, 'T', 'B')
		rr, err := bf.NewRecordRef(raw)
		Expect(err).ToNot(HaveOccurred())
		Expect(split.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())

		Expect(buffers).To(HaveKey("instrument-42"))
	})

	It("routes records to one child encoder per resolved publisher name", func() {
		buffers := make(map[string]*bytes.Buffer)
		buildSink := func(key string, _ *bf.Metadata) (bf.Encoder, error) {
			buf := &bytes.Buffer{}
			buffers[key] = buf
			return bf.NewCSVEncoder(buf, bf.DefaultEncodeOptions()), nil
		}
		split := bf.NewSplitEncoder(bf.SplitByPublisher, nil, nil, buildSink)

		for _, publisherID := range []uint16{1, 1, 9999} {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: publisherID, InstrumentID: 1, TsEvent: 1}
			raw := putTradeRaw(header, 1, 1, 'T', 'B')
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())
			Expect(split.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
		}

		Expect(buffers).To(HaveKey("GLBX.MDP3.GLBX"))
		Expect(buffers).To(HaveKey("publisher-9999"))

		glbxLines := strings.Split(strings.TrimRight(buffers["GLBX.MDP3.GLBX"].String(), "\n"), "\n")
		Expect(glbxLines).To(HaveLen(3), "header row plus 2 records for publisher 1")
	})
})
