// Copyright (c) 2024 Neomantra Corp

package bf_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quantbin/bf-go"
)

var _ = Describe("TsSymbolMap", func() {
	It("expands a mapping interval into one entry per calendar day it spans", func() {
		meta := &bf.Metadata{
			StypeOut: bf.SType_InstrumentId,
			Mappings: []bf.SymbolMapping{
				{RawSymbol: "ES", Intervals: []bf.MappingInterval{{StartDate: 20230308, EndDate: 20230310, Symbol: "1"}}},
			},
		}
		m := bf.NewTsSymbolMap()
		Expect(m.FillFromMetadata(meta)).To(Succeed())
		Expect(m.Len()).To(Equal(3)) // 03-08, 03-09, 03-10 inclusive

		Expect(m.Get(time.Date(2023, 3, 8, 12, 0, 0, 0, time.UTC), 1)).To(Equal("ES"))
		Expect(m.Get(time.Date(2023, 3, 9, 0, 0, 0, 0, time.UTC), 1)).To(Equal("ES"))
		Expect(m.Get(time.Date(2023, 3, 10, 23, 59, 0, 0, time.UTC), 1)).To(Equal("ES"))
		Expect(m.Get(time.Date(2023, 3, 11, 0, 0, 0, 0, time.UTC), 1)).To(Equal(""))
		Expect(m.Get(time.Date(2023, 3, 9, 0, 0, 0, 0, time.UTC), 2)).To(Equal(""))
	})

	It("builds an inverse mapping when stype_in is instrument_id", func() {
		instrumentID := bf.SType_InstrumentId
		meta := &bf.Metadata{
			StypeIn: &instrumentID,
			Mappings: []bf.SymbolMapping{
				{RawSymbol: "1", Intervals: []bf.MappingInterval{{StartDate: 20230310, EndDate: 20230310, Symbol: "ES"}}},
			},
		}
		m := bf.NewTsSymbolMap()
		Expect(m.FillFromMetadata(meta)).To(Succeed())
		Expect(m.Get(time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC), 1)).To(Equal("ES"))
	})
})

var _ = Describe("PitSymbolMap", func() {
	It("resolves symbols only within its half-open [start_date, end_date) window", func() {
		meta := &bf.Metadata{
			Start:    1_678_320_000_000_000_000, // 2023-03-09T00:00:00Z
			End:      1_678_492_800_000_000_000, // 2023-03-11T00:00:00Z
			StypeOut: bf.SType_InstrumentId,
			Mappings: []bf.SymbolMapping{
				{RawSymbol: "ES", Intervals: []bf.MappingInterval{{StartDate: 20230309, EndDate: 20230311, Symbol: "1"}}},
			},
		}
		p := bf.NewPitSymbolMap()
		Expect(p.FillFromMetadata(meta, 1_678_406_400_000_000_000)).To(Succeed()) // 2023-03-10T00:00:00Z
		Expect(p.Get(1)).To(Equal("ES"))
		Expect(p.IsEmpty()).To(BeFalse())
	})

	It("tracks live SYMBOL_MAPPING records as they arrive", func() {
		p := bf.NewPitSymbolMap()
		Expect(p.IsEmpty()).To(BeTrue())
		p.OnSymbolMappingMsg(&bf.SymbolMappingMsg{
			Header:         bf.RHeader{InstrumentID: 7},
			StypeOutSymbol: "NG",
		})
		Expect(p.Get(7)).To(Equal("NG"))
		Expect(p.Len()).To(Equal(1))
	})

	It("rejects a timestamp outside metadata's [Start, End) range", func() {
		meta := &bf.Metadata{
			Start:    1_678_320_000_000_000_000,
			End:      1_678_492_800_000_000_000,
			StypeOut: bf.SType_InstrumentId,
		}
		p := bf.NewPitSymbolMap()
		err := p.FillFromMetadata(meta, 1_678_492_800_000_000_000) // == End, exclusive
		Expect(err).To(HaveOccurred())
	})
})
