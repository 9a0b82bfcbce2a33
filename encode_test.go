// Copyright (c) 2024 Neomantra Corp

package bf_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quantbin/bf-go"
)

var _ = Describe("Text encoders", func() {
	Context("CSV pretty prices", func() {
		It("renders a fixed price as a decimal string when pretty_px is set", func() {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 1, TsEvent: 1}
			raw := putTradeRaw(header, 150_250_000_000, 1, 'T', 'B')
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())

			opts := bf.DefaultEncodeOptions()
			opts.PrettyPx = true
			opts.WriteHeader = false
			var buf bytes.Buffer
			enc := bf.NewCSVEncoder(&buf, opts)
			Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("150.250000000"))
		})

		It("renders the raw fixed-point integer when pretty_px is unset", func() {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 1, TsEvent: 1}
			raw := putTradeRaw(header, 150_250_000_000, 1, 'T', 'B')
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())

			opts := bf.DefaultEncodeOptions()
			opts.PrettyPx = false
			opts.WriteHeader = false
			var buf bytes.Buffer
			enc := bf.NewCSVEncoder(&buf, opts)
			Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("150250000000"))
		})

		It("renders an undefined price as empty when pretty_px is set", func() {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 1, TsEvent: 1}
			raw := putTradeRaw(header, bf.UndefPrice, 1, 'T', 'B')
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())

			opts := bf.DefaultEncodeOptions()
			opts.PrettyPx = true
			opts.WriteHeader = false
			var buf bytes.Buffer
			enc := bf.NewCSVEncoder(&buf, opts)
			Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
			fields := strings.Split(strings.TrimRight(buf.String(), "\n"), ",")
			Expect(fields[4]).To(Equal(""))
		})

		It("emits a header row whose column count matches the data row", func() {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 1, TsEvent: 1}
			raw := putTradeRaw(header, 1, 1, 'T', 'B')
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())

			opts := bf.DefaultEncodeOptions()
			var buf bytes.Buffer
			enc := bf.NewCSVEncoder(&buf, opts)
			Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			Expect(lines).To(HaveLen(2))
			Expect(strings.Count(lines[0], ",")).To(Equal(strings.Count(lines[1], ",")))
		})
	})

	Context("JSON pretty timestamps", func() {
		It("renders ts_event as an ISO-8601 string when pretty_ts is set", func() {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 1, TsEvent: 1_678_481_869_000_000_000}
			raw := putTradeRaw(header, 1, 1, 'T', 'B')
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())

			opts := bf.DefaultEncodeOptions()
			opts.PrettyTs = true
			var buf bytes.Buffer
			enc := bf.NewJSONEncoder(&buf, opts)
			Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(`"ts_event":"2023-03-10T20:57:49.000000000Z"`))
		})

		It("renders ts_event as a quoted decimal string when pretty_ts is unset", func() {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 1, TsEvent: 1_678_481_869_000_000_000}
			raw := putTradeRaw(header, 1, 1, 'T', 'B')
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())

			opts := bf.DefaultEncodeOptions()
			opts.PrettyTs = false
			var buf bytes.Buffer
			enc := bf.NewJSONEncoder(&buf, opts)
			Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(`"ts_event":"1678481869000000000"`))
		})
	})

	Context("char-coded fields", func() {
		It("renders action/side as a single printable character in CSV", func() {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 1, TsEvent: 1}
			raw := putTradeRaw(header, 1, 1, 'T', 'B')
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())

			opts := bf.DefaultEncodeOptions()
			opts.WriteHeader = false
			var buf bytes.Buffer
			enc := bf.NewCSVEncoder(&buf, opts)
			Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
			fields := strings.Split(strings.TrimRight(buf.String(), "\n"), ",")
			Expect(fields).To(ContainElement("T"))
			Expect(fields).To(ContainElement("B"))
			Expect(fields).ToNot(ContainElement("84"), "action='T' must not render as its numeric byte value")
			Expect(fields).ToNot(ContainElement("66"), "side='B' must not render as its numeric byte value")
		})

		It("renders a NUL action/side as an empty CSV field", func() {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 1, TsEvent: 1}
			raw := putTradeRaw(header, 1, 1, 0, 0)
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())

			opts := bf.DefaultEncodeOptions()
			opts.WriteHeader = false
			var buf bytes.Buffer
			enc := bf.NewCSVEncoder(&buf, opts)
			Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
			fields := strings.Split(strings.TrimRight(buf.String(), "\n"), ",")
			Expect(fields[6]).To(Equal(""), "a NUL action must render empty, not as 0")
			Expect(fields[7]).To(Equal(""), "a NUL side must render empty, not as 0")
		})

		It("renders action/side as a single-character JSON string", func() {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 1, TsEvent: 1}
			raw := putTradeRaw(header, 1, 1, 'T', 'B')
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())

			opts := bf.DefaultEncodeOptions()
			var buf bytes.Buffer
			enc := bf.NewJSONEncoder(&buf, opts)
			Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(`"action":"T"`))
			Expect(buf.String()).To(ContainSubstring(`"side":"B"`))
			Expect(buf.String()).ToNot(ContainSubstring(`"action":84`))
			Expect(buf.String()).ToNot(ContainSubstring(`"side":66`))
		})

		It("renders a NUL action/side as JSON null", func() {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 1, TsEvent: 1}
			raw := putTradeRaw(header, 1, 1, 0, 0)
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())

			opts := bf.DefaultEncodeOptions()
			var buf bytes.Buffer
			enc := bf.NewJSONEncoder(&buf, opts)
			Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())
			Expect(buf.String()).To(ContainSubstring(`"action":null`))
			Expect(buf.String()).To(ContainSubstring(`"side":null`))
		})
	})

	Context("JSON round trip", func() {
		// Only schemas with no book-level array round-trip through JSON:
		// the encoder flattens Levels into bid_px_00-style columns (the CSV
		// convention, reused for JSON per encode_common.go), while Fill_Json
		// reads a nested "levels" array. Mbp1/Mbp10/Cbbo/Cmbp1 don't survive
		// this path; see DESIGN.md.
		It("decodes what JSONEncoder wrote back into an identical record", func() {
			header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 3, InstrumentID: 777, TsEvent: 123}
			raw := putTradeRaw(header, 42_000_000_000, 9, 'T', 'A')
			rr, err := bf.NewRecordRef(raw)
			Expect(err).ToNot(HaveOccurred())

			opts := bf.DefaultEncodeOptions()
			var buf bytes.Buffer
			enc := bf.NewJSONEncoder(&buf, opts)
			Expect(enc.EncodeRecordRef(rr, bf.SymbolCstrLenV2, "")).To(Succeed())

			dec := bf.NewJSONDecoder(&buf)
			enum, err := dec.Next()
			Expect(err).ToNot(HaveOccurred())
			Expect(enum.Trade).ToNot(BeNil())
			Expect(enum.Trade.Header.InstrumentID).To(Equal(uint32(777)))
			Expect(enum.Trade.Header.TsEvent).To(Equal(uint64(123)))
			Expect(enum.Trade.Price).To(Equal(int64(42_000_000_000)))
			Expect(enum.Trade.Size).To(Equal(uint32(9)))
		})
	})
})
