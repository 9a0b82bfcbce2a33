// Copyright (c) 2024 Neomantra Corp

package bf_test

import (
	"bytes"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quantbin/bf-go"
)

// memRWSeeker is a minimal in-memory io.ReadWriteSeeker over a fixed byte
// slice, sized to exactly hold one encoded Metadata block.
type memRWSeeker struct {
	data []byte
	pos  int64
}

func (m *memRWSeeker) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *memRWSeeker) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		return 0, io.ErrShortWrite
	}
	n := copy(m.data[m.pos:end], p)
	m.pos += int64(n)
	return n, nil
}

func (m *memRWSeeker) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = m.pos + offset
	case io.SeekEnd:
		target = int64(len(m.data)) + offset
	}
	m.pos = target
	return m.pos, nil
}

var _ = Describe("Metadata", func() {
	It("round trips every field through Encode/Decode", func() {
		schema := bf.Schema_Trades
		stypeIn := bf.SType_RawSymbol
		meta := &bf.Metadata{
			Version:       bf.CurrentVersion,
			Dataset:       "GLBX.MDP3",
			Schema:        &schema,
			Start:         1_000,
			End:           2_000,
			Limit:         50,
			StypeIn:       &stypeIn,
			StypeOut:      bf.SType_InstrumentId,
			TsOut:         true,
			SymbolCstrLen: bf.SymbolCstrLenV2,
			Symbols:       []string{"ES", "NG"},
			Partial:       []string{"CL"},
			NotFound:      []string{"ZZZ"},
			Mappings: []bf.SymbolMapping{
				{RawSymbol: "ES", Intervals: []bf.MappingInterval{{StartDate: 20230101, EndDate: 20230102, Symbol: "1"}}},
			},
		}

		var buf bytes.Buffer
		Expect(meta.Encode(&buf)).To(Succeed())

		got, err := bf.Decode(&buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(got.Dataset).To(Equal("GLBX.MDP3"))
		Expect(*got.Schema).To(Equal(schema))
		Expect(got.Start).To(Equal(uint64(1_000)))
		Expect(got.End).To(Equal(uint64(2_000)))
		Expect(got.Limit).To(Equal(uint64(50)))
		Expect(*got.StypeIn).To(Equal(stypeIn))
		Expect(got.StypeOut).To(Equal(bf.SType_InstrumentId))
		Expect(got.TsOut).To(BeTrue())
		Expect(got.Symbols).To(Equal([]string{"ES", "NG"}))
		Expect(got.Partial).To(Equal([]string{"CL"}))
		Expect(got.NotFound).To(Equal([]string{"ZZZ"}))
		Expect(got.Mappings).To(HaveLen(1))
		Expect(got.Mappings[0].RawSymbol).To(Equal("ES"))
		Expect(got.Mappings[0].Intervals).To(Equal([]bf.MappingInterval{{StartDate: 20230101, EndDate: 20230102, Symbol: "1"}}))
	})

	It("pads the encoded block to 8-byte alignment", func() {
		meta := &bf.Metadata{Version: bf.CurrentVersion, Dataset: "XNAS.ITCH", StypeOut: bf.SType_InstrumentId}
		var buf bytes.Buffer
		Expect(meta.Encode(&buf)).To(Succeed())
		Expect(buf.Len() % 8).To(Equal(0))
	})

	It("decodes stype_in as nil when the wire byte is the null sentinel", func() {
		meta := &bf.Metadata{Version: bf.CurrentVersion, Dataset: "XNAS.ITCH", StypeOut: bf.SType_InstrumentId}
		var buf bytes.Buffer
		Expect(meta.Encode(&buf)).To(Succeed())

		got, err := bf.Decode(&buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(got.StypeIn).To(BeNil())
	})

	It("reports a distinct short-read error on a truncated stream", func() {
		meta := &bf.Metadata{Version: bf.CurrentVersion, Dataset: "XNAS.ITCH", StypeOut: bf.SType_InstrumentId}
		var buf bytes.Buffer
		Expect(meta.Encode(&buf)).To(Succeed())

		truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-4])
		_, err := bf.Decode(truncated)
		Expect(err).To(Equal(io.ErrUnexpectedEOF))
	})

	It("patches start/end/limit in place via UpdateEncoded without disturbing the rest", func() {
		meta := &bf.Metadata{Version: bf.CurrentVersion, Dataset: "XNAS.ITCH", StypeOut: bf.SType_InstrumentId, Start: 1}
		var buf bytes.Buffer
		Expect(meta.Encode(&buf)).To(Succeed())

		rw := &memRWSeeker{data: append([]byte(nil), buf.Bytes()...)}
		_, err := rw.Seek(0, io.SeekEnd) // simulate the writer's cursor sitting past the block
		Expect(err).ToNot(HaveOccurred())

		Expect(bf.UpdateEncoded(rw, 111, 222, 333)).To(Succeed())

		endPos, err := rw.Seek(0, io.SeekCurrent)
		Expect(err).ToNot(HaveOccurred())
		Expect(endPos).To(Equal(int64(len(rw.data))), "UpdateEncoded must restore the caller's seek position")

		rw.pos = 0
		got, err := bf.Decode(rw)
		Expect(err).ToNot(HaveOccurred())
		Expect(got.Start).To(Equal(uint64(111)))
		Expect(got.End).To(Equal(uint64(222)))
		Expect(got.Limit).To(Equal(uint64(333)))
		Expect(got.Dataset).To(Equal("XNAS.ITCH"))
	})
})
