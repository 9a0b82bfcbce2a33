// Copyright (c) 2024 Neomantra Corp

package bf_test

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quantbin/bf-go"
)

// putStatV1Raw builds a V1-shaped StatMsg: a 16-byte RHeader followed by the
// 42-byte V1 body (quantity is i32, widened to i64 on upgrade).
func putStatV1Raw(quantity int32) []byte {
	const v1BodySize = 42
	raw := make([]byte, bf.RHeaderSize+v1BodySize)
	h := bf.RHeader{RType: bf.RType_Statistics, PublisherID: 1, InstrumentID: 1, TsEvent: 1}
	bf.PutRHeaderRaw(raw[0:bf.RHeaderSize], &h)
	body := raw[bf.RHeaderSize:]
	binary.LittleEndian.PutUint64(body[0:8], 100)  // ts_recv
	binary.LittleEndian.PutUint64(body[8:16], 200) // ts_ref
	binary.LittleEndian.PutUint64(body[16:24], uint64(5_000))
	binary.LittleEndian.PutUint32(body[24:28], uint32(quantity))
	binary.LittleEndian.PutUint32(body[28:32], 7) // sequence
	return raw
}

var _ = Describe("UpgradeRecordBytes", func() {
	It("widens a V1 StatMsg's i32 quantity to i64", func() {
		raw := putStatV1Raw(42)
		scratch := make([]byte, bf.StatMsgSize)

		upgraded, ok, err := bf.UpgradeRecordBytes(raw, bf.HeaderVersion1, scratch)
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(upgraded).To(HaveLen(bf.StatMsgSize))

		var stat bf.StatMsg
		Expect(stat.Fill_Raw(upgraded)).To(Succeed())
		Expect(stat.Quantity).To(Equal(int64(42)))
		Expect(stat.TsRecv).To(Equal(uint64(100)))
		Expect(stat.Price).To(Equal(int64(5_000)))
	})

	It("maps the V1 undefined-quantity sentinel to the V3 sentinel", func() {
		raw := putStatV1Raw(bf.UndefStatQuantityV1)
		scratch := make([]byte, bf.StatMsgSize)

		upgraded, ok, err := bf.UpgradeRecordBytes(raw, bf.HeaderVersion1, scratch)
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())

		var stat bf.StatMsg
		Expect(stat.Fill_Raw(upgraded)).To(Succeed())
		Expect(stat.Quantity).To(Equal(bf.UndefStatQuantity))
	})

	It("is idempotent: a record already at CurrentVersion passes through unchanged", func() {
		raw := putStatV1Raw(42)
		scratch := make([]byte, bf.StatMsgSize)
		upgraded, ok, err := bf.UpgradeRecordBytes(raw, bf.HeaderVersion1, scratch)
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())

		again, ok, err := bf.UpgradeRecordBytes(upgraded, bf.CurrentVersion, scratch)
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeFalse())
		Expect(again).To(Equal(upgraded))
	})

	It("leaves rtypes with no version-dependent shape untouched", func() {
		header := bf.RHeader{RType: bf.RType_Mbp0, PublisherID: 1, InstrumentID: 1, TsEvent: 1}
		raw := putTradeRaw(header, 1, 1, 'T', 'B')
		scratch := make([]byte, bf.TradeMsgSize)

		out, ok, err := bf.UpgradeRecordBytes(raw, bf.HeaderVersion1, scratch)
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeFalse())
		Expect(out).To(Equal(raw))
	})
})
