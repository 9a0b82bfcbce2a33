// Copyright (c) 2024 Neomantra Corp

package bf_test

import (
	"bytes"
	"io"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quantbin/bf-go"
)

var _ = Describe("Compression", func() {
	It("round trips plain bytes through a Zstd writer/reader pair", func() {
		var compressed bytes.Buffer
		wc, err := bf.WrapCompressingWriter(&compressed, bf.ZStd)
		Expect(err).ToNot(HaveOccurred())
		_, err = wc.Write([]byte("hello binary format"))
		Expect(err).ToNot(HaveOccurred())
		Expect(wc.Close()).To(Succeed())

		r, err := bf.WrapDecompressingReader(&compressed, bf.ZStd)
		Expect(err).ToNot(HaveOccurred())
		got, err := io.ReadAll(r)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(got)).To(Equal("hello binary format"))
	})

	It("detects a Zstd-compressed stream by its magic number alone", func() {
		var compressed bytes.Buffer
		wc, err := bf.WrapCompressingWriter(&compressed, bf.ZStd)
		Expect(err).ToNot(HaveOccurred())
		_, err = wc.Write([]byte("some payload"))
		Expect(err).ToNot(HaveOccurred())
		Expect(wc.Close()).To(Succeed())

		compression, br, err := bf.DetectCompression(&compressed)
		Expect(err).ToNot(HaveOccurred())
		Expect(compression).To(Equal(bf.ZStd))

		r, err := bf.WrapDecompressingReader(br, compression)
		Expect(err).ToNot(HaveOccurred())
		got, err := io.ReadAll(r)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(got)).To(Equal("some payload"))
	})

	It("reports no compression for a plain byte stream", func() {
		plain := bytes.NewBufferString("not zstd at all")
		compression, _, err := bf.DetectCompression(plain)
		Expect(err).ToNot(HaveOccurred())
		Expect(compression).To(Equal(bf.None))
	})

	It("passes bytes through a no-compression writer/reader pair unchanged", func() {
		var buf bytes.Buffer
		wc, err := bf.WrapCompressingWriter(&buf, bf.None)
		Expect(err).ToNot(HaveOccurred())
		_, err = wc.Write([]byte("raw"))
		Expect(err).ToNot(HaveOccurred())
		Expect(wc.Close()).To(Succeed())

		r, err := bf.WrapDecompressingReader(&buf, bf.None)
		Expect(err).ToNot(HaveOccurred())
		got, err := io.ReadAll(r)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(got)).To(Equal("raw"))
	})
})
