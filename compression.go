// Copyright (c) 2024 Neomantra Corp
//
// Reader/Writer compression helpers.
//
// Adapted from the filename-suffix detection approach, generalized to
// sniff the Zstandard magic number directly off the byte stream so a
// stream's compression can be detected without knowing its filename.

package bf

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// zstdMagicNumber is the 4-byte little-endian frame magic at the start of
// every Zstandard frame.
const zstdMagicNumber = 0xFD2FB528

// DetectCompression peeks at up to 4 bytes of r without consuming them and
// reports whether the stream begins with a Zstd frame. The returned reader
// must be used in place of r, since peeking may require buffering.
func DetectCompression(r io.Reader) (Compression, *bufio.Reader, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, 16*1024)
	}
	peek, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return None, br, err
	}
	if len(peek) == 4 && binary.LittleEndian.Uint32(peek) == zstdMagicNumber {
		return ZStd, br, nil
	}
	return None, br, nil
}

// WrapDecompressingReader wraps r with a Zstd decoder if compression requires it.
func WrapDecompressingReader(r io.Reader, compression Compression) (io.Reader, error) {
	if compression == ZStd {
		return zstd.NewReader(r)
	}
	return r, nil
}

// WrapCompressingWriter wraps w with a Zstd encoder if compression requires
// it. The returned io.WriteCloser must always be closed to flush the frame,
// even when compression is None (the close is then a no-op).
func WrapCompressingWriter(w io.Writer, compression Compression) (io.WriteCloser, error) {
	if compression == ZStd {
		return zstd.NewWriter(w)
	}
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// MakeCompressedWriter returns an io.Writer for filename (or os.Stdout for
// "-"), plus a function to defer for closing. The stream zstd-compresses
// its output when useZstd is true or filename carries a .zst/.zstd suffix.
func MakeCompressedWriter(filename string, useZstd bool) (io.Writer, func(), error) {
	var writer io.Writer
	var closer io.Closer
	fileCloser := func() {
		if closer != nil {
			closer.Close()
		}
	}
	if filename != "-" {
		file, err := os.Create(filename)
		if err != nil {
			return nil, nil, err
		}
		writer, closer = file, file
	} else {
		writer, closer = os.Stdout, nil
	}

	if useZstd || strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd") {
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			fileCloser()
			return nil, nil, err
		}
		return zstdWriter, func() { zstdWriter.Close(); fileCloser() }, nil
	}
	return writer, fileCloser, nil
}

// MakeCompressedReader returns an io.Reader for filename (or os.Stdin for
// "-"), plus a closer. The stream zstd-decompresses its input when useZstd
// is true, filename carries a .zst/.zstd suffix, or the byte stream itself
// begins with a Zstd magic number.
func MakeCompressedReader(filename string, useZstd bool) (io.Reader, io.Closer, error) {
	var reader io.Reader
	var closer io.Closer

	if filename != "-" {
		file, err := os.Open(filename)
		if err != nil {
			return nil, nil, err
		}
		reader, closer = file, file
	} else {
		reader, closer = os.Stdin, nil
	}

	wantZstd := useZstd || strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd")
	if !wantZstd {
		compression, br, err := DetectCompression(reader)
		if err != nil {
			if closer != nil {
				closer.Close()
			}
			return nil, nil, err
		}
		reader = br
		wantZstd = compression == ZStd
	}

	if wantZstd {
		zr, err := zstd.NewReader(reader)
		if err != nil {
			if closer != nil {
				closer.Close()
			}
			return nil, nil, err
		}
		return zr, zstdReaderCloser{zr, closer}, nil
	}
	return reader, closer, nil
}

type zstdReaderCloser struct {
	zr    *zstd.Decoder
	inner io.Closer
}

func (c zstdReaderCloser) Close() error {
	c.zr.Close()
	if c.inner != nil {
		return c.inner.Close()
	}
	return nil
}
