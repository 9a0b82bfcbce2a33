// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidVersion       = errors.New("invalid BF version")
	ErrInvalidFile          = errors.New("invalid BF file")
	ErrHeaderTooShort       = errors.New("header shorter than expected")
	ErrHeaderTooLong        = errors.New("header longer than expected")
	ErrUnexpectedCStrLength = errors.New("unexpected cstr length")
	ErrNoRecord             = errors.New("no record scanned")
	ErrMalformedRecord      = errors.New("malformed record")
	ErrUnknownRType         = errors.New("unknown rtype")
	ErrDateOutsideRange     = errors.New("date outside the query range")
	ErrWrongStypesMapping   = errors.New("wrong stypes for mapping")
	ErrNoMetadata           = errors.New("no metadata")
	ErrEmptyDecoderList     = errors.New("bad argument: empty decoder list")
	ErrSymbolTooLong        = errors.New("encode: symbol exceeds symbol_cstr_len")
	ErrVersionUnsupported   = errors.New("encode: version greater than max supported")
	ErrFragmentNoSymbolMap  = errors.New("bad argument: symbol split requires a non-empty symbol map, fragment has none")
	ErrNonASCII             = errors.New("encode: value is not ASCII where ASCII is required")
)

func unexpectedBytesError(got int, want int) error {
	return fmt.Errorf("expected %d bytes, got %d", want, got)
}

func unexpectedRTypeError(got RType, want RType) error {
	return fmt.Errorf("expected RType %d, got %d", want, got)
}

func conflictingIntervalError(symbol1, symbol2 string) error {
	return fmt.Errorf("bad argument: conflicting intervals mapping to %s and %s", symbol1, symbol2)
}

func metadataMismatchError(field string) error {
	return fmt.Errorf("bad argument: additional: %s mismatch when attempting to merge Metadata objects", field)
}

func seekShortfallError(got, want int) error {
	return fmt.Errorf("io: seeked %d of %d: %w", got, want, errUnexpectedEOFSentinel)
}

var errUnexpectedEOFSentinel = errors.New("unexpected EOF")
