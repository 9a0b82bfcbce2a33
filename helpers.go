// Copyright (c) 2024 Neomantra Corp

package bf

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/neomantra/ymdflag"
	"github.com/relvacode/iso8601"
)

// FixedPriceScale is the denominator for all fixed-precision prices in the format: 1e-9.
const FixedPriceScale = 1_000_000_000

// UndefPrice marks a price field as unset.
const UndefPrice int64 = 9223372036854775807 // math.MaxInt64

// UndefOrderSize marks an order size field as unset.
const UndefOrderSize uint32 = 4294967295 // math.MaxUint32

// UndefStatQuantity marks a StatMsg quantity field as unset.
const UndefStatQuantity int64 = 9223372036854775807

// UndefTimestamp marks a nanosecond timestamp field as unset.
const UndefTimestamp uint64 = 18446744073709551615 // math.MaxUint64

// Fixed9ToFloat64 converts a fixed-precision price (1e-9 scale) to a float64.
// UndefPrice converts to NaN.
func Fixed9ToFloat64(fixed int64) float64 {
	if fixed == UndefPrice {
		return nan()
	}
	return float64(fixed) / FixedPriceScale
}

// Float64ToFixed9 converts a float64 to a fixed-precision price (1e-9 scale).
func Float64ToFixed9(f float64) int64 {
	if isNaN(f) {
		return UndefPrice
	}
	return int64(f * FixedPriceScale)
}

// FormatPx renders a fixed-precision price as a decimal string with 9 digits
// after the point, the way prices are rendered in BF's CSV and JSON pretty
// output. An UndefPrice value renders as an empty string.
func FormatPx(fixed int64) string {
	if fixed == UndefPrice {
		return ""
	}
	neg := fixed < 0
	if neg {
		fixed = -fixed
	}
	whole := fixed / FixedPriceScale
	frac := fixed % FixedPriceScale
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%09d", sign, whole, frac)
}

// ParsePx parses a decimal price string as rendered by FormatPx back into
// its fixed-precision (1e-9 scale) int64 form. An empty string parses as
// UndefPrice. This is the exact inverse of FormatPx; a third-party decimal
// library would do no better than the stdlib strconv split-on-'.' this
// performs, since the fixed 9-digit fractional width is already known.
func ParsePx(s string) (int64, error) {
	if s == "" {
		return UndefPrice, nil
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0, fmt.Errorf("parse px %q: missing fractional part", s)
	}
	if len(frac) != 9 {
		return 0, fmt.Errorf("parse px %q: expected 9 fractional digits, got %d", s, len(frac))
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse px %q: %w", s, err)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse px %q: %w", s, err)
	}
	fixed := w*FixedPriceScale + f
	if neg {
		fixed = -fixed
	}
	return fixed, nil
}

// ParsePrettyTs parses an ISO-8601 nanosecond timestamp string as rendered
// by the pretty_ts encoders back into a nanosecond UNIX timestamp. An empty
// string parses as UndefTimestamp.
func ParsePrettyTs(s string) (uint64, error) {
	if s == "" {
		return UndefTimestamp, nil
	}
	t, err := iso8601.ParseString(s)
	if err != nil {
		return 0, fmt.Errorf("parse pretty ts %q: %w", s, err)
	}
	return TimeToTimestamp(t.UTC()), nil
}

// TrimNullBytes trims trailing NUL bytes from a fixed-width C string buffer
// and returns the remaining content as a Go string.
func TrimNullBytes(b []byte) string {
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}
	return string(b[:n])
}

// TimestampToSecNanos splits a nanosecond UNIX timestamp into seconds and
// the remaining nanoseconds within that second.
func TimestampToSecNanos(ts uint64) (sec int64, nanos int64) {
	sec = int64(ts / 1_000_000_000)
	nanos = int64(ts % 1_000_000_000)
	return
}

// TimestampToTime converts a nanosecond UNIX timestamp to a time.Time in UTC.
// UndefTimestamp converts to the zero time.Time.
func TimestampToTime(ts uint64) time.Time {
	if ts == UndefTimestamp {
		return time.Time{}
	}
	sec, nanos := TimestampToSecNanos(ts)
	return time.Unix(sec, nanos).UTC()
}

// TimeToTimestamp converts a time.Time to a nanosecond UNIX timestamp.
func TimeToTimestamp(t time.Time) uint64 {
	return uint64(t.UnixNano())
}

// TimeToYMD converts a time.Time to a YYYYMMDD-encoded date, as used by
// SymbolMapping and InstrumentDef date-range fields.
func TimeToYMD(t time.Time) uint32 {
	return ymdflag.TimeToYMD(t)
}

// YMDToTime converts a YYYYMMDD-encoded date to a UTC time.Time at midnight.
func YMDToTime(ymd uint32) (time.Time, error) {
	if ymd == 0 {
		return time.Time{}, nil
	}
	year := int(ymd / 10000)
	month := time.Month((ymd / 100) % 100)
	day := int(ymd % 100)
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if uint32(t.Year())*10000+uint32(t.Month())*100+uint32(t.Day()) != ymd {
		return time.Time{}, fmt.Errorf("invalid YMD date: %d", ymd)
	}
	return t, nil
}

func nan() float64 {
	var f float64
	return f / f
}

func isNaN(f float64) bool {
	return f != f
}
