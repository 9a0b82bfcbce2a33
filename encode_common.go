// Copyright (c) 2024 Neomantra Corp
//
// Shared field-walking machinery for the CSV and JSON encoders: both need the
// same flattened, ordered view of a record's fields (header first, nested
// book levels flattened with _NN suffixes), so it lives in one place rather
// than being duplicated per encoder.

package bf

import (
	"fmt"
	"reflect"
	"strings"
)

// EncodeOptions configures the CSV/JSON text encoders (spec §4.F).
type EncodeOptions struct {
	PrettyPx          bool
	PrettyTs          bool
	WithSymbol        bool
	ShouldPrettyPrint bool // JSON only: 4-space indent
	Delimiter         byte // CSV only: default ','
	TsOut             bool // CSV only: append a trailing ts_out column, always left empty; the JSON encoder ignores it
	WriteHeader       bool // CSV only: emit the header row before the first record (none is written if no record arrives)
}

// DefaultEncodeOptions matches the teacher's CSV/JSON writer defaults.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Delimiter: ',', WriteHeader: true}
}

// namedField is one flattened scalar field ready for rendering.
type namedField struct {
	name  string
	value reflect.Value
}

// flattenRecord walks rec (a pointer to one of the XxxMsg structs) into an
// ordered list of scalar fields: RHeader's own fields first (renamed to
// their wire names, dropping the redundant "len"), embedded structs (e.g.
// tradeHeader) inlined in place, and fixed-size arrays of BidAskPair /
// ConsolidatedBidAskPair flattened with a zero-padded _NN suffix per level,
// matching spec.md §4.F's CSV book-level flattening rule (reused verbatim
// for JSON's field order too).
func flattenRecord(rec any) []namedField {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	var out []namedField
	walkStruct(v, "", &out)
	return out
}

func walkStruct(v reflect.Value, levelSuffix string, out *[]namedField) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("csv")
		if tag == "-" {
			continue
		}
		fv := v.Field(i)

		switch {
		case sf.Type == reflect.TypeOf(RHeader{}):
			walkStruct(fv, "", out)
			continue
		case sf.Anonymous && fv.Kind() == reflect.Struct:
			walkStruct(fv, levelSuffix, out)
			continue
		case fv.Kind() == reflect.Array && fv.Type().Elem().Kind() == reflect.Struct:
			for lvl := 0; lvl < fv.Len(); lvl++ {
				walkStruct(fv.Index(lvl), fmt.Sprintf("_%02d", lvl), out)
			}
			continue
		}

		name := tag
		if name == "" {
			name = strings.ToLower(sf.Name)
		}
		if name == "len" {
			continue
		}
		*out = append(*out, namedField{name: name + levelSuffix, value: fv})
	}
}

// isPriceField reports whether name denotes a fixed-point price column per
// spec.md's pretty_px rule (rendered with FormatPx/Fixed9ToFloat64).
func isPriceField(name string) bool {
	base := strings.TrimSuffix(name, trailingLevelSuffix(name))
	switch {
	case strings.HasSuffix(base, "_px"), base == "price", strings.Contains(base, "price"):
		return true
	default:
		return false
	}
}

// isTimestampField reports whether name denotes a nanosecond epoch timestamp
// column per spec.md's pretty_ts rule. Deltas, dates (YYYYMMDD) and counters
// are excluded even though their names contain "ts"/"date".
func isTimestampField(name string) bool {
	base := strings.TrimSuffix(name, trailingLevelSuffix(name))
	switch base {
	case "ts_event", "ts_recv", "ts_ref", "ts_out", "start_ts", "end_ts",
		"expiration", "activation", "auction_time":
		return true
	default:
		return false
	}
}

// isCharField reports whether name denotes a character-coded uint8 field per
// spec.md §3.1/§4.F: action/side action codes and the tri-state
// is_trading/is_quoting/is_short_sell_restricted flags, where 0x00 means
// "absent" rather than a printable code.
func isCharField(name string) bool {
	base := strings.TrimSuffix(name, trailingLevelSuffix(name))
	switch base {
	case "action", "side", "is_trading", "is_quoting", "is_short_sell_restricted":
		return true
	default:
		return false
	}
}

// renderCharField renders a char-coded byte per the NUL->absent,
// printable->single char, non-printable->escaped rule.
func renderCharField(c byte) string {
	switch {
	case c == 0:
		return ""
	case c >= 0x20 && c < 0x7f:
		return string(rune(c))
	default:
		return fmt.Sprintf("\\x%02x", c)
	}
}

func trailingLevelSuffix(name string) string {
	if len(name) >= 3 && name[len(name)-3] == '_' {
		if _, err := fmt.Sscanf(name[len(name)-2:], "%d", new(int)); err == nil {
			return name[len(name)-3:]
		}
	}
	return ""
}

// renderValue renders one field: a price as a decimal when PrettyPx, a
// timestamp as UTC ISO-8601 when PrettyTs, a char-coded uint8 as its
// character, and anything else as its plain decimal or string form.
func renderValue(name string, fv reflect.Value, opts EncodeOptions) string {
	if isPriceField(name) && opts.PrettyPx {
		switch fv.Kind() {
		case reflect.Int64:
			return FormatPx(fv.Int())
		}
	}
	if isTimestampField(name) && opts.PrettyTs {
		switch fv.Kind() {
		case reflect.Uint64:
			ts := fv.Uint()
			if ts == 0 || ts == UndefTimestamp {
				return ""
			}
			return TimestampToTime(ts).UTC().Format("2006-01-02T15:04:05.000000000Z")
		}
	}
	if isCharField(name) && fv.Kind() == reflect.Uint8 {
		return renderCharField(byte(fv.Uint()))
	}
	switch fv.Kind() {
	case reflect.String:
		return fv.String()
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return fmt.Sprintf("%d", fv.Uint())
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return fmt.Sprintf("%d", fv.Int())
	case reflect.Uint64:
		return fmt.Sprintf("%d", fv.Uint())
	case reflect.Int64:
		return fmt.Sprintf("%d", fv.Int())
	default:
		return fmt.Sprintf("%v", fv.Interface())
	}
}

// recordValue returns the active concrete *XxxMsg held by a RecordRefEnum,
// or nil if it's empty.
func recordValue(rr RecordRefEnum) any {
	switch {
	case rr.Mbo != nil:
		return rr.Mbo
	case rr.Trade != nil:
		return rr.Trade
	case rr.Mbp1 != nil:
		return rr.Mbp1
	case rr.Mbp10 != nil:
		return rr.Mbp10
	case rr.Bbo != nil:
		return rr.Bbo
	case rr.Cbbo != nil:
		return rr.Cbbo
	case rr.Cmbp1 != nil:
		return rr.Cmbp1
	case rr.Ohlcv != nil:
		return rr.Ohlcv
	case rr.Status != nil:
		return rr.Status
	case rr.Instrument != nil:
		return rr.Instrument
	case rr.Imbalance != nil:
		return rr.Imbalance
	case rr.Stat != nil:
		return rr.Stat
	case rr.ErrorMsg != nil:
		return rr.ErrorMsg
	case rr.System != nil:
		return rr.System
	case rr.SymbolMap != nil:
		return rr.SymbolMap
	default:
		return nil
	}
}
