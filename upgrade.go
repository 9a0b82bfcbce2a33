// Copyright (c) 2024 Neomantra Corp
//
// Version upgrade layer: maps V1/V2 record shapes to their current-version
// (V3) shape on the fly when the decoder's policy is Upgrade.

package bf

import "encoding/binary"

// V1 fixed-width fields that widen in V3.
const (
	instrumentRawIDLenV1V2 = 4 // raw_instrument_id was u32 before V3
	statQuantityLenV1      = 4 // StatMsg.Quantity was i32 before V3
	errorMsgErrLenV1       = 302
	systemMsgMsgLenV1      = 303
)

// UndefStatQuantityV1 is V1's sentinel for "no quantity", mapped to
// UndefStatQuantity (V3's i64 sentinel) on upgrade.
const UndefStatQuantityV1 int32 = 2147483647 // math.MaxInt32

// UpgradeRecordBytes rewrites the wire bytes of an upgradable record
// (InstrumentDef, SymbolMapping, Error, System, Statistics) from version
// into the current-version shape, using scratch as backing storage for the
// result. Returns ok=false (and the original bytes untouched) for rtypes the
// upgrade layer does not touch, per spec: only those five rtypes differ
// across versions.
func UpgradeRecordBytes(raw []byte, version uint8, scratch []byte) (upgraded []byte, ok bool, err error) {
	if version >= CurrentVersion {
		return raw, false, nil
	}
	var h RHeader
	if err := FillRHeaderRaw(raw, &h); err != nil {
		return nil, false, err
	}
	switch h.RType {
	case RType_InstrumentDef:
		return upgradeInstrumentDef(raw, version, scratch)
	case RType_SymbolMapping:
		return upgradeSymbolMapping(raw, version, scratch)
	case RType_Error:
		return upgradeError(raw, version, scratch)
	case RType_System:
		return upgradeSystem(raw, version, scratch)
	case RType_Statistics:
		return upgradeStat(raw, version, scratch)
	default:
		return raw, false, nil
	}
}

func upgradeStat(raw []byte, version uint8, scratch []byte) ([]byte, bool, error) {
	if version >= HeaderVersion3 {
		return raw, false, nil // quantity already i64 since V3
	}
	var old StatMsg
	old.Quantity = 0
	body := raw[RHeaderSize:]
	old.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	old.TsRef = binary.LittleEndian.Uint64(body[8:16])
	old.Price = int64(binary.LittleEndian.Uint64(body[16:24]))
	q32 := int32(binary.LittleEndian.Uint32(body[24:28]))
	old.Sequence = binary.LittleEndian.Uint32(body[28:32])
	old.TsInDelta = int32(binary.LittleEndian.Uint32(body[32:36]))
	old.StatType = StatType(binary.LittleEndian.Uint16(body[36:38]))
	old.ChannelID = binary.LittleEndian.Uint16(body[38:40])
	old.UpdateAction = StatUpdateAction(body[40])
	old.StatFlags = body[41]

	if q32 == UndefStatQuantityV1 {
		old.Quantity = UndefStatQuantity
	} else {
		old.Quantity = int64(q32)
	}
	old.Header = h3Header(raw, StatMsgSize)
	out := scratch[:StatMsgSize]
	PutRHeaderRaw(out[0:RHeaderSize], &old.Header)
	obody := out[RHeaderSize:]
	binary.LittleEndian.PutUint64(obody[0:8], old.TsRecv)
	binary.LittleEndian.PutUint64(obody[8:16], old.TsRef)
	binary.LittleEndian.PutUint64(obody[16:24], uint64(old.Price))
	binary.LittleEndian.PutUint64(obody[24:32], uint64(old.Quantity))
	binary.LittleEndian.PutUint32(obody[32:36], old.Sequence)
	binary.LittleEndian.PutUint32(obody[36:40], uint32(old.TsInDelta))
	binary.LittleEndian.PutUint16(obody[40:42], uint16(old.StatType))
	binary.LittleEndian.PutUint16(obody[42:44], old.ChannelID)
	obody[44] = uint8(old.UpdateAction)
	obody[45] = old.StatFlags
	return out, true, nil
}

func upgradeError(raw []byte, version uint8, scratch []byte) ([]byte, bool, error) {
	if version >= HeaderVersion2 {
		return raw, false, nil
	}
	body := raw[RHeaderSize:]
	errText := TrimNullBytes(body[0:errorMsgErrLenV1])
	out := scratch[:ErrorMsgSize]
	h := h3Header(raw, ErrorMsgSize)
	PutRHeaderRaw(out[0:RHeaderSize], &h)
	obody := out[RHeaderSize:]
	copy(obody, errText)
	obody[errMsgErrLen] = 0   // code: unknown in V1
	obody[errMsgErrLen+1] = 1 // is_last: V1 errors were always singleton
	return out, true, nil
}

func upgradeSystem(raw []byte, version uint8, scratch []byte) ([]byte, bool, error) {
	if version >= HeaderVersion2 {
		return raw, false, nil
	}
	body := raw[RHeaderSize:]
	msgText := TrimNullBytes(body[0:systemMsgMsgLenV1])
	out := scratch[:SystemMsgSize]
	h := h3Header(raw, SystemMsgSize)
	PutRHeaderRaw(out[0:RHeaderSize], &h)
	obody := out[RHeaderSize:]
	copy(obody, msgText)
	obody[systemMsgMsgLen] = 0
	return out, true, nil
}

func upgradeSymbolMapping(raw []byte, version uint8, scratch []byte) ([]byte, bool, error) {
	oldCstrLen := symbolCstrLenForVersion(version)
	if oldCstrLen == SymbolCstrLenV3 {
		return raw, false, nil
	}
	var old SymbolMappingMsg
	if err := old.Fill_Raw(raw, oldCstrLen); err != nil {
		return nil, false, err
	}
	newSize := int(old.RSize(SymbolCstrLenV3))
	out := scratch[:newSize]
	h := h3Header(raw, newSize)
	PutRHeaderRaw(out[0:RHeaderSize], &h)
	obody := out[RHeaderSize:]
	obody[0] = uint8(old.StypeIn)
	copy(obody[1:1+SymbolCstrLenV3], old.StypeInSymbol)
	pos := 1 + int(SymbolCstrLenV3)
	obody[pos] = uint8(old.StypeOut)
	copy(obody[pos+1:pos+1+int(SymbolCstrLenV3)], old.StypeOutSymbol)
	pos = pos + 1 + int(SymbolCstrLenV3)
	binary.LittleEndian.PutUint64(obody[pos:pos+8], old.StartTs)
	binary.LittleEndian.PutUint64(obody[pos+8:pos+16], old.EndTs)
	return out, true, nil
}

func upgradeInstrumentDef(raw []byte, version uint8, scratch []byte) ([]byte, bool, error) {
	oldCstrLen := symbolCstrLenForVersion(version)
	var old InstrumentDefMsg
	if err := old.Fill_Raw(raw, int(oldCstrLen)); err != nil {
		return nil, false, err
	}
	if version < HeaderVersion2 {
		// V1 carried a narrower symbol width and no strike_price_currency;
		// Fill_Raw above already filled what's present, remaining V3-only
		// fields keep their zero value.
	}
	newSize := InstrumentDefMsgSize(int(SymbolCstrLenV3))
	out := scratch[:newSize]
	old.Header = h3Header(raw, newSize)
	if err := old.putRaw(out, int(SymbolCstrLenV3)); err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// h3Header copies the header from raw and rewrites its length field for a
// record whose upgraded size is newSize bytes.
func h3Header(raw []byte, newSize int) RHeader {
	var h RHeader
	FillRHeaderRaw(raw, &h)
	h.Length = uint8(newSize / 4)
	return h
}
