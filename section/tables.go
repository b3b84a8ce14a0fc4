package section

// The codec packs each partition at one of a fixed menu of bit widths and
// one of a fixed menu of partition lengths. A one-byte directory entry
// (the control byte) selects both: the low nibble indexes the width menu,
// the high nibble indexes the length menu. The tables below map between
// actual values and nibble encodings; ctrlInvalid marks encodings that
// must never appear on the wire.

const ctrlInvalid = 0xFF

// BitWidths64 is the width menu of the uint64 family, indexed by the low
// nibble of a control byte.
var BitWidths64 = [16]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 16, 32, 64,
}

// BitWidths32 is the width menu of the uint32 family. Nibble 0xF is not a
// legal width encoding for 32-bit elements.
var BitWidths32 = [16]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 16, 32, -1,
}

// PartitionLengths is the shared partition-length menu, indexed by the
// high nibble of a control byte. The dynamic-programming partitioner only
// ever emits these lengths.
var PartitionLengths = [16]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 16, 32, 64, 128,
}

// roundUpBits64 maps an actual bit need in [0, 64] to the smallest entry
// of BitWidths64 that can hold it.
var roundUpBits64 = [65]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 16, 16, 16, 16,
	32, 32, 32, 32, 32, 32, 32, 32,
	32, 32, 32, 32, 32, 32, 32, 32,
	64, 64, 64, 64, 64, 64, 64, 64,
	64, 64, 64, 64, 64, 64, 64, 64,
	64, 64, 64, 64, 64, 64, 64, 64,
	64, 64, 64, 64, 64, 64, 64, 64,
}

// roundUpBits32 maps an actual bit need in [0, 32] to the smallest entry
// of BitWidths32 that can hold it.
var roundUpBits32 = [33]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 16, 16, 16, 16,
	32, 32, 32, 32, 32, 32, 32, 32,
	32, 32, 32, 32, 32, 32, 32, 32,
}

// ctrlWidth64 maps a packed width of the uint64 family to its low-nibble
// encoding.
var ctrlWidth64 = [65]byte{
	0x00, 0x01, 0x02, 0x03,
	0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0A, 0x0B,
	0x0C, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	0x0D, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	0x0E, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	0x0F,
}

// ctrlPartition maps a partition length to its pre-shifted high-nibble
// encoding.
var ctrlPartition = [129]byte{
	ctrlInvalid, 0x00, 0x10, 0x20,
	0x30, 0x40, 0x50, 0x60,
	0x70, 0x80, 0x90, 0xA0,
	0xB0, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	0xC0, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	0xD0, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	0xE0, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	ctrlInvalid, ctrlInvalid, ctrlInvalid, ctrlInvalid,
	0xF0,
}

// RoundUpBits64 returns the smallest uint64-family packed width that can
// hold a value needing bitNeed bits. bitNeed must be in [0, 64].
func RoundUpBits64(bitNeed int) int {
	return int(roundUpBits64[bitNeed])
}

// RoundUpBits32 returns the smallest uint32-family packed width that can
// hold a value needing bitNeed bits. bitNeed must be in [0, 32].
func RoundUpBits32(bitNeed int) int {
	return int(roundUpBits32[bitNeed])
}

// CtrlByte64 composes the control byte for a uint64-family partition of
// length plen packed at the given width. It returns false when either
// value is outside its menu; the encoder treats that as a programming
// error since the partitioner only produces menu values.
func CtrlByte64(width, plen int) (byte, bool) {
	if width < 0 || width >= len(ctrlWidth64) || plen < 0 || plen >= len(ctrlPartition) {
		return 0, false
	}

	w := ctrlWidth64[width]
	p := ctrlPartition[plen]
	if w == ctrlInvalid || p == ctrlInvalid {
		return 0, false
	}

	return w | p, true
}

// CtrlByte32 composes the control byte for a uint32-family partition.
// Width 64 is rejected.
func CtrlByte32(width, plen int) (byte, bool) {
	if width < 0 || width > 32 {
		return 0, false
	}

	return CtrlByte64(width, plen)
}

// SplitCtrl splits a control byte into its width index (low nibble) and
// partition-length index (high nibble).
func SplitCtrl(ctrl byte) (widthIdx, partIdx int) {
	return int(ctrl & 0x0F), int(ctrl >> 4)
}
