package bitpack

// unpackInvalid32 rejects width nibble 0xF, which has no meaning for
// 32-bit elements.
func unpackInvalid32(_ []byte, _ []uint32, _ int) int {
	return -1
}

// Unpackers32 maps the width nibble of a control byte to the unpacker of
// the uint32 family.
var Unpackers32 = [16]UnpackFunc[uint32]{
	unpack0[uint32], unpack1[uint32], unpack2[uint32], unpack3[uint32],
	unpack4[uint32], unpack5[uint32], unpack6[uint32], unpack7[uint32],
	unpack8[uint32], unpack9[uint32], unpack10[uint32], unpack11[uint32],
	unpack12[uint32], unpack16[uint32], unpack32[uint32], unpackInvalid32,
}

// Unpackers64 maps the width nibble of a control byte to the unpacker of
// the uint64 family.
var Unpackers64 = [16]UnpackFunc[uint64]{
	unpack0[uint64], unpack1[uint64], unpack2[uint64], unpack3[uint64],
	unpack4[uint64], unpack5[uint64], unpack6[uint64], unpack7[uint64],
	unpack8[uint64], unpack9[uint64], unpack10[uint64], unpack11[uint64],
	unpack12[uint64], unpack16[uint64], unpack32[uint64], unpack64,
}
