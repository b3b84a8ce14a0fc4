package codec

// Synthetic test data generation. The xorshift128 generator is seeded
// with fixed constants so every run exercises identical streams.

type xor128 struct {
	x, y, z, w uint32
}

func newXor128() *xor128 {
	return &xor128{x: 123456789, y: 362436069, z: 521288629, w: 88675123}
}

func (r *xor128) next() uint32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = (r.w ^ (r.w >> 19)) ^ (t ^ (t >> 8))

	return r.w
}

func (r *xor128) next64() uint64 {
	v := uint64(r.next())
	return v<<32 | uint64(r.next())
}

func (r *xor128) uint32s(n int, max uint64) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(uint64(r.next()) % max)
	}

	return out
}

func (r *xor128) uint64s(n int, max uint64) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.next64() % max
	}

	return out
}

// testRanges mirrors the value ranges of the reference test corpus: every
// packable width plus two pass-through-heavy ones.
var testRanges = []uint64{
	1 << 1, 1 << 2, 1 << 3,
	1 << 4, 1 << 5, 1 << 6,
	1 << 7, 1 << 8, 1 << 9,
	1 << 10, 1 << 11, 1 << 12,
	1 << 16, 1 << 24,
}

func testSizes() []int {
	sizes := make([]int, 0, 264)
	for n := 1; n < 256; n++ {
		sizes = append(sizes, n)
	}
	sizes = append(sizes, 1024, 2048, 4096, 8192, 16384, 32768, 65536, 131072)

	return sizes
}
