// Package partition computes the optimal split of a block's integers into
// packable sub-runs.
//
// The split minimises the total packed size Σ⌈ℓᵢ·wᵢ/8⌉, where each
// sub-run length ℓᵢ is drawn from the fixed partition-length menu and wᵢ
// is the rounded-up width of the widest element in the sub-run. A
// classical dynamic program over prefix costs solves it in
// O(n·MaxPartitionLen) time per block.
package partition

import (
	"math/bits"

	"github.com/arloliu/vpack/internal/bitpack"
	"github.com/arloliu/vpack/internal/pool"
	"github.com/arloliu/vpack/section"
)

func divRoundUp(x, y int) int {
	return (x + y - 1) / y
}

// Compute partitions src and stores the boundaries into parts:
// parts[0] = 0, parts[p] = len(src), strictly increasing, every
// parts[i+1]-parts[i] a menu length. It returns p, the number of
// partitions.
//
// len(src) must be at least section.MaxPartitionLen (the block encoder
// never partitions smaller runs) and parts must hold len(src)+1 entries.
//
// Prefixes shorter than the longest menu length admit only the trivial
// all-singleton split: cost[j] for j < 128 is seeded from cost[j-1] plus
// the unrounded byte need of src[j], and refs[j] chains to j-1. The
// seeding deliberately charges src[0] to the empty prefix. Changing
// either detail changes which partitions win and breaks compatibility
// with streams already written; see DESIGN.md.
//
// On equal cost the longer candidate wins (the update overwrites on ties
// while lengths are scanned in increasing order), keeping the partition
// count and control-byte overhead small.
func Compute[T bitpack.Elem](src []T, parts []int) int {
	n := len(src)

	cost, releaseCost := pool.GetUint64Slice(n + 1)
	defer releaseCost()
	refs, releaseRefs := pool.GetIntSlice(n + 1)
	defer releaseRefs()

	for i := range refs {
		refs[i] = -1
	}

	roundUp := section.RoundUpBits64
	if bitpack.ElemBits[T]() == 32 {
		roundUp = section.RoundUpBits32
	}

	cost[0] = uint64(divRoundUp(bits.Len64(uint64(src[0])), 8))
	for i := 1; i < section.MaxPartitionLen; i++ {
		refs[i] = i - 1
		cost[i] = cost[i-1] + uint64(divRoundUp(bits.Len64(uint64(src[i])), 8))
	}

	for i := section.MaxPartitionLen; i <= n; i++ {
		maxb := 0
		scanned := i

		for _, plen := range section.PartitionLengths {
			bp := i - plen

			// Extend the running width maximum over the elements the
			// longer candidate adds, so maxb always covers src[bp:i].
			for k := bp; k < scanned; k++ {
				if b := roundUp(bits.Len64(uint64(src[k]))); b > maxb {
					maxb = b
				}
			}
			scanned = bp

			c := cost[bp] + uint64(divRoundUp(plen*maxb, 8))
			if refs[i] == -1 || c <= cost[i] {
				cost[i] = c
				refs[i] = bp
			}
		}
	}

	pnum := 0
	for next := n; next != 0; next = refs[next] {
		pnum++
	}

	pidx := pnum
	for next := n; next != 0; next = refs[next] {
		parts[pidx] = next
		pidx--
	}
	parts[0] = 0

	return pnum
}
