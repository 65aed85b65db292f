// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package verkle

import "sort"

// pathPositions returns, for a leaf index in a tree of the given width
// and depth, the sequence of domain positions visited from the root
// down to the leaf: positions[0] picks a child of the root, ...,
// positions[depth] is the position of the value within the leaf's own
// chunk. This is the repeated-division walk of 4.3.
func pathPositions(index, width, depth int) []int {
	positions := make([]int, depth+1)
	for l := depth; l >= 0; l-- {
		positions[l] = index % width
		index /= width
	}
	return positions
}

// slotPath turns a sequence of per-level positions into the level-order
// slot index of the node visited at each level, slot[0] = 0 being the
// root. Children of slot k live at width*k+1 .. width*k+width, so
// descending via position p moves to width*k+1+p.
func slotPath(positions []int, width int) []int {
	slots := make([]int, len(positions))
	slots[0] = 0
	for l := 0; l < len(positions)-1; l++ {
		slots[l+1] = width*slots[l] + 1 + positions[l]
	}
	return slots
}

// internalSlotCount returns S_int, the number of node slots strictly
// above the leaf row in a complete width-ary tree of the given depth:
// S_int = (width^depth - 1) / (width - 1). This is deliberately the
// same formula regardless of width, including width == 2; the
// reference sources special-case width == 2 here, which is the bug
// this implementation avoids (see the design notes on first-leaf-index
// arithmetic).
func internalSlotCount(width, depth int) int {
	count := 0
	power := 1
	for i := 0; i < depth; i++ {
		count += power
		power *= width
	}
	return count
}

// firstLeafIndex maps a leaf's level-order slot k to the index, within
// the original flat value sequence, of the first value its chunk holds.
func firstLeafIndex(slot, sInt, width int) int {
	return width * (slot - sInt)
}

// touchedSlots projects a set of leaf indices onto the set of node
// slots their root-to-leaf paths pass through, and, for each such slot,
// the ascending set of domain positions opened at that node. This is
// shared, position-for-position, by both the batch prover (to build
// each ProofNode's points) and the batch verifier (to recompute the
// expected present/absent pattern independent of the proof it was
// handed).
func touchedSlots(indices []int, width, depth int) map[int][]int {
	touched := make(map[int]map[int]struct{})
	for _, idx := range indices {
		positions := pathPositions(idx, width, depth)
		slots := slotPath(positions, width)
		for l, slot := range slots {
			set, ok := touched[slot]
			if !ok {
				set = make(map[int]struct{})
				touched[slot] = set
			}
			set[positions[l]] = struct{}{}
		}
	}

	out := make(map[int][]int, len(touched))
	for slot, set := range touched {
		positions := make([]int, 0, len(set))
		for p := range set {
			positions = append(positions, p)
		}
		sort.Ints(positions)
		out[slot] = positions
	}
	return out
}
