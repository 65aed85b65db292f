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

import "testing"

// TestFirstLeafIndexWidthTwo exercises scenario 3 from the design's
// testable-properties section: width 2 is exactly the case the
// reference first-leaf-index formula special-cased (incorrectly), so
// this pins down that the canonical S_int formula alone is enough.
func TestFirstLeafIndexWidthTwo(t *testing.T) {
	const width = 2
	const depth = 11 // 2^12 == 4096
	sInt := internalSlotCount(width, depth)
	if sInt != 2047 {
		t.Fatalf("internalSlotCount(2, 11) = %d, want 2047", sInt)
	}

	for leafOrdinal := 0; leafOrdinal < 1<<depth; leafOrdinal++ {
		slot := sInt + leafOrdinal
		got := firstLeafIndex(slot, sInt, width)
		want := width * leafOrdinal
		if got != want {
			t.Fatalf("firstLeafIndex(%d) = %d, want %d", slot, got, want)
		}
	}
}

func TestInternalSlotCountMatchesGeometricSum(t *testing.T) {
	cases := []struct{ width, depth, want int }{
		{3, 0, 0},
		{3, 1, 1},
		{3, 2, 4},
		{5, 2, 6},
		{2, 11, 2047},
		{8, 3, 73},
	}
	for _, c := range cases {
		got := internalSlotCount(c.width, c.depth)
		if got != c.want {
			t.Fatalf("internalSlotCount(%d, %d) = %d, want %d", c.width, c.depth, got, c.want)
		}
	}
}

func TestPathPositionsAndSlotPathRoundTrip(t *testing.T) {
	const width, depth = 3, 2 // N = 27
	for index := 0; index < 27; index++ {
		positions := pathPositions(index, width, depth)
		if len(positions) != depth+1 {
			t.Fatalf("index %d: got %d positions, want %d", index, len(positions), depth+1)
		}
		slots := slotPath(positions, width)
		if slots[0] != 0 {
			t.Fatalf("index %d: root slot = %d, want 0", index, slots[0])
		}

		// Reconstructing the index from the walk should give index back.
		reconstructed := 0
		for _, p := range positions {
			reconstructed = reconstructed*width + p
		}
		if reconstructed != index {
			t.Fatalf("index %d: walk reconstructed %d", index, reconstructed)
		}

		sInt := internalSlotCount(width, depth)
		leafSlot := slots[depth]
		if leafSlot < sInt {
			t.Fatalf("index %d: leaf slot %d is not in the leaf row (sInt=%d)", index, leafSlot, sInt)
		}
		first := firstLeafIndex(leafSlot, sInt, width)
		if first+positions[depth] != index {
			t.Fatalf("index %d: first+pos = %d, want %d", index, first+positions[depth], index)
		}
	}
}

func TestTouchedSlotsIncludesRootAndIsAscending(t *testing.T) {
	const width, depth = 3, 2
	touched := touchedSlots([]int{1, 2, 6, 12, 15, 16, 25}, width, depth)
	if _, ok := touched[0]; !ok {
		t.Fatal("root slot (0) must always be touched when indices is non-empty")
	}
	for slot, positions := range touched {
		for i := 1; i < len(positions); i++ {
			if positions[i-1] >= positions[i] {
				t.Fatalf("slot %d: positions not strictly ascending: %v", slot, positions)
			}
		}
	}
}
