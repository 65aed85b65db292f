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

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kiln-verkle/kzgverkle/pcs"
)

// VerkleNode is one node of the tree: a polynomial commitment, the
// coefficient form needed to re-open it locally, and its children
// (nil for a leaf). Leaf values themselves aren't cached on the node;
// callers that need to prove a leaf always supply it.
// The tree exclusively owns its node graph; a node exclusively owns
// its children and its polynomial.
type VerkleNode struct {
	commitment pcs.Commitment
	polynomial pcs.Polynomial
	children   []*VerkleNode
}

func (n *VerkleNode) isLeaf() bool { return n.children == nil }

// Tree is a complete width-ary tree built once, immutably, over a flat
// vector of scalar-field values.
type Tree struct {
	width  int
	depth  int
	params *pcs.Parameters
	root   *VerkleNode

	// arena holds every node in canonical level order (root = 0,
	// children of slot k at width*k+1..width*k+width), the same
	// numbering the batch proof uses. Building this once at
	// construction time turns "find the node at slot k" into a slice
	// index instead of a tree walk.
	arena []*VerkleNode
}

// New builds a tree over values with the given arity. It fails with
// ErrEmptyInput if values is empty and with errWidthTooSmall if width
// is less than 2.
func New(values []pcs.Fr, width int) (*Tree, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if width < 2 {
		return nil, errWidthTooSmall
	}

	params, err := getParameters(width)
	if err != nil {
		return nil, err
	}

	leaves, err := buildLeafLevel(values, width, params)
	if err != nil {
		return nil, err
	}

	levels := [][]*VerkleNode{leaves}
	current := leaves
	for len(current) > 1 {
		next, err := buildInternalLevel(current, width, params)
		if err != nil {
			return nil, err
		}
		levels = append(levels, next)
		current = next
	}

	depth := len(levels) - 1
	return &Tree{
		width:  width,
		depth:  depth,
		params: params,
		root:   current[0],
		arena:  levelOrderArena(levels),
	}, nil
}

// buildLeafLevel partitions values into width-sized chunks (the final
// chunk may be short) and turns each into a leaf node whose polynomial
// interpolates the chunk at domain positions 0..len(chunk)-1.
func buildLeafLevel(values []pcs.Fr, width int, params *pcs.Parameters) ([]*VerkleNode, error) {
	chunks := chunkFr(values, width)
	leaves := make([]*VerkleNode, len(chunks))

	g, _ := errgroup.WithContext(context.Background())
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			commitment, polynomial, err := params.CommitVector(chunk)
			if err != nil {
				return err
			}
			leaves[i] = &VerkleNode{
				commitment: commitment,
				polynomial: polynomial,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return leaves, nil
}

// buildInternalLevel groups the current layer into width-sized chunks
// and builds one internal node per chunk, whose polynomial interpolates
// encode(child.commitment) at the child's position within the chunk.
// Chunks are independent and are committed in parallel, mirroring the
// tree builder's chunk-level parallelism.
func buildInternalLevel(current []*VerkleNode, width int, params *pcs.Parameters) ([]*VerkleNode, error) {
	groups := chunkNodes(current, width)
	parents := make([]*VerkleNode, len(groups))

	g, _ := errgroup.WithContext(context.Background())
	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			encoded := make([]pcs.Fr, len(group))
			for j, child := range group {
				encoded[j] = pcs.Encode(child.commitment)
			}
			commitment, polynomial, err := params.CommitVector(encoded)
			if err != nil {
				return err
			}
			parents[i] = &VerkleNode{
				commitment: commitment,
				polynomial: polynomial,
				children:   group,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parents, nil
}

// levelOrderArena flattens levels (indexed bottom-up: levels[0] is the
// leaf row) into canonical level order, root first.
func levelOrderArena(levels [][]*VerkleNode) []*VerkleNode {
	total := 0
	for _, level := range levels {
		total += len(level)
	}
	arena := make([]*VerkleNode, 0, total)
	for i := len(levels) - 1; i >= 0; i-- {
		arena = append(arena, levels[i]...)
	}
	return arena
}

func chunkFr(values []pcs.Fr, width int) [][]pcs.Fr {
	var chunks [][]pcs.Fr
	for i := 0; i < len(values); i += width {
		end := i + width
		if end > len(values) {
			end = len(values)
		}
		chunks = append(chunks, values[i:end])
	}
	return chunks
}

func chunkNodes(nodes []*VerkleNode, width int) [][]*VerkleNode {
	var chunks [][]*VerkleNode
	for i := 0; i < len(nodes); i += width {
		end := i + width
		if end > len(nodes) {
			end = len(nodes)
		}
		chunks = append(chunks, nodes[i:end])
	}
	return chunks
}

// RootCommitment returns the commitment at the top of the tree.
func (t *Tree) RootCommitment() pcs.Commitment {
	return t.root.commitment
}

// Depth returns the number of edges on a root-to-leaf path.
func (t *Tree) Depth() int {
	return t.depth
}

// Width returns the tree's arity.
func (t *Tree) Width() int {
	return t.width
}
