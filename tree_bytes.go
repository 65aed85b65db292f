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

// BytesNode is the byte-mode counterpart of VerkleNode. Its polynomial
// is still a field-element polynomial underneath (a KZG commitment has
// no other way to bind a vector); no Fr ever crosses this package's
// exported surface, where every value stays a raw byte string.
type BytesNode struct {
	commitment pcs.Commitment
	polynomial pcs.Polynomial
	children   []*BytesNode
}

func (n *BytesNode) isLeaf() bool { return n.children == nil }

// TreeBytes is the byte-mode counterpart of Tree.
type TreeBytes struct {
	width  int
	depth  int
	params *pcs.Parameters
	root   *BytesNode
	arena  []*BytesNode
}

// NewBytes builds a byte-mode tree over values with the given arity.
func NewBytes(values [][]byte, width int) (*TreeBytes, error) {
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

	leaves, err := buildBytesLeafLevel(values, width, params)
	if err != nil {
		return nil, err
	}

	levels := [][]*BytesNode{leaves}
	current := leaves
	for len(current) > 1 {
		next, err := buildBytesInternalLevel(current, width, params)
		if err != nil {
			return nil, err
		}
		levels = append(levels, next)
		current = next
	}

	depth := len(levels) - 1
	return &TreeBytes{
		width:  width,
		depth:  depth,
		params: params,
		root:   current[0],
		arena:  levelOrderBytesArena(levels),
	}, nil
}

func buildBytesLeafLevel(values [][]byte, width int, params *pcs.Parameters) ([]*BytesNode, error) {
	chunks := chunkBytes(values, width)
	leaves := make([]*BytesNode, len(chunks))

	g, _ := errgroup.WithContext(context.Background())
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			frValues := make([]pcs.Fr, len(chunk))
			for j, v := range chunk {
				frValues[j] = pcs.FrFromValueBytes(v)
			}
			commitment, polynomial, err := params.CommitVector(frValues)
			if err != nil {
				return err
			}
			leaves[i] = &BytesNode{
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

func buildBytesInternalLevel(current []*BytesNode, width int, params *pcs.Parameters) ([]*BytesNode, error) {
	groups := chunkBytesNodes(current, width)
	parents := make([]*BytesNode, len(groups))

	g, _ := errgroup.WithContext(context.Background())
	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			serialised := make([][]byte, len(group))
			frValues := make([]pcs.Fr, len(group))
			for j, child := range group {
				serialised[j] = pcs.EncodeBytes(child.commitment)
				frValues[j] = pcs.FrFromValueBytes(serialised[j])
			}
			commitment, polynomial, err := params.CommitVector(frValues)
			if err != nil {
				return err
			}
			parents[i] = &BytesNode{
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

func levelOrderBytesArena(levels [][]*BytesNode) []*BytesNode {
	total := 0
	for _, level := range levels {
		total += len(level)
	}
	arena := make([]*BytesNode, 0, total)
	for i := len(levels) - 1; i >= 0; i-- {
		arena = append(arena, levels[i]...)
	}
	return arena
}

func chunkBytes(values [][]byte, width int) [][][]byte {
	var chunks [][][]byte
	for i := 0; i < len(values); i += width {
		end := i + width
		if end > len(values) {
			end = len(values)
		}
		chunks = append(chunks, values[i:end])
	}
	return chunks
}

func chunkBytesNodes(nodes []*BytesNode, width int) [][]*BytesNode {
	var chunks [][]*BytesNode
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
func (t *TreeBytes) RootCommitment() pcs.Commitment {
	return t.root.commitment
}

// Depth returns the number of edges on a root-to-leaf path.
func (t *TreeBytes) Depth() int {
	return t.depth
}

// Width returns the tree's arity.
func (t *TreeBytes) Width() int {
	return t.width
}

func (t *TreeBytes) leafSpan() int {
	span := 1
	for i := 0; i <= t.depth; i++ {
		span *= t.width
	}
	return span
}
