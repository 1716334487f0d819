package geometry

import (
	"fmt"
	"sort"

	"github.com/tracelane/pathtracer/pkg/core"
)

// BVHNode is one node of a bounding volume hierarchy: a binary tree whose
// node AABB encloses everything beneath it (spec.md §3, §4.6). A leaf
// points both children at the same primitive rather than carrying a
// separate leaf flag, which keeps Hit's traversal branch-free between leaf
// and internal nodes.
type BVHNode struct {
	Box         core.AABB
	Left, Right core.Hittable
}

// NewBVH builds a BVH over shapes for the time interval [tStart, tEnd].
// The split axis at every internal node is chosen uniformly at random
// (spec.md §4.6); rng is threaded through explicitly rather than pulled
// from a package-level generator so construction is reproducible under a
// fixed seed (spec.md §9 Design Notes, "Global RNG for scene
// construction").
//
// Construction fails if any descendant lacks a bounding box - spec.md
// calls this an unrecoverable ConfigurationError, not a runtime Hittable
// miss.
func NewBVH(shapes []core.Hittable, tStart, tEnd float64, rng *core.RNG) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("geometry: cannot build a BVH over zero shapes")
	}
	return buildBVH(append([]core.Hittable(nil), shapes...), tStart, tEnd, rng)
}

func buildBVH(shapes []core.Hittable, tStart, tEnd float64, rng *core.RNG) (*BVHNode, error) {
	n := len(shapes)

	if n == 1 {
		box, ok := shapes[0].BoundingBox(tStart, tEnd)
		if !ok {
			return nil, fmt.Errorf("geometry: shape %T has no bounding box", shapes[0])
		}
		return &BVHNode{Box: box, Left: shapes[0], Right: shapes[0]}, nil
	}

	axis := rng.Axis()
	boxOf := func(h core.Hittable) (core.AABB, error) {
		box, ok := h.BoundingBox(tStart, tEnd)
		if !ok {
			return core.AABB{}, fmt.Errorf("geometry: shape %T has no bounding box", h)
		}
		return box, nil
	}

	if n == 2 {
		boxA, err := boxOf(shapes[0])
		if err != nil {
			return nil, err
		}
		boxB, err := boxOf(shapes[1])
		if err != nil {
			return nil, err
		}

		left, right := shapes[0], shapes[1]
		leftBox, rightBox := boxA, boxB
		if boxB.Min.Get(axis) < boxA.Min.Get(axis) {
			left, right = shapes[1], shapes[0]
			leftBox, rightBox = boxB, boxA
		}

		return &BVHNode{Box: core.Merge(leftBox, rightBox), Left: left, Right: right}, nil
	}

	var sortErr error
	sort.Slice(shapes, func(i, j int) bool {
		bi, err := boxOf(shapes[i])
		if err != nil {
			sortErr = err
			return false
		}
		bj, err := boxOf(shapes[j])
		if err != nil {
			sortErr = err
			return false
		}
		return bi.Min.Get(axis) < bj.Min.Get(axis)
	})
	if sortErr != nil {
		return nil, sortErr
	}

	mid := n / 2
	left, err := buildBVH(shapes[:mid], tStart, tEnd, rng)
	if err != nil {
		return nil, err
	}
	right, err := buildBVH(shapes[mid:], tStart, tEnd, rng)
	if err != nil {
		return nil, err
	}

	leftBox, _ := left.BoundingBox(tStart, tEnd)
	rightBox, _ := right.BoundingBox(tStart, tEnd)

	return &BVHNode{Box: core.Merge(leftBox, rightBox), Left: left, Right: right}, nil
}

// Hit implements core.Hittable. Tightening tMax before testing the second
// child (spec.md §4.6) cuts the expected subtree work; it does not change
// which hit is reported.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return core.HitRecord{}, false
	}

	leftHit, leftOK := n.Left.Hit(ray, tMin, tMax)
	if leftOK {
		tMax = leftHit.T
	}

	rightHit, rightOK := n.Right.Hit(ray, tMin, tMax)
	if rightOK {
		return rightHit, true
	}
	return leftHit, leftOK
}

// BoundingBox implements core.Hittable by returning the node's cached box.
func (n *BVHNode) BoundingBox(tStart, tEnd float64) (core.AABB, bool) {
	return n.Box, true
}
