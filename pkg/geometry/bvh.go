package geometry

import (
	"errors"
	"sort"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/material"
)

// ErrEmptyBVH is returned when building a hierarchy from no primitives
var ErrEmptyBVH = errors.New("geometry: cannot build a BVH from zero primitives")

// BVHNode is a node of a binary Bounding Volume Hierarchy. Children are
// either further nodes or primitives; Box always contains both.
type BVHNode struct {
	Box   core.AABB
	Left  Hittable
	Right Hittable
}

// NewBVH builds a hierarchy over the given primitives. The input slice is not modified.
func NewBVH(primitives []Primitive) (*BVHNode, error) {
	if len(primitives) == 0 {
		return nil, ErrEmptyBVH
	}

	objects := make([]Hittable, len(primitives))
	for i, p := range primitives {
		objects[i] = p
	}

	return buildBVH(objects, 0), nil
}

// buildBVH recursively splits objects at the median of their box minimum
// along axis, cycling through X, Y and Z by depth
func buildBVH(objects []Hittable, axis int) *BVHNode {
	var left, right Hittable

	switch len(objects) {
	case 1:
		left, right = objects[0], objects[0]
	case 2:
		left, right = objects[0], objects[1]
		if right.BoundingBox().Min.Axis(axis) < left.BoundingBox().Min.Axis(axis) {
			left, right = right, left
		}
	default:
		sort.SliceStable(objects, func(i, j int) bool {
			return objects[i].BoundingBox().Min.Axis(axis) < objects[j].BoundingBox().Min.Axis(axis)
		})
		mid := len(objects) / 2
		next := (axis + 1) % 3
		left = buildBVH(objects[:mid], next)
		right = buildBVH(objects[mid:], next)
	}

	return &BVHNode{
		Box:   left.BoundingBox().Union(right.BoundingBox()),
		Left:  left,
		Right: right,
	}
}

// Hit finds the closest intersection in the hierarchy. The right subtree is
// only searched up to the left subtree's hit, so a right hit is always closer.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	if !n.Box.Hit(ray, tMin, tMax) {
		return false
	}

	hitLeft := n.Left.Hit(ray, tMin, tMax, hit)
	if hitLeft {
		tMax = hit.T
	}
	hitRight := n.Right.Hit(ray, tMin, tMax, hit)

	return hitLeft || hitRight
}

// BoundingBox returns the box containing the whole subtree
func (n *BVHNode) BoundingBox() core.AABB {
	return n.Box
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
}

// Stats walks the hierarchy and counts nodes and leaf primitives
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(0, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}
