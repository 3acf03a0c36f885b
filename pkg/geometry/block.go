package geometry

import (
	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/material"
)

// Block is an axis-aligned box made of six rectangles
type Block struct {
	Material *material.Material
	sides    []Primitive
	bvh      *BVHNode
}

// NewBlock creates a box spanning the corners p1 and p2
func NewBlock(p1, p2 core.Vec3, mat *material.Material) *Block {
	lo, hi := p1.Min(p2), p1.Max(p2)

	sides := []Primitive{
		NewRect(XY, core.NewVec2(lo.X, lo.Y), core.NewVec2(hi.X, hi.Y), lo.Z, mat),
		NewRect(XY, core.NewVec2(lo.X, lo.Y), core.NewVec2(hi.X, hi.Y), hi.Z, mat),
		NewRect(XZ, core.NewVec2(lo.X, lo.Z), core.NewVec2(hi.X, hi.Z), lo.Y, mat),
		NewRect(XZ, core.NewVec2(lo.X, lo.Z), core.NewVec2(hi.X, hi.Z), hi.Y, mat),
		NewRect(YZ, core.NewVec2(lo.Y, lo.Z), core.NewVec2(hi.Y, hi.Z), lo.X, mat),
		NewRect(YZ, core.NewVec2(lo.Y, lo.Z), core.NewVec2(hi.Y, hi.Z), hi.X, mat),
	}

	// Six sides never make an empty hierarchy
	bvh, _ := NewBVH(sides)

	return &Block{Material: mat, sides: sides, bvh: bvh}
}

// Hit tests the ray against the six sides
func (b *Block) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	return b.bvh.Hit(ray, tMin, tMax, hit)
}

// BoundingBox returns the box of the sides' hierarchy
func (b *Block) BoundingBox() core.AABB {
	return b.bvh.BoundingBox()
}

// IsLight reports whether the block has an emissive material
func (b *Block) IsLight() bool {
	return b.Material.IsEmissive()
}

// PDFValue averages the densities of the six sides
func (b *Block) PDFValue(ray core.Ray) float64 {
	return List(b.sides).PDFValue(ray)
}

// Random picks a side uniformly and samples a direction towards it
func (b *Block) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return List(b.sides).Random(origin, sampler)
}

// Emit samples a ray leaving a uniformly chosen side
func (b *Block) Emit(sampler core.Sampler) Emission {
	return List(b.sides).Emit(sampler)
}
