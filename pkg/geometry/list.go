package geometry

import (
	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/material"
)

// List is a flat collection of primitives, used for the scene's lights
type List []Primitive

// Hit tests every member and keeps the closest intersection
func (l List) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	hitAnything := false
	closestSoFar := tMax

	for _, p := range l {
		if p.Hit(ray, tMin, closestSoFar, hit) {
			hitAnything = true
			closestSoFar = hit.T
		}
	}

	return hitAnything
}

// BoundingBox returns the union of all member boxes, or a zero box when empty
func (l List) BoundingBox() core.AABB {
	if len(l) == 0 {
		return core.AABB{}
	}

	box := l[0].BoundingBox()
	for _, p := range l[1:] {
		box = box.Union(p.BoundingBox())
	}
	return box
}

// PDFValue returns the mean density of the members
func (l List) PDFValue(ray core.Ray) float64 {
	if len(l) == 0 {
		return 0
	}

	sum := 0.0
	for _, p := range l {
		sum += p.PDFValue(ray)
	}
	return sum / float64(len(l))
}

// pick chooses a member uniformly
func (l List) pick(sampler core.Sampler) Primitive {
	i := int(sampler.Get1D() * float64(len(l)))
	return l[min(i, len(l)-1)]
}

// Random samples a direction towards a uniformly chosen member
func (l List) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	return l.pick(sampler).Random(origin, sampler)
}

// Emit samples a ray leaving a uniformly chosen member
func (l List) Emit(sampler core.Sampler) Emission {
	if len(l) == 0 {
		return Emission{}
	}
	return l.pick(sampler).Emit(sampler)
}
