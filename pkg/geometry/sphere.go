package geometry

import (
	"math"

	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root >= tMax {
			return false
		}
	}

	hit.T = root
	hit.Point = ray.At(root)
	hit.Material = s.Material

	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.UV = sphereUV(outwardNormal)

	return true
}

// sphereUV maps a point on the unit sphere to texture coordinates
func sphereUV(p core.Vec3) core.Vec2 {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(math.Max(-1, math.Min(1, p.Y)))
	u := 1.0 - (phi+math.Pi)/(2.0*math.Pi)
	v := (theta + math.Pi/2.0) / math.Pi
	return core.NewVec2(u, v)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	// A negative radius only flips the normals
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// IsLight reports whether the sphere has an emissive material
func (s *Sphere) IsLight() bool {
	return s.Material.IsEmissive()
}

// PDFValue returns the density of directions along ray that hit the sphere,
// uniform over the cone of directions the sphere subtends
func (s *Sphere) PDFValue(ray core.Ray) float64 {
	var rec material.HitRecord
	if !s.Hit(ray, pdfEpsilon, math.Inf(1), &rec) {
		return 0
	}

	distanceSquared := s.Center.Subtract(ray.Origin).LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		// Inside the sphere every direction hits it
		return 1.0 / (4.0 * math.Pi)
	}

	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2.0 * math.Pi * (1.0 - cosThetaMax)
	return 1.0 / solidAngle
}

// Random returns a direction from origin uniformly within the sphere's cone
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		return core.SampleOnUnitSphere(sampler.Get2D())
	}

	basis := core.NewONBFromW(direction)
	return basis.Local(core.SampleToSphere(s.Radius, distanceSquared, sampler.Get2D()))
}

// Emit samples a uniform point on the surface leaving along the outward normal
func (s *Sphere) Emit(sampler core.Sampler) Emission {
	normal := core.SampleOnUnitSphere(sampler.Get2D())
	point := s.Center.Add(normal.Multiply(s.Radius))

	hit := material.HitRecord{Point: point, Normal: normal, FrontFace: true, Material: s.Material, UV: sphereUV(normal)}
	return Emission{
		Ray:      core.NewRay(point, normal),
		Normal:   normal,
		Radiance: s.Material.Emitted(&hit),
	}
}
