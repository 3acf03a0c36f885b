package material

import (
	"github.com/df07/raest/pkg/core"
	"github.com/df07/raest/pkg/pdf"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  *Material // Material of the hit object
	UV        core.Vec2 // Surface texture coordinates
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult contains the result of material scattering.
//
// Specular results carry the scattered ray directly. All others carry the
// distribution the next direction should be drawn from, and the caller builds
// the ray from the hit point.
type ScatterResult struct {
	Attenuation core.Vec3 // Color attenuation
	Specular    bool      // Whether Scattered holds a deterministic ray
	Scattered   core.Ray  // The scattered ray (specular only)
	PDF         pdf.PDF   // The scattering distribution (non-specular only)
}

// IsSpecular returns true if this is specular scattering (no PDF)
func (s ScatterResult) IsSpecular() bool {
	return s.Specular
}
