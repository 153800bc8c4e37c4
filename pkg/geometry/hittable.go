package geometry

import "github.com/df07/go-diffuse-raytracer/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point // Point of intersection
	Normal    core.Vec3  // Unit surface normal, always facing against the incoming ray
	T         float64    // Parameter t along the ray
	FrontFace bool       // Whether the ray hit the outside of the surface
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is implemented by anything a ray can intersect.
// Hit reports the intersection with tMin <= t <= tMax, or (nil, false) on a miss.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}
