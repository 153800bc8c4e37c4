package geometry

import "github.com/df07/go-diffuse-raytracer/pkg/core"

// HittableList is an ordered collection of objects intersected by linear scan
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list holding the given objects in order
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: append([]Hittable(nil), objects...)}
}

// Add appends an object. Lists are built before rendering and not modified after.
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the nearest intersection among all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax
	hitAnything := false

	// Each confirmed hit narrows the window for the objects after it
	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
