package raycast

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Material is a flat surface description.
type Material struct {
	Diffuse Color
}

// Intersect is a hit record. Distance, Point and Normal are only meaningful
// when IsIntersecting is set.
type Intersect struct {
	IsIntersecting bool
	Distance       float32
	Point          mgl32.Vec3
	Normal         mgl32.Vec3
	Material       Material
}

// EmptyIntersect is the no-hit sentinel: infinite distance, zero normal.
func EmptyIntersect() Intersect {
	return Intersect{Distance: math32.Inf(1)}
}

// Object is anything a ray can hit.
//
// dir must be unit length. RayIntersect returns the nearest hit strictly in
// front of origin, or a non-intersecting result. It must not mutate the object.
type Object interface {
	RayIntersect(origin, dir mgl32.Vec3) Intersect
}
