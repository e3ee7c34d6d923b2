package raycast

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is a flat-colored sphere.
type Sphere struct {
	Center   mgl32.Vec3
	Radius   float32
	Material Material
}

var _ Object = Sphere{}

// RayIntersect returns the nearest hit in front of origin. dir must be unit length.
func (s Sphere) RayIntersect(origin, dir mgl32.Vec3) Intersect {
	l := s.Center.Sub(origin)
	tca := l.Dot(dir)
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return EmptyIntersect()
	}
	thc := math32.Sqrt(r2 - d2)
	t := tca - thc
	if t < 0 {
		// Origin inside the sphere: take the far side.
		t = tca + thc
	}
	if t <= 0 {
		return EmptyIntersect()
	}

	p := origin.Add(dir.Mul(t))
	return Intersect{
		IsIntersecting: true,
		Distance:       t,
		Point:          p,
		Normal:         normalize(p.Sub(s.Center)),
		Material:       s.Material,
	}
}

// normalize returns the zero vector for zero-length input instead of NaNs.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
