package scene

import (
	"testing"

	"teddy/raycast"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBearSpheresValid(t *testing.T) {
	objs := Bear()
	if len(objs) != 9 {
		t.Fatalf("len(Bear()) = %d, want 9", len(objs))
	}
	for i, o := range objs {
		s, ok := o.(raycast.Sphere)
		if !ok {
			t.Fatalf("object %d is %T, want raycast.Sphere", i, o)
		}
		if s.Radius <= 0 {
			t.Fatalf("object %d radius = %v, want > 0", i, s.Radius)
		}
	}
}

func TestBearFromDefaultCamera(t *testing.T) {
	objs := Bear()
	cam := DefaultCamera()

	tests := []struct {
		name   string
		target mgl32.Vec3
		want   raycast.Color
	}{
		// The nose sits in front of the mouth and head.
		{"nose", mgl32.Vec3{0, -0.3, -4.2}, Nose.Diffuse},
		{"left eye", mgl32.Vec3{-0.45, 0.1, -4.2}, Eye.Diffuse},
		{"forehead", mgl32.Vec3{0, 0.6, -5}, Fur.Diffuse},
		{"inner ear", mgl32.Vec3{0.75, 0.75, -4.75}, InnerEar.Diffuse},
		{"sky", mgl32.Vec3{0, 3, -5}, raycast.Background},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.target.Sub(cam.Eye).Normalize()
			if got := raycast.CastRay(cam.Eye, dir, objs); got != tt.want {
				t.Fatalf("CastRay(%v) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}
