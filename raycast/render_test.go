package raycast

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCastRayMissReturnsBackground(t *testing.T) {
	objects := []Object{
		Sphere{Center: mgl32.Vec3{0, 0, -5}, Radius: 1, Material: fur},
	}
	got := CastRay(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, objects)
	if got != RGB(120, 180, 130) {
		t.Fatalf("CastRay() = %v, want background (120,180,130)", got)
	}
	if got := CastRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, nil); got != Background {
		t.Fatalf("CastRay(no objects) = %v, want background", got)
	}
}

func TestCastRayNearestWins(t *testing.T) {
	near := Material{Diffuse: RGB(255, 255, 255)}
	far := Material{Diffuse: RGB(0, 0, 0)}

	// Farther sphere listed first.
	objects := []Object{
		Sphere{Center: mgl32.Vec3{0, 0, -10}, Radius: 2, Material: far},
		Sphere{Center: mgl32.Vec3{0, 0, -5}, Radius: 1, Material: near},
	}
	if got := CastRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, objects); got != near.Diffuse {
		t.Fatalf("CastRay() = %v, want nearer %v", got, near.Diffuse)
	}

	objects[0], objects[1] = objects[1], objects[0]
	if got := CastRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, objects); got != near.Diffuse {
		t.Fatalf("CastRay(swapped) = %v, want nearer %v", got, near.Diffuse)
	}
}

func TestCastRayTieFirstWins(t *testing.T) {
	a := Material{Diffuse: RGB(1, 1, 1)}
	b := Material{Diffuse: RGB(2, 2, 2)}
	objects := []Object{
		Sphere{Center: mgl32.Vec3{0, 0, -5}, Radius: 1, Material: a},
		Sphere{Center: mgl32.Vec3{0, 0, -5}, Radius: 1, Material: b},
	}
	if got := CastRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, objects); got != a.Diffuse {
		t.Fatalf("CastRay() = %v, want first object's %v", got, a.Diffuse)
	}
}

func TestRenderSingleSphere(t *testing.T) {
	objects := []Object{
		Sphere{Center: mgl32.Vec3{0, 0, -5}, Radius: 1, Material: fur},
	}
	cam := NewCamera(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 1, 0})

	center := CastRay(cam.Eye, cam.BasisChange(mgl32.Vec3{0, 0, -1}), objects)
	if center != fur.Diffuse {
		t.Fatalf("center ray = %v, want %v", center, fur.Diffuse)
	}
	side := CastRay(cam.Eye, cam.BasisChange(mgl32.Vec3{1, 0, -1}.Normalize()), objects)
	if side != Background {
		t.Fatalf("side ray = %v, want background", side)
	}

	fb, err := NewFramebuffer(80, 60)
	if err != nil {
		t.Fatalf("NewFramebuffer: %v", err)
	}
	Render(fb, objects, cam)
	if got := fb.At(40, 30); got != fur.Diffuse.Hex() {
		t.Fatalf("At(40, 30) = %#06x, want %#06x", got, fur.Diffuse.Hex())
	}
	if got := fb.At(0, 0); got != Background.Hex() {
		t.Fatalf("At(0, 0) = %#06x, want background", got)
	}
	if got := fb.At(79, 59); got != Background.Hex() {
		t.Fatalf("At(79, 59) = %#06x, want background", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	objects := []Object{
		Sphere{Center: mgl32.Vec3{0, 0, -5}, Radius: 1, Material: fur},
		Sphere{Center: mgl32.Vec3{0.75, 0.75, -5}, Radius: 0.5, Material: Material{Diffuse: RGB(255, 255, 255)}},
	}
	cam := NewCamera(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 1, 0})
	cam.Orbit(0.3, -0.2)

	a, _ := NewFramebuffer(32, 24)
	b, _ := NewFramebuffer(32, 24)
	Render(a, objects, cam)
	Render(b, objects, cam)
	for i := range a.Buffer {
		if a.Buffer[i] != b.Buffer[i] {
			t.Fatalf("pixel %d differs: %#06x vs %#06x", i, a.Buffer[i], b.Buffer[i])
		}
	}
}

func TestPrimaryRayCenterIsForward(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 1, 0})
	dir := PrimaryRay(50, 50, 100, 100, cam)
	if !dir.ApproxEqualThreshold(cam.Forward(), eps) {
		t.Fatalf("PrimaryRay(center) = %v, want %v", dir, cam.Forward())
	}
	if l := PrimaryRay(0, 0, 100, 100, cam).Len(); !mgl32.FloatEqualThreshold(l, 1, eps) {
		t.Fatalf("|PrimaryRay(0,0)| = %v, want 1", l)
	}
}

func TestPrimaryRayTopRowPointsUp(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 1, 0})
	if d := PrimaryRay(50, 0, 100, 100, cam); d.Y() <= 0 {
		t.Fatalf("PrimaryRay(top).Y = %v, want > 0", d.Y())
	}
	if d := PrimaryRay(0, 50, 100, 100, cam); d.X() >= 0 {
		t.Fatalf("PrimaryRay(left).X = %v, want < 0", d.X())
	}
}
