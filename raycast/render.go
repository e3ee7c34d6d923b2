package raycast

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FOV is the vertical field of view.
const FOV = math32.Pi / 3

// CastRay returns the diffuse color of the nearest object hit by the ray, or
// Background. On equal distances the earlier object wins.
func CastRay(origin, dir mgl32.Vec3, objects []Object) Color {
	hit := EmptyIntersect()
	zbuffer := math32.Inf(1)

	for _, o := range objects {
		tmp := o.RayIntersect(origin, dir)
		if tmp.IsIntersecting && tmp.Distance < zbuffer {
			zbuffer = tmp.Distance
			hit = tmp
		}
	}

	if !hit.IsIntersecting {
		return Background
	}
	return hit.Material.Diffuse
}

// PrimaryRay returns the world-space unit direction through pixel (x, y) of a
// width×height image.
func PrimaryRay(x, y, width, height int, cam *Camera) mgl32.Vec3 {
	w := float32(width)
	h := float32(height)
	scale := math32.Tan(FOV * 0.5)

	sx := 2*float32(x)/w - 1
	sy := -(2*float32(y)/h - 1)
	sx *= (w / h) * scale
	sy *= scale

	return cam.BasisChange(normalize(mgl32.Vec3{sx, sy, -1}))
}

// Render redraws every pixel of fb. It only writes in-range coordinates, so a
// Point error is an invariant violation and panics.
func Render(fb *Framebuffer, objects []Object, cam *Camera) {
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			dir := PrimaryRay(x, y, fb.Width, fb.Height, cam)
			c := CastRay(cam.Eye, dir, objects)

			fb.SetCurrentColor(c.Hex())
			if err := fb.Point(x, y); err != nil {
				panic(err)
			}
		}
	}
}
