// Package scene holds the built-in scenes.
package scene

import (
	"teddy/raycast"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	Fur      = raycast.Material{Diffuse: raycast.RGB(139, 69, 19)}
	Eye      = raycast.Material{Diffuse: raycast.RGB(0, 0, 0)}
	Nose     = raycast.Material{Diffuse: raycast.RGB(0, 0, 0)}
	InnerEar = raycast.Material{Diffuse: raycast.RGB(255, 255, 255)}
	Mouth    = raycast.Material{Diffuse: raycast.RGB(255, 255, 255)}
)

// BearCenter is the point the default camera looks at.
var BearCenter = mgl32.Vec3{0, 0, -5}

// Bear returns the bear face. Order matters only for exact distance ties.
func Bear() []raycast.Object {
	return []raycast.Object{
		// head
		raycast.Sphere{Center: mgl32.Vec3{0, 0, -5}, Radius: 1, Material: Fur},
		// left ear
		raycast.Sphere{Center: mgl32.Vec3{-0.75, 0.75, -5}, Radius: 0.5, Material: Fur},
		raycast.Sphere{Center: mgl32.Vec3{-0.75, 0.75, -4.75}, Radius: 0.3, Material: InnerEar},
		// right ear
		raycast.Sphere{Center: mgl32.Vec3{0.75, 0.75, -5}, Radius: 0.5, Material: Fur},
		raycast.Sphere{Center: mgl32.Vec3{0.75, 0.75, -4.75}, Radius: 0.3, Material: InnerEar},
		// eyes
		raycast.Sphere{Center: mgl32.Vec3{-0.45, 0.1, -4.2}, Radius: 0.15, Material: Eye},
		raycast.Sphere{Center: mgl32.Vec3{0.45, 0.1, -4.2}, Radius: 0.15, Material: Eye},
		raycast.Sphere{Center: mgl32.Vec3{0, -0.3, -4.2}, Radius: 0.25, Material: Nose},
		raycast.Sphere{Center: mgl32.Vec3{0, -0.4, -4.5}, Radius: 0.5, Material: Mouth},
	}
}

// DefaultCamera sits at the origin looking at the bear.
func DefaultCamera() *raycast.Camera {
	return raycast.NewCamera(mgl32.Vec3{0, 0, 0}, BearCenter, mgl32.Vec3{0, 1, 0})
}
