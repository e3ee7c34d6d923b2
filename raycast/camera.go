package raycast

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// maxPitch keeps the eye away from the poles, where forward would become
// parallel to the up hint and the basis would collapse.
const maxPitch = math32.Pi/2 - 0.1

// Camera is a look-at camera that orbits its Center.
//
// Eye must only change through Orbit so the derived basis stays current.
type Camera struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3

	forward mgl32.Vec3
	right   mgl32.Vec3
	trueUp  mgl32.Vec3
}

// NewCamera returns a camera at eye looking at center. A zero up defaults to +Y.
func NewCamera(eye, center, up mgl32.Vec3) *Camera {
	if up == (mgl32.Vec3{}) {
		up = mgl32.Vec3{0, 1, 0}
	}
	c := &Camera{Eye: eye, Center: center, Up: up}
	c.updateBasis()
	return c
}

// updateBasis keeps forward, right and trueUp orthonormal even when the eye
// sits on Center or the up hint is parallel to the view direction.
func (c *Camera) updateBasis() {
	c.forward = normalize(c.Center.Sub(c.Eye))
	if c.forward == (mgl32.Vec3{}) {
		c.forward = mgl32.Vec3{0, 0, -1}
	}
	right := c.forward.Cross(c.Up)
	if right.Len() < 1e-6 {
		right = c.forward.Cross(fallbackUp(c.forward))
	}
	c.right = normalize(right)
	c.trueUp = c.right.Cross(c.forward)
}

// fallbackUp returns a world axis that is not parallel to forward.
func fallbackUp(forward mgl32.Vec3) mgl32.Vec3 {
	if math32.Abs(forward.Z()) < 0.9 {
		return mgl32.Vec3{0, 0, 1}
	}
	return mgl32.Vec3{0, 1, 0}
}

func (c *Camera) Forward() mgl32.Vec3 { return c.forward }
func (c *Camera) Right() mgl32.Vec3   { return c.right }
func (c *Camera) TrueUp() mgl32.Vec3  { return c.trueUp }

func (c *Camera) setEye(eye mgl32.Vec3) {
	c.Eye = eye
	c.updateBasis()
}

// BasisChange maps a camera-space direction to world space. Camera space
// looks down -Z, so (0, 0, -1) becomes Forward.
func (c *Camera) BasisChange(v mgl32.Vec3) mgl32.Vec3 {
	return c.right.Mul(v.X()).
		Add(c.trueUp.Mul(v.Y())).
		Sub(c.forward.Mul(v.Z()))
}

// Yaw returns the eye's angle around Center in the XZ plane, in radians.
func (c *Camera) Yaw() float32 {
	r := c.Eye.Sub(c.Center)
	return math32.Atan2(r.Z(), r.X())
}

// Pitch returns the eye's elevation angle. Positive pitch puts the eye
// below Center.
func (c *Camera) Pitch() float32 {
	r := c.Eye.Sub(c.Center)
	return math32.Atan2(-r.Y(), math32.Hypot(r.X(), r.Z()))
}

// Orbit rotates the eye around Center, yawDelta around world up and
// pitchDelta around the camera right axis, preserving the distance to Center.
// Pitch is clamped short of the poles.
func (c *Camera) Orbit(yawDelta, pitchDelta float32) {
	r := c.Eye.Sub(c.Center)
	radius := r.Len()
	if radius == 0 {
		return
	}

	yaw := math32.Mod(c.Yaw()+yawDelta, 2*math32.Pi)
	pitch := mgl32.Clamp(c.Pitch()+pitchDelta, -maxPitch, maxPitch)

	cp := math32.Cos(pitch)
	c.setEye(c.Center.Add(mgl32.Vec3{
		radius * math32.Cos(yaw) * cp,
		-radius * math32.Sin(pitch),
		radius * math32.Sin(yaw) * cp,
	}))
}
