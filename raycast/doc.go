// Package raycast is a minimal software ray caster.
//
// Pipeline (fixed):
//
//	Camera → primary ray per pixel → intersect every Object → nearest hit → Color → Framebuffer.
//
// Shading is flat: a hit pixel takes the diffuse color of the nearest object's
// material and a miss takes Background. There is no lighting model, no
// acceleration structure and no parallelism; a frame is a sequential
// O(width × height × objects) loop.
//
// Vectors are mgl32.Vec3 (float32).
package raycast
