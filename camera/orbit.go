package camera

import (
	stdmath "math"

	"freak-engine/math"
)

const (
	maxPitch    = 1.5
	minDistance = 0.1
)

// OrbitCamera keeps a camera on a sphere around Target, looking at it.
type OrbitCamera struct {
	Camera
	Target   math.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32
}

func NewOrbitCamera(target math.Vec3, distance, fov, aspectRatio float32) *OrbitCamera {
	c := &OrbitCamera{
		Camera:   NewCamera(fov, aspectRatio, 0.1, 1000),
		Target:   target,
		Distance: distance,
		Pitch:    0.3,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition places the camera from the spherical coordinates. Yaw 0 and
// pitch 0 put it on the +Z side of the target.
func (c *OrbitCamera) UpdatePosition() {
	c.Pitch = math.Clamp(c.Pitch, -maxPitch, maxPitch)

	sinPitch, cosPitch := stdmath.Sincos(float64(c.Pitch))
	sinYaw, cosYaw := stdmath.Sincos(float64(c.Yaw))
	offset := math.Vec3{
		X: c.Distance * float32(cosPitch*sinYaw),
		Y: c.Distance * float32(sinPitch),
		Z: c.Distance * float32(cosPitch*cosYaw),
	}

	c.Position = c.Target.Add(offset)
	c.LookAt(c.Target, math.Vec3Up)
}

func (c *OrbitCamera) Orbit(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	c.UpdatePosition()
}

func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance = math.Max(c.Distance+delta, minDistance)
	c.UpdatePosition()
}

// Frame moves the orbit so the whole sphere fits the vertical field of view.
func (c *OrbitCamera) Frame(center math.Vec3, radius float32) {
	c.Target = center
	half := float64(c.FOV) / 2
	if half > 0 {
		c.Distance = math.Max(radius/float32(stdmath.Sin(half)), minDistance)
	}
	c.UpdatePosition()
}
