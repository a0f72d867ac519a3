// Package camera provides the orbit camera used to explore the attractor:
// a spherical-coordinate pose (distance, yaw, pitch) around a movable
// target, with a Z-up world.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	minDistance = 5.0
	maxDistance = 200.0
	maxPitch    = 89.0
)

var worldUp = mgl64.Vec3{0, 0, 1}

// Orbit is a continuous camera pose updated by composable deltas. The
// construction-time pose is retained verbatim so Reset restores it exactly.
type Orbit struct {
	Distance float64
	Yaw      float64 // degrees, kept in [0, 360)
	Pitch    float64 // degrees, kept in [-89, 89]
	Target   mgl64.Vec3

	FOV  float64 // degrees
	Near float64
	Far  float64

	defaultDistance float64
	defaultYaw      float64
	defaultPitch    float64
	defaultTarget   mgl64.Vec3
}

// NewOrbit creates a camera at the given pose, looking at (0, 0, 25).
func NewOrbit(distance, yawDeg, pitchDeg float64) *Orbit {
	target := mgl64.Vec3{0, 0, 25}
	return &Orbit{
		Distance:        distance,
		Yaw:             yawDeg,
		Pitch:           pitchDeg,
		Target:          target,
		FOV:             45.0,
		Near:            0.1,
		Far:             1000.0,
		defaultDistance: distance,
		defaultYaw:      yawDeg,
		defaultPitch:    pitchDeg,
		defaultTarget:   target,
	}
}

// Default returns the pose used by the visualizer at startup.
func Default() *Orbit { return NewOrbit(60, 45, 20) }

// Position converts the spherical pose to the world-space eye point.
func (c *Orbit) Position() mgl64.Vec3 {
	yaw := mgl64.DegToRad(c.Yaw)
	pitch := mgl64.DegToRad(c.Pitch)
	offset := mgl64.Vec3{
		c.Distance * math.Cos(pitch) * math.Cos(yaw),
		c.Distance * math.Cos(pitch) * math.Sin(yaw),
		c.Distance * math.Sin(pitch),
	}
	return c.Target.Add(offset)
}

// ViewMatrix returns the look-at transform from the eye toward the target.
func (c *Orbit) ViewMatrix() mgl32.Mat4 {
	eye := c.Position()
	return mgl32.LookAtV(vec32(eye), vec32(c.Target), vec32(worldUp))
}

// ProjectionMatrix returns the perspective projection for the given aspect
// ratio.
func (c *Orbit) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(float32(c.FOV)), aspect, float32(c.Near), float32(c.Far))
}

// Rotate adds the deltas to yaw and pitch. Pitch is clamped short of the
// poles to keep the look-at construction non-singular; yaw wraps.
func (c *Orbit) Rotate(deltaYaw, deltaPitch float64) {
	c.Yaw = wrapYaw(c.Yaw + deltaYaw)
	c.Pitch = clamp(c.Pitch+deltaPitch, -maxPitch, maxPitch)
}

// Zoom adds delta to the orbit distance, clamped to [5, 200].
func (c *Orbit) Zoom(delta float64) {
	c.Distance = clamp(c.Distance+delta, minDistance, maxDistance)
}

// Pan translates the target along the camera-relative right/up axes. The
// pan speed scales with distance so screen-space panning feels constant.
func (c *Orbit) Pan(deltaX, deltaY float64) {
	forward := c.Target.Sub(c.Position()).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	speed := c.Distance * 0.01
	c.Target = c.Target.Add(right.Mul(deltaX * speed))
	c.Target = c.Target.Add(up.Mul(deltaY * speed))
}

// Reset restores the construction-time pose. FOV and clip planes keep their
// current values.
func (c *Orbit) Reset() {
	c.Distance = c.defaultDistance
	c.Yaw = c.defaultYaw
	c.Pitch = c.defaultPitch
	c.Target = c.defaultTarget
}

func wrapYaw(yaw float64) float64 {
	yaw = math.Mod(yaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	return yaw
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
