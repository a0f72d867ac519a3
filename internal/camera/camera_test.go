package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPositionSphericalZUp(t *testing.T) {
	c := NewOrbit(10, 0, 0)
	c.Target = mgl64.Vec3{0, 0, 0}

	pos := c.Position()
	want := mgl64.Vec3{10, 0, 0}
	if pos.Sub(want).Len() > 1e-12 {
		t.Errorf("yaw=0 pitch=0: got %v, want %v", pos, want)
	}

	c.Yaw, c.Pitch = 90, 0
	pos = c.Position()
	if math.Abs(pos[1]-10) > 1e-9 || math.Abs(pos[0]) > 1e-9 {
		t.Errorf("yaw=90: got %v, want +y axis", pos)
	}

	c.Yaw, c.Pitch = 0, 89
	pos = c.Position()
	if pos[2] < 9.99 {
		t.Errorf("pitch=89: expected eye near +z, got %v", pos)
	}
}

func TestRotateClampsAndWraps(t *testing.T) {
	c := Default()

	deltas := []struct{ dy, dp float64 }{
		{400, 200}, {-1000, -500}, {0.3, -0.3}, {1e6, 1e6}, {-720, 45},
	}
	for _, d := range deltas {
		c.Rotate(d.dy, d.dp)
		if c.Pitch < -89 || c.Pitch > 89 {
			t.Fatalf("pitch out of range after rotate(%v, %v): %v", d.dy, d.dp, c.Pitch)
		}
		if c.Yaw < 0 || c.Yaw >= 360 {
			t.Fatalf("yaw out of range after rotate(%v, %v): %v", d.dy, d.dp, c.Yaw)
		}
	}

	c.Pitch = 0
	c.Rotate(0, 200)
	if c.Pitch != 89 {
		t.Errorf("pitch should clamp to 89, got %v", c.Pitch)
	}
	c.Rotate(0, -500)
	if c.Pitch != -89 {
		t.Errorf("pitch should clamp to -89, got %v", c.Pitch)
	}

	c.Yaw = 350
	c.Rotate(20, 0)
	if math.Abs(c.Yaw-10) > 1e-9 {
		t.Errorf("yaw should wrap 350+20 -> 10, got %v", c.Yaw)
	}
}

func TestZoomClamps(t *testing.T) {
	c := Default()

	c.Zoom(1e9)
	if c.Distance != 200 {
		t.Errorf("distance should clamp to 200, got %v", c.Distance)
	}
	c.Zoom(-1e9)
	if c.Distance != 5 {
		t.Errorf("distance should clamp to 5, got %v", c.Distance)
	}
	c.Zoom(10)
	if c.Distance != 15 {
		t.Errorf("expected distance 15, got %v", c.Distance)
	}
}

func TestPanMovesTargetOnly(t *testing.T) {
	c := Default()
	dist, yaw, pitch := c.Distance, c.Yaw, c.Pitch

	c.Pan(10, -4)
	if c.Distance != dist || c.Yaw != yaw || c.Pitch != pitch {
		t.Error("pan must not change distance/yaw/pitch")
	}
	if c.Target == (mgl64.Vec3{0, 0, 25}) {
		t.Error("pan should move the target")
	}

	// Eye-target offset is pose-derived, so it survives a pan.
	offset := c.Position().Sub(c.Target)
	c.Pan(-3, 7)
	offset2 := c.Position().Sub(c.Target)
	if offset.Sub(offset2).Len() > 1e-9 {
		t.Errorf("pan changed the eye offset: %v vs %v", offset, offset2)
	}
}

func TestPanSpeedScalesWithDistance(t *testing.T) {
	near := NewOrbit(10, 45, 20)
	far := NewOrbit(100, 45, 20)

	near.Pan(1, 0)
	far.Pan(1, 0)

	dNear := near.Target.Sub(mgl64.Vec3{0, 0, 25}).Len()
	dFar := far.Target.Sub(mgl64.Vec3{0, 0, 25}).Len()
	if math.Abs(dFar/dNear-10) > 1e-9 {
		t.Errorf("pan distance should scale linearly with zoom distance: %v vs %v", dNear, dFar)
	}
}

func TestResetRestoresPoseExactly(t *testing.T) {
	c := NewOrbit(42.5, 123.25, -7.75)
	c.Rotate(77.7, 12.2)
	c.Zoom(-13.1)
	c.Pan(3.2, -9.9)
	c.FOV = 60

	c.Reset()

	if c.Distance != 42.5 || c.Yaw != 123.25 || c.Pitch != -7.75 {
		t.Errorf("reset pose mismatch: %v %v %v", c.Distance, c.Yaw, c.Pitch)
	}
	if c.Target != (mgl64.Vec3{0, 0, 25}) {
		t.Errorf("reset target mismatch: %v", c.Target)
	}
	if c.FOV != 60 {
		t.Error("reset must not touch fov")
	}
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := Default()
	view := c.ViewMatrix()

	// The target must land on the view-space -z axis.
	tgt := view.Mul4x1(vec32(c.Target).Vec4(1))
	if math.Abs(float64(tgt.X())) > 1e-4 || math.Abs(float64(tgt.Y())) > 1e-4 {
		t.Errorf("target not centered in view space: %v", tgt)
	}
	if float64(tgt.Z()) > -(c.Distance - 1) {
		t.Errorf("target should sit ~distance in front of the eye, got z=%v", tgt.Z())
	}

	// The eye maps to the view-space origin.
	eye := view.Mul4x1(vec32(c.Position()).Vec4(1))
	if eye.Vec3().Len() > 1e-4 {
		t.Errorf("eye not at view-space origin: %v", eye)
	}
}

func TestProjectionMatrixBasics(t *testing.T) {
	c := Default()
	proj := c.ProjectionMatrix(16.0 / 9.0)

	if proj.At(3, 3) != 0 {
		t.Error("perspective projection should have 0 at (3,3)")
	}
	if proj.At(0, 0) <= 0 || proj.At(1, 1) <= 0 {
		t.Error("focal terms should be positive")
	}
	// Wider aspect compresses x relative to y.
	if proj.At(0, 0) >= proj.At(1, 1) {
		t.Error("x focal term should shrink with aspect > 1")
	}
}
