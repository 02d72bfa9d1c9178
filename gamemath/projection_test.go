package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func testProjector() Projector {
	return Perspective{
		Position:    mgl64.Vec3{0, 7, 30},
		Target:      mgl64.Vec3{0, 0, 0},
		FieldOfView: 60,
		Aspect:      16.0 / 9.0,
		Near:        0.1,
		Far:         5000,
	}.Projector(1280, 720)
}

func TestProjectTargetLandsOnScreenCenter(t *testing.T) {
	x, y, ok := testProjector().Project(mgl64.Vec3{0, 0, 0})
	require.True(t, ok)
	require.InDelta(t, 640, x, 1e-9)
	require.InDelta(t, 360, y, 1e-9)
}

func TestProjectLateralOffset(t *testing.T) {
	p := testProjector()
	xr, _, ok := p.Project(mgl64.Vec3{2, 0, 0})
	require.True(t, ok)
	xl, _, ok := p.Project(mgl64.Vec3{-2, 0, 0})
	require.True(t, ok)

	require.Greater(t, xr, 640.0)
	require.Less(t, xl, 640.0)
	require.InDelta(t, xr-640, 640-xl, 1e-9)
}

func TestProjectGroundBelowCenter(t *testing.T) {
	_, y, ok := testProjector().Project(mgl64.Vec3{0, 0, 10})
	require.True(t, ok)
	require.Greater(t, y, 360.0, "ground closer than the target is lower on screen")
}

func TestProjectBehindCamera(t *testing.T) {
	_, _, ok := testProjector().Project(mgl64.Vec3{0, 7, 40})
	require.False(t, ok)
}

func TestProjectSegmentClipsNearPlane(t *testing.T) {
	p := testProjector()
	// runs from in front of the camera to behind it
	_, _, _, _, ok := p.ProjectSegment(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 100})
	require.True(t, ok)

	_, _, _, _, ok = p.ProjectSegment(mgl64.Vec3{0, 7, 40}, mgl64.Vec3{0, 7, 50})
	require.False(t, ok)
}

func TestClipDepth(t *testing.T) {
	a, b, ok := ClipDepth(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, -9}, 1, 100)
	require.True(t, ok)
	require.InDelta(t, -1, a.Z(), 1e-12)
	require.InDelta(t, -9, b.Z(), 1e-12)

	a, b, ok = ClipDepth(mgl64.Vec3{0, 0, -50}, mgl64.Vec3{0, 0, -150}, 1, 100)
	require.True(t, ok)
	require.InDelta(t, -50, a.Z(), 1e-12)
	require.InDelta(t, -100, b.Z(), 1e-12)

	a, b, ok = ClipDepth(mgl64.Vec3{4, 0, 0}, mgl64.Vec3{0, 0, -200}, 1, 100)
	require.True(t, ok)
	require.InDelta(t, -1, a.Z(), 1e-12)
	require.InDelta(t, 3.98, a.X(), 1e-12)
	require.InDelta(t, -100, b.Z(), 1e-12)

	_, _, ok = ClipDepth(mgl64.Vec3{0, 0, -200}, mgl64.Vec3{0, 0, -300}, 1, 100)
	require.False(t, ok)
}

func TestModelMatrix(t *testing.T) {
	v := mgl64.TransformCoordinate(mgl64.Vec3{1, 2, 0}, ModelMatrix(0, math.Pi/2))
	require.InDelta(t, 0, v.X(), 1e-12)
	require.InDelta(t, 2, v.Y(), 1e-12)
	require.InDelta(t, -1, v.Z(), 1e-12)

	v = mgl64.TransformCoordinate(mgl64.Vec3{1, 0, 0}, ModelMatrix(3, math.Pi))
	require.InDelta(t, 2, v.X(), 1e-12)
	require.InDelta(t, 0, v.Z(), 1e-12)
}
