package gamemath

import "github.com/go-gl/mathgl/mgl64"

var worldUp = mgl64.Vec3{0, 1, 0}

// Perspective is a look-at camera with a vertical field of view in degrees.
type Perspective struct {
	Position    mgl64.Vec3
	Target      mgl64.Vec3
	FieldOfView float64
	Aspect      float64
	Near        float64
	Far         float64
}

// ViewMatrix maps world space to camera space, where the camera looks down -Z.
func (p Perspective) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(p.Position, p.Target, worldUp)
}

// ProjectionMatrix maps camera space to clip space.
func (p Perspective) ProjectionMatrix() mgl64.Mat4 {
	aspect := p.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(p.FieldOfView), aspect, p.Near, p.Far)
}

// Projector returns the camera's matrices bound to a screen size, for
// projecting many points in one frame.
func (p Perspective) Projector(width, height float64) Projector {
	return Projector{
		View:   p.ViewMatrix(),
		Proj:   p.ProjectionMatrix(),
		Near:   p.Near,
		Far:    p.Far,
		Width:  width,
		Height: height,
	}
}

type Projector struct {
	View, Proj    mgl64.Mat4
	Near, Far     float64
	Width, Height float64
}

// ToView converts a world point into camera space.
func (p Projector) ToView(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(v, p.View)
}

// ProjectView maps a camera-space point in front of the camera to screen
// pixels.
func (p Projector) ProjectView(v mgl64.Vec3) (x, y float64) {
	clip := p.Proj.Mul4x1(v.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	return (ndc.X() + 1) * p.Width / 2, (1 - ndc.Y()) * p.Height / 2
}

// Project maps a world point to screen pixels. ok is false when the point lies
// outside the near/far depth range.
func (p Projector) Project(v mgl64.Vec3) (x, y float64, ok bool) {
	cv := p.ToView(v)
	if depth := -cv.Z(); depth < p.Near || depth > p.Far {
		return 0, 0, false
	}
	x, y = p.ProjectView(cv)
	return x, y, true
}

// ProjectSegment clips the world segment a-b to the near/far depth range and
// maps what is left to screen pixels.
func (p Projector) ProjectSegment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	va, vb, ok := ClipDepth(p.ToView(a), p.ToView(b), p.Near, p.Far)
	if !ok {
		return 0, 0, 0, 0, false
	}
	x0, y0 = p.ProjectView(va)
	x1, y1 = p.ProjectView(vb)
	return x0, y0, x1, y1, true
}

// ClipDepth clips a camera-space segment to near <= -Z <= far.
func ClipDepth(a, b mgl64.Vec3, near, far float64) (mgl64.Vec3, mgl64.Vec3, bool) {
	da, db := -a.Z(), -b.Z()
	if (da < near && db < near) || (da > far && db > far) {
		return a, b, false
	}
	if da < near {
		a = lerp(a, b, (near-da)/(db-da))
	} else if db < near {
		b = lerp(b, a, (near-db)/(da-db))
	}
	da, db = -a.Z(), -b.Z()
	if da > far {
		a = lerp(a, b, (da-far)/(da-db))
	} else if db > far {
		b = lerp(b, a, (db-far)/(db-da))
	}
	return a, b, true
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// ModelMatrix places a model yawed by rotationY radians about +Y and shifted
// by x along the street.
func ModelMatrix(x, rotationY float64) mgl64.Mat4 {
	return mgl64.Translate3D(x, 0, 0).Mul4(mgl64.HomogRotate3DY(rotationY))
}
