package common

import (
	"math"
	"testing"
)

// applyPoint transforms a point by a column-major 4x4 matrix (w=1).
func applyPoint(m []float32, p Vector3) Vector3 {
	x, y, z := float32(p.X), float32(p.Y), float32(p.Z)
	return Vector3{
		X: float64(m[0]*x + m[4]*y + m[8]*z + m[12]),
		Y: float64(m[1]*x + m[5]*y + m[9]*z + m[13]),
		Z: float64(m[2]*x + m[6]*y + m[10]*z + m[14]),
	}
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	p := Vector3{3, -7, 2}
	if got := applyPoint(m, p); got != p {
		t.Errorf("identity transform: got %v, want %v", got, p)
	}
}

func TestMul4MatchesSequentialTransforms(t *testing.T) {
	a := make([]float32, 16)
	b := make([]float32, 16)
	ab := make([]float32, 16)

	LookAt(a, Vector3{Z: 5}, Vector3{}, Vector3{Y: 1})
	ModelMatrix(b, Vector3{X: 1, Z: 2}, 0.7, 1.5)
	Mul4(ab, a, b)

	p := Vector3{0.5, -0.25, 1}
	want := applyPoint(a, applyPoint(b, p))
	got := applyPoint(ab, p)

	if math.Abs(got.X-want.X) > 1e-5 || math.Abs(got.Y-want.Y) > 1e-5 || math.Abs(got.Z-want.Z) > 1e-5 {
		t.Errorf("Mul4: got %v, want %v", got, want)
	}
}

func TestLookAtMapsEyeToOriginAndCenterOntoMinusZ(t *testing.T) {
	eye := Vector3{3, 4, 5}
	center := Vector3{1, 0, -2}
	m := make([]float32, 16)
	LookAt(m, eye, center, Vector3{Y: 1})

	got := applyPoint(m, eye)
	if got.Length() > 1e-5 {
		t.Errorf("eye must map to origin, got %v", got)
	}

	c := applyPoint(m, center)
	if math.Abs(c.X) > 1e-5 || math.Abs(c.Y) > 1e-5 {
		t.Errorf("center must lie on the view axis, got %v", c)
	}
	if c.Z >= 0 {
		t.Errorf("center must be in front of the camera (negative Z), got %v", c.Z)
	}
	dist := eye.Sub(center).Length()
	if math.Abs(-c.Z-dist) > 1e-4 {
		t.Errorf("view-space depth %v, want %v", -c.Z, dist)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := make([]float32, 16)
	Perspective(m, math.Pi/4, 16.0/9.0, 0.1, 100)

	// WebGPU clip space: near plane maps to depth 0, far plane to 1 (after
	// perspective divide).
	project := func(z float64) float64 {
		clipZ := float64(m[10])*z + float64(m[14])
		clipW := float64(m[11]) * z
		return clipZ / clipW
	}
	if d := project(-0.1); math.Abs(d) > 1e-5 {
		t.Errorf("near depth: got %v, want 0", d)
	}
	if d := project(-100); math.Abs(d-1) > 1e-4 {
		t.Errorf("far depth: got %v, want 1", d)
	}
}

func TestModelMatrixTranslatesAndScales(t *testing.T) {
	m := make([]float32, 16)
	ModelMatrix(m, Vector3{X: 2, Y: 3, Z: 4}, 0, 2)

	got := applyPoint(m, Vector3{1, 0, 0})
	want := Vector3{4, 3, 4}
	if math.Abs(got.X-want.X) > 1e-5 || math.Abs(got.Y-want.Y) > 1e-5 || math.Abs(got.Z-want.Z) > 1e-5 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestModelMatrixYawRotatesAroundY(t *testing.T) {
	m := make([]float32, 16)
	ModelMatrix(m, Vector3{}, math.Pi/2, 1)

	// +X with a quarter turn yaw lands on -Z (right-handed Y axis rotation).
	got := applyPoint(m, Vector3{1, 0, 0})
	if math.Abs(got.X) > 1e-6 || math.Abs(got.Y) > 1e-6 || math.Abs(got.Z+1) > 1e-6 {
		t.Errorf("got %v, want (0,0,-1)", got)
	}
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2}
	b := SliceToBytes(data)
	if len(b) != 8 {
		t.Fatalf("length: got %d, want 8", len(b))
	}
	if SliceToBytes([]float32(nil)) != nil {
		t.Errorf("empty slice must convert to nil")
	}
}
