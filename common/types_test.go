package common

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestVector3Basics(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, -5, 6}

	if got := a.Add(b); got != (Vector3{5, -3, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vector3{-3, 7, -3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vector3{2, 4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 4-10+18 {
		t.Errorf("Dot: got %v", got)
	}
}

func TestVector3Cross(t *testing.T) {
	x := Vector3{X: 1}
	y := Vector3{Y: 1}
	z := Vector3{Z: 1}

	if got := x.Cross(y); got != z {
		t.Errorf("x × y: got %v, want %v", got, z)
	}
	if got := y.Cross(x); got != z.Scale(-1) {
		t.Errorf("y × x: got %v, want %v", got, z.Scale(-1))
	}
	if got := x.Cross(x); got != (Vector3{}) {
		t.Errorf("x × x: got %v, want zero", got)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := Vector3{3, 4, 12}
	n := v.Normalize()
	if !almostEqual(n.Length(), 1, 1e-12) {
		t.Errorf("normalized length: got %v", n.Length())
	}
	// Zero vector normalizes to zero, not NaN.
	if got := (Vector3{}).Normalize(); got != (Vector3{}) {
		t.Errorf("zero normalize: got %v", got)
	}
}

func TestQuaternionBetweenIdentity(t *testing.T) {
	up := Vector3{Y: 1}
	q := QuaternionBetween(up, up)
	if q != QuaternionIdentity() {
		t.Errorf("aligning a vector with itself must be identity, got %+v", q)
	}

	v := Vector3{2, 5, 7}
	if got := q.Rotate(v); got != v {
		t.Errorf("identity rotate: got %v, want %v", got, v)
	}
}

func TestQuaternionBetweenMapsSourceToDest(t *testing.T) {
	cases := []struct{ u, v Vector3 }{
		{Vector3{X: 1}, Vector3{Y: 1}},
		{Vector3{Y: 1}, Vector3{Z: 1}},
		{Vector3{X: 1, Y: 1}.Normalize(), Vector3{Y: 1}},
		{Vector3{X: 0.1, Y: 0.7, Z: -0.3}.Normalize(), Vector3{Y: 1}},
	}

	for _, tc := range cases {
		q := QuaternionBetween(tc.u, tc.v)
		got := q.Rotate(tc.u)
		if !almostEqual(got.X, tc.v.X, 1e-12) || !almostEqual(got.Y, tc.v.Y, 1e-12) || !almostEqual(got.Z, tc.v.Z, 1e-12) {
			t.Errorf("QuaternionBetween(%v, %v).Rotate: got %v", tc.u, tc.v, got)
		}
	}
}

func TestQuaternionConjugateInvertsRotation(t *testing.T) {
	u := Vector3{X: 0.3, Y: 0.8, Z: 0.5}.Normalize()
	q := QuaternionBetween(u, Vector3{Y: 1})
	inv := q.Conjugate().Normalize()

	v := Vector3{-4, 2, 9}
	got := inv.Rotate(q.Rotate(v))
	if !almostEqual(got.X, v.X, 1e-12) || !almostEqual(got.Y, v.Y, 1e-12) || !almostEqual(got.Z, v.Z, 1e-12) {
		t.Errorf("conjugate must invert: got %v, want %v", got, v)
	}
}

func TestQuaternionRotatePreservesLength(t *testing.T) {
	q := QuaternionBetween(Vector3{X: 1, Z: 1}.Normalize(), Vector3{Y: 1})
	v := Vector3{1, -2, 3}
	if !almostEqual(q.Rotate(v).Length(), v.Length(), 1e-12) {
		t.Errorf("rotation changed length: %v -> %v", v.Length(), q.Rotate(v).Length())
	}
}
