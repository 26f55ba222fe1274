// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "math"

// Vector2 is a 2D vector with float64 components. Used for pointer coordinates.
type Vector2 struct {
	X, Y float64
}

// Vector3 is a 3D vector with float64 components. Used for camera positions,
// orbit targets, up axes, and intermediate offsets.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product v · o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length ||v||.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector v / ||v||.
// If ||v|| == 0, it returns the zero vector.
func (v Vector3) Normalize() Vector3 {
	n := v.Length()
	if n == 0 {
		return Vector3{}
	}
	return v.Scale(1.0 / n)
}

// Quaternion is a rotation stored as X, Y, Z, W where W is the scalar part.
// Must be normalized before being used as a rotation.
type Quaternion struct {
	X, Y, Z, W float64
}

// QuaternionIdentity returns the identity rotation.
func QuaternionIdentity() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1}
}

// QuaternionBetween builds the shortest-arc rotation mapping unit vector u onto
// unit vector v. The rotation axis is u × v and the scalar part is 1 + u · v;
// normalizing the pair yields the half-angle quaternion.
//
// When u == -v the cross product vanishes and the result is degenerate
// (zero axis); callers must avoid exactly anti-parallel inputs.
//
// Parameters:
//   - u: source unit vector
//   - v: destination unit vector
//
// Returns:
//   - Quaternion: the normalized rotation taking u to v
func QuaternionBetween(u, v Vector3) Quaternion {
	axis := u.Cross(v)
	q := Quaternion{
		X: axis.X,
		Y: axis.Y,
		Z: axis.Z,
		W: 1 + u.Dot(v),
	}
	return q.Normalize()
}

// Conjugate returns the quaternion with the vector part negated.
// For a unit quaternion this is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Normalize returns q scaled to unit length.
// A zero quaternion normalizes to itself.
func (q Quaternion) Normalize() Quaternion {
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if n == 0 {
		return q
	}
	inv := 1.0 / n
	return Quaternion{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Rotate applies the rotation q to v, computing q * (v, 0) * conj(q).
// q must be normalized.
//
// Parameters:
//   - v: the vector to rotate
//
// Returns:
//   - Vector3: the rotated vector
func (q Quaternion) Rotate(v Vector3) Vector3 {
	// t = 2 * (q.xyz × v); v' = v + w*t + q.xyz × t
	qv := Vector3{X: q.X, Y: q.Y, Z: q.Z}
	t := qv.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(qv.Cross(t))
}
