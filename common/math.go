package common

import (
	"math"
	"unsafe"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), int(size)*len(data))
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL/WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix.
// Uses the WebGPU clip space convention (depth in [0, 1]).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float64) {
	f := 1.0 / math.Tan(fovY/2.0)
	Identity(out)

	out[0] = float32(f / aspect)
	out[5] = float32(f)
	out[10] = float32(far / (near - far))
	out[11] = -1.0
	out[14] = float32((near * far) / (near - far))
	out[15] = 0.0
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation (typically 0,1,0)
func LookAt(out []float32, eye, center, up Vector3) {
	z := eye.Sub(center)
	if z.Dot(z) == 0 {
		z = Vector3{Z: 1}
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Dot(x) == 0 {
		x = Vector3{X: 1}
	}
	x = x.Normalize()

	y := z.Cross(x)

	out[0], out[4], out[8], out[12] = float32(x.X), float32(x.Y), float32(x.Z), float32(-x.Dot(eye))
	out[1], out[5], out[9], out[13] = float32(y.X), float32(y.Y), float32(y.Z), float32(-y.Dot(eye))
	out[2], out[6], out[10], out[14] = float32(z.X), float32(z.Y), float32(z.Z), float32(-z.Dot(eye))
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// ModelMatrix constructs a 4x4 model matrix from a position, a yaw rotation
// around the Y axis, and a uniform scale. Column-major.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - pos: translation in world space
//   - yaw: rotation angle in radians around the Y axis
//   - scale: uniform scale factor
func ModelMatrix(out []float32, pos Vector3, yaw, scale float64) {
	c := float32(math.Cos(yaw) * scale)
	s := float32(math.Sin(yaw) * scale)

	out[0], out[1], out[2], out[3] = c, 0, -s, 0
	out[4], out[5], out[6], out[7] = 0, float32(scale), 0, 0
	out[8], out[9], out[10], out[11] = s, 0, c, 0
	out[12], out[13], out[14], out[15] = float32(pos.X), float32(pos.Y), float32(pos.Z), 1
}
