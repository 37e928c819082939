package cg

import "math"

// Mat3 is a column-major 3x3 matrix of float64.
// Element (row r, column c) is stored at index c*3+r, the same layout
// as OpenGL and gl-matrix, so m[6] and m[7] hold the translation of an
// affine 2D transform.
type Mat3 [9]float64

// singularEpsilon bounds |det| below which a matrix is treated as singular.
const singularEpsilon = 1e-12

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mat3FromRows builds a matrix from its rows, which reads naturally in
// source code even though storage is column-major.
func Mat3FromRows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{
		r0.X, r1.X, r2.X,
		r0.Y, r1.Y, r2.Y,
		r0.Z, r1.Z, r2.Z,
	}
}

// At returns the element at row r, column c.
func (m Mat3) At(r, c int) float64 {
	return m[c*3+r]
}

// Row returns row r as a vector.
func (m Mat3) Row(r int) Vec3 {
	return Vec3{X: m[r], Y: m[3+r], Z: m[6+r]}
}

// Mul returns m ⋅ n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m[k*3+r] * n[c*3+k]
			}
			out[c*3+r] = s
		}
	}
	return out
}

// MulVec returns m ⋅ v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	a, b, c := m[0], m[3], m[6]
	d, e, f := m[1], m[4], m[7]
	g, h, i := m[2], m[5], m[8]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Invert returns the inverse of m, or ErrSingularMatrix.
func (m Mat3) Invert() (Mat3, error) {
	a, b, c := m[0], m[3], m[6]
	d, e, f := m[1], m[4], m[7]
	g, h, i := m[2], m[5], m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if math.Abs(det) < singularEpsilon {
		return Mat3{}, ErrSingularMatrix
	}
	idet := 1 / det

	return Mat3FromRows(
		Vec3{(e*i - f*h) * idet, -(b*i - c*h) * idet, (b*f - c*e) * idet},
		Vec3{-(d*i - f*g) * idet, (a*i - c*g) * idet, -(a*f - c*d) * idet},
		Vec3{(d*h - e*g) * idet, -(a*h - b*g) * idet, (a*e - b*d) * idet},
	), nil
}

// Approx reports whether every element of m is within epsilon of n.
func (m Mat3) Approx(n Mat3, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-n[i]) >= epsilon {
			return false
		}
	}
	return true
}

// Mat4 is a column-major 4x4 matrix of float64.
type Mat4 [16]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float64 {
	return m[c*4+r]
}

// Mul returns m ⋅ n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = s
		}
	}
	return out
}

// MulVec returns m ⋅ v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}
