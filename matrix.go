package cg

import "math"

// Affine represents a 2D affine transformation as a 2x3 matrix in
// row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The 2x2 block (A, B, D, E) is the linear part; (C, F) is the translation.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Linear creates a transformation with the given linear part and no
// translation.
func Linear(a, b, d, e float64) Affine {
	return Affine{
		A: a, B: b, C: 0,
		D: d, E: e, F: 0,
	}
}

// Translate creates a translation.
func Translate(x, y float64) Affine {
	return Affine{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a (possibly non-uniform) scaling.
func Scale(x, y float64) Affine {
	return Affine{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// UniformScale creates a scaling by s along both axes.
func UniformScale(s float64) Affine {
	return Scale(s, s)
}

// Rotate creates a rotation (angle in radians).
func Rotate(angle float64) Affine {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Affine{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// ShearX creates a horizontal shear: x' = x + s*y.
func ShearX(s float64) Affine {
	return Linear(1, s, 0, 1)
}

// ShearY creates a vertical shear: y' = s*x + y.
func ShearY(s float64) Affine {
	return Linear(1, 0, s, 1)
}

// Multiply returns the composition m ∘ other: other is applied first,
// then m.
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Then returns the transformation that applies m first and next second.
func (m Affine) Then(next Affine) Affine {
	return next.Multiply(m)
}

// Apply applies the transformation to a point.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// ApplyVector applies the linear part only (no translation).
func (m Affine) ApplyVector(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.D*v.X + m.E*v.Y,
	}
}

// Det returns the determinant of the linear part.
func (m Affine) Det() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transformation, or ErrSingularMatrix if the
// linear part is not invertible.
func (m Affine) Invert() (Affine, error) {
	det := m.Det()
	if math.Abs(det) < singularEpsilon {
		return Affine{}, ErrSingularMatrix
	}

	invDet := 1.0 / det
	return Affine{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// Mat3 lifts the transformation to a homogeneous 3x3 matrix.
func (m Affine) Mat3() Mat3 {
	return Mat3FromRows(
		Vec3{m.A, m.B, m.C},
		Vec3{m.D, m.E, m.F},
		Vec3{0, 0, 1},
	)
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Affine) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsLinear returns true if the transformation has no translation.
func (m Affine) IsLinear() bool {
	return m.C == 0 && m.F == 0
}

// Approx reports whether every coefficient is within epsilon of other's.
func (m Affine) Approx(other Affine, epsilon float64) bool {
	return math.Abs(m.A-other.A) < epsilon && math.Abs(m.B-other.B) < epsilon &&
		math.Abs(m.C-other.C) < epsilon && math.Abs(m.D-other.D) < epsilon &&
		math.Abs(m.E-other.E) < epsilon && math.Abs(m.F-other.F) < epsilon
}
