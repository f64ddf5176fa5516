package geom

import "math"

// Transform wraps a 4x4 matrix and is the unit of composition for scene
// construction: translate/scale/rotate/shear nodes, and the camera's view
// transform, are all Transforms multiplied together.
type Transform struct {
	M Matrix4
}

// IdentityTransform is the no-op transform.
var IdentityTransform = Transform{M: Identity4}

func NewTransform(m Matrix4) Transform {
	return Transform{M: m}
}

// Mul composes two transforms; applying the result to a point first applies
// o, then t (o is multiplied on the right, exactly as matrix notation and
// spec.md's transform-list composition order expect).
func (t Transform) Mul(o Transform) Transform {
	return Transform{M: t.M.Mul(o.M)}
}

func (t Transform) Point(p Tuple) Tuple {
	return t.M.MulTuple(p)
}

func (t Transform) Vector(v Tuple) Tuple {
	return t.M.MulTuple(v)
}

func (t Transform) Ray(r Ray) Ray {
	return Ray{Origin: t.Point(r.Origin), Direction: t.Vector(r.Direction)}
}

func (t Transform) Transpose() Transform {
	return Transform{M: t.M.Transpose()}
}

// Inverse returns the inverse transform, or ErrNonInvertible.
func (t Transform) Inverse() (Transform, error) {
	inv, err := t.M.Invert()
	if err != nil {
		return Transform{}, err
	}
	return Transform{M: inv}, nil
}

func Translate(x, y, z float64) Transform {
	m := Identity4
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return Transform{M: m}
}

func Scale(x, y, z float64) Transform {
	m := Identity4
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return Transform{M: m}
}

func RotateX(r float64) Transform {
	m := Identity4
	cos, sin := math.Cos(r), math.Sin(r)
	m[1][1], m[1][2] = cos, -sin
	m[2][1], m[2][2] = sin, cos
	return Transform{M: m}
}

func RotateY(r float64) Transform {
	m := Identity4
	cos, sin := math.Cos(r), math.Sin(r)
	m[0][0], m[0][2] = cos, sin
	m[2][0], m[2][2] = -sin, cos
	return Transform{M: m}
}

func RotateZ(r float64) Transform {
	m := Identity4
	cos, sin := math.Cos(r), math.Sin(r)
	m[0][0], m[0][1] = cos, -sin
	m[1][0], m[1][1] = sin, cos
	return Transform{M: m}
}

func Shear(xy, xz, yx, yz, zx, zy float64) Transform {
	m := Identity4
	m[0][1], m[0][2] = xy, xz
	m[1][0], m[1][2] = yx, yz
	m[2][0], m[2][1] = zx, zy
	return Transform{M: m}
}

// ViewTransform composes the camera orientation (rows left, true-up,
// -forward) with an inverse translation of from, so that applying the
// result places the camera at the origin looking down -Z.
func ViewTransform(from, to, up Tuple) Transform {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}

	return Transform{M: orientation}.Mul(Translate(-from.X, -from.Y, -from.Z))
}
