// Package geom implements the linear-algebra kernel of the ray tracer:
// points, vectors, colors, 4x4 matrices, transforms and rays.
package geom

import (
	"fmt"
	"math"
)

// Epsilon is the absolute tolerance used throughout the renderer for
// floating point comparison and for the self-intersection bias applied to
// over-points and under-points.
const Epsilon = 1e-5

// Equal reports whether a and b are within Epsilon of each other.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is a homogeneous 3-space coordinate. W is 1 for points and 0 for
// vectors; every other operation is shared between the two.
type Tuple struct {
	X, Y, Z, W float64
}

// Point constructs a Tuple with W=1.
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector constructs a Tuple with W=0.
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// Origin is the point at (0, 0, 0).
var Origin = Point(0, 0, 0)

func (t Tuple) IsPoint() bool  { return t.W == 1 }
func (t Tuple) IsVector() bool { return t.W == 0 }

func (t Tuple) String() string {
	kind := "Vector"
	if t.IsPoint() {
		kind = "Point"
	}
	return fmt.Sprintf("%s(%.4f, %.4f, %.4f)", kind, t.X, t.Y, t.Z)
}

func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{t.X + o.X, t.Y + o.Y, t.Z + o.Z, t.W + o.W}
}

func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{t.X - o.X, t.Y - o.Y, t.Z - o.Z, t.W - o.W}
}

func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

func (t Tuple) Div(s float64) Tuple {
	return t.Scale(1 / s)
}

func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross is only meaningful for vectors; the result always has W=0.
func (t Tuple) Cross(o Tuple) Tuple {
	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.Dot(t))
}

// Normalize returns a unit-length tuple. The caller must not pass a
// zero-magnitude tuple.
func (t Tuple) Normalize() Tuple {
	return t.Div(t.Magnitude())
}

// Reflect reflects v around the unit normal n.
func Reflect(v, n Tuple) Tuple {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

func (t Tuple) Equal(o Tuple) bool {
	return Equal(t.X, o.X) && Equal(t.Y, o.Y) && Equal(t.Z, o.Z) && Equal(t.W, o.W)
}
