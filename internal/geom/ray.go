package geom

import "fmt"

// Ray is a half-line with an origin point and a direction vector.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(Origin: %v, Direction: %v)", r.Origin, r.Direction)
}

// PositionAt returns the point reached after traveling t units of the
// (typically normalized) direction from the origin.
func (r Ray) PositionAt(t float64) Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}
