package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Vector is a displacement in 3D space. All operations return new values.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

func fromR3(v r3.Vector) Vector {
	return Vector(v)
}

func (v Vector) r3() r3.Vector {
	return r3.Vector(v)
}

func (v Vector) Magnitude() float64 {
	return v.r3().Norm()
}

// Multiply scales every component by k.
func (v Vector) Multiply(k float64) Vector {
	return fromR3(v.r3().Mul(k))
}

func (v Vector) Add(other Vector) Vector {
	return fromR3(v.r3().Add(other.r3()))
}

func (v Vector) Subtract(other Vector) Vector {
	return fromR3(v.r3().Sub(other.r3()))
}

func (v Vector) Dot(other Vector) float64 {
	return v.r3().Dot(other.r3())
}

func (v Vector) Cross(other Vector) Vector {
	return fromR3(v.r3().Cross(other.r3()))
}

// IsCollinear reports whether every component of v × other is smaller in
// magnitude than Tolerance.
func (v Vector) IsCollinear(other Vector) bool {
	c := v.Cross(other)
	return math.Abs(c.X) < Tolerance &&
		math.Abs(c.Y) < Tolerance &&
		math.Abs(c.Z) < Tolerance
}

func (v Vector) IsPerpendicular(other Vector) bool {
	return math.Abs(v.Dot(other)) < Tolerance
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%s, %s, %s)",
		FormatFloat(v.X), FormatFloat(v.Y), FormatFloat(v.Z))
}
