package geometry

import (
	"fmt"
	"math"
)

// Point is a position in 3D space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%s, %s, %s)",
		FormatFloat(p.X), FormatFloat(p.Y), FormatFloat(p.Z))
}
