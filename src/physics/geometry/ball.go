package geometry

import (
	"encoding/json"
	"fmt"
	"math"
)

// Ball is a closed solid sphere. The zero value is a degenerate ball at the
// origin.
type Ball struct {
	center Point
	radius float64
}

// NewBall returns an error wrapping ErrNegativeRadius unless radius >= 0.
// NaN is rejected as well.
func NewBall(center Point, radius float64) (Ball, error) {
	if !(radius >= 0) {
		return Ball{}, newError(ErrNegativeRadius, "got %s", FormatFloat(radius))
	}
	return Ball{center: center, radius: radius}, nil
}

// MustNewBall is like NewBall but panics on an invalid radius.
func MustNewBall(center Point, radius float64) Ball {
	b, err := NewBall(center, radius)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Ball) Center() Point {
	return b.center
}

func (b Ball) Radius() float64 {
	return b.radius
}

// ContainsPoint reports whether p lies inside the ball or on its boundary.
func (b Ball) ContainsPoint(p Point) bool {
	return b.center.DistanceTo(p) <= b.radius
}

func (b Ball) IsOnSurface(p Point) bool {
	return math.Abs(b.center.DistanceTo(p)-b.radius) < Tolerance
}

func (b Ball) SurfaceArea() float64 {
	return 4 * math.Pi * math.Pow(b.radius, 2)
}

func (b Ball) Volume() float64 {
	// 4/3 is rounded to float64 before it is multiplied
	fourThirds := 4.0 / 3.0
	return fourThirds * math.Pi * math.Pow(b.radius, 3)
}

func (b Ball) String() string {
	return fmt.Sprintf("Ball(center=%s, radius=%s)", b.center, FormatFloat(b.radius))
}

type ballJSON struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

func (b Ball) MarshalJSON() ([]byte, error) {
	return json.Marshal(ballJSON{Center: b.center, Radius: b.radius})
}

// UnmarshalJSON decodes through NewBall, so a negative radius is rejected.
func (b *Ball) UnmarshalJSON(data []byte) error {
	var raw ballJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := NewBall(raw.Center, raw.Radius)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
