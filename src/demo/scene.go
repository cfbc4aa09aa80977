// Package demo builds the demonstration scene and evaluates the report the
// spatial command prints.
package demo

import (
	"spatial/src/physics/geometry"
)

// Scene holds the values the demonstration works on. The ball is centred on
// Origin.
type Scene struct {
	Origin geometry.Point
	Probe  geometry.Point
	V1     geometry.Vector
	V2     geometry.Vector
	Ball   geometry.Ball
}

// Report is everything the demonstration prints, in print order.
type Report struct {
	V1          geometry.Vector `json:"v1"`
	Magnitude   float64         `json:"magnitude"`
	Sum         geometry.Vector `json:"sum"`
	Dot         float64         `json:"dot"`
	Collinear   bool            `json:"collinear"`
	Ball        geometry.Ball   `json:"ball"`
	Contains    bool            `json:"contains"`
	SurfaceArea float64         `json:"surfaceArea"`
	Volume      float64         `json:"volume"`
}

func DefaultScene() Scene {
	origin := geometry.NewPoint(0, 0, 0)
	return Scene{
		Origin: origin,
		Probe:  geometry.NewPoint(1, 1, 1),
		V1:     geometry.NewVector(1, 2, 3),
		V2:     geometry.NewVector(2, 4, 6),
		Ball:   geometry.MustNewBall(origin, 2.5),
	}
}

func (s Scene) Evaluate() Report {
	return Report{
		V1:          s.V1,
		Magnitude:   s.V1.Magnitude(),
		Sum:         s.V1.Add(s.V2),
		Dot:         s.V1.Dot(s.V2),
		Collinear:   s.V1.IsCollinear(s.V2),
		Ball:        s.Ball,
		Contains:    s.Ball.ContainsPoint(s.Probe),
		SurfaceArea: s.Ball.SurfaceArea(),
		Volume:      s.Ball.Volume(),
	}
}
