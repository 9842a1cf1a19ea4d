package types

import "math"

// StandardGravity is the magnitude reported by a resting accelerometer, in m/s².
const StandardGravity = 9.80665

// Sample is one 3-axis accelerometer reading in m/s².
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Magnitude returns the Euclidean norm of the reading.
func (s Sample) Magnitude() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}
