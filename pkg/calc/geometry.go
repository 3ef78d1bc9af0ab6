package calc

import "math"

// Point is a position in 3D space.
type Point struct {
	X, Y, Z float64
}

// Distance returns the Euclidean distance between p1 and p2, or -1 if either
// point is nil.
func Distance(p1, p2 *Point) float64 {
	if p1 == nil || p2 == nil {
		return -1
	}
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	dz := p2.Z - p1.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
