package sgl

import "math"

// length3 is the Euclidean length of (x, y, z).
func length3(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

func withinTolerance(a, b, tol float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= tol
}
