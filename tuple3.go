package sgl

import "strconv"

// Tuple3 is anything holding three coordinates x, y and z.
type Tuple3 interface {
	XYZ() (x, y, z float64)
}

func formatTuple(t Tuple3) string {
	x, y, z := t.XYZ()
	return "(" + formatFloat(x) + "," + formatFloat(y) + "," + formatFloat(z) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func tupleArray(t Tuple3) []float64 {
	x, y, z := t.XYZ()
	return []float64{x, y, z}
}
