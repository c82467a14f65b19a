package sgl

import "github.com/go-gl/mathgl/mgl64"

// Point3 is a point with three coordinates x, y and z. The zero value is the
// origin.
//
// Point3 is a plain value and copies freely. PlusEquals and MinusEquals move
// the point in place through a pointer; callers sharing one *Point3 across
// goroutines must synchronize those calls themselves.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3(x, y, z float64) Point3 {
	return Point3{
		X: x,
		Y: y,
		Z: z,
	}
}

// NewPoint3FromArray uses the first three elements of a.
func NewPoint3FromArray(a []float64) Point3 {
	return Point3{X: a[0], Y: a[1], Z: a[2]}
}

func Point3FromVec3(v mgl64.Vec3) Point3 {
	return Point3{X: v[0], Y: v[1], Z: v[2]}
}

func (p Point3) XYZ() (x, y, z float64) {
	return p.X, p.Y, p.Z
}

func (p Point3) Clone() Point3 {
	return Point3{X: p.X, Y: p.Y, Z: p.Z}
}

// Plus returns the point q = p+v.
func (p Point3) Plus(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Minus returns the point q = p-v.
func (p Point3) Minus(v Vector3) Point3 {
	return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// PlusEquals moves p by adding v and returns p.
func (p *Point3) PlusEquals(v Vector3) *Point3 {
	p.X += v.X
	p.Y += v.Y
	p.Z += v.Z
	return p
}

// MinusEquals moves p by subtracting v and returns p.
func (p *Point3) MinusEquals(v Vector3) *Point3 {
	p.X -= v.X
	p.Y -= v.Y
	p.Z -= v.Z
	return p
}

// Affine returns the affine combination (1-a)*p + a*q. Values of a outside
// [0,1] extrapolate along the line through p and q.
func (p Point3) Affine(a float64, q Point3) Point3 {
	b := 1.0 - a
	return Point3{
		X: b*p.X + a*q.X,
		Y: b*p.Y + a*q.Y,
		Z: b*p.Z + a*q.Z,
	}
}

// DistanceTo returns the distance |q-p|.
func (p Point3) DistanceTo(q Point3) float64 {
	return length3(p.X-q.X, p.Y-q.Y, p.Z-q.Z)
}

// AlmostEqual reports whether every coordinate of p is within tol of q.
func (p Point3) AlmostEqual(q Point3, tol float64) bool {
	return withinTolerance(p.X, q.X, tol) &&
		withinTolerance(p.Y, q.Y, tol) &&
		withinTolerance(p.Z, q.Z, tol)
}

func (p Point3) Array() []float64 {
	return tupleArray(p)
}

func (p Point3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

func (p Point3) String() string {
	return formatTuple(p)
}
