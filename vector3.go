package sgl

import "github.com/go-gl/mathgl/mgl64"

// Vector3 is a displacement with components x, y and z.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{
		X: x,
		Y: y,
		Z: z,
	}
}

func NewVector3FromArray(a []float64) Vector3 {
	v := Vector3{}
	v.X = a[0]
	v.Y = a[1]
	v.Z = a[2]

	return v
}

func Vector3FromVec3(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vector3) XYZ() (x, y, z float64) {
	return v.X, v.Y, v.Z
}

func (v Vector3) Clone() Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector3) Plus(u Vector3) Vector3 {
	return Vector3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

func (v Vector3) Minus(u Vector3) Vector3 {
	return Vector3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// mult by scalar
func (v Vector3) Times(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

func (v *Vector3) PlusEquals(u Vector3) *Vector3 {
	v.X += u.X
	v.Y += u.Y
	v.Z += u.Z
	return v
}

func (v *Vector3) MinusEquals(u Vector3) *Vector3 {
	v.X -= u.X
	v.Y -= u.Y
	v.Z -= u.Z
	return v
}

func (v *Vector3) TimesEquals(s float64) *Vector3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

func (v Vector3) Dot(u Vector3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product v x u.
func (v Vector3) Cross(u Vector3) Vector3 {
	return Vector3FromVec3(v.Vec3().Cross(u.Vec3()))
}

func (v Vector3) Length() float64 {
	return length3(v.X, v.Y, v.Z)
}

func (v Vector3) LengthSquared() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the direction of v. The zero vector
// stays zero.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return Vector3{v.X / length, v.Y / length, v.Z / length}
}

func (v Vector3) Array() []float64 {
	return tupleArray(v)
}

func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vector3) String() string {
	return formatTuple(v)
}
