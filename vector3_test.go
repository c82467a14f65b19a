package sgl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Arithmetic(t *testing.T) {
	v := NewVector3(1, 2, 3)
	u := NewVector3(4, -5, 6)

	assert.Equal(t, NewVector3(5, -3, 9), v.Plus(u))
	assert.Equal(t, NewVector3(-3, 7, -3), v.Minus(u))
	assert.Equal(t, NewVector3(2, 4, 6), v.Times(2))
	assert.Equal(t, NewVector3(-1, -2, -3), v.Negate())
	assert.Equal(t, 12.0, v.Dot(u))
	assert.Equal(t, NewVector3(1, 2, 3), v, "pure operations must not mutate")
}

func TestVector3InPlace(t *testing.T) {
	v := NewVector3(1, 2, 3)
	r := v.PlusEquals(NewVector3(1, 1, 1)).TimesEquals(2).MinusEquals(NewVector3(0, 0, 8))

	assert.Equal(t, NewVector3(4, 6, 0), v)
	assert.Same(t, &v, r)
}

func TestVector3Cross(t *testing.T) {
	testCases := []struct {
		name     string
		v        Vector3
		u        Vector3
		expected Vector3
	}{
		{name: "x cross y", v: NewVector3(1, 0, 0), u: NewVector3(0, 1, 0), expected: NewVector3(0, 0, 1)},
		{name: "y cross x", v: NewVector3(0, 1, 0), u: NewVector3(1, 0, 0), expected: NewVector3(0, 0, -1)},
		{name: "Parallel", v: NewVector3(1, 2, 3), u: NewVector3(2, 4, 6), expected: NewVector3(0, 0, 0)},
		{name: "General", v: NewVector3(1, 2, 3), u: NewVector3(4, 5, 6), expected: NewVector3(-3, 6, -3)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.v.Cross(tc.u))
		})
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 12)

	assert.Equal(t, 13.0, v.Length())
	assert.Equal(t, 169.0, v.LengthSquared())

	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), float64EqualityThreshold)
	assert.InDelta(t, 3.0/13, n.X, float64EqualityThreshold)

	assert.Equal(t, Vector3{}, Vector3{}.Normalize())
}

func TestVector3Conversions(t *testing.T) {
	v := NewVector3FromArray([]float64{1, 2, 3})
	c := v.Clone()
	c.PlusEquals(NewVector3(1, 1, 1))

	assert.Equal(t, NewVector3(1, 2, 3), v)
	assert.Equal(t, v, Vector3FromVec3(v.Vec3()))
	assert.Equal(t, []float64{1, 2, 3}, v.Array())
	assert.Equal(t, "(1,2,3)", v.String())
	assert.True(t, math.IsNaN(NewVector3(math.NaN(), 0, 0).Length()))
}

func TestPointAndVectorShareTuple3(t *testing.T) {
	tuples := []Tuple3{NewPoint3(1, 2, 3), NewVector3(1, 2, 3)}
	for _, tp := range tuples {
		assert.Equal(t, "(1,2,3)", formatTuple(tp))
	}
}
