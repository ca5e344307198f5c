package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMagnitude(t *testing.T) {
	tests := []struct {
		name string
		v    Vec
	}{
		{"unit x", Vec{1, 0}},
		{"diagonal", Vec{3, 4}},
		{"negative", Vec{-7.5, 2.25}},
		{"tiny", Vec{0.001, -0.002}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 1.0, tt.v.Normalize().Magnitude(), 1e-12)
		})
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	assert.Equal(t, Vec{}, Vec{}.Normalize())
}

func TestMulDivRoundTrip(t *testing.T) {
	v := Vec{X: 12.5, Y: -3.75}
	for _, s := range []float64{2, -4, 0.5, 1000} {
		scaled := v.Mul(s)
		back, err := scaled.Div(s)
		require.NoError(t, err)
		assert.InDelta(t, v.X, back.X, 1e-9)
		assert.InDelta(t, v.Y, back.Y, 1e-9)
	}
}

func TestDivByZero(t *testing.T) {
	_, err := Vec{1, 2}.Div(0)
	require.ErrorIs(t, err, ErrDivideByZero)
}

func TestDotCross(t *testing.T) {
	a := Vec{1, 2}
	b := Vec{3, 4}
	assert.Equal(t, 11.0, a.Dot(b))
	assert.Equal(t, -2.0, a.Cross(b))
	assert.Equal(t, 2.0, b.Cross(a))
}

func TestDistanceTo(t *testing.T) {
	assert.Equal(t, 5.0, Vec{0, 0}.DistanceTo(Vec{3, 4}))
}

func TestAngleTo(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Vec{1, 0}.AngleTo(Vec{0, 1}), 1e-12)
	assert.InDelta(t, math.Pi, Vec{1, 0}.AngleTo(Vec{-1, 0}), 1e-12)
	assert.InDelta(t, 0.0, Vec{2, 0}.AngleTo(Vec{5, 0}), 1e-12)
	// Zero operand is documented as undefined, not an error. Either side.
	assert.True(t, math.IsNaN(Vec{}.AngleTo(Vec{1, 0})))
	assert.True(t, math.IsNaN(Vec{1, 0}.AngleTo(Vec{})))
	assert.True(t, math.IsNaN(Vec{}.AngleTo(Vec{})))
}

func TestProjectOnto(t *testing.T) {
	p := Vec{3, 4}.ProjectOnto(Vec{10, 0})
	assert.InDelta(t, 3.0, p.X, 1e-12)
	assert.InDelta(t, 0.0, p.Y, 1e-12)
}

func TestRotate(t *testing.T) {
	r := Vec{1, 0}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0.0, r.X, 1e-12)
	assert.InDelta(t, 1.0, r.Y, 1e-12)
}

func TestPerpendicular(t *testing.T) {
	v := Vec{2, 5}
	assert.Equal(t, Vec{-5, 2}, v.Perpendicular(true))
	assert.Equal(t, Vec{5, -2}, v.Perpendicular(false))
	assert.Equal(t, 0.0, v.Dot(v.Perpendicular(true)))
}

func TestEqualsIsExact(t *testing.T) {
	assert.True(t, Vec{1, 2}.Equals(Vec{1, 2}))
	assert.False(t, Vec{1, 2}.Equals(Vec{1, 2 + 1e-15}))
}

func TestAngleAndToArray(t *testing.T) {
	assert.InDelta(t, math.Pi/4, Vec{1, 1}.Angle(), 1e-12)
	assert.Equal(t, [2]float64{3, -4}, Vec{3, -4}.ToArray())
}

func TestOperationsDoNotMutate(t *testing.T) {
	v := Vec{1, 2}
	_ = v.Add(Vec{5, 5})
	_ = v.Scale(10)
	_ = v.Normalize()
	_ = v.Rotate(1)
	assert.Equal(t, Vec{1, 2}, v)
}
