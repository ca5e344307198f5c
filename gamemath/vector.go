// Package gamemath provides the 2D vector math used by physics, camera and
// gameplay code. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import (
	"errors"
	"math"
)

// ErrDivideByZero is returned by Div when the scalar is zero.
var ErrDivideByZero = errors.New("gamemath: divide by zero")

// Vec is an immutable 2D vector. Every operation returns a new value; no
// operation mutates its receiver.
type Vec struct {
	X, Y float64
}

func NewVec(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vec) Scale(factor float64) Vec {
	return Vec{X: v.X * factor, Y: v.Y * factor}
}

// Mul is an alias for Scale.
func (v Vec) Mul(factor float64) Vec {
	return v.Scale(factor)
}

// Div divides both components by the scalar. Returns ErrDivideByZero when the
// scalar is exactly zero.
func (v Vec) Div(scalar float64) (Vec, error) {
	if scalar == 0 {
		return Vec{}, ErrDivideByZero
	}
	return Vec{X: v.X / scalar, Y: v.Y / scalar}, nil
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the scalar 2D cross product.
func (v Vec) Cross(other Vec) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vec) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector. The zero vector normalizes to itself
// rather than erroring.
func (v Vec) Normalize() Vec {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec{}
	}
	return Vec{X: v.X / mag, Y: v.Y / mag}
}

func (v Vec) DistanceTo(other Vec) float64 {
	return other.Sub(v).Magnitude()
}

// AngleTo returns the angle between v and other in radians. The result is NaN
// when either operand is the zero vector; callers are expected not to do that.
func (v Vec) AngleTo(other Vec) float64 {
	return math.Acos(v.Dot(other) / (v.Magnitude() * other.Magnitude()))
}

// ProjectOnto returns the projection of v onto other.
func (v Vec) ProjectOnto(other Vec) Vec {
	return other.Scale(v.Dot(other) / other.Dot(other))
}

// Rotate returns v rotated by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perpendicular returns the vector rotated a quarter turn, clockwise or
// counter-clockwise in screen coordinates (Y grows downward).
func (v Vec) Perpendicular(clockwise bool) Vec {
	if clockwise {
		return Vec{X: -v.Y, Y: v.X}
	}
	return Vec{X: v.Y, Y: -v.X}
}

// Equals is exact floating-point comparison, no epsilon.
func (v Vec) Equals(other Vec) bool {
	return v.X == other.X && v.Y == other.Y
}

// Angle returns atan2(Y, X).
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec) ToArray() [2]float64 {
	return [2]float64{v.X, v.Y}
}
