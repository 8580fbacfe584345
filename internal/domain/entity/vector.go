package entity

import "math"

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the length of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o
func (v Vec2) Dist(o Vec2) float64 { return o.Sub(v).Len() }

// IsZero reports whether v is the zero vector
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalized returns v scaled to unit length, or the zero vector
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// MoveTowards moves current toward target by at most maxStep.
// It never overshoots the target.
func MoveTowards(current, target Vec2, maxStep float64) Vec2 {
	if maxStep <= 0 {
		return current
	}
	delta := target.Sub(current)
	dist := delta.Len()
	if dist <= maxStep || dist == 0 {
		return target
	}
	return current.Add(delta.Scale(maxStep / dist))
}
