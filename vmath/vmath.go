package vmath

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the tolerance used for basis and matrix comparisons
const Epsilon = 1e-5

// --- Randomness ---

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// SeedFromTime derives a non-zero seed from a wall-clock reading
func SeedFromTime(t time.Time) uint64 {
	seed := uint64(t.UnixNano())
	// splitmix finalizer so close timestamps diverge immediately
	seed ^= seed >> 30
	seed *= 0xbf58476d1ce4e5b9
	seed ^= seed >> 27
	seed *= 0x94d049bb133111eb
	seed ^= seed >> 31
	if seed == 0 {
		seed = 1
	}
	return seed
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// CenteredInt returns an integer in [-span/2, span-span/2), e.g. {-3..2} for span 6
func (r *FastRand) CenteredInt(span int) int {
	return r.Intn(span) - span/2
}

// --- Vector helpers ---

// IsZero reports whether v has (near) zero length
func IsZero(v mgl32.Vec3) bool {
	return v.Len() < Epsilon
}

// Orthogonal reports whether a and b are perpendicular within tolerance, independent of length
func Orthogonal(a, b mgl32.Vec3) bool {
	la, lb := a.Len(), b.Len()
	if la < Epsilon || lb < Epsilon {
		return false
	}
	return math.Abs(float64(a.Dot(b)/(la*lb))) < Epsilon
}

// Reject returns v with its component along unit axis removed
func Reject(v, axis mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(axis.Mul(v.Dot(axis)))
}

// Vec3From converts a config triple
func Vec3From(a [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{a[0], a[1], a[2]}
}
