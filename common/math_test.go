package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func assertVecInDelta(t *testing.T, expected, actual mgl64.Vec3, delta float64) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, expected[i], actual[i], delta, "component %d of %v", i, actual)
	}
}

func TestRotateAroundAxis(t *testing.T) {
	testCases := []struct {
		name     string
		v        mgl64.Vec3
		axis     mgl64.Vec3
		angle    float64
		expected mgl64.Vec3
	}{
		{
			name:     "zero angle returns input",
			v:        mgl64.Vec3{0.3, -2, 7},
			axis:     mgl64.Vec3{1, 1, 0},
			angle:    0,
			expected: mgl64.Vec3{0.3, -2, 7},
		},
		{
			name:     "quarter turn of X around Z gives Y",
			v:        mgl64.Vec3{1, 0, 0},
			axis:     mgl64.Vec3{0, 0, 1},
			angle:    math.Pi / 2,
			expected: mgl64.Vec3{0, 1, 0},
		},
		{
			name:     "axis is normalized before use",
			v:        mgl64.Vec3{1, 0, 0},
			axis:     mgl64.Vec3{0, 0, 25},
			angle:    math.Pi / 2,
			expected: mgl64.Vec3{0, 1, 0},
		},
		{
			name:     "half turn of Z around Y",
			v:        mgl64.Vec3{0, 0, 1},
			axis:     mgl64.Vec3{0, 1, 0},
			angle:    math.Pi,
			expected: mgl64.Vec3{0, 0, -1},
		},
		{
			name:     "vector along axis is unchanged",
			v:        mgl64.Vec3{0, 2, 0},
			axis:     mgl64.Vec3{0, 1, 0},
			angle:    1.234,
			expected: mgl64.Vec3{0, 2, 0},
		},
		{
			name:     "degenerate axis returns input",
			v:        mgl64.Vec3{4, 5, 6},
			axis:     mgl64.Vec3{0, 1e-4, 0},
			angle:    1,
			expected: mgl64.Vec3{4, 5, 6},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RotateAroundAxis(tc.v, tc.axis, tc.angle)
			assertVecInDelta(t, tc.expected, got, tolerance)
		})
	}
}

func TestRotateAroundAxisPreservesLength(t *testing.T) {
	v := mgl64.Vec3{3, -1, 2}
	axis := mgl64.Vec3{0.2, 0.9, -0.4}
	for angle := -6.0; angle <= 6.0; angle += 0.37 {
		got := RotateAroundAxis(v, axis, angle)
		assert.InDelta(t, v.Len(), got.Len(), tolerance)
	}
}

func TestSafeNormalize(t *testing.T) {
	got := SafeNormalize(mgl64.Vec3{3, 0, 4})
	assertVecInDelta(t, mgl64.Vec3{0.6, 0, 0.8}, got, tolerance)

	zero := SafeNormalize(mgl64.Vec3{1e-5, 0, 0})
	assert.Equal(t, mgl64.Vec3{}, zero)
	assert.True(t, IsFinite(zero))
}

func TestBasis(t *testing.T) {
	testCases := []struct {
		name string
		dir  mgl64.Vec3
	}{
		{name: "horizontal", dir: mgl64.Vec3{0, 0, -10}},
		{name: "oblique", dir: mgl64.Vec3{-15, -3, 2}},
		{name: "straight down", dir: mgl64.Vec3{0, -5, 0}},
		{name: "straight up", dir: mgl64.Vec3{0, 5, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, r, u, ok := Basis(tc.dir)
			assert.True(t, ok)
			assert.InDelta(t, 1.0, f.Len(), 1e-12)
			assert.InDelta(t, 1.0, r.Len(), 1e-12)
			assert.InDelta(t, 1.0, u.Len(), 1e-12)
			assert.InDelta(t, 0.0, f.Dot(r), 1e-12)
			assert.InDelta(t, 0.0, f.Dot(u), 1e-12)
			assert.InDelta(t, 0.0, r.Dot(u), 1e-12)
			assert.Greater(t, r.Cross(f).Dot(u), 0.0)
		})
	}

	_, _, _, ok := Basis(mgl64.Vec3{})
	assert.False(t, ok)
}

func TestSmoothingFactor(t *testing.T) {
	assert.Equal(t, 0.0, SmoothingFactor(12, 0))
	assert.Equal(t, 0.0, SmoothingFactor(0, 0.016))
	assert.InDelta(t, 1-math.Exp(-12*0.016), SmoothingFactor(12, 0.016), tolerance)
	assert.InDelta(t, 1.0, SmoothingFactor(15, 10), 1e-12)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(mgl64.Vec3{1, 2, 3}))
	assert.False(t, IsFinite(mgl64.Vec3{math.NaN(), 0, 0}))
	assert.False(t, IsFinite(mgl64.Vec3{0, math.Inf(1), 0}))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 0.3, Coalesce(0, 0.3, 0.5))
	assert.Equal(t, "", Coalesce[string]())
}
