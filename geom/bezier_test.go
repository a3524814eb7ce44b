package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveAtEndpoints(t *testing.T) {
	c := Curve{
		P0: Vec2{X: 0, Y: 0},
		C0: Vec2{X: 1, Y: 2},
		C1: Vec2{X: 3, Y: 2},
		P1: Vec2{X: 4, Y: 0},
	}
	assert.Equal(t, c.P0, c.At(0))
	assert.Equal(t, c.P1, c.At(1))
}

func TestLineIsStraight(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 10, Y: 10}
	l := Line(a, b)

	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p := l.At(tt)
		assert.InDelta(t, tt*10, p.X, 1e-9, "t=%v", tt)
		assert.InDelta(t, tt*10, p.Y, 1e-9, "t=%v", tt)
	}
}

func TestCurveSample(t *testing.T) {
	c := Line(Vec2{}, Vec2{X: 9})

	pts, err := c.Sample(nil, 10)
	require.NoError(t, err)
	require.Len(t, pts, 10)
	assert.Equal(t, c.P0, pts[0])
	assert.Equal(t, c.P1, pts[9])

	// appends to the destination
	pts, err = c.Sample(pts, 2)
	require.NoError(t, err)
	assert.Len(t, pts, 12)
}

func TestCurveSampleTooFew(t *testing.T) {
	c := Line(Vec2{}, Vec2{X: 1})
	_, err := c.Sample(nil, 1)
	assert.Error(t, err)
	_, err = c.Sample(nil, 0)
	assert.Error(t, err)
}

func TestCurveFlattenEndpointsAndTolerance(t *testing.T) {
	c := Curve{
		P0: Vec2{X: 0, Y: 0},
		C0: Vec2{X: 0, Y: 100},
		C1: Vec2{X: 100, Y: 100},
		P1: Vec2{X: 100, Y: 0},
	}
	const flatness = 0.5
	pts := c.Flatten(nil, flatness)

	require.GreaterOrEqual(t, len(pts), 4)
	assert.Equal(t, c.P0, pts[0])
	assert.Equal(t, c.P1, pts[len(pts)-1])

	// every sampled midpoint of the true curve lies near the polyline
	for i := 0; i <= 100; i++ {
		p := c.At(float64(i) / 100)
		best := p.Distance(pts[0])
		for j := 0; j < len(pts)-1; j++ {
			if d := distToSegment(p, pts[j], pts[j+1]); d < best {
				best = d
			}
		}
		assert.LessOrEqual(t, best, flatness*2, "t=%d/100", i)
	}
}

func TestCurveFlattenStraightLineIsShort(t *testing.T) {
	pts := Line(Vec2{}, Vec2{X: 50}).Flatten(nil, 0.25)
	assert.Len(t, pts, 2, "a straight line needs no subdivision")
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 5, Z: 6}

	assert.Equal(t, Vec3{X: 5, Y: 7, Z: 9}, a.Add(b))
	assert.Equal(t, Vec3{X: 3, Y: 3, Z: 3}, b.Sub(a))
	assert.Equal(t, Vec3{X: 2, Y: 4, Z: 6}, a.Mul(2))
	assert.InDelta(t, 32.0, a.Dot(b), 1e-9)

	cross := Vec3{X: 1}.Cross(Vec3{Y: 1})
	assert.Equal(t, Vec3{Z: 1}, cross)

	n := Vec3{X: 3, Y: 4}.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-9)
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	assert.InDelta(t, 5.0, a.Length(), 1e-9)
	assert.InDelta(t, 5.0, a.Distance(Vec2{}), 1e-9)
	assert.Equal(t, Vec2{X: 1.5, Y: 2}, a.Lerp(Vec2{}, 0.5))
}
