package geom

import "fmt"

// DefaultSamples is the sample count used when a caller does not supply
// one.
const DefaultSamples = 32

// Curve is a cubic bezier curve from P0 to P1 with control points C0 and
// C1.
type Curve struct {
	P0, C0, C1, P1 Vec2
}

// Line returns a degenerate curve tracing the straight segment a-b.
func Line(a, b Vec2) Curve {
	return Curve{
		P0: a,
		C0: a.Lerp(b, 1.0/3.0),
		C1: a.Lerp(b, 2.0/3.0),
		P1: b,
	}
}

// At evaluates the curve at parameter t in [0, 1].
func (c Curve) At(t float64) Vec2 {
	// de Casteljau; numerically stable for t outside [0,1] as well.
	a := c.P0.Lerp(c.C0, t)
	b := c.C0.Lerp(c.C1, t)
	d := c.C1.Lerp(c.P1, t)
	return a.Lerp(b, t).Lerp(b.Lerp(d, t), t)
}

// Sample appends n evenly parameterized points along the curve to dst and
// returns the extended slice. The first point is P0 and the last is P1.
// n must be at least 2.
func (c Curve) Sample(dst []Vec2, n int) ([]Vec2, error) {
	if n < 2 {
		return dst, fmt.Errorf("geom: curve sample count %d, need at least 2", n)
	}
	for i := 0; i < n; i++ {
		dst = append(dst, c.At(float64(i)/float64(n-1)))
	}
	return dst, nil
}

// Flatten appends a polyline approximation of the curve to dst, splitting
// recursively until every segment deviates from a straight line by less
// than flatness. The result starts with P0 and ends with P1.
func (c Curve) Flatten(dst []Vec2, flatness float64) []Vec2 {
	if flatness <= 0 {
		flatness = 0.25
	}
	dst = append(dst, c.P0)
	return append(c.flattenInto(dst, flatness, 0), c.P1)
}

const maxFlattenDepth = 24

func (c Curve) flattenInto(dst []Vec2, flatness float64, depth int) []Vec2 {
	if depth >= maxFlattenDepth || c.flatEnough(flatness) {
		return dst
	}
	left, right := c.split()
	dst = left.flattenInto(dst, flatness, depth+1)
	dst = append(dst, right.P0)
	return right.flattenInto(dst, flatness, depth+1)
}

// flatEnough reports whether both control points lie within flatness of
// the P0-P1 chord.
func (c Curve) flatEnough(flatness float64) bool {
	return distToSegment(c.C0, c.P0, c.P1) <= flatness &&
		distToSegment(c.C1, c.P0, c.P1) <= flatness
}

// split subdivides the curve at t=0.5.
func (c Curve) split() (Curve, Curve) {
	ab := c.P0.Lerp(c.C0, 0.5)
	bc := c.C0.Lerp(c.C1, 0.5)
	cd := c.C1.Lerp(c.P1, 0.5)
	abc := ab.Lerp(bc, 0.5)
	bcd := bc.Lerp(cd, 0.5)
	mid := abc.Lerp(bcd, 0.5)
	return Curve{P0: c.P0, C0: ab, C1: abc, P1: mid},
		Curve{P0: mid, C0: bcd, C1: cd, P1: c.P1}
}

func distToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
