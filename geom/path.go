package geom

import "fmt"

// Path is an ordered sequence of cubic bezier curves sampled as one
// polyline. Curves are not required to be connected; the sampled points
// simply concatenate in order.
type Path struct {
	segs []segment
}

type segment struct {
	curve   Curve
	samples int
}

// NewPath builds a path from parallel slices of curves and per-curve
// sample counts. A sample count of zero selects DefaultSamples. The
// slices must have equal length.
func NewPath(curves []Curve, samples []int) (*Path, error) {
	if len(curves) != len(samples) {
		return nil, fmt.Errorf("geom: %d curves but %d sample counts", len(curves), len(samples))
	}
	p := &Path{segs: make([]segment, 0, len(curves))}
	for i, c := range curves {
		n := samples[i]
		if n == 0 {
			n = DefaultSamples
		}
		if n < 2 {
			return nil, fmt.Errorf("geom: curve %d: sample count %d, need at least 2", i, n)
		}
		p.segs = append(p.segs, segment{curve: c, samples: n})
	}
	return p, nil
}

// Append adds one more curve to the path. A sample count of zero selects
// DefaultSamples.
func (p *Path) Append(c Curve, samples int) error {
	if samples == 0 {
		samples = DefaultSamples
	}
	if samples < 2 {
		return fmt.Errorf("geom: sample count %d, need at least 2", samples)
	}
	p.segs = append(p.segs, segment{curve: c, samples: samples})
	return nil
}

// Len returns the number of curves in the path.
func (p *Path) Len() int {
	return len(p.segs)
}

// Curves returns the path's curves in order.
func (p *Path) Curves() []Curve {
	out := make([]Curve, len(p.segs))
	for i, s := range p.segs {
		out[i] = s.curve
	}
	return out
}

// Sample returns the path as one ordered point sequence using each
// curve's configured sample count.
func (p *Path) Sample() []Vec2 {
	var total int
	for _, s := range p.segs {
		total += s.samples
	}
	pts := make([]Vec2, 0, total)
	for _, s := range p.segs {
		// counts were validated at insertion, the error cannot fire
		pts, _ = s.curve.Sample(pts, s.samples)
	}
	return pts
}

// Flatten returns the path as one ordered point sequence using adaptive
// subdivision with the given flatness tolerance.
func (p *Path) Flatten(flatness float64) []Vec2 {
	var pts []Vec2
	for _, s := range p.segs {
		pts = s.curve.Flatten(pts, flatness)
	}
	return pts
}
