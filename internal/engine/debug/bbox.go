package debug

import "github.com/Faultbox/objview/pkg/math"

// BoxEdges returns the 12 edges of an axis-aligned box as 24 line endpoints,
// expanded by padding on every side. Inverted corners are normalized.
func BoxEdges(min, max math.Vec3, padding float32) []math.Vec3 {
	lo := min.Min(max)
	hi := min.Max(max)
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	lo = lo.Sub(pad)
	hi = hi.Add(pad)

	corner := func(x, y, z bool) math.Vec3 {
		c := lo
		if x {
			c.X = hi.X
		}
		if y {
			c.Y = hi.Y
		}
		if z {
			c.Z = hi.Z
		}
		return c
	}

	var edges []math.Vec3
	// Bottom and top faces
	for _, y := range []bool{false, true} {
		edges = append(edges,
			corner(false, y, false), corner(true, y, false),
			corner(true, y, false), corner(true, y, true),
			corner(true, y, true), corner(false, y, true),
			corner(false, y, true), corner(false, y, false),
		)
	}
	// Vertical edges
	for _, xz := range [][2]bool{{false, false}, {true, false}, {true, true}, {false, true}} {
		edges = append(edges, corner(xz[0], false, xz[1]), corner(xz[0], true, xz[1]))
	}
	return edges
}
