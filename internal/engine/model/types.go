// Package model provides the renderable scene graph built from OBJ/MTL files:
// faces with their topology, materials, and the Model tree that draws itself
// through a Backend.
package model

import (
	"fmt"

	"github.com/Faultbox/objview/pkg/formats"
	"github.com/Faultbox/objview/pkg/math"
)

// Vertex is a position, texture coordinate and normal triple. Vertices hold
// copies of buffer values, so many vertices may share the same source entry.
type Vertex struct {
	Position math.Vec3
	TexCoord math.Vec2
	Normal   math.Vec3
}

// Mode is the backend primitive draw mode of a topology. Values match the
// OpenGL enums so the GL backend can pass them through.
type Mode uint32

const (
	ModePoints    Mode = 0x0000 // GL_POINTS
	ModeLines     Mode = 0x0001 // GL_LINES
	ModeTriangles Mode = 0x0004 // GL_TRIANGLES
	ModeQuads     Mode = 0x0007 // GL_QUADS
)

// String returns the GL name of the mode.
func (m Mode) String() string {
	switch m {
	case ModePoints:
		return "POINTS"
	case ModeLines:
		return "LINES"
	case ModeTriangles:
		return "TRIANGLES"
	case ModeQuads:
		return "QUADS"
	default:
		return fmt.Sprintf("Mode(%#x)", uint32(m))
	}
}

// Topology is the primitive type of a face, derived from its vertex count.
type Topology int

const (
	Points Topology = iota + 1
	Lines
	Triangles
	Quads
)

// Vertices returns the number of vertices a face of this topology has.
func (t Topology) Vertices() int {
	return int(t)
}

// Mode returns the draw mode used to emit faces of this topology.
func (t Topology) Mode() Mode {
	switch t {
	case Points:
		return ModePoints
	case Lines:
		return ModeLines
	case Triangles:
		return ModeTriangles
	default:
		return ModeQuads
	}
}

// String returns a human-readable topology name.
func (t Topology) String() string {
	switch t {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case Triangles:
		return "Triangles"
	case Quads:
		return "Quads"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// TopologyFor returns the topology with exactly n vertices.
func TopologyFor(n int) (Topology, error) {
	if n < int(Points) || n > int(Quads) {
		return 0, fmt.Errorf("%w: no topology has %d vertices", formats.ErrMalformedData, n)
	}
	return Topology(n), nil
}

// Face is an ordered vertex list with its topology. Vertex order defines
// winding and must be preserved.
type Face struct {
	Topology Topology
	Vertices []Vertex
}

// NewFace builds a face, selecting the topology from the vertex count.
func NewFace(vertices []Vertex) (Face, error) {
	topo, err := TopologyFor(len(vertices))
	if err != nil {
		return Face{}, err
	}
	return Face{Topology: topo, Vertices: vertices}, nil
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// extend grows the box to include p.
func (b Bounds) extend(p math.Vec3) Bounds {
	return Bounds{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}
