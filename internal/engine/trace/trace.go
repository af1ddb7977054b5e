// Package trace provides a model.Backend that records draw commands instead of
// issuing them, for headless inspection and tests.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/internal/engine/texture"
)

// Op identifies a recorded backend call.
type Op int

const (
	OpSetMaterial Op = iota
	OpBindTexture
	OpEnableTexturing
	OpDisableTexturing
	OpBegin
	OpTexCoord
	OpNormal
	OpVertex
	OpEnd
)

var opNames = [...]string{
	OpSetMaterial:      "material",
	OpBindTexture:      "bind",
	OpEnableTexturing:  "enable-texture",
	OpDisableTexturing: "disable-texture",
	OpBegin:            "begin",
	OpTexCoord:         "texcoord",
	OpNormal:           "normal",
	OpVertex:           "vertex",
	OpEnd:              "end",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Command is one recorded call.
type Command struct {
	Op        Op
	Mode      model.Mode       // OpBegin
	Texture   *texture.Texture // OpBindTexture
	Colors    [3][4]float32    // OpSetMaterial: ambient, diffuse, specular
	Shininess float32          // OpSetMaterial
	Args      [3]float32       // OpTexCoord (u, v), OpNormal and OpVertex (x, y, z)
}

// String formats the command as a single trace line.
func (c Command) String() string {
	switch c.Op {
	case OpSetMaterial:
		return fmt.Sprintf("material ambient=%v diffuse=%v specular=%v shininess=%g",
			c.Colors[0], c.Colors[1], c.Colors[2], c.Shininess)
	case OpBindTexture:
		if c.Texture == nil {
			return "bind <nil>"
		}
		return fmt.Sprintf("bind %d %s", c.Texture.ID, c.Texture.Path)
	case OpBegin:
		return "begin " + c.Mode.String()
	case OpTexCoord:
		return fmt.Sprintf("texcoord %g %g", c.Args[0], c.Args[1])
	case OpNormal, OpVertex:
		return fmt.Sprintf("%s %g %g %g", c.Op, c.Args[0], c.Args[1], c.Args[2])
	default:
		return c.Op.String()
	}
}

// Recorder implements model.Backend by appending every call to Commands.
type Recorder struct {
	Commands []Command

	open bool
}

var _ model.Backend = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) push(c Command) {
	r.Commands = append(r.Commands, c)
}

func (r *Recorder) SetMaterial(ambient, diffuse, specular [4]float32, shininess float32) {
	r.push(Command{Op: OpSetMaterial, Colors: [3][4]float32{ambient, diffuse, specular}, Shininess: shininess})
}

func (r *Recorder) BindTexture(tex *texture.Texture) {
	r.push(Command{Op: OpBindTexture, Texture: tex})
}

func (r *Recorder) EnableTexturing()  { r.push(Command{Op: OpEnableTexturing}) }
func (r *Recorder) DisableTexturing() { r.push(Command{Op: OpDisableTexturing}) }

func (r *Recorder) Begin(mode model.Mode) {
	r.open = true
	r.push(Command{Op: OpBegin, Mode: mode})
}

func (r *Recorder) TexCoord(u, v float32) {
	r.push(Command{Op: OpTexCoord, Args: [3]float32{u, v}})
}

func (r *Recorder) Normal(x, y, z float32) {
	r.push(Command{Op: OpNormal, Args: [3]float32{x, y, z}})
}

func (r *Recorder) Vertex(x, y, z float32) {
	r.push(Command{Op: OpVertex, Args: [3]float32{x, y, z}})
}

func (r *Recorder) End() {
	r.open = false
	r.push(Command{Op: OpEnd})
}

// Balanced reports whether every Begin was closed by an End.
func (r *Recorder) Balanced() bool {
	depth := 0
	for _, c := range r.Commands {
		switch c.Op {
		case OpBegin:
			if depth != 0 {
				return false
			}
			depth++
		case OpEnd:
			if depth != 1 {
				return false
			}
			depth--
		}
	}
	return depth == 0 && !r.open
}

// Count returns how many commands of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.open = false
}

// Dump writes the recorded commands one per line, indenting the vertex
// stream inside each Begin/End pair. limit > 0 caps the number of lines and
// notes how many were left out.
func (r *Recorder) Dump(w io.Writer, limit int) error {
	indent := ""
	for i, c := range r.Commands {
		if limit > 0 && i == limit {
			_, err := fmt.Fprintf(w, "... %d more commands\n", len(r.Commands)-limit)
			return err
		}
		if c.Op == OpEnd {
			indent = ""
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, c); err != nil {
			return err
		}
		if c.Op == OpBegin {
			indent = "  "
		}
	}
	return nil
}

// String returns the full trace.
func (r *Recorder) String() string {
	var sb strings.Builder
	_ = r.Dump(&sb, 0)
	return sb.String()
}
