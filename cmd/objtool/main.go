// objtool is a CLI utility for inspecting OBJ models and their materials.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/Faultbox/objview/internal/engine/model"
	"github.com/Faultbox/objview/internal/engine/texture"
	"github.com/Faultbox/objview/internal/engine/trace"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/formats"
	"github.com/Faultbox/objview/pkg/math"
)

func main() {
	// Broken texture maps are reported through warn-level logs.
	if err := logger.Init("warn", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
	}
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	logger.Sync()
	os.Exit(code)
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command := args[0]
	args = args[1:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args, stdout)
	case "materials":
		err = cmdMaterials(args, stdout)
	case "mtl":
		err = cmdMTL(args, stdout)
	case "trace":
		err = cmdTrace(args, stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `objtool - OBJ/MTL model inspection utility

Usage:
  objtool <command> [options]

Commands:
  info <file.obj>              Show buffers, faces, bounds and materials
  materials <file.obj>         List materials from every material library
  mtl <file.mtl>               Dump the raw fields of one material library
  trace [-n N] <file.obj>      Print the draw commands the model issues

Examples:
  objtool info models/cube/cube.obj
  objtool trace -n 40 models/monkey/monkey.obj`)
}

// usageError is returned when a command is missing its arguments.
type usageError string

func (e usageError) Error() string { return "usage: objtool " + string(e) }

func loadModel(path string) (*model.Model, []*model.Material, error) {
	return model.LoadWithMaterials(path, texture.NewLoader(texture.DecodeOnly))
}

func cmdInfo(args []string, w io.Writer) error {
	if len(args) != 1 {
		return usageError("info <file.obj>")
	}
	path := args[0]

	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return err
	}
	m, mats, err := loadModel(path)
	if err != nil {
		return err
	}

	stats := m.Stats()
	fmt.Fprintf(w, "Model:      %s\n", path)
	fmt.Fprintf(w, "Positions:  %d\n", len(obj.Positions))
	fmt.Fprintf(w, "TexCoords:  %d\n", len(obj.TexCoords))
	fmt.Fprintf(w, "Normals:    %d\n", len(obj.Normals))
	fmt.Fprintf(w, "Faces:      %d\n", stats.TotalFaces())
	for _, topo := range []model.Topology{model.Points, model.Lines, model.Triangles, model.Quads} {
		if n := stats.Faces[topo]; n > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", topo, n)
		}
	}
	fmt.Fprintf(w, "Vertices:   %d\n", stats.Vertices)

	if b, ok := m.Bounds(); ok {
		fmt.Fprintf(w, "Bounds:     min (%g, %g, %g) max (%g, %g, %g)\n",
			b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
		size := b.Size()
		fmt.Fprintf(w, "Size:       %g x %g x %g\n", size.X, size.Y, size.Z)
	} else {
		fmt.Fprintln(w, "Bounds:     (empty)")
	}

	fmt.Fprintf(w, "Libraries:  %d\n", len(obj.MaterialLibs))
	for _, lib := range obj.MaterialLibs {
		fmt.Fprintf(w, "  %s\n", lib)
	}
	fmt.Fprintf(w, "Materials:  %d\n", len(mats))
	if root := m.Material(); root != nil {
		fmt.Fprintf(w, "Applied:    %s\n", root.Name())
	}
	return nil
}

func cmdMaterials(args []string, w io.Writer) error {
	if len(args) != 1 {
		return usageError("materials <file.obj>")
	}

	_, mats, err := loadModel(args[0])
	if err != nil {
		return err
	}
	if len(mats) == 0 {
		fmt.Fprintln(w, "No materials")
		return nil
	}

	for i, mat := range mats {
		name := mat.Name()
		if name == "" {
			name = "(unnamed)"
		}
		marker := ""
		if i == 0 {
			marker = " [applied]"
		}
		fmt.Fprintf(w, "%s%s\n", name, marker)
		fmt.Fprintf(w, "  Ka %s\n", formatColor(mat.AmbientColor()))
		fmt.Fprintf(w, "  Kd %s\n", formatColor(mat.DiffuseColor()))
		fmt.Fprintf(w, "  Ks %s\n", formatColor(mat.SpecularColor()))
		fmt.Fprintf(w, "  shininess %g\n", mat.SpecularExponent())
		fmt.Fprintf(w, "  alpha %g\n", mat.Alpha())
		fmt.Fprintf(w, "  map_Ka %s\n", formatTexture(mat.AmbientTexture()))
		fmt.Fprintf(w, "  map_Kd %s\n", formatTexture(mat.DiffuseTexture()))
	}
	return nil
}

func cmdMTL(args []string, w io.Writer) error {
	if len(args) != 1 {
		return usageError("mtl <file.mtl>")
	}

	mats, err := formats.ParseMTLFile(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Library:    %s\n", args[0])
	fmt.Fprintf(w, "Materials:  %d\n", len(mats))

	for _, mat := range mats {
		fmt.Fprintf(w, "newmtl %s\n", mat.Name)
		fmt.Fprintf(w, "  Ka %s\n", formatColor(mat.Ambient))
		fmt.Fprintf(w, "  Kd %s\n", formatColor(mat.Diffuse))
		fmt.Fprintf(w, "  Ks %s\n", formatColor(mat.Specular))
		fmt.Fprintf(w, "  Ns %s\n", formatScalar(mat.Shininess))
		fmt.Fprintf(w, "  d %s\n", formatScalar(mat.Alpha))
		fmt.Fprintf(w, "  map_Ka %s\n", formatPath(mat.AmbientMap))
		fmt.Fprintf(w, "  map_Kd %s\n", formatPath(mat.DiffuseMap))
	}
	return nil
}

func cmdTrace(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("trace", flag.ContinueOnError)
	fs.SetOutput(w)
	limit := fs.Int("n", 0, "Limit output to N commands (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageError("trace [-n N] <file.obj>")
	}

	m, _, err := loadModel(fs.Arg(0))
	if err != nil {
		return err
	}

	rec := trace.NewRecorder()
	m.Render(rec)
	if err := rec.Dump(w, *limit); err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, c := range rec.Commands {
		counts[c.Op.String()]++
	}
	ops := make([]string, 0, len(counts))
	for op := range counts {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	fmt.Fprintf(w, "\n%d commands:", len(rec.Commands))
	for _, op := range ops {
		fmt.Fprintf(w, " %s=%d", op, counts[op])
	}
	fmt.Fprintln(w)
	return nil
}

func formatColor(c *math.Vec3) string {
	if c == nil {
		return "(default)"
	}
	return fmt.Sprintf("%g %g %g", c.X, c.Y, c.Z)
}

func formatScalar(v *float32) string {
	if v == nil {
		return "(default)"
	}
	return fmt.Sprintf("%g", *v)
}

func formatPath(p string) string {
	if p == "" {
		return "(none)"
	}
	return p
}

func formatTexture(t *texture.Texture) string {
	if t == nil {
		return "(none)"
	}
	return fmt.Sprintf("%s (%dx%d)", filepath.Base(t.Path), t.Width, t.Height)
}
