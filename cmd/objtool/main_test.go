package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModel(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	obj := `# test cube corner
mtllib corner.mtl
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 1
vn 0 0 1
f 1/1/1 2/1/1 3/2/1 4/2/1
f 1/1/1 2/1/1 3/2/1
`
	mtl := `newmtl stone
Kd 0.5 0.5 0.5
Ns 500
d 1
map_Kd stone.png
newmtl spare
Ka 1 0 0
map_Kd missing.png
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corner.obj"), []byte(obj), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corner.mtl"), []byte(mtl), 0o644))

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 2))))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stone.png"), buf.Bytes(), 0o644))

	return filepath.Join(dir, "corner.obj")
}

func runTool(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestInfo(t *testing.T) {
	path := writeModel(t)

	code, out, _ := runTool("info", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Positions:  4")
	assert.Contains(t, out, "TexCoords:  2")
	assert.Contains(t, out, "Faces:      2")
	assert.Contains(t, out, "Quads      1")
	assert.Contains(t, out, "Triangles  1")
	assert.Contains(t, out, "Vertices:   7")
	assert.Contains(t, out, "max (1, 1, 0)")
	assert.Contains(t, out, "corner.mtl")
	assert.Contains(t, out, "Materials:  2")
	assert.Contains(t, out, "Applied:    stone")
}

func TestMaterials(t *testing.T) {
	path := writeModel(t)

	code, out, _ := runTool("materials", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "stone [applied]")
	assert.Contains(t, out, "shininess 64")
	assert.Contains(t, out, "map_Kd stone.png (4x2)")
	assert.Contains(t, out, "Ka (default)")
	// The broken map leaves the slot empty.
	assert.Contains(t, out, "spare\n")
	assert.Equal(t, 2, strings.Count(out, "map_Kd "))
	assert.Contains(t, out, "map_Kd (none)")
}

func TestMTL(t *testing.T) {
	path := filepath.Join(filepath.Dir(writeModel(t)), "corner.mtl")

	code, out, _ := runTool("mtl", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Materials:  2")
	assert.Contains(t, out, "newmtl stone\n")
	// Raw Ns, before the shininess remap.
	assert.Contains(t, out, "  Ns 500\n")
	assert.Contains(t, out, "  Kd 0.5 0.5 0.5\n")
	assert.Contains(t, out, "  map_Kd stone.png\n")
	assert.Contains(t, out, "  map_Kd missing.png\n")
	assert.Contains(t, out, "  map_Ka (none)\n")
	assert.Contains(t, out, "  d (default)\n")

	code, _, errOut := runTool("mtl", filepath.Join(t.TempDir(), "nope.mtl"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "reading MTL file")
}

func TestTrace(t *testing.T) {
	path := writeModel(t)

	code, out, _ := runTool("trace", path)
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "material "))
	assert.Contains(t, out, "begin QUADS")
	assert.Contains(t, out, "begin TRIANGLES")
	assert.Contains(t, out, "vertex=7")
	assert.Contains(t, out, "bind=1")

	code, out, _ = runTool("trace", "-n", "3", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "more commands")
}

func TestErrors(t *testing.T) {
	code, _, errOut := runTool()
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Usage:")

	code, _, errOut = runTool("bogus")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Unknown command: bogus")

	code, _, errOut = runTool("info")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "usage: objtool info")

	code, _, errOut = runTool("info", filepath.Join(t.TempDir(), "nope.obj"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "nope.obj")

	code, out, _ := runTool("help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "objtool <command>")
}
