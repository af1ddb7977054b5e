package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/objview/pkg/math"
)

func TestParseMTL_SingleEmptyMaterial(t *testing.T) {
	mats, err := ParseMTL([]byte("newmtl X\n"))
	require.NoError(t, err)
	require.Len(t, mats, 1)

	m := mats[0]
	assert.Equal(t, "X", m.Name)
	assert.Nil(t, m.Ambient)
	assert.Nil(t, m.Diffuse)
	assert.Nil(t, m.Specular)
	assert.Nil(t, m.Shininess)
	assert.Nil(t, m.Alpha)
	assert.Empty(t, m.AmbientMap)
	assert.Empty(t, m.DiffuseMap)
}

func TestParseMTL_TwoMaterialsKeepOwnFields(t *testing.T) {
	data := `# two materials
newmtl red
Kd 1 0 0
Ns 500
map_Kd red.png

newmtl blue
Ka 0 0 0.2
d 0.5
`
	mats, err := ParseMTL([]byte(data))
	require.NoError(t, err)
	require.Len(t, mats, 2)

	red, blue := mats[0], mats[1]
	assert.Equal(t, "red", red.Name)
	require.NotNil(t, red.Diffuse)
	assert.Equal(t, math.Vec3{X: 1, Y: 0, Z: 0}, *red.Diffuse)
	require.NotNil(t, red.Shininess)
	assert.Equal(t, float32(500), *red.Shininess)
	assert.Equal(t, "red.png", red.DiffuseMap)
	assert.Nil(t, red.Ambient)
	assert.Nil(t, red.Alpha)

	assert.Equal(t, "blue", blue.Name)
	require.NotNil(t, blue.Ambient)
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 0.2}, *blue.Ambient)
	require.NotNil(t, blue.Alpha)
	assert.Equal(t, float32(0.5), *blue.Alpha)
	assert.Nil(t, blue.Diffuse)
	assert.Nil(t, blue.Shininess)
	assert.Empty(t, blue.DiffuseMap)
}

func TestParseMTL_LaterValueOverwrites(t *testing.T) {
	mats, err := ParseMTL([]byte("newmtl m\nKs 1 1 1\nKs 0.5 0.5 0.5\nmap_Ka a.png\nmap_Ka b.png\n"))
	require.NoError(t, err)
	require.Len(t, mats, 1)
	assert.Equal(t, math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, *mats[0].Specular)
	assert.Equal(t, "b.png", mats[0].AmbientMap)
}

func TestParseMTL_DuplicateNamesKept(t *testing.T) {
	mats, err := ParseMTL([]byte("newmtl m\nd 1\nnewmtl m\nd 0.25\n"))
	require.NoError(t, err)
	require.Len(t, mats, 2)
	assert.Equal(t, float32(1), *mats[0].Alpha)
	assert.Equal(t, float32(0.25), *mats[1].Alpha)
}

func TestParseMTL_FieldsBeforeFirstNewmtlCarryOver(t *testing.T) {
	mats, err := ParseMTL([]byte("Kd 0.1 0.2 0.3\nnewmtl first\nnewmtl second\n"))
	require.NoError(t, err)
	require.Len(t, mats, 2)
	require.NotNil(t, mats[0].Diffuse)
	assert.Equal(t, math.Vec3{X: 0.1, Y: 0.2, Z: 0.3}, *mats[0].Diffuse)
	assert.Nil(t, mats[1].Diffuse)
}

func TestParseMTL_NoMaterials(t *testing.T) {
	for _, data := range []string{"", "# only a comment\n", "Kd 1 1 1\n"} {
		mats, err := ParseMTL([]byte(data))
		require.NoError(t, err)
		assert.Empty(t, mats)
	}
}

func TestParseMTL_UnknownDirectivesIgnored(t *testing.T) {
	mats, err := ParseMTL([]byte("newmtl m\nillum 2\nNi 1.45\nmap_bump n.png\nKe 1 1 1\n"))
	require.NoError(t, err)
	require.Len(t, mats, 1)
	assert.Equal(t, MTLMaterial{Name: "m"}, mats[0])
}

func TestParseMTL_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"newmtl without name", "newmtl\n"},
		{"color missing component", "newmtl m\nKa 1 1\n"},
		{"color not numeric", "newmtl m\nKd r g b\n"},
		{"exponent not numeric", "newmtl m\nNs shiny\n"},
		{"exponent infinite", "newmtl m\nNs Inf\n"},
		{"color nan", "newmtl m\nKs 1 nan 1\n"},
		{"alpha hex float", "newmtl m\nd 0x1p0\n"},
		{"alpha digit separator", "newmtl m\nd 0_5\n"},
		{"alpha missing", "newmtl m\nd\n"},
		{"map without path", "newmtl m\nmap_Kd\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mats, err := ParseMTL([]byte(tt.data))
			assert.Nil(t, mats)
			assert.ErrorIs(t, err, ErrMalformedData)
		})
	}
}
