package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lithoprof/config"
	"github.com/katalvlaran/lithoprof/lithosphere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_ReferenceFile checks the bundled file reproduces the built-in
// reference stack.
func TestLoad_ReferenceFile(t *testing.T) {
	run, err := config.Load(filepath.Join("testdata", "reference.yaml"))
	require.NoError(t, err)

	ref := lithosphere.Reference()
	assert.Equal(t, ref.Height(), run.Stack.Height())
	for i, want := range ref.Layers() {
		got := run.Stack.Layer(i)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Thickness, got.Thickness)
		assert.Equal(t, want.Conductivity, got.Conductivity)
		assert.InDelta(t, want.HeatProduction, got.HeatProduction, 1e-18)
		assert.Equal(t, want.Density, got.Density)
		assert.InDelta(t, want.Rheology.FrictionAngle, got.Rheology.FrictionAngle, 1e-15)
		assert.Equal(t, want.Rheology.Dislocation, got.Rheology.Dislocation)
		assert.Equal(t, want.Rheology.Diffusion, got.Rheology.Diffusion)
		assert.Equal(t, want.Rheology.GrainSize, got.Rheology.GrainSize)
	}
	assert.Equal(t, config.Default().SurfaceHeatFlux, run.SurfaceHeatFlux)
	assert.Equal(t, 600, run.Samples)
}

// TestDecode_Empty yields the reference run.
func TestDecode_Empty(t *testing.T) {
	run, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default().SurfaceTemperature, run.SurfaceTemperature)
	assert.Equal(t, 600e3, run.Stack.Height())
}

// TestDecode_PartialOverride only changes what the document sets.
func TestDecode_PartialOverride(t *testing.T) {
	doc := `
surface_heat_flux: 0.06
samples: 121
layers:
  - thickness_km: 25
  - dislocation: {n: 3.2}
`
	run, err := config.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 0.06, run.SurfaceHeatFlux)
	assert.Equal(t, 25e3, run.Stack.Layer(0).Thickness)
	assert.Equal(t, 605e3, run.Stack.Height())
	assert.Equal(t, 3.2, run.Stack.Layer(1).Rheology.Dislocation.N)
	assert.Equal(t, 7.13e-18, run.Stack.Layer(1).Rheology.Dislocation.A)
	assert.Equal(t, "Lower crust", run.Stack.Layer(1).Name)

	depths, err := run.Depths()
	require.NoError(t, err)
	assert.Len(t, depths, 121)
	assert.Equal(t, 605e3, depths[120])
	assert.Len(t, run.GeothermOptions(), 2)
	assert.Len(t, run.RheologyOptions(), 2)
}

// TestDecode_Invalid covers unknown keys, bad values and too many layers.
func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"UnknownKey":       "surface_temp: 273\n",
		"NotYAML":          "layers: [\n",
		"ZeroThickness":    "layers:\n  - thickness_km: 0\n",
		"NegativeK":        "layers:\n  - {}\n  - conductivity: -1\n",
		"ZeroGravity":      "gravity: 0\n",
		"NegativeStrain":   "strain_rate: -1e-15\n",
		"ColdSurface":      "surface_temperature: 0\n",
		"TooFewSamples":    "samples: 1\n",
		"FiveLayers":       "layers: [{}, {}, {}, {}, {}]\n",
		"ZeroGrainSize":    "grain_size: 0\n",
		"FlatFriction":     "layers:\n  - friction_angle_deg: 90\n",
		"NegativeVolume":   "layers:\n  - {}\n  - {}\n  - diffusion: {v: -1.0e-6}\n",
		"ZeroDensity":      "layers:\n  - density: 0\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, lithosphere.ErrInvalidConfiguration)
		})
	}
}

// TestLoad_MissingFile surfaces the os error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
