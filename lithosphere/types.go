package lithosphere

// LayerCount is the fixed number of layers in a Stack.
const LayerCount = 4

// Layer indices, shallowest first.
const (
	UpperCrust = iota
	LowerCrust
	MantleLithosphere
	Asthenosphere
)

// layerNames holds the default display name for each layer index.
var layerNames = [LayerCount]string{
	"Upper crust",
	"Lower crust",
	"Mantle lithosphere",
	"Asthenosphere",
}

// LayerName returns the conventional name for layer index i, or "" when i is
// not a valid index.
func LayerName(i int) string {
	if i < 0 || i >= LayerCount {
		return ""
	}

	return layerNames[i]
}

// DislocationCreep holds the constants of the dislocation power law
// ε̇ = A·σⁿ·exp(−(Q+PV)/(RT)).
type DislocationCreep struct {
	N float64 // stress exponent
	A float64 // pre-exponential constant, Pa⁻ⁿ·s⁻¹
	Q float64 // activation energy, J/mol
	V float64 // activation volume, m³/mol (0 for crustal layers)
}

// DiffusionCreep holds the constants of the grain-size sensitive diffusion
// creep law.
type DiffusionCreep struct {
	A float64 // pre-exponential constant, Pa⁻¹·s⁻¹
	Q float64 // activation energy, J/mol
	V float64 // activation volume, m³/mol (0 for crustal layers)
	M float64 // grain-size exponent
}

// Rheology is the per-layer set of failure and creep parameters.
type Rheology struct {
	Cohesion      float64 // Pa
	FrictionAngle float64 // internal friction angle, radians
	Dislocation   DislocationCreep
	Diffusion     DiffusionCreep
	GrainSize     float64 // m
}

// Layer is one stratum of the column.
type Layer struct {
	Name           string
	Thickness      float64 // m
	Conductivity   float64 // W·m⁻¹·K⁻¹
	HeatProduction float64 // W·m⁻³
	Density        float64 // kg·m⁻³
	Rheology       Rheology
}
