package config

// YAMLRun is the on-disk shape of a run file.
type YAMLRun struct {
	SurfaceTemperature *float64    `yaml:"surface_temperature"`
	SurfaceHeatFlux    *float64    `yaml:"surface_heat_flux"`
	Gravity            *float64    `yaml:"gravity"`
	StrainRate         *float64    `yaml:"strain_rate"`
	Samples            *int        `yaml:"samples"`
	GrainSize          *float64    `yaml:"grain_size"`
	Layers             []YAMLLayer `yaml:"layers"`
}

// YAMLLayer is one layer entry.
type YAMLLayer struct {
	Name             string        `yaml:"name"`
	ThicknessKm      *float64      `yaml:"thickness_km"`
	Conductivity     *float64      `yaml:"conductivity"`
	HeatProduction   *float64      `yaml:"heat_production"`
	Density          *float64      `yaml:"density"`
	Cohesion         *float64      `yaml:"cohesion"`
	FrictionAngleDeg *float64      `yaml:"friction_angle_deg"`
	GrainSize        *float64      `yaml:"grain_size"`
	Dislocation      *YAMLCreepLaw `yaml:"dislocation"`
	Diffusion        *YAMLCreepLaw `yaml:"diffusion"`
}

// YAMLCreepLaw carries either creep law; N is ignored for diffusion creep
// and M for dislocation creep.
type YAMLCreepLaw struct {
	N *float64 `yaml:"n"`
	A *float64 `yaml:"a"`
	Q *float64 `yaml:"q"`
	V *float64 `yaml:"v"`
	M *float64 `yaml:"m"`
}
