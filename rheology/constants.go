package rheology

const (
	// GasConstant is the ideal gas constant, J·mol⁻¹·K⁻¹.
	GasConstant = 8.3144626

	// DefaultGravity is the gravitational acceleration, m·s⁻².
	DefaultGravity = 9.81

	// DefaultStrainRate is the reference strain rate, s⁻¹.
	DefaultStrainRate = 1e-15

	// PascalsPerMegapascal converts solver stresses to table units.
	PascalsPerMegapascal = 1e6
)
