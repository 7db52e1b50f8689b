package profile

// Quantity names the value column of a profile.
type Quantity struct {
	Name string
	Unit string
}

// Header returns the CSV column header, e.g. "Temperature (K)".
func (q Quantity) Header() string {
	if q.Unit == "" {
		return q.Name
	}

	return q.Name + " (" + q.Unit + ")"
}

// Well-known quantities.
var (
	Temperature        = Quantity{Name: "Temperature", Unit: "K"}
	DifferentialStress = Quantity{Name: "Differential stress", Unit: "Pa"}
	// DifferentialStressMPa is the unit used in persisted envelope tables.
	DifferentialStressMPa = Quantity{Name: "Differential stress", Unit: "MPa"}
)

// DepthHeader is the first CSV column header.
const DepthHeader = "Depth (km)"

// MetresPerKilometre converts table depths to solver depths.
const MetresPerKilometre = 1e3
