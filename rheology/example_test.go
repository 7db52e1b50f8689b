package rheology_test

import (
	"fmt"

	"github.com/katalvlaran/lithoprof/geotherm"
	"github.com/katalvlaran/lithoprof/lithosphere"
	"github.com/katalvlaran/lithoprof/rheology"
)

// ExampleCompute evaluates the reference envelope at the surface, where only
// cohesion resists failure.
func ExampleCompute() {
	stack := lithosphere.Reference()
	temps, err := geotherm.Solve(stack, []float64{0, 10e3, 20e3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	env, err := rheology.Compute(stack, temps, rheology.DefaultGravity, rheology.DefaultStrainRate)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s := env.Sample(0)
	fmt.Printf("%.2f MPa (%s)\n", s.Strength/rheology.PascalsPerMegapascal, s.Governing)
	// Output:
	// 17.32 MPa (plastic)
}
