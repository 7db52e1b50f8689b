package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lithoprof/geotherm"
	"github.com/katalvlaran/lithoprof/profile"
)

func geothermCmd(a *app) *cobra.Command {
	var cfgPath, out string

	c := &cobra.Command{
		Use:   "geotherm",
		Short: "Solve the steady-state geotherm and write Depth (km),Temperature (K)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := loadRun(cfgPath)
			if err != nil {
				return err
			}
			depths, err := run.Depths()
			if err != nil {
				return err
			}

			opts := append(run.GeothermOptions(), geotherm.WithLogger(a.logger))
			temps, err := geotherm.Solve(run.Stack, depths, opts...)
			if err != nil {
				return err
			}
			if err := writeProfile(out, temps, cmd.OutOrStdout()); err != nil {
				return err
			}

			sol, err := geotherm.NewSolution(run.Stack, run.SurfaceTemperature, run.SurfaceHeatFlux)
			if err != nil {
				return err
			}
			w := summaryWriter(cmd, out)
			for _, in := range sol.Interfaces() {
				fmt.Fprintf(w, "%-20s %8.1f km %10.3f K %9.5f W/m²\n",
					in.Name, in.Depth/profile.MetresPerKilometre, in.Temperature, in.HeatFlux)
			}

			return nil
		},
	}

	c.Flags().StringVarP(&cfgPath, "config", "c", "", "run file (YAML); the reference stack when omitted")
	c.Flags().StringVarP(&out, "out", "o", "", `output CSV path ("-" or empty for stdout)`)

	return c
}
