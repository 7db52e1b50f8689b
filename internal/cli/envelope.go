package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lithoprof/config"
	"github.com/katalvlaran/lithoprof/geotherm"
	"github.com/katalvlaran/lithoprof/profile"
	"github.com/katalvlaran/lithoprof/rheology"
)

func envelopeCmd(a *app) *cobra.Command {
	var cfgPath, geothermPath, out string

	c := &cobra.Command{
		Use:   "envelope",
		Short: "Compute the yield-strength envelope and write Depth (km),Differential stress (MPa)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := loadRun(cfgPath)
			if err != nil {
				return err
			}
			temps, err := temperatures(a, run, geothermPath)
			if err != nil {
				return err
			}

			opts := append(run.RheologyOptions(), rheology.WithLogger(a.logger))
			env, err := rheology.Solve(run.Stack, temps, opts...)
			if err != nil {
				return err
			}
			if err := writeProfile(out, env.Profile(), cmd.OutOrStdout()); err != nil {
				return err
			}

			w := summaryWriter(cmd, out)
			for _, tr := range env.Transitions() {
				fmt.Fprintf(w, "%8.3f km  %s -> %s\n", tr.Depth/profile.MetresPerKilometre, tr.From, tr.To)
			}

			return nil
		},
	}

	c.Flags().StringVarP(&cfgPath, "config", "c", "", "run file (YAML); the reference stack when omitted")
	c.Flags().StringVarP(&geothermPath, "geotherm", "g", "", "temperature CSV to use instead of solving the geotherm")
	c.Flags().StringVarP(&out, "out", "o", "", `output CSV path ("-" or empty for stdout)`)

	return c
}

// temperatures reads the geotherm from path, or solves it for run.
func temperatures(a *app, run config.Run, path string) (*profile.Profile, error) {
	if path == "" {
		depths, err := run.Depths()
		if err != nil {
			return nil, err
		}
		opts := append(run.GeothermOptions(), geotherm.WithLogger(a.logger))

		return geotherm.Solve(run.Stack, depths, opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := profile.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	a.logger.Debug("cli.geotherm_loaded", "path", path, "samples", p.Len())

	return p, nil
}
