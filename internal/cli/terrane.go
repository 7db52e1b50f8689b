package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lithoprof/terrane"
)

func terraneCmd(a *app) *cobra.Command {
	var (
		out    string
		resume bool
		conn8  bool
		opts   = terrane.DefaultOptions()
	)

	c := &cobra.Command{
		Use:   "terrane SNAPSHOTS.csv...",
		Short: "Detect continental breakup and measure terrane width per model",
		Long: "Each argument is one model's long-format snapshot table " +
			"(step,x (km),z (km),astheno,crust[,vx]); the model name is the file name " +
			"without extension. Results are written as model,fragment width,breakup time.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if conn8 {
				opts.Conn = terrane.Conn8
			}

			var results []terrane.Result
			done := map[string]bool{}
			if resume {
				prev, err := readResults(out)
				if err != nil {
					return err
				}
				for _, r := range prev {
					done[r.Model] = true
				}
				results = prev
			}

			d := terrane.NewDetector(opts, a.logger)
			for _, path := range args {
				model := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				if done[model] {
					a.logger.Info("cli.terrane_skip", "model", model)
					continue
				}
				res, err := analyzeFile(d, model, path)
				if err != nil {
					return err
				}
				done[model] = true
				results = append(results, res)
				// checkpoint so --resume picks up here if a later model fails
				if err := writeResults(out, results); err != nil {
					return err
				}
				if res.BrokenUp {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: breakup at step %d, terrane %.1f km\n",
						model, res.BreakupStep, res.Width/1e3)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: no breakup\n", model)
				}
			}

			if resume {
				// every model may have been skipped
				return writeResults(out, results)
			}

			return nil
		},
	}

	c.Flags().StringVarP(&out, "out", "o", "results.csv", "results CSV path")
	c.Flags().BoolVar(&resume, "resume", false, "keep models already in --out and skip them")
	c.Flags().BoolVar(&conn8, "conn8", false, "join crust cells that touch diagonally")
	c.Flags().Float64Var(&opts.AsthenoThreshold, "astheno-threshold", opts.AsthenoThreshold, "asthenosphere fraction marking exposed mantle")
	c.Flags().Float64Var(&opts.CrustThreshold, "crust-threshold", opts.CrustThreshold, "minimum crust fraction of a continental cell")

	return c
}

func analyzeFile(d *terrane.Detector, model, path string) (terrane.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return terrane.Result{}, err
	}
	defer f.Close()

	snaps, err := terrane.ReadSnapshots(f)
	if err != nil {
		return terrane.Result{}, fmt.Errorf("read %s: %w", path, err)
	}

	return d.Analyze(model, snaps)
}

// readResults loads an earlier results table; a missing file is empty.
func readResults(path string) ([]terrane.Result, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return terrane.ReadResults(f)
}

func writeResults(path string, results []terrane.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return terrane.WriteResults(f, results)
}
