package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/STBoyden/hatsim"
)

func addHatFlags(flags *pflag.FlagSet) {
	flags.String("hat", "", "hat contents as label=count pairs, e.g. red=5,blue=3")
	flags.String("expect", "", "minimum number of each label a draw must contain, e.g. red=2")
	flags.String("draw", "1", "number of balls drawn per trial")
	flags.StringP("output", "o", "text", "output format (text, json, yaml)")
}

// loadHat builds the hat named by --hat, seeded from --seed when present.
func (a *app) loadHat() (*hatsim.Hat, error) {
	text := a.v.GetString("hat")
	if text == "" {
		return nil, fmt.Errorf("--hat is required")
	}

	counts, err := hatsim.ParseCounts(text)
	if err != nil {
		return nil, err
	}

	return hatsim.NewHat(counts, hatsim.HatParams{Seed: a.v.GetUint64("seed")})
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Estimate a probability by repeated random draws",
		Example: `  hatsim run --hat red=5,blue=3 --expect red=2 --draw 3 --trials 1000
  hatsim run --hat blue=3,red=2,green=6 --expect blue=2,green=1 --draw 4 --exact -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hat, err := a.loadHat()
			if err != nil {
				return err
			}

			requirement, err := hatsim.ParsePairs(a.v.GetString("expect"))
			if err != nil {
				return err
			}

			// Unparseable numbers fall back to defaults here rather than
			// failing the command; see CoerceExperimentArgs.
			expected, draws, trials := hatsim.CoerceExperimentArgs(requirement, a.v.GetString("draw"), a.v.GetString("trials"), a.logger)

			report, err := hatsim.Run(hat, expected, draws, trials, hatsim.ExperimentParams{
				Logger:    a.logger,
				Seed:      a.v.GetUint64("seed"),
				WithExact: a.v.GetBool("exact"),
			})
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), a.v.GetString("output"), report)
		},
	}

	addHatFlags(cmd.Flags())
	cmd.Flags().String("trials", "1000", "number of trials to run")
	cmd.Flags().Uint64("seed", 0, "seed for reproducible runs (0 picks one at random)")
	cmd.Flags().Bool("exact", false, "also compute the exact hypergeometric probability")

	return cmd
}
