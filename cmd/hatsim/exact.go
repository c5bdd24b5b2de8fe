package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/STBoyden/hatsim"
)

func newExactCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exact",
		Short:   "Compute the exact probability without simulating",
		Example: `  hatsim exact --hat red=5,blue=3 --expect red=2 --draw 3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hat, err := a.loadHat()
			if err != nil {
				return err
			}

			requirement, err := hatsim.ParseRequirement(a.v.GetString("expect"))
			if err != nil {
				return err
			}

			draws, err := strconv.Atoi(a.v.GetString("draw"))
			if err != nil {
				return fmt.Errorf("invalid --draw %q: %w", a.v.GetString("draw"), err)
			}

			probability, err := hatsim.ExactProbability(hat.Original(), requirement, draws)
			if err != nil {
				return err
			}

			return writeExact(cmd.OutOrStdout(), a.v.GetString("output"), draws, probability)
		},
	}

	addHatFlags(cmd.Flags())

	return cmd
}
