package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/credrank/cred"
	"github.com/katalvlaran/credrank/markov"
	"github.com/katalvlaran/credrank/solver"
	"github.com/katalvlaran/credrank/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Build the Markov process graph and compute cred scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		storePath, _ := cmd.Flags().GetString("store")

		scoringArgs, err := loadScoringInput(input)
		if err != nil {
			return err
		}
		scoringArgs.Parameters = markov.Parameters{
			Alpha:         viper.GetFloat64("alpha"),
			Beta:          viper.GetFloat64("beta"),
			GammaForward:  viper.GetFloat64("gamma-forward"),
			GammaBackward: viper.GetFloat64("gamma-backward"),
		}

		mpg, err := markov.New(scoringArgs)
		if err != nil {
			return err
		}
		chain, err := mpg.ToSparseChain()
		if err != nil {
			return err
		}
		scores, err := solver.StationaryDistribution(chain,
			solver.WithMaxIterations(viper.GetInt("max-iterations")),
			solver.WithTolerance(viper.GetFloat64("tolerance")))
		if err != nil {
			return err
		}
		cg, err := cred.New(mpg, scores)
		if err != nil {
			return err
		}

		doc, err := cg.ToJSON()
		if err != nil {
			return err
		}
		if output == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), string(doc))
		} else if err = os.WriteFile(output, doc, 0o644); err != nil {
			return err
		}

		if storePath != "" {
			s, serr := store.Open(storePath)
			if serr != nil {
				return serr
			}
			defer s.Close()
			key, serr := s.Put(cg)
			if serr != nil {
				return serr
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "stored as %s\n", key)
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("input", "", "scoring input document (required)")
	scoreCmd.Flags().String("output", "-", "cred graph output path, - for stdout")
	scoreCmd.Flags().String("store", "", "optional cred store directory to also persist into")
	scoreCmd.Flags().Float64("alpha", 0.1, "teleportation probability to the seed")
	scoreCmd.Flags().Float64("beta", 0.4, "payout probability from user-epoch to accumulator")
	scoreCmd.Flags().Float64("gamma-forward", 0.1, "forward temporal webbing probability")
	scoreCmd.Flags().Float64("gamma-backward", 0.1, "backward temporal webbing probability")
	scoreCmd.Flags().Int("max-iterations", solver.DefaultMaxIterations, "solver iteration budget")
	scoreCmd.Flags().Float64("tolerance", solver.DefaultTolerance, "solver L1 convergence threshold")
	_ = scoreCmd.MarkFlagRequired("input")

	for _, key := range []string{"alpha", "beta", "gamma-forward", "gamma-backward", "max-iterations", "tolerance"} {
		_ = viper.BindPFlag(key, scoreCmd.Flags().Lookup(key))
	}

	rootCmd.AddCommand(scoreCmd)
}
