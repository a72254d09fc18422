package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/credrank/addr"
	"github.com/katalvlaran/credrank/cred"
	"github.com/katalvlaran/credrank/markov"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Render a cred graph document: top contributions and participants",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		top, _ := cmd.Flags().GetInt("top")

		data, err := os.ReadFile(input)
		if err != nil {
			return err
		}
		cg, err := cred.FromJSON(data)
		if err != nil {
			return err
		}

		heading := color.New(color.FgCyan, color.Bold)
		value := color.New(color.FgGreen)

		heading.Fprintf(cmd.OutOrStdout(), "Top %d contributions by cred\n", top)
		for _, n := range topNodes(cg, top) {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s (%s)\n",
				value.Sprintf("%.6f", n.Cred), n.Description, n.Address)
		}

		parts, err := cg.Participants()
		if err != nil {
			return err
		}
		heading.Fprintln(cmd.OutOrStdout(), "Participants")
		for _, p := range parts {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s (%d epochs)\n",
				value.Sprintf("%.6f", p.Cred), p.Description, len(p.CredPerEpoch))
		}
		return nil
	},
}

// topNodes collects the organic (non-structural) nodes with the highest
// cred; ties break on address order so output stays deterministic.
func topNodes(cg *cred.Graph, top int) []cred.Node {
	var nodes []cred.Node
	for n := range cg.Nodes(addr.NodeAddress{}) {
		if n.Address.HasPrefix(markov.CoreNodePrefix) {
			continue
		}
		nodes = append(nodes, n)
	}
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Cred > nodes[j].Cred })
	if len(nodes) > top {
		nodes = nodes[:top]
	}
	return nodes
}

func init() {
	inspectCmd.Flags().String("input", "", "cred graph document (required)")
	inspectCmd.Flags().Int("top", 10, "number of contributions to show")
	_ = inspectCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(inspectCmd)
}
