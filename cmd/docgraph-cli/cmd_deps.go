package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/docgraphhq/docgraph/client"
)

func newDepsCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "deps <file>",
		Short: "List everything a file transitively imports",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Graph.ForwardDeps(context.Background(), args[0], depth)
			if err != nil {
				fatal("deps", err)
			}
			outputTraversal(resp)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 3, "Max traversal depth")
	return cmd
}

func newDependentsCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "dependents <file>",
		Short: "List everything that transitively imports a file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Graph.ReverseDeps(context.Background(), args[0], depth)
			if err != nil {
				fatal("dependents", err)
			}
			outputTraversal(resp)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 3, "Max traversal depth")
	return cmd
}

func newRelatedCmd() *cobra.Command {
	var depth int
	var direction string
	cmd := &cobra.Command{
		Use:   "related <file>",
		Short: "List the combined neighborhood of a file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Graph.Related(context.Background(), args[0], direction, depth)
			if err != nil {
				fatal("related", err)
			}
			outputTraversal(resp)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 3, "Max traversal depth")
	cmd.Flags().StringVar(&direction, "direction", "", "Traversal direction: forward|reverse|both (default both)")
	return cmd
}

// outputTraversal renders a traversal response in the selected format.
func outputTraversal(resp *client.TraversalResponse) {
	if flagFmt == "table" {
		rows := make([][]string, 0, len(resp.Results))
		for _, r := range resp.Results {
			rows = append(rows, []string{r.File, strconv.Itoa(r.Depth), r.Direction})
		}
		formatTable([]string{"FILE", "DEPTH", "DIRECTION"}, rows)
		return
	}
	formatJSON(resp)
}
