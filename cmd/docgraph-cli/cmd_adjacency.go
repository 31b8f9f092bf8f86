package main

import (
	"context"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newAdjacencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjacency",
		Short: "Dump the full forward adjacency map",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Graph.Adjacency(context.Background())
			if err != nil {
				fatal("adjacency", err)
			}
			if flagFmt == "table" {
				sources := make([]string, 0, len(resp.Adjacency))
				for s := range resp.Adjacency {
					sources = append(sources, s)
				}
				sort.Strings(sources)
				rows := make([][]string, 0, len(sources))
				for _, s := range sources {
					rows = append(rows, []string{s, strings.Join(resp.Adjacency[s], ", ")})
				}
				formatTable([]string{"FILE", "IMPORTS"}, rows)
				return
			}
			formatJSON(resp)
		},
	}
}
