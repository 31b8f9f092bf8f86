package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newEntryPointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entrypoints",
		Short: "List files nothing depends on",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			files, err := apiClient.Graph.EntryPoints(context.Background())
			if err != nil {
				fatal("entrypoints", err)
			}
			outputFileList(files)
		},
	}
}

func newLeavesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaves",
		Short: "List files that depend on nothing further",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			files, err := apiClient.Graph.LeafNodes(context.Background())
			if err != nil {
				fatal("leaves", err)
			}
			outputFileList(files)
		},
	}
}

// outputFileList renders a plain list of files.
func outputFileList(files []string) {
	if flagFmt == "table" {
		rows := make([][]string, 0, len(files))
		for _, f := range files {
			rows = append(rows, []string{f})
		}
		formatTable([]string{"FILE"}, rows)
		return
	}
	formatJSON(files)
}
