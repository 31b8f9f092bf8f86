package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [root]",
		Short: "Scan a corpus directory on the server and rebuild the index",
		Long: "Trigger a server-side scan. The optional root argument must be a " +
			"directory path visible to the server; when omitted the server scans " +
			"its configured corpus root.",
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			root := ""
			if len(args) == 1 {
				root = args[0]
			}
			res, err := apiClient.Ingest.Scan(context.Background(), root)
			if err != nil {
				fatal("ingest", err)
			}
			if flagFmt == "table" {
				fmt.Printf("scanned %d, indexed %d, skipped %d, edges %d in %s\n",
					res.Scanned, res.Indexed, res.Skipped, res.Edges, res.Duration)
				return
			}
			formatJSON(res)
		},
	}
}
