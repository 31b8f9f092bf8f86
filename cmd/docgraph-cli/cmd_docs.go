package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage indexed documents",
	}
	cmd.AddCommand(newDocsListCmd())
	cmd.AddCommand(newDocsShowCmd())
	cmd.AddCommand(newDocsRmCmd())
	cmd.AddCommand(newDocsEdgesCmd())
	return cmd
}

func newDocsListCmd() *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed documents",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			list, err := apiClient.Documents.List(context.Background(), limit, offset)
			if err != nil {
				fatal("docs list", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(list.Items))
				for _, d := range list.Items {
					rows = append(rows, []string{
						d.FilePath,
						d.Title,
						d.UpdatedAt.Format(time.RFC3339),
					})
				}
				formatTable([]string{"FILE", "TITLE", "UPDATED"}, rows)
				if list.HasMore {
					fmt.Println("(more results; use --offset)")
				}
				return
			}
			formatJSON(list)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Max documents to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Offset into the result set")
	return cmd
}

func newDocsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Show one document's metadata",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doc, err := apiClient.Documents.Get(context.Background(), args[0])
			if err != nil {
				fatal("docs show", err)
			}
			formatJSON(doc)
		},
	}
}

func newDocsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file>",
		Short: "Remove a document and its edges from the index",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := apiClient.Documents.Delete(context.Background(), args[0]); err != nil {
				fatal("docs rm", err)
			}
			fmt.Printf("removed %s\n", args[0])
		},
	}
}

func newDocsEdgesCmd() *cobra.Command {
	var from, to string
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "edges",
		Short: "List raw dependency edges",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			list, err := apiClient.Documents.Dependencies(context.Background(), from, to, limit, offset)
			if err != nil {
				fatal("docs edges", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, 0, len(list.Items))
				for _, e := range list.Items {
					rows = append(rows, []string{e.FromFile, e.ToFile, e.ImportType})
				}
				formatTable([]string{"FROM", "TO", "TYPE"}, rows)
				return
			}
			formatJSON(list)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Filter by source file")
	cmd.Flags().StringVar(&to, "to", "", "Filter by target file")
	cmd.Flags().IntVar(&limit, "limit", 50, "Max edges to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Offset into the result set")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show index size counters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			stats, err := apiClient.Stats(context.Background())
			if err != nil {
				fatal("stats", err)
			}
			if flagFmt == "table" {
				formatTable([]string{"DOCUMENTS", "DEPENDENCIES"}, [][]string{{
					strconv.Itoa(stats.Documents),
					strconv.Itoa(stats.Dependencies),
				}})
				return
			}
			formatJSON(stats)
		},
	}
}
