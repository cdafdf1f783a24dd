package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags and their usage counts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		counts, err := v.TagCounts()
		if err != nil {
			fatal("Failed to get tags", err)
		}

		if len(counts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "\nNo tags found.")
			return
		}

		tags := make([]string, 0, len(counts))
		for tag := range counts {
			tags = append(tags, tag)
		}
		sort.Strings(tags)

		fmt.Fprintln(cmd.OutOrStdout(), "\nTags:")
		for _, tag := range tags {
			count := counts[tag]
			plural := ""
			if count != 1 {
				plural = "s"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "- %s (%d note%s)\n", tag, count, plural)
		}
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
