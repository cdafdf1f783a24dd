package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search notes",
	Long:  `Search all notes for the given term. The search is case-insensitive and matches titles, tags, and content.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		v, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		notes, err := v.Search(args[0])
		if err != nil {
			fatal("Failed to search notes", err)
		}

		if len(notes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "\nNo matching notes found.")
			return
		}

		fmt.Fprintln(cmd.OutOrStdout(), "\nMatching notes:")
		for _, note := range notes {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
