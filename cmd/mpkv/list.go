package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes in the vault",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		titles, err := v.Titles()
		if err != nil {
			fatal("Failed to list notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(titles); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if len(titles) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "\nNo notes found.")
			return
		}

		fmt.Fprintln(cmd.OutOrStdout(), "\nNotes:")
		for _, title := range titles {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
