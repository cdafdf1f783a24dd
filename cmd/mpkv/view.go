package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var viewJSON bool

var viewCmd = &cobra.Command{
	Use:   "view <title>",
	Short: "View a note",
	Long:  `View a note by its title. Outputs raw content by default, or the full note as JSON with --json.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		v, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		note, err := v.GetByTitle(args[0])
		if err != nil {
			fatal("Failed to retrieve note", err)
		}

		if viewJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", note.Content)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVar(&viewJSON, "json", false, "Output in JSON format")
}
