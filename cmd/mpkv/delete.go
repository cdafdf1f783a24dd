package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete a note",
	Long:  `Delete permanently removes a note and its content file from the vault.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		v, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		if err := v.DeleteByTitle(args[0]); err != nil {
			fatal("Failed to delete note", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nNote '%s' deleted successfully!\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
