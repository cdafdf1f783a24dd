package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/mpkv/internal/config"
)

// defaultExportDir is used when neither --output-dir nor the config
// file names one.
const defaultExportDir = "mpkv_export"

var exportOutputDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes to text files",
	Long: `Export every note to an individual text file in the output directory.
Files are named after the sanitized note title and contain a header
line with the original title followed by the content.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		outputDir := exportOutputDir
		if outputDir == "" {
			cfg, err := config.Load()
			if err != nil {
				slog.Default().Warn("ignoring unreadable config file", "error", err)
			} else {
				outputDir = cfg.ExportDir
			}
		}
		if outputDir == "" {
			outputDir = defaultExportDir
		}

		v, err := openVault()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		if err := v.Export(outputDir); err != nil {
			fatal("Failed to export notes", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nNotes exported successfully to: %s\n", outputDir)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOutputDir, "output-dir", "", "Directory to export notes to (default: mpkv_export)")
}
