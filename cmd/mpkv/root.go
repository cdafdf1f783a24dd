package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/mpkv/internal/config"
	"github.com/aretw0/mpkv/pkg/vault"
)

var (
	verbose   bool
	vaultFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mpkv",
	Short: "A simple note-taking system",
	Long: `mpkv stores notes as plain text files plus a JSON index in a vault
directory (default: ~/.mpkv). Notes have a unique title, free-text
content, and optional tags.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&vaultFlag, "vault", "", "Vault directory (default: ~/.mpkv)")
}

// vaultPath resolves the vault location: --vault flag, then MPKV_VAULT
// (including values loaded from .env), then the global config file,
// then the built-in default.
func vaultPath() string {
	if vaultFlag != "" {
		return vaultFlag
	}
	if env := os.Getenv("MPKV_VAULT"); env != "" {
		return env
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Default().Warn("ignoring unreadable config file", "error", err)
		return ""
	}
	return cfg.VaultPath
}

// openVault builds the Vault for the resolved path.
func openVault() (*vault.Vault, error) {
	return vault.New(vaultPath(), vault.WithLogger(slog.Default()))
}
