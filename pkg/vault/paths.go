package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DirName is the fixed hidden directory under the user's home
	// that holds the vault by default.
	DirName = ".mpkv"

	// NotesSubdir holds one content file per note.
	NotesSubdir = "notes"

	// IndexFilename is the single JSON metadata index at the vault
	// root.
	IndexFilename = "index.json"
)

// ResolvePath resolves the vault root directory. An empty custom path
// falls back to DirName under the user's home; a leading ~ is
// expanded.
func ResolvePath(custom string) (string, error) {
	if custom == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, DirName), nil
	}

	if custom == "~" || strings.HasPrefix(custom, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		custom = filepath.Join(home, strings.TrimPrefix(custom, "~"))
	}

	abs, err := filepath.Abs(custom)
	if err != nil {
		return "", fmt.Errorf("failed to resolve vault path %s: %w", custom, err)
	}
	return abs, nil
}

// notesDir returns the directory holding per-note content files.
func (v *Vault) notesDir() string {
	return filepath.Join(v.path, NotesSubdir)
}

// indexPath returns the location of the metadata index.
func (v *Vault) indexPath() string {
	return filepath.Join(v.path, IndexFilename)
}

// ensureDirs creates the vault directory layout. It is idempotent and
// is called defensively before every write operation.
func (v *Vault) ensureDirs() error {
	if err := os.MkdirAll(v.notesDir(), 0755); err != nil {
		return fmt.Errorf("failed to create vault directories: %w", err)
	}
	return nil
}
