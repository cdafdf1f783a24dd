package mpkv

import (
	"github.com/aretw0/mpkv/pkg/core"
	"github.com/aretw0/mpkv/pkg/vault"
)

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// Tags is a public alias for the tags input type.
type Tags = core.Tags

// TagsFromString builds a Tags input from a comma-separated string.
func TagsFromString(s string) Tags {
	return core.TagsFromString(s)
}

// TagsFromList builds a Tags input from an explicit list of tags.
func TagsFromList(list []string) Tags {
	return core.TagsFromList(list)
}

// --- Configuration ---

// Option defines a functional option for configuring a Vault.
type Option = vault.Option

// WithLogger sets the logger for the vault.
var WithLogger = vault.WithLogger

// --- Factory ---

// Open creates a Vault rooted at path. An empty path uses the default
// directory under the user's home.
func Open(path string, opts ...Option) (*vault.Vault, error) {
	return vault.New(path, opts...)
}

// --- Operations ---
//
// Each operation opens the vault at the given path (empty for the
// default) and performs a single call, mirroring the storage-layer
// boundary consumed by the CLI.

// Create validates and stores a new note.
func Create(path, title, content string, tags Tags, opts ...Option) (*Note, error) {
	v, err := vault.New(path, opts...)
	if err != nil {
		return nil, err
	}
	return v.Create(title, content, tags)
}

// GetByTitle retrieves a note by its exact title.
func GetByTitle(path, title string, opts ...Option) (*Note, error) {
	v, err := vault.New(path, opts...)
	if err != nil {
		return nil, err
	}
	return v.GetByTitle(title)
}

// DeleteByTitle removes a note by its exact title.
func DeleteByTitle(path, title string, opts ...Option) error {
	v, err := vault.New(path, opts...)
	if err != nil {
		return err
	}
	return v.DeleteByTitle(title)
}

// Titles lists every note title in the vault.
func Titles(path string, opts ...Option) ([]string, error) {
	v, err := vault.New(path, opts...)
	if err != nil {
		return nil, err
	}
	return v.Titles()
}

// Search returns the notes matching term in title, tags, or content.
func Search(path, term string, opts ...Option) ([]*Note, error) {
	v, err := vault.New(path, opts...)
	if err != nil {
		return nil, err
	}
	return v.Search(term)
}

// TagCounts aggregates tag usage across the vault.
func TagCounts(path string, opts ...Option) (map[string]int, error) {
	v, err := vault.New(path, opts...)
	if err != nil {
		return nil, err
	}
	return v.TagCounts()
}

// Export writes every note to outputDir as individual text files.
func Export(path, outputDir string, opts ...Option) error {
	v, err := vault.New(path, opts...)
	if err != nil {
		return err
	}
	return v.Export(outputDir)
}
