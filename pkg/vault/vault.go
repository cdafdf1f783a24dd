// Package vault implements the storage layer of mpkv: a root directory
// holding one content file per note plus a single JSON metadata index.
// The index is authoritative for which notes exist; orphan content
// files are tolerated.
package vault

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/mpkv/pkg/core"
)

// Vault is the orchestrating repository over the index and content
// stores. All operations are synchronous, blocking, and take no locks;
// concurrent processes on the same vault race last-writer-wins on the
// index file.
type Vault struct {
	path   string
	logger *slog.Logger
}

// New creates a Vault rooted at path. An empty path resolves to the
// default directory under the user's home. The directory layout is
// created lazily on first write, not here.
func New(path string, opts ...Option) (*Vault, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	return &Vault{
		path:   resolved,
		logger: o.logger,
	}, nil
}

// Path returns the resolved vault root directory.
func (v *Vault) Path() string {
	return v.path
}

// findIDByTitle scans the index for a note with the exact title.
// Returns the empty string when no note matches.
func (v *Vault) findIDByTitle(title string) (string, error) {
	doc, err := v.loadIndex()
	if err != nil {
		return "", err
	}
	for id, rec := range doc.Notes {
		if rec.Title == title {
			return id, nil
		}
	}
	return "", nil
}

// Create validates and durably creates a new note. The title must be
// unique across the vault (case-sensitive, exact match). The content
// file is written before the index references it; if the index save
// fails afterwards the content file is left behind as an orphan.
func (v *Vault) Create(title, content string, tags core.Tags) (*core.Note, error) {
	if err := v.ensureDirs(); err != nil {
		return nil, core.NewStorageError(fmt.Sprintf("failed to create note '%s'", title), err)
	}

	existing, err := v.findIDByTitle(title)
	if err != nil {
		return nil, err
	}
	if existing != "" {
		return nil, &core.DuplicateTitleError{Title: title}
	}

	note, err := core.NewNote(title, content, tags)
	if err != nil {
		return nil, err
	}

	if err := v.writeContent(note.ID, note.Content); err != nil {
		return nil, err
	}

	doc, err := v.loadIndex()
	if err != nil {
		return nil, err
	}
	doc.Notes[note.ID] = note.Record()
	if err := v.saveIndex(doc); err != nil {
		return nil, err
	}

	v.logger.Debug("note created", "id", note.ID, "title", note.Title)
	return note, nil
}

// Get retrieves a note by id, reconstituting it from the index record
// and its content file.
func (v *Vault) Get(id string) (*core.Note, error) {
	doc, err := v.loadIndex()
	if err != nil {
		return nil, err
	}

	rec, ok := doc.Notes[id]
	if !ok {
		return nil, &core.NotFoundError{Ref: id}
	}

	content, err := v.readContent(id)
	if err != nil {
		return nil, err
	}

	note, err := core.FromRecord(rec, content)
	if err != nil {
		return nil, core.NewStorageError(fmt.Sprintf("failed to load note '%s'", id), err)
	}
	return note, nil
}

// GetByTitle retrieves a note by its exact title.
func (v *Vault) GetByTitle(title string) (*core.Note, error) {
	id, err := v.findIDByTitle(title)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, &core.NotFoundError{Ref: title}
	}
	return v.Get(id)
}

// Delete removes a note by id. The content file is removed first
// (missing is tolerated), then the index entry is dropped and the
// index saved. A deleted id is permanently retired.
func (v *Vault) Delete(id string) error {
	doc, err := v.loadIndex()
	if err != nil {
		return err
	}

	if _, ok := doc.Notes[id]; !ok {
		return &core.NotFoundError{Ref: id}
	}

	if err := v.removeContent(id); err != nil {
		return err
	}

	delete(doc.Notes, id)
	if err := v.saveIndex(doc); err != nil {
		return err
	}

	v.logger.Debug("note deleted", "id", id)
	return nil
}

// DeleteByTitle removes a note by its exact title.
func (v *Vault) DeleteByTitle(title string) error {
	id, err := v.findIDByTitle(title)
	if err != nil {
		return err
	}
	if id == "" {
		return &core.NotFoundError{Ref: title}
	}
	return v.Delete(id)
}

// Titles returns every note title in the vault. Order is not
// specified.
func (v *Vault) Titles() ([]string, error) {
	doc, err := v.loadIndex()
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(doc.Notes))
	for _, rec := range doc.Notes {
		titles = append(titles, rec.Title)
	}
	return titles, nil
}

// TagCounts aggregates, for every tag appearing on any note, the
// number of distinct notes carrying it. An empty vault yields an empty
// map.
func (v *Vault) TagCounts() (map[string]int, error) {
	doc, err := v.loadIndex()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, rec := range doc.Notes {
		for _, tag := range rec.Tags {
			counts[tag]++
		}
	}
	return counts, nil
}
