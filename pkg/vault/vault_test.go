package vault

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mpkv/pkg/core"
)

func newTestVault(t *testing.T) *Vault {
	t.Helper()
	v, err := New(t.TempDir(), WithLogger(slog.Default()))
	require.NoError(t, err)
	return v
}

func TestCreateAndGetByTitle(t *testing.T) {
	v := newTestVault(t)

	created, err := v.Create("Meeting Notes", "Discuss Q1 roadmap items.", core.TagsFromString("work, planning"))
	require.NoError(t, err)

	got, err := v.GetByTitle("Meeting Notes")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Discuss Q1 roadmap items.", got.Content)
	assert.Equal(t, []string{"work", "planning"}, got.Tags)

	titles, err := v.Titles()
	require.NoError(t, err)
	assert.Contains(t, titles, "Meeting Notes")

	counts, err := v.TagCounts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"work": 1, "planning": 1}, counts)
}

func TestCreateDuplicateTitle(t *testing.T) {
	v := newTestVault(t)

	_, err := v.Create("A", "first note content", core.Tags{})
	require.NoError(t, err)

	_, err = v.Create("A", "second note content", core.Tags{})
	var dup *core.DuplicateTitleError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "A", dup.Title)

	titles, err := v.Titles()
	require.NoError(t, err)
	assert.Len(t, titles, 1)
}

func TestCreateValidationFailsBeforeStorage(t *testing.T) {
	v := newTestVault(t)

	_, err := v.Create("Bad! Title", "content long enough", core.Tags{})
	var verr *core.ValidationError
	require.ErrorAs(t, err, &verr)

	titles, err := v.Titles()
	require.NoError(t, err)
	assert.Empty(t, titles)

	entries, err := os.ReadDir(v.notesDir())
	require.NoError(t, err)
	assert.Empty(t, entries, "no content file may exist after a validation failure")
}

func TestGetByTitleNotFound(t *testing.T) {
	v := newTestVault(t)

	_, err := v.GetByTitle("Missing")
	var nf *core.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Missing", nf.Ref)
}

func TestDeleteThenGet(t *testing.T) {
	v := newTestVault(t)

	_, err := v.Create("Ephemeral", "content long enough", core.Tags{})
	require.NoError(t, err)

	require.NoError(t, v.DeleteByTitle("Ephemeral"))

	_, err = v.GetByTitle("Ephemeral")
	var nf *core.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestDeleteToleratesMissingContentFile(t *testing.T) {
	v := newTestVault(t)

	note, err := v.Create("Half Gone", "content long enough", core.Tags{})
	require.NoError(t, err)

	require.NoError(t, os.Remove(v.contentPath(note.ID)))
	require.NoError(t, v.DeleteByTitle("Half Gone"))

	titles, err := v.Titles()
	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestDeleteNotFound(t *testing.T) {
	v := newTestVault(t)

	err := v.DeleteByTitle("Nobody")
	var nf *core.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestFreshVaultIsEmpty(t *testing.T) {
	v := newTestVault(t)

	titles, err := v.Titles()
	require.NoError(t, err)
	assert.Empty(t, titles)

	counts, err := v.TagCounts()
	require.NoError(t, err)
	assert.Empty(t, counts)

	notes, err := v.Search("anything")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestMalformedIndexIsStorageError(t *testing.T) {
	v := newTestVault(t)
	require.NoError(t, v.ensureDirs())
	require.NoError(t, os.WriteFile(v.indexPath(), []byte("{not json"), 0644))

	_, err := v.Titles()
	var serr *core.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Error(t, serr.Unwrap())
}

func TestTagCountsAggregation(t *testing.T) {
	v := newTestVault(t)

	_, err := v.Create("First", "content long enough", core.TagsFromString("go, notes"))
	require.NoError(t, err)
	_, err = v.Create("Second", "content long enough", core.TagsFromString("go"))
	require.NoError(t, err)
	_, err = v.Create("Third", "content long enough", core.Tags{})
	require.NoError(t, err)

	counts, err := v.TagCounts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"go": 2, "notes": 1}, counts)
}

// Concurrent processes take no locks on the index: the last writer
// wins and intermediate state is not merged. This test documents that
// behavior rather than asserting atomicity.
func TestIndexLastWriterWins(t *testing.T) {
	dir := t.TempDir()
	v1, err := New(dir)
	require.NoError(t, err)
	v2, err := New(dir)
	require.NoError(t, err)

	// v1 loads the (empty) index and holds on to it.
	stale, err := v1.loadIndex()
	require.NoError(t, err)

	// v2 creates a note in the meantime.
	note, err := v2.Create("Casualty", "content long enough", core.Tags{})
	require.NoError(t, err)

	// v1 saves its stale view, wiping v2's entry. The content file
	// survives as an orphan; the index is authoritative.
	require.NoError(t, v1.saveIndex(stale))

	titles, err := v2.Titles()
	require.NoError(t, err)
	assert.Empty(t, titles)
	assert.FileExists(t, v2.contentPath(note.ID))
}

func TestResolvePathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DirName), got)
}

func TestResolvePathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolvePath("~/my-vault")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "my-vault"), got)
}

func TestCreateEnsuresDirsLazily(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "vault")
	v, err := New(root)
	require.NoError(t, err)

	_, err = v.Create("Lazy", "content long enough", core.Tags{})
	require.NoError(t, err)
	assert.DirExists(t, v.notesDir())
	assert.FileExists(t, v.indexPath())
}

func TestGetWrapsCorruptRecord(t *testing.T) {
	v := newTestVault(t)

	// A record without a title is a data-integrity failure surfaced
	// as a storage error.
	doc := newIndexDoc()
	doc.Notes["broken-id"] = core.Record{ID: "broken-id"}
	require.NoError(t, v.saveIndex(doc))
	require.NoError(t, v.writeContent("broken-id", "content long enough"))

	_, err := v.Get("broken-id")
	require.Error(t, err)
	var serr *core.StorageError
	assert.True(t, errors.As(err, &serr))
}
