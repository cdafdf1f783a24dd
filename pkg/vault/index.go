package vault

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/aretw0/mpkv/pkg/core"
)

// indexDoc is the single JSON metadata document. It is the sole source
// of truth for which notes exist; content lives only in per-note
// files.
type indexDoc struct {
	Notes map[string]core.Record `json:"notes"`
}

func newIndexDoc() *indexDoc {
	return &indexDoc{Notes: make(map[string]core.Record)}
}

// loadIndex reads and parses the index file. A missing file is the
// fresh-vault case and yields an empty document; malformed JSON is a
// storage failure.
func (v *Vault) loadIndex() (*indexDoc, error) {
	data, err := os.ReadFile(v.indexPath())
	if os.IsNotExist(err) {
		return newIndexDoc(), nil
	}
	if err != nil {
		return nil, core.NewStorageError(fmt.Sprintf("failed to read index %s", v.indexPath()), err)
	}

	doc := newIndexDoc()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, core.NewStorageError(fmt.Sprintf("invalid JSON in index file %s", v.indexPath()), err)
	}
	if doc.Notes == nil {
		doc.Notes = make(map[string]core.Record)
	}
	return doc, nil
}

// saveIndex replaces the whole index file with pretty-printed JSON.
// The write is atomic at the file level (temp file + rename); there is
// no cross-file transaction with content writes.
func (v *Vault) saveIndex(doc *indexDoc) error {
	if err := v.ensureDirs(); err != nil {
		return core.NewStorageError("failed to save index", err)
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return core.NewStorageError("failed to encode index", err)
	}

	if err := atomic.WriteFile(v.indexPath(), bytes.NewReader(data)); err != nil {
		return core.NewStorageError(fmt.Sprintf("failed to save index to %s", v.indexPath()), err)
	}

	v.logger.Debug("index saved", "path", v.indexPath(), "notes", len(doc.Notes))
	return nil
}
