package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/aretw0/mpkv/pkg/core"
)

// contentPath returns the content file location for a note id.
func (v *Vault) contentPath(id string) string {
	return filepath.Join(v.notesDir(), id+core.ContentExt)
}

// readContent reads a note's body from its content file.
func (v *Vault) readContent(id string) (string, error) {
	path := v.contentPath(id)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", &core.NotFoundError{Ref: id}
	}
	if err != nil {
		return "", core.NewStorageError(fmt.Sprintf("failed to read note content from %s", path), err)
	}
	return string(data), nil
}

// writeContent writes a note's body to its content file.
func (v *Vault) writeContent(id, content string) error {
	if err := v.ensureDirs(); err != nil {
		return core.NewStorageError("failed to write note content", err)
	}

	path := v.contentPath(id)
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return core.NewStorageError(fmt.Sprintf("failed to write note content to %s", path), err)
	}

	v.logger.Debug("note content written", "id", id, "path", path)
	return nil
}

// removeContent deletes a note's content file. A file that is already
// gone is tolerated; delete remains best-effort on the content side.
func (v *Vault) removeContent(id string) error {
	path := v.contentPath(id)

	err := os.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return core.NewStorageError(fmt.Sprintf("failed to remove note file %s", path), err)
}
