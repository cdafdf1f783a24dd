package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/aretw0/mpkv/pkg/core"
)

// fallbackExportName is used when a sanitized title comes out empty.
const fallbackExportName = "untitled"

// Export writes every note to outputDir as <sanitized-title>.txt with
// a header line carrying the original title. Creating the output
// directory is fatal; exporting individual notes is best-effort and
// unreadable notes are logged and skipped.
func (v *Vault) Export(outputDir string) error {
	doc, err := v.loadIndex()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return &core.OutputDirError{Path: outputDir, Err: err}
	}

	for id, rec := range doc.Notes {
		content, err := v.readContent(id)
		if err != nil {
			v.logger.Warn("failed to export note", "id", id, "error", err)
			continue
		}

		title := rec.Title
		if title == "" {
			title = "Untitled"
		}

		path := filepath.Join(outputDir, sanitizeTitle(title)+core.ContentExt)
		body := fmt.Sprintf("Title: %s\n\n%s", title, content)

		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			v.logger.Warn("failed to export note", "id", id, "path", path, "error", err)
			continue
		}

		v.logger.Debug("note exported", "id", id, "path", path)
	}

	return nil
}

// sanitizeTitle converts a note title into a filesystem-safe filename:
// anything other than alphanumeric, space, hyphen, or underscore
// becomes an underscore, then spaces collapse to underscores.
func sanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		default:
			b.WriteRune('_')
		}
	}
	safe := b.String()
	if safe == "" {
		return fallbackExportName
	}
	return safe
}
