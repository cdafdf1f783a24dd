package vault

import (
	"strings"

	"github.com/aretw0/mpkv/pkg/core"
)

// Search returns every note matching term as a case-insensitive
// substring of its title, tags, or content, checked in that order with
// first match winning. The scan is best-effort: a note whose content
// file cannot be read is logged and skipped, while a total index-load
// failure still propagates.
func (v *Vault) Search(term string) ([]*core.Note, error) {
	doc, err := v.loadIndex()
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(term)
	var matches []*core.Note

	for id, rec := range doc.Notes {
		if strings.Contains(strings.ToLower(rec.Title), lower) {
			if note := v.fetchForSearch(id); note != nil {
				matches = append(matches, note)
			}
			continue
		}

		tagged := false
		for _, tag := range rec.Tags {
			if strings.Contains(strings.ToLower(tag), lower) {
				tagged = true
				break
			}
		}
		if tagged {
			if note := v.fetchForSearch(id); note != nil {
				matches = append(matches, note)
			}
			continue
		}

		content, err := v.readContent(id)
		if err != nil {
			v.logger.Warn("skipping unreadable note during search", "id", id, "error", err)
			continue
		}
		if strings.Contains(strings.ToLower(content), lower) {
			if note := v.fetchForSearch(id); note != nil {
				matches = append(matches, note)
			}
		}
	}

	return matches, nil
}

// fetchForSearch loads a matched note, converting per-note failures
// into a logged skip.
func (v *Vault) fetchForSearch(id string) *core.Note {
	note, err := v.Get(id)
	if err != nil {
		v.logger.Warn("skipping unreadable note during search", "id", id, "error", err)
		return nil
	}
	return note
}
