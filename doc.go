// Package mpkv is a personal note vault. Notes (title, free-text
// content, tags) are persisted as one content file per note plus a
// single JSON metadata index under a vault directory, defaulting to
// ~/.mpkv.
//
// The root package is a thin facade over pkg/vault (storage) and
// pkg/core (domain entity, validation, error taxonomy):
//
//	note, err := mpkv.Create("", "Meeting Notes",
//		"Discuss Q1 roadmap items.", mpkv.TagsFromString("work, planning"))
//
// Titles are unique across a vault. Search is a case-insensitive
// linear scan over titles, tags, and content. There is no cross-file
// transaction between a note's content file and the index, and no
// locking across processes; concurrent writers race last-writer-wins
// on the index.
package mpkv
