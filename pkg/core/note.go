package core

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ContentExt is the extension of per-note content files.
const ContentExt = ".txt"

// Note is the central entity of the vault: a single knowledge item
// identified by a stable id. Content is stored in its own file; the
// remaining fields are mirrored in the vault index.
type Note struct {
	ID           string
	Title        string
	Content      string
	Tags         []string
	CreatedAt    time.Time
	LastModified time.Time
	Filename     string
}

// Record is the metadata representation of a note as stored in the
// vault index. It excludes content.
type Record struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
	Filename     string    `json:"filename"`
}

// NewNote constructs a validated note with a fresh id, both timestamps
// set to now (UTC), and a filename derived from the id.
func NewNote(title, content string, tags Tags) (*Note, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := ValidateContent(content); err != nil {
		return nil, err
	}
	normalized, err := tags.normalize()
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	return &Note{
		ID:           id,
		Title:        title,
		Content:      content,
		Tags:         normalized,
		CreatedAt:    now,
		LastModified: now,
		Filename:     id + ContentExt,
	}, nil
}

// FromRecord reconstructs a note from an index record plus its
// separately stored content. A record without a title is a
// data-integrity failure. Absent optional fields fall back the same
// way construction does: zero id generates a fresh one, zero
// timestamps default to now / created_at, an empty filename is derived
// from the id.
func FromRecord(rec Record, content string) (*Note, error) {
	if rec.Title == "" {
		return nil, errors.New("note record has no title")
	}
	if err := ValidateTitle(rec.Title); err != nil {
		return nil, err
	}
	if err := ValidateContent(content); err != nil {
		return nil, err
	}
	tags, err := TagsFromList(rec.Tags).normalize()
	if err != nil {
		return nil, err
	}

	id := rec.ID
	if id == "" {
		id = uuid.New().String()
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	lastModified := rec.LastModified
	if lastModified.IsZero() {
		lastModified = createdAt
	}

	filename := rec.Filename
	if filename == "" {
		filename = id + ContentExt
	}

	return &Note{
		ID:           id,
		Title:        rec.Title,
		Content:      content,
		Tags:         tags,
		CreatedAt:    createdAt,
		LastModified: lastModified,
		Filename:     filename,
	}, nil
}

// Record produces the metadata record stored in the vault index.
// Content is deliberately excluded; nil tags serialize as an empty
// list.
func (n *Note) Record() Record {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return Record{
		ID:           n.ID,
		Title:        n.Title,
		Tags:         tags,
		CreatedAt:    n.CreatedAt,
		LastModified: n.LastModified,
		Filename:     n.Filename,
	}
}

// UpdateTitle revalidates and replaces the title, advancing
// LastModified.
func (n *Note) UpdateTitle(title string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	n.Title = title
	n.LastModified = time.Now().UTC()
	return nil
}

// UpdateContent revalidates and replaces the content, advancing
// LastModified.
func (n *Note) UpdateContent(content string) error {
	if err := ValidateContent(content); err != nil {
		return err
	}
	n.Content = content
	n.LastModified = time.Now().UTC()
	return nil
}

// UpdateTags revalidates and replaces the tags, advancing
// LastModified.
func (n *Note) UpdateTags(tags Tags) error {
	normalized, err := tags.normalize()
	if err != nil {
		return err
	}
	n.Tags = normalized
	n.LastModified = time.Now().UTC()
	return nil
}
