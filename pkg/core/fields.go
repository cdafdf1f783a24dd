package core

import (
	"strings"
	"unicode"
)

// Field limits applied on every construction or mutation.
const (
	MaxTitleLen   = 100
	MinContentLen = 10
	MaxContentLen = 10000
	MaxTags       = 20
	MaxTagLen     = 30
)

// ValidateTitle checks that a title is non-empty, at most MaxTitleLen
// characters, and contains only alphanumeric or whitespace characters.
func ValidateTitle(title string) error {
	if title == "" {
		return newValidationError("title", "is required and cannot be empty")
	}
	if n := len([]rune(title)); n > MaxTitleLen {
		return newValidationError("title", "must not exceed %d characters (got %d)", MaxTitleLen, n)
	}
	for _, r := range title {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return newValidationError("title",
				"contains invalid character %q, only alphanumeric characters and spaces are allowed", r)
		}
	}
	return nil
}

// ValidateContent checks that content length lies within
// [MinContentLen, MaxContentLen], both boundaries inclusive.
func ValidateContent(content string) error {
	n := len([]rune(content))
	if n < MinContentLen {
		return newValidationError("content", "must be at least %d characters (got %d)", MinContentLen, n)
	}
	if n > MaxContentLen {
		return newValidationError("content", "must not exceed %d characters (got %d)", MaxContentLen, n)
	}
	return nil
}

// Tags is the input form for a note's tags. Callers supply either a
// comma-separated string or an explicit list; the zero value means no
// tags. Normalization trims whitespace and drops empty entries.
type Tags struct {
	raw  string
	list []string
	kind tagsKind
}

type tagsKind int

const (
	tagsAbsent tagsKind = iota
	tagsString
	tagsList
)

// TagsFromString builds a Tags input from a comma-separated string.
func TagsFromString(s string) Tags {
	return Tags{raw: s, kind: tagsString}
}

// TagsFromList builds a Tags input from an explicit list of tags.
func TagsFromList(list []string) Tags {
	return Tags{list: list, kind: tagsList}
}

// normalize resolves the input to a canonical slice of tags, enforcing
// the MaxTags and MaxTagLen limits.
func (t Tags) normalize() ([]string, error) {
	var parts []string
	switch t.kind {
	case tagsAbsent:
		return nil, nil
	case tagsString:
		parts = strings.Split(t.raw, ",")
	case tagsList:
		parts = t.list
	}

	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, p)
	}

	if len(tags) > MaxTags {
		return nil, newValidationError("tags", "cannot have more than %d tags (got %d)", MaxTags, len(tags))
	}
	for _, tag := range tags {
		if n := len([]rune(tag)); n > MaxTagLen {
			return nil, newValidationError("tags", "tag '%s' exceeds maximum length of %d", tag, MaxTagLen)
		}
	}
	return tags, nil
}
