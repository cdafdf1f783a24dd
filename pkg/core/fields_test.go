package core

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{
			name:    "Simple",
			title:   "Meeting Notes",
			wantErr: false,
		},
		{
			name:    "Empty",
			title:   "",
			wantErr: true,
		},
		{
			name:    "Exactly max length",
			title:   strings.Repeat("a", MaxTitleLen),
			wantErr: false,
		},
		{
			name:    "One over max length",
			title:   strings.Repeat("a", MaxTitleLen+1),
			wantErr: true,
		},
		{
			name:    "Punctuation rejected",
			title:   "Meeting: Notes",
			wantErr: true,
		},
		{
			name:    "Slash rejected",
			title:   "Test/Note",
			wantErr: true,
		},
		{
			name:    "Digits and spaces allowed",
			title:   "Q1 2026 Roadmap",
			wantErr: false,
		},
		{
			name:    "Unicode letters allowed",
			title:   "Reunião de planejamento",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
			if err != nil {
				if _, ok := err.(*ValidationError); !ok {
					t.Errorf("ValidateTitle(%q) returned %T, want *ValidationError", tt.title, err)
				}
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{name: "One under min", length: MinContentLen - 1, wantErr: true},
		{name: "Exactly min", length: MinContentLen, wantErr: false},
		{name: "Exactly max", length: MaxContentLen, wantErr: false},
		{name: "One over max", length: MaxContentLen + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(strings.Repeat("x", tt.length))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContent(len %d) error = %v, wantErr %v", tt.length, err, tt.wantErr)
			}
		})
	}
}

func TestTagsNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   Tags
		want    []string
		wantErr bool
	}{
		{
			name:  "Absent",
			input: Tags{},
			want:  nil,
		},
		{
			name:  "Comma separated string",
			input: TagsFromString("work, planning"),
			want:  []string{"work", "planning"},
		},
		{
			name:  "Trims and drops empties",
			input: TagsFromString(" , a ,, b "),
			want:  []string{"a", "b"},
		},
		{
			name:  "Empty string yields no tags",
			input: TagsFromString(""),
			want:  []string{},
		},
		{
			name:  "List input",
			input: TagsFromList([]string{" go ", "", "notes"}),
			want:  []string{"go", "notes"},
		},
		{
			name:  "Exactly max tags",
			input: TagsFromList(manyTags(MaxTags)),
			want:  manyTags(MaxTags),
		},
		{
			name:    "One over max tags",
			input:   TagsFromList(manyTags(MaxTags + 1)),
			wantErr: true,
		},
		{
			name:  "Tag at max length",
			input: TagsFromString(strings.Repeat("t", MaxTagLen)),
			want:  []string{strings.Repeat("t", MaxTagLen)},
		},
		{
			name:    "Tag over max length",
			input:   TagsFromString(strings.Repeat("t", MaxTagLen+1)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.normalize()
			if (err != nil) != tt.wantErr {
				t.Fatalf("normalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func manyTags(n int) []string {
	tags := make([]string, n)
	for i := range tags {
		tags[i] = "tag" + string(rune('a'+i%26)) + string(rune('a'+i/26))
	}
	return tags
}
