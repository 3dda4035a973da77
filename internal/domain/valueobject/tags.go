// Package valueobject contains immutable value objects for the domain layer.
package valueobject

import (
	"errors"
	"sort"
	"strings"
)

// MaxTagLength is the maximum allowed length of a single tag.
const MaxTagLength = 50

var (
	// ErrEmptyTags is returned when a tag list that must not be empty is empty.
	ErrEmptyTags = errors.New("tags must be a non-empty list")

	// ErrBlankTag is returned when a tag list contains a blank entry.
	ErrBlankTag = errors.New("tags must not contain blank values")

	// ErrTagTooLong is returned when a tag exceeds MaxTagLength.
	ErrTagTooLong = errors.New("tag too long")
)

// Tags is a normalized set of free-form labels attached to a transaction.
// Entries are trimmed, unique and kept in ascending order.
type Tags []string

// NewTags builds a tag set from raw input, dropping blank entries and duplicates.
func NewTags(raw []string) Tags {
	seen := make(map[string]struct{}, len(raw))
	tags := make(Tags, 0, len(raw))
	for _, r := range raw {
		tag := strings.TrimSpace(r)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ParseTags builds a tag set from raw input and rejects empty lists,
// blank entries and oversized tags.
func ParseTags(raw []string) (Tags, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyTags
	}
	for _, r := range raw {
		trimmed := strings.TrimSpace(r)
		if trimmed == "" {
			return nil, ErrBlankTag
		}
		if len(trimmed) > MaxTagLength {
			return nil, ErrTagTooLong
		}
	}
	return NewTags(raw), nil
}

// Contains reports whether the set holds the given tag.
func (t Tags) Contains(tag string) bool {
	i := sort.SearchStrings(t, tag)
	return i < len(t) && t[i] == tag
}

// ContainsAny reports whether the set shares at least one tag with other.
func (t Tags) ContainsAny(other []string) bool {
	for _, o := range other {
		if t.Contains(o) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold exactly the same tags.
func (t Tags) Equal(other Tags) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// Strings returns a copy of the tags as a plain slice.
func (t Tags) Strings() []string {
	out := make([]string, len(t))
	copy(out, t)
	return out
}
