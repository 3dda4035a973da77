package valueobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTags(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want Tags
	}{
		{name: "nil input", raw: nil, want: Tags{}},
		{name: "trims and sorts", raw: []string{" travel", "food "}, want: Tags{"food", "travel"}},
		{name: "drops blanks", raw: []string{"", "  ", "rent"}, want: Tags{"rent"}},
		{name: "dedupes after trim", raw: []string{"rent", " rent", "rent "}, want: Tags{"rent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewTags(tt.raw))
		})
	}
}

func TestParseTags(t *testing.T) {
	_, err := ParseTags(nil)
	assert.ErrorIs(t, err, ErrEmptyTags)

	_, err = ParseTags([]string{"ok", " "})
	assert.ErrorIs(t, err, ErrBlankTag)

	_, err = ParseTags([]string{strings.Repeat("x", MaxTagLength+1)})
	assert.ErrorIs(t, err, ErrTagTooLong)

	tags, err := ParseTags([]string{"b", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, Tags{"a", "b"}, tags)
}

func TestTagsContainsAny(t *testing.T) {
	tags := NewTags([]string{"groceries", "weekly"})

	assert.True(t, tags.Contains("weekly"))
	assert.False(t, tags.Contains("monthly"))
	assert.True(t, tags.ContainsAny([]string{"monthly", "groceries"}))
	assert.False(t, tags.ContainsAny([]string{"monthly"}))
	assert.False(t, tags.ContainsAny(nil))
}

func TestTagsEqual(t *testing.T) {
	assert.True(t, NewTags([]string{"a", "b"}).Equal(NewTags([]string{"b", "a", "a"})))
	assert.False(t, NewTags([]string{"a"}).Equal(NewTags([]string{"a", "b"})))
}
