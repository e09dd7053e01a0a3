package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidMessage_Bounds(t *testing.T) {
	assert.False(t, ValidMessage(strings.Repeat("a", 4)))
	assert.True(t, ValidMessage(strings.Repeat("a", 5)))
	assert.True(t, ValidMessage(strings.Repeat("a", 140)))
	assert.False(t, ValidMessage(strings.Repeat("a", 141)))
}

func TestParseTag(t *testing.T) {
	tag, ok := ParseTag("Travel")
	require.True(t, ok)
	assert.Equal(t, TagTravel, tag)

	_, ok = ParseTag("gardening")
	assert.False(t, ok)
}

func TestNormalizeTags_DefaultsToOther(t *testing.T) {
	tags, ok := NormalizeTags(nil)
	require.True(t, ok)
	assert.Equal(t, []Tag{TagOther}, tags)
}

func TestNormalizeTags_RejectsUnknown(t *testing.T) {
	_, ok := NormalizeTags([]string{"travel", "skydiving"})
	assert.False(t, ok)
}

func TestNormalizeTags_LowercasesAndDeduplicates(t *testing.T) {
	tags, ok := NormalizeTags([]string{"FOOD", "food", "nature"})
	require.True(t, ok)
	assert.Equal(t, []Tag{TagFood, TagNature}, tags)
}

func TestThought_HasTag(t *testing.T) {
	thought := &Thought{Tags: []Tag{TagHumor, TagWork}}
	assert.True(t, thought.HasTag(TagWork))
	assert.False(t, thought.HasTag(TagHome))
}
