package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message length bounds, inclusive.
const (
	MessageMinLen = 5
	MessageMaxLen = 140
)

// Tag is one of the fixed categories a thought can be filed under.
type Tag string

// The full tag enumeration. TagOther is the default when none are given.
const (
	TagTravel        Tag = "travel"
	TagFood          Tag = "food"
	TagFamily        Tag = "family"
	TagFriends       Tag = "friends"
	TagHumor         Tag = "humor"
	TagNature        Tag = "nature"
	TagWellness      Tag = "wellness"
	TagHome          Tag = "home"
	TagEntertainment Tag = "entertainment"
	TagWork          Tag = "work"
	TagOther         Tag = "other"
)

// AllTags lists every valid tag, in presentation order.
var AllTags = []Tag{
	TagTravel, TagFood, TagFamily, TagFriends, TagHumor, TagNature,
	TagWellness, TagHome, TagEntertainment, TagWork, TagOther,
}

// ParseTag normalizes a raw tag value to lowercase and reports whether it
// belongs to the enumeration.
func ParseTag(raw string) (Tag, bool) {
	candidate := Tag(strings.ToLower(raw))
	for _, tag := range AllTags {
		if tag == candidate {
			return tag, true
		}
	}

	return "", false
}

// Thought is a short user-authored message with tags and a like counter.
type Thought struct {
	ID        uuid.UUID // The unique identifier for the thought.
	Message   string    // The text body, 5 to 140 characters inclusive.
	Tags      []Tag     // Set of categories; never empty, defaults to [other].
	Hearts    int       // Non-negative like counter.
	AuthorID  uuid.UUID // The user that posted the thought.
	CreatedAt time.Time // Set at creation, immutable afterwards.
	UpdatedAt time.Time // Timestamp of the last edit.
}

// ValidMessage reports whether a message satisfies the length invariant.
func ValidMessage(message string) bool {
	length := len([]rune(message))

	return length >= MessageMinLen && length <= MessageMaxLen
}

// NormalizeTags lowercases and validates a raw tag list, returning the
// default set when the list is empty. The second return value is false if
// any value falls outside the enumeration.
func NormalizeTags(raw []string) ([]Tag, bool) {
	if len(raw) == 0 {
		return []Tag{TagOther}, true
	}

	tags := make([]Tag, 0, len(raw))
	seen := make(map[Tag]struct{}, len(raw))
	for _, value := range raw {
		tag, ok := ParseTag(value)
		if !ok {
			return nil, false
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags, true
}

// HasTag reports whether the thought is filed under the given tag.
func (t *Thought) HasTag(tag Tag) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}

	return false
}
