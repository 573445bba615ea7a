package swift

import "sort"

// Tag is a single name/value pair inside a tag-sequence block,
// written ":name:value" on the wire. The name is its identity; the
// value may be multi-line.
type Tag struct {
	Name  string
	Value string
}

// TagSequence is an ordered sequence of tags. Insertion order is
// significant (wire order is business order) and duplicate names are
// permitted and meaningful: repetitive fields appear once per
// repetition. The sequence performs no validation; that is the
// caller's responsibility.
type TagSequence struct {
	tags []Tag
}

// NewTagSequence creates a sequence from the given tags, in order.
func NewTagSequence(tags ...Tag) *TagSequence {
	s := &TagSequence{}
	for _, t := range tags {
		s.Append(t)
	}
	return s
}

// Append adds a tag at the end of the sequence.
func (s *TagSequence) Append(t Tag) {
	s.tags = append(s.tags, t)
}

// Add is shorthand for Append(Tag{name, value}).
func (s *TagSequence) Add(name, value string) {
	s.Append(Tag{Name: name, Value: value})
}

// Tags returns the underlying tag slice in wire order. The slice is
// shared with the sequence; callers must not reorder it.
func (s *TagSequence) Tags() []Tag {
	return s.tags
}

// Size returns the number of tags in the sequence.
func (s *TagSequence) Size() int {
	return len(s.tags)
}

// IsEmpty reports whether the sequence holds no tags.
func (s *TagSequence) IsEmpty() bool {
	return s == nil || len(s.tags) == 0
}

// TagsByName returns all tags with the given name, preserving their
// relative wire order.
func (s *TagSequence) TagsByName(name string) []Tag {
	var result []Tag
	for _, t := range s.tags {
		if t.Name == name {
			result = append(result, t)
		}
	}
	return result
}

// FirstByName returns the first tag with the given name.
func (s *TagSequence) FirstByName(name string) (Tag, bool) {
	for _, t := range s.tags {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

// TagValue returns the value of the first tag with the given name, or
// "" if the sequence holds no such tag.
func (s *TagSequence) TagValue(name string) string {
	t, ok := s.FirstByName(name)
	if !ok {
		return ""
	}
	return t.Value
}

// Contains reports whether the sequence holds at least one tag with
// the given name.
func (s *TagSequence) Contains(name string) bool {
	_, ok := s.FirstByName(name)
	return ok
}

// SubBlockBetween extracts the contiguous run starting at the first
// tag named startName, up to but excluding the next tag named
// endName. An empty endName extends the run to the end of the
// sequence. This is how repetitive sub-blocks are sliced out of the
// text block. Returns an empty sequence when startName is not found.
func (s *TagSequence) SubBlockBetween(startName, endName string) *TagSequence {
	result := &TagSequence{}
	started := false
	for _, t := range s.tags {
		if !started {
			if t.Name == startName {
				started = true
				result.Append(t)
			}
			continue
		}
		if endName != "" && t.Name == endName {
			break
		}
		result.Append(t)
	}
	return result
}

// TagNames returns the distinct tag names present in the sequence,
// sorted. Used only for field-type deduplication queries; wire order
// is never affected.
func (s *TagSequence) TagNames() []string {
	seen := make(map[string]bool, len(s.tags))
	var names []string
	for _, t := range s.tags {
		if !seen[t.Name] {
			seen[t.Name] = true
			names = append(names, t.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Clone creates a deep copy of the sequence.
func (s *TagSequence) Clone() *TagSequence {
	clone := &TagSequence{}
	if len(s.tags) > 0 {
		clone.tags = make([]Tag, len(s.tags))
		copy(clone.tags, s.tags)
	}
	return clone
}
