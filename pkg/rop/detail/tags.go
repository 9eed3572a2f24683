package detail

import "sort"

// Tag is the stable discriminant of a Detail variant.
type Tag string

const (
	TagAPIError        Tag = "ApiError"
	TagAssertionFailed Tag = "AssertionFailed"
	TagTechnical       Tag = "Technical"
	TagUser            Tag = "User"
	TagShortCircuited  Tag = "ShortCircuited"
)

type tagKind int

const (
	standardTag tagKind = iota
	customTag
)

// Tags returns every registered tag, standard and custom, sorted.
func Tags() []Tag {
	out := make([]Tag, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsRegistered reports whether tag belongs to the standard or custom set.
func IsRegistered(tag Tag) bool {
	_, ok := registry[tag]
	return ok
}

// IsCustom reports whether tag was registered in custom_tags.go.
func IsCustom(tag Tag) bool {
	return registry[tag] == customTag
}
