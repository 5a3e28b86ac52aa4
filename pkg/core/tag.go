package core

import "strings"

// Tag is a user-defined label that notes reference by ID.
// Name is unique across all tags, compared case-insensitively.
// Color is a display hint only; empty means "no preference".
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// sameName reports whether two tag names collide under the
// case-insensitive uniqueness rule.
func sameName(a, b string) bool {
	return strings.EqualFold(a, b)
}
