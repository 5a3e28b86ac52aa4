package core

import (
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOption is a closed enumeration of the supported note orderings.
// The string values are the persisted/CLI spelling; construct from user
// input via ParseSortOption so invalid values never reach the comparator.
type SortOption string

const (
	SortCreatedDesc SortOption = "createdAt_desc"
	SortCreatedAsc  SortOption = "createdAt_asc"
	SortTitleAsc    SortOption = "title_asc"
	SortTitleDesc   SortOption = "title_desc"
)

// DefaultSortOption is the ordering a fresh store starts with.
const DefaultSortOption = SortCreatedDesc

// SortOptions lists all valid variants, for CLI help and validation.
func SortOptions() []SortOption {
	return []SortOption{SortCreatedDesc, SortCreatedAsc, SortTitleAsc, SortTitleDesc}
}

// Valid reports whether o is one of the four known variants.
func (o SortOption) Valid() bool {
	switch o {
	case SortCreatedDesc, SortCreatedAsc, SortTitleAsc, SortTitleDesc:
		return true
	}
	return false
}

// ParseSortOption converts a raw string into a SortOption.
func ParseSortOption(s string) (SortOption, error) {
	o := SortOption(s)
	if !o.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortOption, s)
	}
	return o, nil
}

// sortNotes orders notes with pinned entries always first.
// Both partitions are sorted independently by the option's comparator and
// then concatenated, so a pinned note outranks any unpinned one regardless
// of the chosen criterion. The input slice is not modified.
func sortNotes(notes []Note, option SortOption) []Note {
	pinned := make([]Note, 0, len(notes))
	unpinned := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.IsPinned {
			pinned = append(pinned, n)
		} else {
			unpinned = append(unpinned, n)
		}
	}

	cmp := comparator(option)
	slices.SortStableFunc(pinned, cmp)
	slices.SortStableFunc(unpinned, cmp)

	return append(pinned, unpinned...)
}

// comparator returns the ordering function for a sort option.
// Titles compare with locale-aware collation rather than byte order, so
// e.g. "Ärger" sorts next to "Arger" instead of after "Zebra".
func comparator(option SortOption) func(a, b Note) int {
	coll := collate.New(language.Und)

	switch option {
	case SortCreatedAsc:
		return func(a, b Note) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortCreatedDesc:
		return func(a, b Note) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case SortTitleAsc:
		return func(a, b Note) int { return coll.CompareString(a.Title, b.Title) }
	case SortTitleDesc:
		return func(a, b Note) int { return coll.CompareString(b.Title, a.Title) }
	default:
		// Unreachable when callers construct via ParseSortOption.
		return func(a, b Note) int { return 0 }
	}
}
