package models

import "sort"

// Selection is the set of platforms chosen by the user. The zero value is an
// empty selection, which means "show everything".
type Selection map[string]struct{}

// NewSelection builds a selection from names.
func NewSelection(platforms ...string) Selection {
	s := make(Selection, len(platforms))
	for _, p := range platforms {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether platform is selected.
func (s Selection) Has(platform string) bool {
	_, ok := s[platform]
	return ok
}

// Len returns the number of selected platforms.
func (s Selection) Len() int {
	return len(s)
}

// IsEmpty reports whether no filter is active.
func (s Selection) IsEmpty() bool {
	return len(s) == 0
}

// Toggle returns a new selection with platform added, or removed if it was
// already present. The receiver is left untouched.
func (s Selection) Toggle(platform string) Selection {
	next := s.Clone()
	if next.Has(platform) {
		delete(next, platform)
	} else {
		next[platform] = struct{}{}
	}
	return next
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	next := make(Selection, len(s))
	for p := range s {
		next[p] = struct{}{}
	}
	return next
}

// Sorted returns the selected names in lexicographic order.
func (s Selection) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
