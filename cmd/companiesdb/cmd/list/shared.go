package list

import "strings"

// stringOrEmpty dereferences an optional string for table cells.
func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// matchesSearch reports whether any of the candidate strings contains the
// search term, case-insensitively.
func matchesSearch(search string, candidates ...string) bool {
	search = strings.ToLower(search)
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), search) {
			return true
		}
	}
	return false
}
