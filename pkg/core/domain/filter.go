package domain

import "strings"

// FilterLinks returns the links whose original or short URL contains query,
// case-insensitively, preserving the input order. An empty query is the
// identity filter.
func FilterLinks(links []Link, query string) []Link {
	if query == "" {
		return links
	}
	q := strings.ToLower(query)
	filtered := make([]Link, 0, len(links))
	for _, l := range links {
		if strings.Contains(strings.ToLower(l.OriginalURL), q) ||
			strings.Contains(strings.ToLower(l.ShortURL), q) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}
