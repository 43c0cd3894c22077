package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterLinks(t *testing.T) {
	links := []Link{
		{ID: 1, OriginalURL: "https://foo.com", ShortURL: "abc123"},
		{ID: 2, OriginalURL: "https://bar.org/page", ShortURL: "FOOxyz"},
		{ID: 3, OriginalURL: "https://example.net", ShortURL: "qq7"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{"matches original url only", "foo.com", []int64{1}},
		{"matches either field, case-insensitive", "foo", []int64{1, 2}},
		{"matches short code", "qq7", []int64{3}},
		{"empty query is identity", "", []int64{1, 2, 3}},
		{"no match", "zzz", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLinks(links, tt.query)
			ids := make([]int64, 0, len(got))
			for _, l := range got {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterLinksPreservesOrder(t *testing.T) {
	links := []Link{
		{ID: 9, OriginalURL: "https://a.dev/x", ShortURL: "s1"},
		{ID: 2, OriginalURL: "https://a.dev/y", ShortURL: "s2"},
		{ID: 5, OriginalURL: "https://a.dev/z", ShortURL: "s3"},
	}
	got := FilterLinks(links, "a.dev")
	assert.Equal(t, links, got)
}
