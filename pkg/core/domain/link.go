package domain

import (
	"fmt"
	"strings"
	"time"
)

// Link represents one shortened URL as the backend reports it.
// The client never mutates a Link; it only displays and filters copies.
type Link struct {
	ID          int64    `json:"id"`
	OriginalURL string   `json:"originalUrl"`
	ShortURL    string   `json:"shortUrl"`
	ClickCount  int64    `json:"clickCount"`
	CreatedDate DateTime `json:"createdDate"`
	UserName    string   `json:"userName"`
}

// DateTime decodes the backend's LocalDateTime strings, which carry no
// timezone designator.
type DateTime struct {
	time.Time
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized datetime %q", s)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02T15:04:05") + `"`), nil
}
