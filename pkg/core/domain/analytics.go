package domain

import (
	"math"
	"strings"
	"time"
)

// ClickEvent is one day of clicks for a single short URL.
type ClickEvent struct {
	ClickDate  Date  `json:"clickDate"`
	ClickCount int64 `json:"clickCount"`
}

// Date decodes the backend's LocalDate strings (yyyy-MM-dd).
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// ClickPoint is one day on the analytics timeline.
type ClickPoint struct {
	Date  time.Time
	Count int64
}

// ClickSeries is a contiguous, day-granular click timeline over a requested
// range. The backend omits days without clicks, so constructors materialize
// every calendar day in [start, end] and fill the gaps with zero counts.
// Dropping the empty days instead would quietly skew average and trend.
type ClickSeries struct {
	Points []ClickPoint
}

// NewClickSeries builds a series from the totalclicks payload, a map keyed by
// yyyy-MM-dd date strings. Unparseable keys are ignored.
func NewClickSeries(start, end time.Time, counts map[string]int64) ClickSeries {
	byDay := make(map[string]int64, len(counts))
	for k, v := range counts {
		byDay[k] = v
	}
	return fillRange(start, end, byDay)
}

// SeriesFromEvents builds a series from the per-URL analytics payload.
func SeriesFromEvents(start, end time.Time, events []ClickEvent) ClickSeries {
	byDay := make(map[string]int64, len(events))
	for _, ev := range events {
		byDay[ev.ClickDate.Format("2006-01-02")] += ev.ClickCount
	}
	return fillRange(start, end, byDay)
}

func fillRange(start, end time.Time, byDay map[string]int64) ClickSeries {
	start = truncateToDay(start)
	end = truncateToDay(end)

	var points []ClickPoint
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		points = append(points, ClickPoint{
			Date:  day,
			Count: byDay[day.Format("2006-01-02")],
		})
	}
	return ClickSeries{Points: points}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Total is the sum of all counts in the series.
func (s ClickSeries) Total() int64 {
	var total int64
	for _, p := range s.Points {
		total += p.Count
	}
	return total
}

// Average is the rounded mean of the daily counts, 0 for an empty series.
func (s ClickSeries) Average() int64 {
	if len(s.Points) == 0 {
		return 0
	}
	return int64(math.Round(float64(s.Total()) / float64(len(s.Points))))
}

// Peak is the highest single-day count, 0 for an empty series.
func (s ClickSeries) Peak() int64 {
	var peak int64
	for _, p := range s.Points {
		if p.Count > peak {
			peak = p.Count
		}
	}
	return peak
}

// Trend is the percentage change of the final day relative to the day before
// it, rounded to one decimal place. When the previous day has zero clicks the
// trend is defined as 0 rather than infinite; that policy matches the numbers
// users saw on the dashboard this client replaces.
func (s ClickSeries) Trend() float64 {
	if len(s.Points) < 2 {
		return 0
	}
	last := s.Points[len(s.Points)-1].Count
	prev := s.Points[len(s.Points)-2].Count
	if prev <= 0 {
		return 0
	}
	pct := float64(last-prev) / float64(prev) * 100
	return math.Round(pct*10) / 10
}
