package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewClickSeriesFillsGaps(t *testing.T) {
	// Backend omits days without clicks; they must come back as zeros.
	counts := map[string]int64{
		"2025-03-01": 4,
		"2025-03-03": 2,
	}
	series := NewClickSeries(day("2025-03-01"), day("2025-03-05"), counts)

	require.Len(t, series.Points, 5)
	assert.Equal(t, int64(4), series.Points[0].Count)
	assert.Equal(t, int64(0), series.Points[1].Count)
	assert.Equal(t, int64(2), series.Points[2].Count)
	assert.Equal(t, int64(0), series.Points[3].Count)
	assert.Equal(t, int64(0), series.Points[4].Count)

	for i := 1; i < len(series.Points); i++ {
		assert.Equal(t, series.Points[i-1].Date.AddDate(0, 0, 1), series.Points[i].Date,
			"series must be contiguous")
	}
}

func TestSeriesFromEvents(t *testing.T) {
	events := []ClickEvent{
		{ClickDate: Date{day("2025-03-02")}, ClickCount: 3},
		{ClickDate: Date{day("2025-03-04")}, ClickCount: 1},
	}
	series := SeriesFromEvents(day("2025-03-01"), day("2025-03-04"), events)

	require.Len(t, series.Points, 4)
	assert.Equal(t, int64(0), series.Points[0].Count)
	assert.Equal(t, int64(3), series.Points[1].Count)
	assert.Equal(t, int64(0), series.Points[2].Count)
	assert.Equal(t, int64(1), series.Points[3].Count)
}

func TestSeriesStats(t *testing.T) {
	series := NewClickSeries(day("2025-03-01"), day("2025-03-03"), map[string]int64{
		"2025-03-01": 3,
		"2025-03-02": 5,
		"2025-03-03": 7,
	})

	assert.Equal(t, int64(15), series.Total())
	assert.Equal(t, int64(5), series.Average())
	assert.Equal(t, int64(7), series.Peak())
}

func TestSeriesStatsEmpty(t *testing.T) {
	var series ClickSeries
	assert.Equal(t, int64(0), series.Total())
	assert.Equal(t, int64(0), series.Average())
	assert.Equal(t, int64(0), series.Peak())
	assert.Equal(t, 0.0, series.Trend())
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		counts []int64
		want   float64
	}{
		{"zero previous day is flat, not infinite", []int64{10, 0, 10}, 0},
		{"fifty percent up", []int64{0, 10, 15}, 50.0},
		{"decline", []int64{0, 10, 5}, -50.0},
		{"single point", []int64{7}, 0},
		{"rounded to one decimal", []int64{0, 3, 4}, 33.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]ClickPoint, len(tt.counts))
			base := day("2025-03-01")
			for i, c := range tt.counts {
				points[i] = ClickPoint{Date: base.AddDate(0, 0, i), Count: c}
			}
			series := ClickSeries{Points: points}
			assert.Equal(t, tt.want, series.Trend())
		})
	}
}

func TestAverageRounds(t *testing.T) {
	series := ClickSeries{Points: []ClickPoint{
		{Count: 1}, {Count: 2}, {Count: 2},
	}}
	// 5/3 = 1.67 rounds to 2.
	assert.Equal(t, int64(2), series.Average())
}
