package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-bot/internal/model"
)

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, model.Summary{}, Summarize(nil))
	assert.Equal(t, model.Summary{}, Summarize([]model.ShiftRecord{}))
}

func TestSummarize_SplitsByType(t *testing.T) {
	recs := []model.ShiftRecord{
		{ShiftType: model.ShiftDay, DurationHours: 8.5, Amount: 2550},
		{ShiftType: model.ShiftNight, DurationHours: 0.1, Amount: 40},
		{ShiftType: model.ShiftNight, DurationHours: 0.2, Amount: 80},
		{ShiftType: model.ShiftDay, DurationHours: 8, Amount: 2400},
	}
	got := Summarize(recs)
	assert.Equal(t, model.Summary{
		EntryCount:      4,
		TotalDayHours:   16.5,
		TotalNightHours: 0.3,
		TotalAmount:     5070,
	}, got)
}

func TestNewReport(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	text := "2025-01-27  10:00   18:30   x  8.5\nDato: 28/01/25 Fra: 14:00 Til: 22:00"
	recs := newTestExtractor().Extract(text)

	rep := NewReport("jan.pdf", recs, now)
	assert.Equal(t, "jan.pdf", rep.Source)
	assert.Equal(t, now, rep.ExtractedAt)
	assert.Equal(t, 2, rep.EntryCount)
	assert.Equal(t, 8.5, rep.TotalDayHours)
	assert.Equal(t, 8.0, rep.TotalNightHours)
	assert.Equal(t, 2550.0+3200.0, rep.TotalAmount)
	require.Len(t, rep.Entries, 2)

	empty := NewReport("empty.txt", nil, now)
	assert.NotNil(t, empty.Entries)
	assert.Equal(t, 0, empty.EntryCount)
}
