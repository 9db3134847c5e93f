package timesheet

import (
	"time"

	"timesheet-bot/internal/model"
)

// Summarize: чистая свёртка; для пустого списка все итоги нулевые.
func Summarize(records []model.ShiftRecord) model.Summary {
	var s model.Summary
	for _, r := range records {
		s.EntryCount++
		switch r.ShiftType {
		case model.ShiftNight:
			s.TotalNightHours += r.DurationHours
		default:
			s.TotalDayHours += r.DurationHours
		}
		s.TotalAmount += r.Amount
	}
	s.TotalDayHours = Round2(s.TotalDayHours)
	s.TotalNightHours = Round2(s.TotalNightHours)
	s.TotalAmount = Round2(s.TotalAmount)
	return s
}

func NewReport(source string, records []model.ShiftRecord, now time.Time) model.Report {
	if records == nil {
		records = []model.ShiftRecord{}
	}
	return model.Report{
		Source:      source,
		ExtractedAt: now,
		Summary:     Summarize(records),
		Entries:     records,
	}
}
