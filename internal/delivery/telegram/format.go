package telegram

import (
	"fmt"
	"strings"

	"timesheet-bot/internal/model"
)

// maxListedShifts ограничивает длину ответа; полный список уходит в XLSX.
const maxListedShifts = 31

func FormatReport(r model.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Табель %s\n", r.Source)
	if r.EntryCount == 0 {
		b.WriteString("Смены не найдены.")
		return b.String()
	}
	fmt.Fprintf(&b, "Смен: %d\n", r.EntryCount)
	fmt.Fprintf(&b, "Дневные часы: %.2f\n", r.TotalDayHours)
	fmt.Fprintf(&b, "Ночные часы: %.2f\n", r.TotalNightHours)
	fmt.Fprintf(&b, "Сумма: %.2f\n", r.TotalAmount)
	b.WriteString("\n")
	for i, e := range r.Entries {
		if i == maxListedShifts {
			fmt.Fprintf(&b, "… и ещё %d\n", len(r.Entries)-maxListedShifts)
			break
		}
		fmt.Fprintf(&b, "%s %s–%s %s %.2fч %.2f\n", e.Date, e.Start, e.End, shiftLabel(e.ShiftType), e.DurationHours, e.Amount)
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatSalary(period string, s model.Summary) string {
	if s.EntryCount == 0 {
		return fmt.Sprintf("За %s смен нет.", period)
	}
	return fmt.Sprintf("Зарплата за %s: %.2f\nСмен: %d, дневные часы: %.2f, ночные часы: %.2f",
		period, s.TotalAmount, s.EntryCount, s.TotalDayHours, s.TotalNightHours)
}

func shiftLabel(t model.ShiftType) string {
	if t == model.ShiftNight {
		return "ночь"
	}
	return "день"
}
