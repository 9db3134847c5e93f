package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

var ruMonths = map[time.Month]string{
	time.January:   "Январь",
	time.February:  "Февраль",
	time.March:     "Март",
	time.April:     "Апрель",
	time.May:       "Май",
	time.June:      "Июнь",
	time.July:      "Июль",
	time.August:    "Август",
	time.September: "Сентябрь",
	time.October:   "Октябрь",
	time.November:  "Ноябрь",
	time.December:  "Декабрь",
}

// Build строит инлайн-календарь месяца. Дни из marked помечаются звёздочкой.
// Колбэки: cal_day|D-M-YYYY, cal_prev|M-YYYY, cal_next|M-YYYY.
func Build(year int, month time.Month, marked map[int]bool) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	days := daysInMonth(year, month)
	var rows []telebot.Row
	week := telebot.Row{}
	for d := 1; d <= days; d++ {
		label := strconv.Itoa(d)
		if marked[d] {
			label += "*"
		}
		week = append(week, markup.Data(label, "cal_day", fmt.Sprintf("%d-%d-%d", d, int(month), year)))
		if len(week) == 7 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		rows = append(rows, week)
	}
	prev := markup.Data("<", "cal_prev", fmt.Sprintf("%d-%d", int(month)-1, year))
	next := markup.Data(">", "cal_next", fmt.Sprintf("%d-%d", int(month)+1, year))
	rows = append(rows, telebot.Row{prev, next})
	markup.Inline(rows...)

	title := "Выберите дату: " + ruMonths[month] + " " + strconv.Itoa(year)
	return title, markup
}

// ParseDay разбирает payload кнопки дня "D-M-YYYY".
func ParseDay(payload string) (time.Time, error) {
	parts := SplitDateData(payload)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("bad day payload %q", payload)
	}
	nums, err := atoiAll(parts)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad day payload %q: %w", payload, err)
	}
	day, month, year := nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || day > daysInMonth(year, time.Month(month)) {
		return time.Time{}, fmt.Errorf("bad day payload %q", payload)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ParseMonth разбирает "M-YYYY" у кнопок листания; месяц 0 и 13 переходят через год.
func ParseMonth(payload string) (int, time.Month, error) {
	parts := SplitDateData(payload)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad month payload %q", payload)
	}
	nums, err := atoiAll(parts)
	if err != nil {
		return 0, 0, fmt.Errorf("bad month payload %q: %w", payload, err)
	}
	month, year := nums[0], nums[1]
	switch {
	case month < 1:
		month = 12
		year--
	case month > 12:
		month = 1
		year++
	}
	return year, time.Month(month), nil
}

// SplitDateData разбивает строку даты на части
func SplitDateData(data string) []string {
	return strings.Split(data, "-")
}

func atoiAll(parts []string) ([]int, error) {
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
