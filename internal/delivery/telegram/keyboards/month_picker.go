package keyboards

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

var monthNames = []string{"Янв", "Фев", "Мар", "Апр", "Май", "Июн", "Июл", "Авг", "Сен", "Окт", "Ноя", "Дек"}

// BuildMonthKeyboard строит сетку 4x3 месяцев года; текущий месяц помечен точкой.
func BuildMonthKeyboard(year int, now time.Time) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	rows := []telebot.Row{}
	for i := 0; i < 12; i += 3 {
		var row telebot.Row
		for m := i; m < i+3; m++ {
			label := monthNames[m]
			if year == now.Year() && time.Month(m+1) == now.Month() {
				label = "• " + label
			}
			row = append(row, markup.Data(label, "pick_month", MonthPayload(year, time.Month(m+1))))
		}
		rows = append(rows, row)
	}

	prev := markup.Data("← "+strconv.Itoa(year-1), "month_prev", strconv.Itoa(year))
	next := markup.Data(strconv.Itoa(year+1)+" →", "month_next", strconv.Itoa(year))
	rows = append(rows, markup.Row(prev, next))

	markup.Inline(rows...)
	title := fmt.Sprintf("Выберите месяц: %d", year)
	return title, markup
}

func MonthPayload(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParseMonthPayload возвращает первый и последний день месяца из "YYYY-MM".
func ParseMonthPayload(payload string) (from, to time.Time, err error) {
	y, m, ok := strings.Cut(payload, "-")
	if !ok {
		return from, to, fmt.Errorf("bad month payload %q", payload)
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return from, to, fmt.Errorf("bad year in %q: %w", payload, err)
	}
	month, err := strconv.Atoi(m)
	if err != nil || month < 1 || month > 12 {
		return from, to, fmt.Errorf("bad month in %q", payload)
	}
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return from, to, nil
}
