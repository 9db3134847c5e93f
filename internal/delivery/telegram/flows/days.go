package flows

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"timesheet-bot/internal/delivery/telegram/middleware"
	"timesheet-bot/internal/delivery/telegram/router"
	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/model"
	"timesheet-bot/pkg/calendar"
)

// ShowDays отправляет календарь месяца, отмечая дни с сохранёнными сменами.
func ShowDays(c telebot.Context, shifts domain.ShiftService, year int, month time.Month) error {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	stored, err := shifts.GetShifts(int(c.Sender().ID), from, to)
	if err != nil {
		return c.Send("Ошибка при получении смен: " + err.Error())
	}
	title, markup := calendar.Build(year, month, MarkedDays(stored))
	return middleware.EditOrSend(c, title, markup)
}

func RegisterDays(r *router.CallbackRouter, shifts domain.ShiftService, logger *zap.Logger) {
	page := func(c telebot.Context, payload string) error {
		year, month, err := calendar.ParseMonth(payload)
		if err != nil {
			logger.Warn("некорректный месяц календаря", zap.String("payload", payload), zap.Error(err))
			return nil
		}
		return ShowDays(c, shifts, year, month)
	}
	r.Register("cal_prev", page)
	r.Register("cal_next", page)

	r.Register("cal_day", func(c telebot.Context, payload string) error {
		day, err := calendar.ParseDay(payload)
		if err != nil {
			return c.Send("Ошибка даты")
		}
		stored, err := shifts.GetShifts(int(c.Sender().ID), day, day)
		if err != nil {
			return c.Send("Ошибка при получении смен: " + err.Error())
		}
		return c.Send(FormatDay(day, stored))
	})
}

func MarkedDays(stored []model.StoredShift) map[int]bool {
	marked := make(map[int]bool, len(stored))
	for _, s := range stored {
		marked[s.Date.Day()] = true
	}
	return marked
}

// FormatDay: смены одного дня со статусом выплаты.
func FormatDay(day time.Time, stored []model.StoredShift) string {
	if len(stored) == 0 {
		return fmt.Sprintf("%s: смен нет.", day.Format("02.01.2006"))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Смены за %s:", day.Format("02.01.2006"))
	for _, s := range stored {
		kind, status := "день", "не выплачено"
		if s.ShiftType == model.ShiftNight {
			kind = "ночь"
		}
		if s.Paid {
			status = "выплачено"
		}
		fmt.Fprintf(&b, "\n%s–%s %s %.2fч %.2f (%s)", s.Start, s.End, kind, s.Hours, s.Amount, status)
	}
	return b.String()
}
