package flows

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"timesheet-bot/internal/delivery/telegram/keyboards"
	"timesheet-bot/internal/delivery/telegram/middleware"
	"timesheet-bot/internal/delivery/telegram/router"
	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/model"
)

// SalaryFormatter: чтобы flows не зависел от пакета telegram.
type SalaryFormatter func(period string, s model.Summary) string

func RegisterSalary(r *router.CallbackRouter, shifts domain.ShiftService, format SalaryFormatter, logger *zap.Logger) {
	r.Register("salary_other_month", func(c telebot.Context, payload string) error {
		now := time.Now()
		title, markup := keyboards.BuildMonthKeyboard(now.Year(), now)
		return middleware.EditOrSend(c, title, markup)
	})

	r.Register("month_prev", func(c telebot.Context, payload string) error {
		y, err := strconv.Atoi(payload)
		if err != nil {
			return nil
		}
		title, markup := keyboards.BuildMonthKeyboard(y-1, time.Now())
		return middleware.EditOrSend(c, title, markup)
	})

	r.Register("month_next", func(c telebot.Context, payload string) error {
		y, err := strconv.Atoi(payload)
		if err != nil {
			return nil
		}
		title, markup := keyboards.BuildMonthKeyboard(y+1, time.Now())
		return middleware.EditOrSend(c, title, markup)
	})

	r.Register("pick_month", func(c telebot.Context, payload string) error {
		from, to, err := keyboards.ParseMonthPayload(payload)
		if err != nil {
			logger.Warn("некорректный месяц", zap.String("payload", payload), zap.Error(err))
			return nil
		}
		empID := int(c.Sender().ID)
		summary, err := shifts.CalculateSalary(empID, from, to)
		if err != nil {
			logger.Error("расчёт зарплаты", zap.Int("employee", empID), zap.Error(err))
			return c.Send("Ошибка при расчёте зарплаты: " + err.Error())
		}
		period := fmt.Sprintf("%02d.%04d", int(from.Month()), from.Year())
		return middleware.EditOrSend(c, format(period, summary))
	})
}

// RegisterPayout: кнопка "Выплатить всё".
func RegisterPayout(r *router.CallbackRouter, shifts domain.ShiftService, logger *zap.Logger) {
	r.Register("payout_all", func(c telebot.Context, payload string) error {
		empID := int(c.Sender().ID)
		err := shifts.MarkShiftsPaid(empID, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), time.Now().AddDate(10, 0, 0))
		if err != nil {
			logger.Error("полная выплата", zap.Int("employee", empID), zap.Error(err))
			return middleware.EditOrSend(c, "Ошибка при полной выплате: "+err.Error())
		}
		return middleware.EditOrSend(c, "Выплачено всё!")
	})
}
