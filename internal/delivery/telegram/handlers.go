package telegram

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"timesheet-bot/internal/app/service"
	"timesheet-bot/internal/delivery/telegram/flows"
	"timesheet-bot/internal/delivery/telegram/keyboards"
	"timesheet-bot/internal/delivery/telegram/router"
	"timesheet-bot/internal/domain"
	"timesheet-bot/internal/export"
	"timesheet-bot/internal/model"
)

// Telegram отдаёт ботам файлы не больше 20 МБ.
const maxDocumentSize = 20 << 20

const parseTimeout = 2 * time.Minute

var (
	btnUpload = telebot.Btn{Text: "📄 Загрузить табель"}
	btnSalary = telebot.Btn{Text: "💰 Посмотреть зарплату"}
	btnPayout = telebot.Btn{Text: "💸 Выплатить"}
	btnDays   = telebot.Btn{Text: "📆 Смены по дням"}
)

type Handler struct {
	Bot        *telebot.Bot
	Shifts     domain.ShiftService
	Timesheets *service.TimesheetService
	Employees  *service.EmployeeService
	Logger     *zap.Logger

	mu            sync.Mutex
	waitingPayout map[int64]bool // chatID -> ждём сумму выплаты
}

func (h *Handler) Register() {
	if h.Logger == nil {
		h.Logger = zap.NewNop()
	}
	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/employees", h.handleEmployees)
	h.Bot.Handle(telebot.OnDocument, h.handleDocument)
	h.Bot.Handle(telebot.OnText, h.handleText)

	r := router.New(h.Logger)
	flows.RegisterSalary(r, h.Shifts, FormatSalary, h.Logger)
	flows.RegisterPayout(r, h.Shifts, h.Logger)
	flows.RegisterDays(r, h.Shifts, h.Logger)
	r.Attach(h.Bot)
}

func (h *Handler) handleStart(c telebot.Context) error {
	created, err := h.Employees.EnsureEmployee(employeeFromContext(c))
	if err != nil {
		h.Logger.Error("регистрация сотрудника", zap.Int64("user", c.Sender().ID), zap.Error(err))
	} else if created {
		h.Logger.Info("новый сотрудник", zap.Int64("user", c.Sender().ID))
	}
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text(btnUpload.Text)),
		markup.Row(markup.Text(btnSalary.Text), markup.Text(btnDays.Text)),
		markup.Row(markup.Text(btnPayout.Text)),
	)
	return c.Send("Добро пожаловать! Пришлите табель (PDF или TXT), и я посчитаю смены.", markup)
}

func (h *Handler) handleEmployees(c telebot.Context) error {
	employees, err := h.Employees.GetAllEmployees()
	if err != nil {
		return c.Send("Ошибка при получении сотрудников: " + err.Error())
	}
	if len(employees) == 0 {
		return c.Send("Сотрудники не найдены.")
	}
	var b strings.Builder
	b.WriteString("Список сотрудников:\n")
	for _, e := range employees {
		fmt.Fprintf(&b, "ID: %d, %s (%s)\n", e.ID, e.Name, e.Role)
	}
	return c.Send(b.String())
}

func (h *Handler) handleText(c telebot.Context) error {
	chatID := c.Chat().ID
	switch c.Text() {
	case btnUpload.Text:
		return c.Send("Пришлите файл табеля документом (PDF или TXT).")
	case btnSalary.Text:
		return h.sendCurrentSalary(c)
	case btnDays.Text:
		now := time.Now()
		return flows.ShowDays(c, h.Shifts, now.Year(), now.Month())
	case btnPayout.Text:
		h.setWaitingPayout(chatID, true)
		markup := &telebot.ReplyMarkup{}
		markup.Inline(markup.Row(markup.Data("Выплатить всё", "payout_all")))
		return c.Send("Сколько выплатить? Введите сумму или выберите 'Выплатить всё'.", markup)
	}

	if !h.isWaitingPayout(chatID) {
		return nil
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(c.Text()), ",", "."), 64)
	if err != nil || amount <= 0 {
		return c.Send("Некорректная сумма. Попробуйте ещё раз.")
	}
	h.setWaitingPayout(chatID, false)
	if err := h.Shifts.MarkShiftsPaidAmount(int(c.Sender().ID), amount); err != nil {
		h.Logger.Error("выплата", zap.Int64("user", c.Sender().ID), zap.Float64("amount", amount), zap.Error(err))
		return c.Send("Ошибка при выплате: " + err.Error())
	}
	return c.Send("Выплата на сумму " + strconv.FormatFloat(amount, 'f', 2, 64) + " проведена!")
}

func (h *Handler) sendCurrentSalary(c telebot.Context) error {
	empID := int(c.Sender().ID)
	now := time.Now()
	from, to, _ := keyboards.ParseMonthPayload(keyboards.MonthPayload(now.Year(), now.Month()))
	summary, err := h.Shifts.CalculateSalary(empID, from, to)
	if err != nil {
		return c.Send("Ошибка при получении зарплаты: " + err.Error())
	}
	unpaid, err := h.Shifts.CalculateUnpaidSalary(empID)
	if err != nil {
		return c.Send("Ошибка при получении зарплаты: " + err.Error())
	}
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("Другой месяц", "salary_other_month")))
	text := FormatSalary(fmt.Sprintf("%02d.%04d", int(now.Month()), now.Year()), summary) +
		"\nНевыплачено всего: " + strconv.FormatFloat(unpaid, 'f', 2, 64)
	return c.Send(text, markup)
}

// handleDocument: скачать файл, разобрать в пуле, сохранить смены, ответить итогами и XLSX.
func (h *Handler) handleDocument(c telebot.Context) error {
	doc := c.Message().Document
	if doc == nil {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(doc.FileName))
	if ext != ".pdf" && ext != ".txt" {
		return c.Send("Поддерживаются только PDF и TXT.")
	}
	if doc.FileSize > maxDocumentSize {
		return c.Send("Файл слишком большой.")
	}
	empID := int(c.Sender().ID)
	if _, err := h.Employees.EnsureEmployee(employeeFromContext(c)); err != nil {
		h.Logger.Error("регистрация сотрудника", zap.Int("employee", empID), zap.Error(err))
	}

	dir, err := os.MkdirTemp("", "timesheet-*")
	if err != nil {
		return c.Send("Ошибка при сохранении файла.")
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			h.Logger.Warn("не удалось удалить временный каталог", zap.String("dir", dir), zap.Error(err))
		}
	}()

	path := filepath.Join(dir, "timesheet"+ext)
	if err := h.Bot.Download(&doc.File, path); err != nil {
		h.Logger.Error("скачивание табеля", zap.String("file", doc.FileName), zap.Error(err))
		return c.Send("Не удалось скачать файл: " + err.Error())
	}
	checksum, err := fileChecksum(path)
	if err != nil {
		return c.Send("Не удалось прочитать файл: " + err.Error())
	}

	value, err := h.Timesheets.Async.SubmitAsync(func() (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()
		return h.Timesheets.ParseFile(ctx, path)
	})
	if err != nil {
		h.Logger.Warn("табель не прочитан", zap.String("file", doc.FileName), zap.Error(err))
		return c.Send("Не удалось прочитать табель: " + err.Error())
	}
	report := value.(model.Report)
	report.Source = doc.FileName

	if _, err := h.Shifts.ImportReport(empID, checksum, report); err != nil {
		if errors.Is(err, domain.ErrDuplicateImport) {
			return c.Send("Этот табель уже загружен.")
		}
		h.Logger.Error("сохранение смен", zap.Int("employee", empID), zap.Error(err))
		return c.Send("Ошибка при сохранении смен: " + err.Error())
	}

	if err := c.Send(FormatReport(report)); err != nil {
		return err
	}
	if report.EntryCount == 0 {
		return nil
	}
	data, err := export.ReportXLSX(report)
	if err != nil {
		h.Logger.Error("xlsx", zap.Error(err))
		return nil
	}
	name := strings.TrimSuffix(doc.FileName, filepath.Ext(doc.FileName)) + ".xlsx"
	return c.Send(&telebot.Document{File: telebot.FromReader(bytes.NewReader(data)), FileName: name})
}

func (h *Handler) setWaitingPayout(chatID int64, v bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.waitingPayout == nil {
		h.waitingPayout = make(map[int64]bool)
	}
	if v {
		h.waitingPayout[chatID] = true
	} else {
		delete(h.waitingPayout, chatID)
	}
}

func (h *Handler) isWaitingPayout(chatID int64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.waitingPayout[chatID]
}

func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	sum := sha256.New()
	if _, err := io.Copy(sum, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(sum.Sum(nil)), nil
}

func employeeFromContext(c telebot.Context) domain.Employee {
	return domain.Employee{
		ID:     int(c.Sender().ID),
		Name:   c.Sender().FirstName,
		ChatID: c.Chat().ID,
		Role:   "driver",
	}
}
