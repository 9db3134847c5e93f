package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"timesheet-bot/internal/app/service"
	"timesheet-bot/internal/delivery/telegram"
	"timesheet-bot/internal/repository/sqlite"

	_ "github.com/mattn/go-sqlite3"
)

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Запустить Telegram-бота",
		Args:  cobra.NoArgs,
		RunE:  runBot,
	}
}

func runBot(cmd *cobra.Command, _ []string) error {
	logger.Info("Запуск Telegram Timesheet Bot...")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireToken(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return fmt.Errorf("открытие базы: %w", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		return fmt.Errorf("миграция: %w", err)
	}

	timesheets, pool := newTimesheetService(cfg, cfg.Workers)
	defer pool.Close()

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			logger.Error("ошибка обработчика", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("запуск бота: %w", err)
	}

	handler := &telegram.Handler{
		Bot:        bot,
		Shifts:     service.NewShiftService(sqlite.NewSqliteShiftRepo(db)),
		Timesheets: timesheets,
		Employees:  service.NewEmployeeService(sqlite.NewSqliteEmployeeRepo(db)),
		Logger:     logger,
	}
	handler.Register()

	go func() {
		<-cmd.Context().Done()
		bot.Stop()
	}()

	logger.Info("Бот запущен!", zap.String("db", cfg.DBPath))
	bot.Start()
	return nil
}
