package router

import (
	"strings"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter раскидывает inline-колбэки по ключу "unique" кнопки.
type CallbackRouter struct {
	handlers map[string]HandlerFunc
	logger   *zap.Logger
}

func New(logger *zap.Logger) *CallbackRouter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CallbackRouter{handlers: make(map[string]HandlerFunc), logger: logger}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		_, err := r.Dispatch(c)
		return err
	})
}

// Dispatch возвращает false, если для ключа нет обработчика.
func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	key, payload := SplitData(c.Data())
	r.logger.Debug("callback", zap.String("key", key), zap.String("payload", payload))
	_ = c.Respond()

	if h, ok := r.handlers[key]; ok {
		return true, h(c, payload)
	}
	return false, nil
}

// SplitData нормализует callback-данные: убирает префикс "\f" и отделяет payload после '|'.
func SplitData(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	key, payload, _ = strings.Cut(raw, "|")
	return key, payload
}
