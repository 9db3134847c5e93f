package middleware

import (
	"strings"

	"gopkg.in/telebot.v3"
)

// EditOrSend редактирует сообщение с кнопкой; если редактировать нечего, отправляет новое.
// "message is not modified" считается успехом.
func EditOrSend(c telebot.Context, text string, opts ...interface{}) error {
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}
	if err := c.Edit(text, opts...); err != nil {
		if strings.Contains(err.Error(), "not modified") {
			return nil
		}
		return c.Send(text, opts...)
	}
	return nil
}
