package middleware

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"ebay_pricer/pkg/contextx"
	"ebay_pricer/pkg/logx"
)

// AllowedChats пропускает обновления только из перечисленных чатов.
// Пустой список разрешает все чаты.
func AllowedChats(chatIDs []int64) th.Handler {
	allowed := make(map[int64]struct{}, len(chatIDs))
	for _, id := range chatIDs {
		allowed[id] = struct{}{}
	}

	return func(ctx *th.Context, update telego.Update) error {
		chatID, ok := ChatID(update)
		if !ok {
			return nil
		}

		if _, found := allowed[chatID]; len(allowed) > 0 && !found {
			contextx.LoggerFromContextOrDefault(ctx).Warn("update from foreign chat dropped",
				slog.Int64(logx.FieldChatID, chatID),
			)

			return nil
		}

		return ctx.Next(update)
	}
}

// ChatID чат, из которого пришло обновление.
func ChatID(update telego.Update) (int64, bool) {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.GetChat().ID, true
	default:
		return 0, false
	}
}
