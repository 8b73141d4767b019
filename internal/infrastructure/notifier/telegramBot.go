package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/shopspring/decimal"

	"ebay_pricer/internal/domain/entity"
	"ebay_pricer/pkg/contextx"
	"ebay_pricer/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type MessageSender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// TelegramBot отправляет уведомления о курсе в служебный чат.
type TelegramBot struct {
	bot    MessageSender
	chatID int64
}

func NewTelegramBot(bot MessageSender, chatID int64) *TelegramBot {
	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}
}

func (b *TelegramBot) RateChanged(ctx context.Context, prev, cur entity.ExchangeRate, changePercent float64) error {
	text := fmt.Sprintf(
		"📈 <b>Курс %s изменился</b>\n\n"+
			"Было: %s\n"+
			"Стало: %s\n"+
			"Изменение: %+.2f%%\n\n"+
			"<i>Пересчитайте цены активных листингов</i>",
		cur.Pair(),
		decimal.NewFromFloat(prev.Rate).StringFixed(2),
		decimal.NewFromFloat(cur.Rate).StringFixed(2),
		changePercent,
	)

	if err := b.SendText(ctx, text); err != nil {
		return err
	}

	logger(ctx).Info("rate change notification sent",
		slog.Int64(logx.FieldChatID, b.chatID),
		slog.String(logx.FieldCurrencyPair, cur.Pair()),
	)

	return nil
}

// SendText отправляет HTML-сообщение в служебный чат.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
