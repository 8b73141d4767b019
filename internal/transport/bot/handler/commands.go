package handler

import (
	"errors"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"ebay_pricer/internal/domain"
	"ebay_pricer/internal/transport/bot/view"
	"ebay_pricer/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnRate(ctx *th.Context, msg telego.Message) error {
	rate, err := h.svc.CurrentRate(ctx)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Rate(rate))
}

func (h *Handler) OnCalc(ctx *th.Context, msg telego.Message) error {
	req, err := parseCalcArgs(msg.Text)
	if err != nil {
		if errors.Is(err, errUsage) {
			return h.sendHTML(ctx, msg.Chat.ID, view.CalcUsage)
		}

		return h.sendHTML(ctx, msg.Chat.ID, view.Invalid(err.Error()))
	}

	calc, err := h.svc.Quote(ctx, req)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Calculation(calc))
}

func (h *Handler) OnMinPrice(ctx *th.Context, msg telego.Message) error {
	costs, margin, err := parseMinPriceArgs(msg.Text)
	if err != nil {
		if errors.Is(err, errUsage) {
			return h.sendHTML(ctx, msg.Chat.ID, view.MinPriceUsage)
		}

		return h.sendHTML(ctx, msg.Chat.ID, view.Invalid(err.Error()))
	}

	price, err := h.svc.MinimumPrice(ctx, costs, margin)
	if err != nil {
		return h.replyError(ctx, msg.Chat.ID, err)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.MinimumPrice(costs, margin, price))
}

// replyError отвечает пользователю текстом доменной ошибки; прочие ошибки
// только логируются.
func (h *Handler) replyError(ctx *th.Context, chatID int64, err error) error {
	switch {
	case domain.IsKind(err, domain.KindInvalidArgument), domain.IsKind(err, domain.KindUnprocessable):
		return h.sendHTML(ctx, chatID, view.Invalid(domain.Description(err)))
	case domain.IsKind(err, domain.KindUnavailable):
		logger(ctx).Warn("rate unavailable", slog.Int64(logx.FieldChatID, chatID), logx.Error(err))
		return h.sendHTML(ctx, chatID, view.RateUnavailable)
	default:
		logger(ctx).Error("bot command failed", slog.Int64(logx.FieldChatID, chatID), logx.Error(err))
		return h.sendHTML(ctx, chatID, view.InternalError)
	}
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})

	return err
}
