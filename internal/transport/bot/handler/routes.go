package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"ebay_pricer/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, allowedChatIDs []int64) {
	group := bh.Group(th.AnyMessage())
	group.Use(middleware.AllowedChats(allowedChatIDs))

	group.HandleMessage(h.OnStart, th.CommandEqual("start"))
	group.HandleMessage(h.OnStart, th.CommandEqual("help"))
	group.HandleMessage(h.OnRate, th.CommandEqual("rate"))
	group.HandleMessage(h.OnCalc, th.CommandEqual("calc"))
	group.HandleMessage(h.OnMinPrice, th.CommandEqual("minprice"))
}
