package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type botRunner interface {
	Run(ctx context.Context) error
}

// TelegramBot модуль long polling бота.
type TelegramBot struct{}

func (TelegramBot) Run(ctx context.Context, g *errgroup.Group, bot botRunner) {
	g.Go(func() error {
		if err := bot.Run(ctx); err != nil {
			return fmt.Errorf("bot.Run: %w", err)
		}

		return nil
	})
}
