package middleware_test

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"ebay_pricer/internal/transport/bot/middleware"
)

func TestChatID(t *testing.T) {
	rq := require.New(t)

	id, ok := middleware.ChatID(telego.Update{Message: &telego.Message{Chat: telego.Chat{ID: 42}}})
	rq.True(ok)
	rq.Equal(int64(42), id)

	_, ok = middleware.ChatID(telego.Update{})
	rq.False(ok)
}
