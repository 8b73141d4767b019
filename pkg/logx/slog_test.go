package logx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"ebay_pricer/pkg/logx"
)

func TestNew(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	logger := logx.New(&buf, "warn", true)
	logger.Info("skipped")
	logger.Warn("solve", logx.Money(logx.FieldListingPrice, 1991.3142))

	rq.NotContains(buf.String(), "skipped")
	rq.Contains(buf.String(), "listing-price=1991.31")

	buf.Reset()

	logger = logx.New(&buf, "garbage", true)
	rq.True(logger.Enabled(t.Context(), slog.LevelInfo))
	rq.False(logger.Enabled(t.Context(), slog.LevelDebug))
}
