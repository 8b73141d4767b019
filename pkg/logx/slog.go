package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// Money денежное значение с двумя знаками после запятой.
func Money(name string, v float64) slog.Attr {
	return slog.String(name, strconv.FormatFloat(v, 'f', 2, 64))
}

// New создаёт tint-логгер. Неизвестный уровень трактуется как info.
func New(w io.Writer, level string, noColor bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	}))
}
