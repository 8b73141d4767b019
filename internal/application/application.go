package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"ebay_pricer/internal/config"
	"ebay_pricer/internal/domain/service/calculation"
	"ebay_pricer/internal/domain/service/rates"
	"ebay_pricer/internal/infrastructure/exchangerate"
	"ebay_pricer/internal/infrastructure/notifier"
	"ebay_pricer/internal/infrastructure/persistence"
	"ebay_pricer/internal/infrastructure/ratestore"
	"ebay_pricer/internal/server"
	"ebay_pricer/internal/transport/bot"
	"ebay_pricer/internal/transport/bot/handler"
	"ebay_pricer/internal/worker"
	"ebay_pricer/pkg/application/connectors"
	"ebay_pricer/pkg/application/modules"
	"ebay_pricer/pkg/contextx"
	"ebay_pricer/pkg/httpx"
	"ebay_pricer/pkg/logx"
	"ebay_pricer/pkg/metrics"
	"ebay_pricer/pkg/probe"
)

const (
	httpReadHeaderTimeout = 5 * time.Second
	asynqQueue            = "default"
)

// Run поднимает все модули и блокируется до отмены ctx или падения модуля.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	ctx = contextx.WithLogger(ctx, log)

	// Connectors
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	rdb := &connectors.Redis{
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		Address:            cfg.Redis.Address,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	redisClient := rdb.Client(ctx)
	defer rdb.Close(ctx)

	registry := metrics.NewRegistry()

	// Exchange rate
	masker := logx.NewSensitiveDataMasker()

	rateClient := exchangerate.NewClient(
		cfg.ExchangeRate.BaseURL,
		cfg.ExchangeRate.RequestTimeout,
		cfg.ExchangeRate.MaxRetries,
		httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithUpstream("er-api"),
			httpx.WithSensitiveDataMasker(masker),
			httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
		),
	)

	rateService := rates.NewService(
		rateClient,
		cfg.ExchangeRate.CacheTTL,
		cfg.ExchangeRate.BaseCurrency,
		cfg.ExchangeRate.QuoteCurrency,
	).WithStore(ratestore.NewRedisStore(redisClient))

	// Calculations
	calcService := calculation.NewService(persistence.NewCalculationRepository(db), rateService).
		WithFees(cfg.Pricing.FeeSchedule(), cfg.Pricing.DefaultCommission).
		WithMetrics(calculation.NewMetrics(registry))

	router := server.NewRouter(
		server.NewServer(server.NewCalculationServer(calcService)),
		server.RouterOptions{
			Registerer:          registry,
			SensitiveDataMasker: masker,
			LogFieldMaxLen:      cfg.HTTP.LogFieldMaxLen,
		},
	)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	// Bot
	refresher := worker.NewRateRefresher(rateService)

	var telegramBot *bot.Bot

	if cfg.Bot.Enabled() {
		b, err := bot.New(cfg.Bot.Token, handler.New(calcService), cfg.Bot.AllowedChatIDs)
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		telegramBot = b

		if cfg.Bot.AlertChatID != 0 {
			refresher.WithNotifier(
				notifier.NewTelegramBot(b.Telego(), cfg.Bot.AlertChatID),
				cfg.ExchangeRate.AlertThreshold,
			)
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks: []probe.Check{
			{Name: "postgres", Fn: pg.Ping},
			{Name: "redis", Fn: rdb.Ping},
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	modules.AsynqServer{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DatabaseNumber,
	}.Run(ctx, g,
		modules.AsynqQueues{asynqQueue: 1},
		modules.AsynqHandler{Pattern: worker.TaskRefreshExchangeRate, Handle: refresher.Handle},
	)

	modules.AsynqScheduler{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DatabaseNumber,
	}.Run(ctx, g,
		modules.AsynqPeriodicTask{
			Cronspec: cfg.ExchangeRate.RefreshSchedule,
			Task:     worker.NewRefreshTask(),
			Opts:     []asynq.Option{asynq.Queue(asynqQueue), asynq.Unique(time.Minute)},
		},
	)

	if telegramBot != nil {
		modules.TelegramBot{}.Run(ctx, g, telegramBot)
	} else {
		log.Info("telegram bot disabled")
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
