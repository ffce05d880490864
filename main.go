// HotSecjobBot — security-vacancy analytics over hh.ru.
//
// Two long-running parts share one process: a scheduler that periodically
// refreshes the per-region CSV tables from the hh.ru API, and a Telegram bot
// that answers analytics questions over those tables and accepts
// crowd-sourced salary data points.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-kit/env"

	"github.com/Roups939/HotSecjobBot/internal/bot"
	"github.com/Roups939/HotSecjobBot/internal/hh"
	"github.com/Roups939/HotSecjobBot/internal/pipeline"
	"github.com/Roups939/HotSecjobBot/internal/scheduler"
	"github.com/Roups939/HotSecjobBot/internal/store"
)

var (
	telegramToken   = env.Str("TELEGRAM_TOKEN", "")
	dataDir         = env.Str("DATA_DIR", "data")
	hhBaseURL       = env.Str("HH_BASE_URL", "https://api.hh.ru")
	perPage         = env.Int("HH_PER_PAGE", 10)
	pageLimit       = env.Int("HH_PAGE_LIMIT", 3)
	rateLimit       = env.Float("HH_RATE_LIMIT", 5)
	refreshInterval = env.Duration("REFRESH_INTERVAL", 24*time.Hour)
	redisURL        = env.Str("REDIS_URL", "")
	detailCacheTTL  = env.Duration("DETAIL_CACHE_TTL", time.Hour)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting hotsecjobbot",
		slog.String("data_dir", dataDir),
		slog.Duration("refresh_interval", refreshInterval),
	)

	st, err := store.New(dataDir)
	if err != nil {
		slog.Error("store init failed", slog.Any("error", err))
		os.Exit(1)
	}

	client := hh.NewClient(
		&http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
		hh.WithBaseURL(hhBaseURL),
		hh.WithRateLimit(rateLimit),
		hh.WithDetailCache(redisURL, detailCacheTTL),
	)

	sched := scheduler.New(pipeline.New(client, perPage, pageLimit), st, refreshInterval)

	if telegramToken == "" {
		slog.Warn("TELEGRAM_TOKEN is empty, running collector only")
		sched.Run(ctx)
		return
	}

	go sched.Run(ctx)

	b, err := bot.NewBot(telegramToken, bot.New(st))
	if err != nil {
		slog.Error("bot init failed", slog.Any("error", err))
		os.Exit(1)
	}
	b.Run(ctx)
}
