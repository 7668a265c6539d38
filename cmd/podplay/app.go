package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/tesso57/podplay/internal/application/usecase"
	"github.com/tesso57/podplay/internal/dispatch"
	"github.com/tesso57/podplay/internal/infrastructure/config"
	"github.com/tesso57/podplay/internal/infrastructure/itunes"
	"github.com/tesso57/podplay/internal/infrastructure/rss"
	"github.com/tesso57/podplay/internal/logging"
	"github.com/tesso57/podplay/internal/presentation/cli"
)

var errInterrupted = errors.New("interrupted")

// App holds the wired services shared by every command.
type App struct {
	Podcasts      usecase.PodcastService
	Search        usecase.SearchService
	Subscriptions usecase.SubscriptionService
	Printer       cli.Printer
	Logger        *zap.SugaredLogger
}

func newApp(configPath string, out io.Writer) (*App, error) {
	store, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg := store.Settings

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second
	fetcher := rss.NewFetcher(rss.Options{
		Timeout:      timeout,
		UserAgent:    cfg.HTTP.UserAgent,
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
		Logger:       logger.Named("rss"),
	})
	catalog := itunes.NewClient(itunes.Options{
		BaseURL:   cfg.Search.BaseURL,
		Timeout:   timeout,
		UserAgent: cfg.HTTP.UserAgent,
		Logger:    logger.Named("itunes"),
	})

	return &App{
		Podcasts:      usecase.NewPodcastService(fetcher, usecase.NewPodcastMapper(time.Now, logger.Named("mapper"))),
		Search:        usecase.NewSearchService(catalog, cfg.Display.DateFormat),
		Subscriptions: usecase.NewSubscriptionService(store),
		Printer:       cli.NewPrinter(out, cfg.Display.Width, cfg.Display.DateFormat),
		Logger:        logger,
	}, nil
}

// await runs a main loop until start's callback calls finish or the user interrupts.
func await(start func(on dispatch.Executor, finish func())) error {
	loop := dispatch.NewLoop()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	finished := false
	start(loop, func() {
		finished = true
		cancel()
	})
	_ = loop.Run(ctx)
	if !finished {
		return errInterrupted
	}
	return nil
}
