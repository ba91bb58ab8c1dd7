package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/reelkit/reelkit/internal/api"
	"github.com/reelkit/reelkit/internal/chat"
	"github.com/reelkit/reelkit/internal/config"
	"github.com/reelkit/reelkit/internal/logging"
	"github.com/reelkit/reelkit/internal/project"
	"github.com/reelkit/reelkit/internal/render"
	"github.com/reelkit/reelkit/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	logging.Init(*verbose || cfg.Verbose)
	log := logging.WithComponent("server")

	system.Snapshot().Log(log)

	store := project.NewStore(project.Settings{
		FPS:    cfg.Composition.FPS,
		Width:  cfg.Composition.Width,
		Height: cfg.Composition.Height,
		Rows:   cfg.Composition.Rows,
	})
	renderClient := render.NewClient(cfg.RenderServiceURL, logging.WithComponent("render"))
	server := api.New(store, chat.NewStore(), renderClient, logging.WithComponent("api"))

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
