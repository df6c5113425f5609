// serve command: the JSON HTTP surface.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/infinite/internal/config"
	"github.com/robalobadob/wordle/apps/infinite/internal/httpserver"
	"github.com/robalobadob/wordle/apps/infinite/internal/store"
	"github.com/robalobadob/wordle/apps/infinite/internal/words"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rounds over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String(config.KeyAddr, ":5175", "listen address")
	serveCmd.Flags().Duration(config.KeySessionTTL, 6*time.Hour, "drop rounds idle this long")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lx, err := words.Load()
	if err != nil {
		return err
	}
	hist, closeHist, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer closeHist()

	if cfg.DevSecret() {
		log.Warn().Msg("JWT_SECRET not set; using development secret")
	}

	mem := store.NewMemoryStore()
	hc := httpserver.Config{
		Source:      newSource(cfg, lx),
		Dictionary:  lx.Contains,
		MaxAttempts: cfg.Guesses,
		Rules:       cfg.Rules,
		Secret:      []byte(cfg.JWTSecret),
		TokenTTL:    cfg.SessionTTL,
	}
	if hist != nil {
		hc.History = hist
		hc.Stats = hist
	}
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpserver.New(mem, hc).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		t := time.NewTicker(time.Minute)
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case now := <-t.C:
				if n := mem.Sweep(now, cfg.SessionTTL); n > 0 {
					log.Debug().Int("dropped", n).Int("live", mem.Len()).Msg("swept idle rounds")
				}
			}
		}
	})
	return g.Wait()
}
