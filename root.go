// Root command: plays rounds in the terminal until input ends.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/infinite/internal/config"
	"github.com/robalobadob/wordle/apps/infinite/internal/history"
	"github.com/robalobadob/wordle/apps/infinite/internal/puzzle"
	"github.com/robalobadob/wordle/apps/infinite/internal/render"
	"github.com/robalobadob/wordle/apps/infinite/internal/session"
	"github.com/robalobadob/wordle/apps/infinite/internal/words"
)

// cfg is resolved by PersistentPreRunE for every command.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:           "wordle",
	Short:         "Infinite wordle in the terminal",
	Long:          "Plays random historical Wordle puzzles back to back. Type a guess and press enter.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cmd.Flags()); err != nil {
			return err
		}
		setupLogging(cfg.LogLevel)
		return nil
	},
	RunE: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String(config.KeyConfig, "", "config file (yaml, toml or json)")
	pf.String(config.KeyLogLevel, "info", "log level (debug, info, warn, error)")
	pf.IntP(config.KeyGuesses, "g", 6, "maximum attempts before failing")
	pf.String(config.KeyRules, "classic", "feedback rules: classic or canonical")
	pf.Bool(config.KeyOffline, false, "pick puzzles from the embedded word list instead of fetching")
	pf.String(config.KeyDB, "", "SQLite file to record finished rounds in (disabled when empty)")
	pf.String(config.KeySourceURL, puzzle.DefaultBaseURL, "puzzle service base URL")
	pf.Duration(config.KeyHTTPTimeout, 10*time.Second, "puzzle fetch timeout")

	rootCmd.Flags().BoolP(config.KeyDebug, "d", false, "print each puzzle, solution included. CHEAT")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	lx, err := words.Load()
	if err != nil {
		return err
	}
	hist, closeHist, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer closeHist()

	d := &session.Driver{
		Source:      newSource(cfg, lx),
		Dictionary:  lx.Contains,
		Renderer:    render.NewTerminal(os.Stdout),
		MaxAttempts: cfg.Guesses,
		Rules:       cfg.Rules,
		Debug:       cfg.Debug,
	}
	if hist != nil {
		d.History = hist
	}
	return d.Run(cmd.Context(), os.Stdin)
}

// newSource picks the offline or HTTP puzzle source.
func newSource(c config.Config, lx *words.Lexicon) puzzle.Source {
	if c.Offline {
		return puzzle.NewOfflineSource(lx.Answers(), c.DailySalt)
	}
	return puzzle.NewHTTPSource(puzzle.HTTPConfig{
		BaseURL:           c.SourceURL,
		Timeout:           c.HTTPTimeout,
		RequestsPerSecond: c.FetchRPS,
	})
}

// openHistory opens the history store when a DB path is configured.
// The returned store is nil when history is disabled.
func openHistory(c config.Config) (*history.Store, func(), error) {
	if c.DB == "" {
		return nil, func() {}, nil
	}
	st, err := history.Open(c.DB)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("db", c.DB).Msg("history enabled")
	return st, func() {
		if err := st.Close(); err != nil {
			log.Warn().Err(err).Msg("close history")
		}
	}, nil
}
