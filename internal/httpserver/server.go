// internal/httpserver/server.go
//
// HTTP surface for playing rounds over JSON.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Diagnostics: "/", "/health", "/metrics".
//   - Round endpoints: POST /round/new, POST /round/guess, GET /round/state.
//   - History endpoint: GET /stats (when a history store is configured).
//
// Notes:
//   - A round is addressed by a signed bearer token carrying its session ID,
//     so clients cannot probe other players' rounds by guessing IDs.
//   - Rejected guesses answer 422 with "retry": true; the round is unchanged.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/infinite/internal/game"
	"github.com/robalobadob/wordle/apps/infinite/internal/history"
	"github.com/robalobadob/wordle/apps/infinite/internal/puzzle"
	"github.com/robalobadob/wordle/apps/infinite/internal/render"
	"github.com/robalobadob/wordle/apps/infinite/internal/store"
)

// StatsSource reports aggregate history. *history.Store implements it.
type StatsSource interface {
	Stats(ctx context.Context) (history.Stats, error)
}

// Config holds the server's collaborators and limits.
type Config struct {
	Source      puzzle.Source
	Dictionary  game.Dictionary
	History     history.Recorder
	Stats       StatsSource
	MaxAttempts int
	Rules       game.Rules
	// Secret signs round tokens.
	Secret   []byte
	TokenTTL time.Duration
	Timeout  time.Duration
	Rand     *rand.Rand
	Now      func() time.Time
}

// Server bundles router, session store, and collaborators.
type Server struct {
	r       *chi.Mux
	store   store.Store
	cfg     Config
	metrics *metrics

	rngMu sync.Mutex
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cfg Config) *Server {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		cfg.Rand = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	s := &Server{r: chi.NewRouter(), store: st, cfg: cfg, metrics: newMetrics()}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(cfg.Timeout))
	s.r.Use(requestLogger)

	// --- diagnostics ---
	s.r.Get("/metrics", s.metrics.handler().ServeHTTP)
	s.r.Group(func(r chi.Router) {
		r.Use(jsonContentType)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"service":"wordle-infinite","endpoints":["/health","POST /round/new","POST /round/guess","GET /round/state","GET /stats"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		})

		r.Post("/round/new", s.handleNewRound)
		r.With(s.requireRound()).Post("/round/guess", s.handleGuess)
		r.With(s.requireRound()).Get("/round/state", s.handleState)
		r.Get("/stats", s.handleStats)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Handler exposes the router (tests, http.Server).
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("http request")
	})
}

// ------------------------------ ROUNDS -------------------------------------

type newRoundReq struct {
	// Date picks a specific puzzle (YYYY-MM-DD); empty means a random past date.
	Date string `json:"date"`
}

type newRoundRes struct {
	Token       string `json:"token"`
	RoundID     string `json:"roundId"`
	Label       string `json:"label"`
	PrintDate   string `json:"printDate"`
	Attempt     int    `json:"attempt"`
	MaxAttempts int    `json:"maxAttempts"`
}

// handleNewRound fetches a puzzle and starts a round for it.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}

	now := s.cfg.Now()
	date := s.randomDate(now)
	if req.Date != "" {
		d, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date")
			return
		}
		date = d
	}

	p, err := s.cfg.Source.Fetch(r.Context(), date)
	if err != nil {
		log.Warn().Err(err).Str("date", puzzle.DateKey(date)).Msg("fetch puzzle")
		status := http.StatusBadGateway
		if errors.Is(err, puzzle.ErrUnavailable) {
			status = http.StatusNotFound
		}
		writeError(w, status, "puzzle_unavailable")
		return
	}

	rd, err := game.NewRound(p.Solution,
		game.WithMaxAttempts(s.cfg.MaxAttempts),
		game.WithRules(s.cfg.Rules),
		game.WithDictionary(s.cfg.Dictionary),
	)
	if err != nil {
		log.Warn().Err(err).Int("puzzle", p.ID).Msg("bad puzzle")
		writeError(w, http.StatusBadGateway, "puzzle_invalid")
		return
	}

	sess := store.NewSession(p, rd, now)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, err := signRoundToken(s.cfg.Secret, sess.ID, now, s.cfg.TokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.metrics.roundsStarted.Inc()

	_ = json.NewEncoder(w).Encode(newRoundRes{
		Token:       tok,
		RoundID:     sess.ID,
		Label:       p.Label(),
		PrintDate:   p.PrintDate,
		Attempt:     rd.Attempt(),
		MaxAttempts: rd.MaxAttempts(),
	})
}

func (s *Server) randomDate(now time.Time) time.Time {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return puzzle.RandomDate(s.cfg.Rand, now)
}

type guessReq struct {
	Guess string `json:"guess"`
}

type guessRes struct {
	Outcome        game.Outcome                `json:"outcome"`
	Attempt        int                         `json:"attempt"`
	Classification game.Classification         `json:"classification,omitempty"`
	Keyboard       map[string]game.LetterState `json:"keyboard"`
	Solution       string                      `json:"solution,omitempty"`
}

type rejectRes struct {
	Error   string `json:"error"`
	Retry   bool   `json:"retry"`
	Attempt int    `json:"attempt"`
}

// handleGuess applies a guess to the caller's round.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var (
		res         game.Result
		err         error
		kb          game.KeyboardState
		maxAttempts int
	)
	sess.With(s.cfg.Now(), func(rd *game.Round) {
		res, err = rd.Advance(req.Guess)
		kb = rd.Keyboard()
		maxAttempts = rd.MaxAttempts()
	})

	switch {
	case errors.Is(err, game.ErrRoundOver):
		writeError(w, http.StatusConflict, "round_over")
		return
	case game.IsValidation(err):
		s.metrics.rejected.Inc()
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(rejectRes{Error: render.RejectMessage(err), Retry: true, Attempt: res.Attempt})
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "advance_failed")
		return
	}

	if res.Outcome == game.OutcomeWon || res.Outcome == game.OutcomeLost {
		s.metrics.outcomes.WithLabelValues(res.Outcome.String()).Inc()
		s.record(r.Context(), sess, res, maxAttempts)
	}

	_ = json.NewEncoder(w).Encode(guessRes{
		Outcome:        res.Outcome,
		Attempt:        res.Attempt,
		Classification: res.Classification,
		Keyboard:       kb.Map(),
		Solution:       res.Solution,
	})
}

type stateRes struct {
	State       string                      `json:"state"`
	Label       string                      `json:"label"`
	Attempt     int                         `json:"attempt"`
	MaxAttempts int                         `json:"maxAttempts"`
	Guesses     []string                    `json:"guesses"`
	Keyboard    map[string]game.LetterState `json:"keyboard"`
	Solution    string                      `json:"solution,omitempty"`
}

// handleState reports the round without changing it.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	var out stateRes
	sess.With(s.cfg.Now(), func(rd *game.Round) {
		kb := rd.Keyboard()
		out = stateRes{
			State:       rd.State().String(),
			Label:       sess.Puzzle.Label(),
			Attempt:     rd.Attempt(),
			MaxAttempts: rd.MaxAttempts(),
			Guesses:     rd.Guesses(),
			Keyboard:    kb.Map(),
			Solution:    rd.Solution(),
		}
	})
	_ = json.NewEncoder(w).Encode(out)
}

// record persists a finished round, best effort.
func (s *Server) record(ctx context.Context, sess *store.Session, res game.Result, maxAttempts int) {
	if s.cfg.History == nil {
		return
	}
	err := s.cfg.History.Record(ctx, history.Entry{
		PuzzleID:    sess.Puzzle.ID,
		PrintDate:   sess.Puzzle.PrintDate,
		Solution:    sess.Puzzle.Solution,
		Attempts:    res.Attempt,
		MaxAttempts: maxAttempts,
		Won:         res.Outcome == game.OutcomeWon,
		FinishedAt:  s.cfg.Now(),
	})
	if err != nil {
		log.Warn().Err(err).Str("round", sess.ID).Msg("record round")
	}
}

// handleStats returns aggregate history.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Stats == nil {
		writeError(w, http.StatusNotFound, "history_disabled")
		return
	}
	st, err := s.cfg.Stats.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("stats")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(st)
}

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
