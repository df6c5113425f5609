package puzzle

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomDate(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		d := RandomDate(rng, now)
		assert.GreaterOrEqual(t, d.Unix(), Oldest)
		assert.Less(t, d.Unix(), now.Unix())
	}

	early := time.Unix(Oldest-10, 0)
	assert.Equal(t, Oldest, RandomDate(rng, early).Unix())
}

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("east", 10*3600)
	d := time.Date(2023, 1, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2023-01-01", DateKey(d), "date key is UTC")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Wordle #512 by Tracy Bennett", Puzzle{ID: 512, Editor: "Tracy Bennett"}.Label())
	assert.Equal(t, "Wordle #7", Puzzle{ID: 7}.Label())
}

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/svc/wordle/v2/2023-05-04.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1234,"solution":"Crane","print_date":"2023-05-04","days_since_launch":684,"editor":"Tracy Bennett"}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(HTTPConfig{BaseURL: srv.URL + "/"})
	p, err := src.Fetch(context.Background(), time.Date(2023, 5, 4, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, Puzzle{
		ID:              1234,
		Solution:        "crane",
		PrintDate:       "2023-05-04",
		DaysSinceLaunch: 684,
		Editor:          "Tracy Bennett",
	}, p)
}

func TestHTTPSource_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"not found", http.StatusNotFound, `{}`, ErrUnavailable},
		{"server error", http.StatusInternalServerError, ``, ErrUnavailable},
		{"empty solution", http.StatusOK, `{"id":1,"solution":""}`, ErrUnavailable},
		{"bad json", http.StatusOK, `{"id":`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewHTTPSource(HTTPConfig{BaseURL: srv.URL}).Fetch(context.Background(), time.Now())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestHTTPSource_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewHTTPSource(HTTPConfig{BaseURL: srv.URL}).Fetch(ctx, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestOfflineSource(t *testing.T) {
	answers := []string{"crane", "smell", "plant"}
	src := NewOfflineSource(answers, "salt")
	d := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	p1, err := src.Fetch(context.Background(), d)
	require.NoError(t, err)
	p2, err := src.Fetch(context.Background(), d.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, p1, p2, "same day yields the same puzzle")
	assert.Contains(t, answers, p1.Solution)
	assert.Equal(t, "2024-02-29", p1.PrintDate)
	assert.Equal(t, answers[p1.ID], p1.Solution)

	_, err = NewOfflineSource(nil, "salt").Fetch(context.Background(), d)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestWordIndex(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, WordIndex(d, "x", 0))
	for n := 1; n < 50; n++ {
		i := WordIndex(d, "x", n)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, n)
	}
	assert.Equal(t, WordIndex(d, "x", 1000), WordIndex(d, "x", 1000))
}
