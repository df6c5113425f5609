// stats command: prints the recorded history.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/infinite/internal/history"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show results recorded with --db",
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, closeHist, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer closeHist()
		if hist == nil {
			return errors.New("no history database; pass --db or set WORDLE_DB")
		}
		st, err := hist.Stats(cmd.Context())
		if err != nil {
			return err
		}
		if statsJSON {
			return json.NewEncoder(os.Stdout).Encode(st)
		}
		printStats(st)
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
}

func printStats(st history.Stats) {
	pct := 0
	if st.Played > 0 {
		pct = st.Wins * 100 / st.Played
	}
	fmt.Printf("Played %d  Won %d%%  Streak %d  Best %d\n", st.Played, pct, st.CurrentStreak, st.MaxStreak)

	keys := make([]int, 0, len(st.Distribution))
	for k := range st.Distribution {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Printf("%2d: %d\n", k, st.Distribution[k])
	}
}
