// Command survey-report loads the analytics dashboard once and prints it.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/surveyadmin/backend/internal/analytics"
	"github.com/surveyadmin/backend/internal/dashboard"
	"github.com/surveyadmin/backend/internal/infrastructure/config"
	"github.com/surveyadmin/backend/internal/report"
	"github.com/surveyadmin/backend/internal/service"
	"github.com/surveyadmin/backend/internal/simulation"
	"github.com/surveyadmin/backend/internal/source"
	"github.com/surveyadmin/backend/internal/store"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fs := pflag.NewFlagSet("survey-report", pflag.ContinueOnError)
	upstream := fs.String("upstream", cfg.Source.UpstreamURL, "survey API base URL; reads the local database when empty")
	dbPath := fs.String("db", cfg.DB.Path, "sqlite database file")
	timeout := fs.Duration("timeout", cfg.Source.UpstreamTimeout, "fetch timeout")
	leaderboard := fs.Int("leaderboard", cfg.Analytics.LeaderboardSize, "leaderboard entries")
	recent := fs.Int("recent", cfg.Analytics.RecentLimit, "recent answers")
	asJSON := fs.Bool("json", false, "print the view as JSON")
	noColor := fs.Bool("no-color", false, "disable colors")
	simulate := fs.Int("simulate", 0, "record this many simulated responses first (local database only)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var fetcher source.Fetcher
	if *upstream != "" {
		fetcher = source.NewUpstreamSource(*upstream, *timeout)
	} else {
		db, err := store.NewSQLite(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open database: %v\n", err)
			return 1
		}
		defer db.Close()
		fetcher = source.NewStoreSource(db)

		if *simulate > 0 {
			if err := simulateResponses(db, *simulate); err != nil {
				fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
				return 1
			}
		}
	}

	engine := dashboard.NewEngine(fetcher, dashboard.Config{
		Analytics:    analytics.Options{LeaderboardSize: *leaderboard, RecentLimit: *recent},
		CreateURL:    "/questions",
		Workers:      1,
		FetchTimeout: *timeout,
	}, zap.NewNop())
	defer engine.Close()

	view := engine.Load(context.Background(), source.Scope{Admin: true})

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	} else {
		fmt.Print(report.Render(view, *noColor))
	}

	if view.State == dashboard.StateError {
		return 1
	}
	return 0
}

func simulateResponses(db store.Store, n int) error {
	ctx := context.Background()
	questions, err := db.ListQuestions(ctx)
	if err != nil {
		return err
	}

	opts := simulation.DefaultOptions()
	opts.Responses = n
	res := simulation.Run(ctx, service.NewQuestionService(db, nil, zap.NewNop()), questions, opts)
	fmt.Fprintf(os.Stderr, "simulated %d answered (%d correct), %d skipped, %d failed\n",
		res.Answered, res.Correct, res.Skipped, res.Failed)
	return nil
}
