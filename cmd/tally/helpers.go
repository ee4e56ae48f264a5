package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tallyhq/tally/internal/catalog"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/service"
	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/timeframe"
)

// app bundles everything a command needs after initialization.
type app struct {
	Store    service.Storage
	Catalog  *catalog.Catalog
	Resolver *timeframe.Resolver
	Settings config.Settings
}

// initApp loads settings, opens the database with migrations applied, and
// loads the category catalog.
func initApp(ctx context.Context) (*app, error) {
	settings, err := config.FromViper()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(settings.DatabasePath)
	if err != nil {
		return nil, common.NewUserError("could not open the expense database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	cat, err := catalog.Load(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &app{
		Store:   store,
		Catalog: cat,
		Resolver: &timeframe.Resolver{
			Loc:      time.Local,
			FirstDay: settings.WeekStart,
		},
		Settings: settings,
	}, nil
}

// Close releases the app's resources.
func (a *app) Close() error {
	return a.Store.Close()
}

// parseDate accepts a date with or without a time of day.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}

// buildSelection turns the shared window flags into a timeframe.Selection.
// Explicit --from/--to switch the selection to a custom window; both must
// then be present.
func buildSelection(granularity, anchor, from, to string) (timeframe.Selection, error) {
	if from != "" || to != "" {
		if from == "" || to == "" {
			return timeframe.Selection{}, fmt.Errorf("--from and --to must be used together")
		}
		start, err := parseDate(from)
		if err != nil {
			return timeframe.Selection{}, err
		}
		end, err := parseDate(to)
		if err != nil {
			return timeframe.Selection{}, err
		}
		return timeframe.Selection{
			Granularity: timeframe.Custom,
			CustomStart: start,
			CustomEnd:   end,
		}, nil
	}

	g, err := timeframe.ParseGranularity(granularity)
	if err != nil {
		return timeframe.Selection{}, err
	}
	if g == timeframe.Custom {
		return timeframe.Selection{}, fmt.Errorf("custom windows need explicit --from and --to")
	}

	anchorTime := time.Now()
	if anchor != "" {
		anchorTime, err = parseDate(anchor)
		if err != nil {
			return timeframe.Selection{}, err
		}
	}

	return timeframe.Selection{Granularity: g, Anchor: anchorTime}, nil
}
