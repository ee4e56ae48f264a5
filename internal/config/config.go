package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/tallyhq/tally/internal/common"
)

// Settings holds the resolved application configuration the core receives as
// explicit input. The engine packages never read viper themselves.
type Settings struct {
	// DatabasePath is the SQLite database location.
	DatabasePath string
	// DefaultCurrency is the reference currency for unified totals and
	// percentage normalization.
	DefaultCurrency string
	// WeekStart is the first day of the week for week-granularity windows.
	WeekStart time.Weekday
}

// FromViper reads settings out of the loaded viper configuration, applying
// defaults for anything unset.
func FromViper() (Settings, error) {
	s := Settings{
		DatabasePath:    ExpandPath(viper.GetString("database.path")),
		DefaultCurrency: viper.GetString("currency.default"),
	}

	if s.DatabasePath == "" {
		s.DatabasePath = ExpandPath("~/.local/share/tally/tally.db")
	}
	if s.DefaultCurrency == "" {
		s.DefaultCurrency = "CNY"
	}

	weekStart, err := parseWeekday(viper.GetString("week.start"))
	if err != nil {
		return Settings{}, err
	}
	s.WeekStart = weekStart

	return s, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	switch s {
	case "", "monday":
		return time.Monday, nil
	case "sunday":
		return time.Sunday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Monday, fmt.Errorf("%w: week.start %q (want monday, sunday, or saturday)", common.ErrInvalidConfig, s)
	}
}
