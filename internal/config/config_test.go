package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	s, err := FromViper()
	require.NoError(t, err)

	assert.Equal(t, "CNY", s.DefaultCurrency)
	assert.Equal(t, time.Monday, s.WeekStart)
	assert.NotEmpty(t, s.DatabasePath)
}

func TestFromViper_Explicit(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("database.path", "/tmp/tally-test.db")
	viper.Set("currency.default", "USD")
	viper.Set("week.start", "sunday")

	s, err := FromViper()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tally-test.db", s.DatabasePath)
	assert.Equal(t, "USD", s.DefaultCurrency)
	assert.Equal(t, time.Sunday, s.WeekStart)
}

func TestFromViper_InvalidWeekStart(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("week.start", "thursday")

	_, err := FromViper()
	require.Error(t, err)
}
