package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}

func TestParseInstant(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)

	got, err := ParseInstant("2024-01-08T08:00:00Z", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)))

	got, err = ParseInstant("2024-01-08", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 8, 0, 0, 0, 0, loc)))

	_, err = ParseInstant("08/01/2024", loc)
	assert.Error(t, err)
}

func TestWeekWindow(t *testing.T) {
	wednesday := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	from, to := WeekWindow(wednesday, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), to)

	sunday := time.Date(2024, 1, 14, 23, 0, 0, 0, time.UTC)
	from, _ = WeekWindow(sunday, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), from)
}
