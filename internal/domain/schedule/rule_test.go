package schedule_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/linguacrm/internal/domain/schedule"
	"github.com/yigit/linguacrm/internal/pkg/apperrors"
)

func Test_ParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    schedule.ClockTime
		wantErr bool
	}{
		{in: "00:00", want: schedule.ClockTime{}},
		{in: "08:05", want: schedule.ClockTime{Hour: 8, Minute: 5}},
		{in: " 23:59 ", want: schedule.ClockTime{Hour: 23, Minute: 59}},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "8:00", wantErr: true},
		{in: "08-00", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := schedule.ParseClockTime(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func Test_ClockTime_On(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	day := time.Date(2024, 5, 6, 22, 0, 0, 0, time.UTC)

	got := schedule.MustParseClockTime("18:30").On(day, loc)
	assert.Equal(t, time.Date(2024, 5, 6, 18, 30, 0, 0, loc), got)
	assert.Equal(t, schedule.MustParseClockTime("18:30"), schedule.ClockTimeOf(got.UTC(), loc))
}

func Test_RecurrenceRule_Validate(t *testing.T) {
	room := uuid.New()
	tests := []struct {
		name    string
		rule    schedule.RecurrenceRule
		wantErr bool
	}{
		{name: "valid", rule: rule(time.Monday, "08:00", "10:00", room)},
		{name: "start_equals_end", rule: rule(time.Monday, "08:00", "08:00", room), wantErr: true},
		{name: "start_after_end", rule: rule(time.Monday, "10:00", "08:00", room), wantErr: true},
		{name: "day_too_large", rule: schedule.RecurrenceRule{DayOfWeek: 7, Start: schedule.MustParseClockTime("08:00"), End: schedule.MustParseClockTime("09:00"), RoomID: room}, wantErr: true},
		{name: "day_negative", rule: schedule.RecurrenceRule{DayOfWeek: -1, Start: schedule.MustParseClockTime("08:00"), End: schedule.MustParseClockTime("09:00"), RoomID: room}, wantErr: true},
		{name: "missing_room", rule: rule(time.Monday, "08:00", "10:00", uuid.Nil), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_ValidateRules_ReportsIndex(t *testing.T) {
	room := uuid.New()
	err := schedule.ValidateRules([]schedule.RecurrenceRule{
		rule(time.Monday, "08:00", "10:00", room),
		rule(time.Tuesday, "11:00", "10:00", room),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule 1")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	assert.NoError(t, schedule.ValidateRules(nil))
}
