package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/YOUNSSBOSS/car-rent/internal/model"
)

func TestDurationDays(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name  string
		start model.Date
		end   model.Date
		want  int
	}{
		{"single day", model.NewDate(2030, time.June, 1), model.NewDate(2030, time.June, 2), 1},
		{"two days", model.NewDate(2030, time.June, 1), model.NewDate(2030, time.June, 3), 2},
		{"month boundary", model.NewDate(2030, time.June, 30), model.NewDate(2030, time.July, 2), 2},
		{"zero", model.NewDate(2030, time.June, 1), model.NewDate(2030, time.June, 1), 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, model.DurationDays(tt.start, tt.end))
		})
	}
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	d := model.NewDate(2030, time.June, 1)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2030-06-01"`, string(data))

	var parsed model.Date
	require.NoError(t, json.Unmarshal([]byte(`"2030-06-01"`), &parsed))
	require.True(t, parsed.Equal(d.Time))

	require.Error(t, json.Unmarshal([]byte(`"01.06.2030"`), &parsed))
}

func TestBookingStatus_Terminal(t *testing.T) {
	t.Parallel()

	require.False(t, model.BookingPending.Terminal())
	require.False(t, model.BookingConfirmed.Terminal())
	require.True(t, model.BookingDeclined.Terminal())
	require.True(t, model.BookingCancelled.Terminal())
	require.True(t, model.BookingCompleted.Terminal())
}
