package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YOUNSSBOSS/car-rent/internal/model"
)

func TestTransitionAllowed(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name  string
		from  model.BookingStatus
		to    model.BookingStatus
		admin bool
		want  bool
	}{
		{"admin confirms pending", model.BookingPending, model.BookingConfirmed, true, true},
		{"admin declines pending", model.BookingPending, model.BookingDeclined, true, true},
		{"admin cancels pending", model.BookingPending, model.BookingCancelled, true, true},
		{"admin completes pending", model.BookingPending, model.BookingCompleted, true, false},
		{"admin cancels confirmed", model.BookingConfirmed, model.BookingCancelled, true, true},
		{"admin completes confirmed", model.BookingConfirmed, model.BookingCompleted, true, true},
		{"admin reverts confirmed to pending", model.BookingConfirmed, model.BookingPending, true, false},
		{"admin declines confirmed", model.BookingConfirmed, model.BookingDeclined, true, false},
		{"admin repeats same status", model.BookingPending, model.BookingPending, true, false},

		{"user cancels pending", model.BookingPending, model.BookingCancelled, false, true},
		{"user cancels confirmed", model.BookingConfirmed, model.BookingCancelled, false, true},
		{"user confirms pending", model.BookingPending, model.BookingConfirmed, false, false},
		{"user completes confirmed", model.BookingConfirmed, model.BookingCompleted, false, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, transitionAllowed(tt.from, tt.to, tt.admin))
		})
	}
}

func TestTransitionAllowed_TerminalStatuses(t *testing.T) {
	t.Parallel()

	terminal := []model.BookingStatus{model.BookingDeclined, model.BookingCancelled, model.BookingCompleted}
	all := []model.BookingStatus{
		model.BookingPending, model.BookingConfirmed, model.BookingDeclined,
		model.BookingCancelled, model.BookingCompleted,
	}
	for _, from := range terminal {
		for _, to := range all {
			require.False(t, transitionAllowed(from, to, true), "admin %s -> %s", from, to)
			require.False(t, transitionAllowed(from, to, false), "user %s -> %s", from, to)
		}
	}
}
