package service

import "github.com/YOUNSSBOSS/car-rent/internal/model"

// The status state machine as data: for each current status, the set of
// targets an actor may request. Statuses absent from a table are terminal
// for that actor. Same-value requests are not listed, so they are rejected
// like any other disallowed transition.
var adminTransitions = map[model.BookingStatus][]model.BookingStatus{
	model.BookingPending:   {model.BookingConfirmed, model.BookingDeclined, model.BookingCancelled},
	model.BookingConfirmed: {model.BookingCancelled, model.BookingCompleted},
}

// Owning users may only cancel.
var userTransitions = map[model.BookingStatus][]model.BookingStatus{
	model.BookingPending:   {model.BookingCancelled},
	model.BookingConfirmed: {model.BookingCancelled},
}

func transitionAllowed(from, to model.BookingStatus, admin bool) bool {
	table := userTransitions
	if admin {
		table = adminTransitions
	}
	for _, target := range table[from] {
		if target == to {
			return true
		}
	}
	return false
}
