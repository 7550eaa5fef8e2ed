package entities

import "testing"

func TestBookingStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusInProgress, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusInProgress, true},
		{BookingStatusConfirmed, BookingStatusCompleted, false},
		{BookingStatusInProgress, BookingStatusCompleted, true},
		{BookingStatusInProgress, BookingStatusConfirmed, false},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusInProgress, BookingStatusCancelled, true},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusInProgress, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Fatalf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	for _, s := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress} {
		if s.IsTerminal() {
			t.Fatalf("%s should not be terminal", s)
		}
	}
	for _, s := range []BookingStatus{BookingStatusCompleted, BookingStatusCancelled} {
		if !s.IsTerminal() {
			t.Fatalf("%s should be terminal", s)
		}
	}
}
