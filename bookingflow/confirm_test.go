package bookingflow

import (
	"testing"

	"monbillet/models"
)

func TestConflictingSeats(t *testing.T) {
	sold := []models.Ticket{
		{SeatNumber: "3", Status: models.TicketConfirmed},
		{SeatNumber: "5", Status: models.TicketCancelled},
		{SeatNumber: "9", Status: models.TicketUsed},
	}

	got := conflictingSeats([]int{1, 3, 5, 9}, sold)
	if len(got) != 2 || got[0] != 3 || got[1] != 9 {
		t.Errorf("conflicts = %v, want [3 9]", got)
	}
	// A cancelled ticket frees its seat.
	if c := conflictingSeats([]int{5}, sold); len(c) != 0 {
		t.Errorf("cancelled seat reported as conflict: %v", c)
	}
	if c := conflictingSeats(nil, sold); len(c) != 0 {
		t.Errorf("empty selection conflicts: %v", c)
	}
}

func TestSeatLockKeyPerTripAndSeat(t *testing.T) {
	a := seatLockKey("k-leo-1", 12)
	if a != "seatlock:k-leo-1:12" {
		t.Errorf("key = %s", a)
	}
	if a == seatLockKey("k-leo-1", 13) || a == seatLockKey("k-utr-1", 12) {
		t.Error("lock keys collide across seats or trips")
	}
}

func TestRevertToSeatSelectDropsLostSeats(t *testing.T) {
	const userID = "revert-user"
	defer DefaultStore.Drop(userID)

	err := DefaultStore.With(userID, func(s *Session) error {
		s.SelectTrip(testTrip(), "2026-09-15")
		if err := s.ToggleSeat(2, models.GenderFemale, nil); err != nil {
			return err
		}
		if err := s.ToggleSeat(7, models.GenderMale, nil); err != nil {
			return err
		}
		if err := s.ProceedToDetails(); err != nil {
			return err
		}
		if err := s.SetPassenger(2, Passenger{Name: "Awa", Phone: "0700000000"}); err != nil {
			return err
		}
		if err := s.SetPassenger(7, Passenger{Name: "Koffi", Phone: "0505050505"}); err != nil {
			return err
		}
		if err := s.ProceedToPayment(); err != nil {
			return err
		}
		if err := s.ChoosePayment("wave"); err != nil {
			return err
		}
		return s.Finalize()
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	revertToSeatSelect(userID, []int{7})

	snap := DefaultStore.Get(userID)
	if snap.Step != StepSeatSelect {
		t.Errorf("step = %s, want %s", snap.Step, StepSeatSelect)
	}
	if _, ok := snap.Seats[7]; ok {
		t.Error("lost seat still selected after revert")
	}
	if _, ok := snap.Seats[2]; !ok {
		t.Error("surviving seat dropped by revert")
	}
}
