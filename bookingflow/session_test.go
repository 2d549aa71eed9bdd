package bookingflow

import (
	"encoding/json"
	"sync"
	"testing"

	"monbillet/models"
)

func testTrip() models.Trip {
	return models.Trip{
		TripID:         "k-leo-1",
		Origin:         "Abidjan (Adjamé (Gare Centrale))",
		Destination:    "Korhogo",
		DepartureTime:  "06:30",
		Price:          10000,
		CompanyID:      "leopard",
		AvailableSeats: 12,
		SeatCount:      70,
	}
}

func sessionAtSeatSelect(t *testing.T) *Session {
	t.Helper()
	s := NewSession("u1")
	s.SelectTrip(testTrip(), "2026-09-15")
	return s
}

func TestSelectTripResetsSelection(t *testing.T) {
	s := sessionAtSeatSelect(t)
	if err := s.ToggleSeat(12, models.GenderFemale, nil); err != nil {
		t.Fatalf("ToggleSeat: %v", err)
	}

	s.SelectTrip(testTrip(), "2026-09-16")
	if len(s.Seats) != 0 {
		t.Errorf("seats not cleared on new trip: %v", s.Seats)
	}
	if s.Step != StepSeatSelect {
		t.Errorf("step = %s, want %s", s.Step, StepSeatSelect)
	}
}

func TestToggleSeatAddRemove(t *testing.T) {
	s := sessionAtSeatSelect(t)

	if err := s.ToggleSeat(5, models.GenderFemale, nil); err != nil {
		t.Fatalf("add seat: %v", err)
	}
	sel, ok := s.Seats[5]
	if !ok || sel.Gender != models.GenderFemale {
		t.Fatalf("seat 5 not selected with gender, got %+v", sel)
	}

	// Toggling again removes the seat entirely.
	if err := s.ToggleSeat(5, "", nil); err != nil {
		t.Fatalf("remove seat: %v", err)
	}
	if _, ok := s.Seats[5]; ok {
		t.Error("seat 5 still selected after second toggle")
	}
}

func TestToggleSeatRemovalDropsPassenger(t *testing.T) {
	s := sessionAtSeatSelect(t)
	if err := s.ToggleSeat(8, models.GenderMale, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.ProceedToDetails(); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPassenger(8, Passenger{Name: "Awa Traore", Phone: "0700000000"}); err != nil {
		t.Fatal(err)
	}

	s.Back() // back to seat selection
	if err := s.ToggleSeat(8, "", nil); err != nil {
		t.Fatal(err)
	}
	if err := s.ToggleSeat(8, models.GenderMale, nil); err != nil {
		t.Fatal(err)
	}
	if s.Seats[8].Passenger != nil {
		t.Error("reselected seat kept the old passenger")
	}
}

func TestToggleSeatOccupied(t *testing.T) {
	s := sessionAtSeatSelect(t)
	occupied := func(seat int) bool { return seat == 3 }

	if err := s.ToggleSeat(3, models.GenderMale, occupied); err != ErrSeatOccupied {
		t.Errorf("err = %v, want ErrSeatOccupied", err)
	}
	if len(s.Seats) != 0 {
		t.Error("occupied seat ended up selected")
	}
}

func TestToggleSeatBounds(t *testing.T) {
	s := sessionAtSeatSelect(t)
	for _, seat := range []int{0, -1, 71} {
		if err := s.ToggleSeat(seat, models.GenderMale, nil); err != ErrInvalidSeat {
			t.Errorf("seat %d: err = %v, want ErrInvalidSeat", seat, err)
		}
	}
}

func TestSeatLimit(t *testing.T) {
	s := sessionAtSeatSelect(t)
	for seat := 1; seat <= MaxSeats; seat++ {
		if err := s.ToggleSeat(seat, models.GenderMale, nil); err != nil {
			t.Fatalf("seat %d: %v", seat, err)
		}
	}
	if err := s.ToggleSeat(MaxSeats+1, models.GenderMale, nil); err != ErrTooManySeats {
		t.Errorf("err = %v, want ErrTooManySeats", err)
	}
}

func TestStepGating(t *testing.T) {
	s := NewSession("u1")

	// Nothing but trip selection works at the start.
	if err := s.ToggleSeat(1, models.GenderMale, nil); err != ErrWrongStep {
		t.Errorf("toggle at trip select: err = %v, want ErrWrongStep", err)
	}
	if err := s.ChoosePayment("wave"); err != ErrWrongStep {
		t.Errorf("payment at trip select: err = %v, want ErrWrongStep", err)
	}

	s.SelectTrip(testTrip(), "2026-09-15")
	if err := s.ProceedToDetails(); err != ErrNoSeats {
		t.Errorf("details with no seats: err = %v, want ErrNoSeats", err)
	}

	if err := s.ToggleSeat(2, models.GenderFemale, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.ProceedToDetails(); err != nil {
		t.Fatal(err)
	}
	if err := s.ProceedToPayment(); err != ErrMissingPassenger {
		t.Errorf("payment without passengers: err = %v, want ErrMissingPassenger", err)
	}

	if err := s.SetPassenger(2, Passenger{Name: "Ali", Phone: "0101010101"}); err != nil {
		t.Fatal(err)
	}
	if err := s.ProceedToPayment(); err != nil {
		t.Fatal(err)
	}

	if err := s.ChoosePayment("paypal"); err != ErrUnknownPayment {
		t.Errorf("unknown operator: err = %v, want ErrUnknownPayment", err)
	}
	if err := s.ChoosePayment("orange"); err != nil {
		t.Fatal(err)
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if s.Step != StepConfirmation {
		t.Errorf("step = %s, want %s", s.Step, StepConfirmation)
	}
}

func TestBackNavigation(t *testing.T) {
	s := sessionAtSeatSelect(t)
	if err := s.ToggleSeat(4, models.GenderMale, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.ProceedToDetails(); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPassenger(4, Passenger{Name: "Koffi", Phone: "0505050505"}); err != nil {
		t.Fatal(err)
	}
	if err := s.ProceedToPayment(); err != nil {
		t.Fatal(err)
	}
	if err := s.ChoosePayment("mtn"); err != nil {
		t.Fatal(err)
	}

	s.Back()
	if s.Step != StepPassengerDetails {
		t.Fatalf("step = %s, want %s", s.Step, StepPassengerDetails)
	}
	if s.PaymentMethod != "" {
		t.Error("payment method survived going back")
	}

	s.Back()
	if s.Step != StepSeatSelect {
		t.Fatalf("step = %s, want %s", s.Step, StepSeatSelect)
	}
	// Seats survive the return to seat selection.
	if _, ok := s.Seats[4]; !ok {
		t.Error("seat lost going back to seat selection")
	}

	s.Back()
	if s.Step != StepTripSelect {
		t.Fatalf("step = %s, want %s", s.Step, StepTripSelect)
	}
	if s.Trip != nil || len(s.Seats) != 0 {
		t.Error("trip or seats survived leaving seat selection")
	}
}

func TestTotal(t *testing.T) {
	s := sessionAtSeatSelect(t)
	if got := s.Total(); got != 0 {
		t.Errorf("empty total = %d, want 0", got)
	}
	s.ToggleSeat(1, models.GenderMale, nil)
	s.ToggleSeat(2, models.GenderFemale, nil)
	if got := s.Total(); got != 20000 {
		t.Errorf("total = %d, want 20000", got)
	}
}

func TestStorePerUserIsolation(t *testing.T) {
	st := &Store{sessions: map[string]*Session{}}
	_ = st.With("ua", func(s *Session) error {
		s.SelectTrip(testTrip(), "2026-09-15")
		return nil
	})
	if st.Get("ub").Step != StepTripSelect {
		t.Error("one user's trip selection leaked to another")
	}
	if st.Get("ua").Step != StepSeatSelect {
		t.Error("session not persisted between operations")
	}
}

func TestCloneIsDetached(t *testing.T) {
	s := sessionAtSeatSelect(t)
	if err := s.ToggleSeat(3, models.GenderFemale, nil); err != nil {
		t.Fatal(err)
	}

	c := s.Clone()
	c.Seats[3].Gender = models.GenderMale
	c.Seats[9] = &Selection{Gender: models.GenderMale}
	c.Trip.Price = 1

	if s.Seats[3].Gender != models.GenderFemale {
		t.Error("clone shares seat selections with the original")
	}
	if _, ok := s.Seats[9]; ok {
		t.Error("adding to the clone reached the original")
	}
	if s.Trip.Price != 10000 {
		t.Error("clone shares the trip with the original")
	}
}

func TestGetReturnsDetachedCopy(t *testing.T) {
	st := &Store{sessions: map[string]*Session{}}
	_ = st.With("ua", func(s *Session) error {
		s.SelectTrip(testTrip(), "2026-09-15")
		return s.ToggleSeat(3, models.GenderFemale, nil)
	})

	snap := st.Get("ua")
	snap.Seats[9] = &Selection{Gender: models.GenderMale}
	snap.Trip.Price = 1

	live := st.Get("ua")
	if len(live.Seats) != 1 || live.Trip.Price != 10000 {
		t.Error("mutating a snapshot reached the stored session")
	}
}

// Snapshots must be safe to marshal while another request mutates the
// same user's session; the race detector guards this one.
func TestConcurrentReadAndMutate(t *testing.T) {
	st := &Store{sessions: map[string]*Session{}}
	_ = st.With("ua", func(s *Session) error {
		s.SelectTrip(testTrip(), "2026-09-15")
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_ = st.With("ua", func(s *Session) error {
					return s.ToggleSeat(j%MaxSeats+1, models.GenderMale, nil)
				})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				if _, err := json.Marshal(st.Get("ua")); err != nil {
					t.Errorf("marshal snapshot: %v", err)
				}
			}
		}()
	}
	wg.Wait()
}
