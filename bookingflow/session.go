package bookingflow

import (
	"errors"
	"sort"
	"time"

	"monbillet/models"
)

// Step is the traveler's position in the purchase funnel. Transitions only
// ever move one step forward or one step back.
type Step string

const (
	StepTripSelect       Step = "TRIP_SELECT"
	StepSeatSelect       Step = "SEAT_SELECT"
	StepPassengerDetails Step = "PASSENGER_DETAILS"
	StepPayment          Step = "PAYMENT"
	StepConfirmation     Step = "CONFIRMATION"
)

// PaymentMethods lists the supported mobile-money operators.
var PaymentMethods = []string{"wave", "orange", "mtn", "moov"}

var (
	ErrWrongStep        = errors.New("operation not allowed at this step")
	ErrNoTrip           = errors.New("no trip selected")
	ErrSeatOccupied     = errors.New("seat already taken")
	ErrSeatNotSelected  = errors.New("seat not in selection")
	ErrNoSeats          = errors.New("no seats selected")
	ErrTooManySeats     = errors.New("seat selection limit reached")
	ErrMissingPassenger = errors.New("passenger details incomplete")
	ErrUnknownPayment   = errors.New("unknown payment method")
	ErrInvalidSeat      = errors.New("seat number outside the coach")
)

// MaxSeats caps one purchase; larger groups book twice.
const MaxSeats = 5

// Passenger holds the identity entered for one seat.
type Passenger struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	IDNumber string `json:"idNumber,omitempty"`
}

// Selection is everything attached to one chosen seat. Gender is set the
// moment the seat is picked; Passenger arrives at the details step. The
// two live and die together: dropping the seat drops both.
type Selection struct {
	Gender    models.Gender `json:"gender"`
	Passenger *Passenger    `json:"passenger,omitempty"`
}

// Session is one traveler's in-progress booking. It is owned by the Store
// and must only be mutated while holding the store lock.
type Session struct {
	UserID        string             `json:"userId"`
	Step          Step               `json:"step"`
	Trip          *models.Trip       `json:"trip,omitempty"`
	TravelDate    string             `json:"travelDate,omitempty"`
	Seats         map[int]*Selection `json:"seats"`
	PaymentMethod string             `json:"paymentMethod,omitempty"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func NewSession(userID string) *Session {
	return &Session{
		UserID:    userID,
		Step:      StepTripSelect,
		Seats:     map[int]*Selection{},
		UpdatedAt: time.Now(),
	}
}

func (s *Session) touch() { s.UpdatedAt = time.Now() }

// Clone returns a deep copy safe to read or marshal after the store lock
// is released. Handlers must never hand the live session to the encoder.
func (s *Session) Clone() *Session {
	c := *s
	if s.Trip != nil {
		trip := *s.Trip
		c.Trip = &trip
	}
	c.Seats = make(map[int]*Selection, len(s.Seats))
	for n, sel := range s.Seats {
		cs := *sel
		if sel.Passenger != nil {
			p := *sel.Passenger
			cs.Passenger = &p
		}
		c.Seats[n] = &cs
	}
	return &c
}

// SelectTrip starts a fresh funnel run on the given trip, discarding any
// previous selection.
func (s *Session) SelectTrip(trip models.Trip, travelDate string) {
	s.Trip = &trip
	s.TravelDate = travelDate
	s.Seats = map[int]*Selection{}
	s.PaymentMethod = ""
	s.Step = StepSeatSelect
	s.touch()
}

// ToggleSeat adds or removes a seat. occupied reports seats already sold
// or mock-occupied; toggling one of those is rejected rather than ignored
// so the client can surface it. gender applies only when adding.
func (s *Session) ToggleSeat(seat int, gender models.Gender, occupied func(int) bool) error {
	if s.Step != StepSeatSelect {
		return ErrWrongStep
	}
	if s.Trip == nil {
		return ErrNoTrip
	}
	if seat < 1 || seat > s.Trip.SeatCount {
		return ErrInvalidSeat
	}
	if _, picked := s.Seats[seat]; picked {
		delete(s.Seats, seat)
		s.touch()
		return nil
	}
	if occupied != nil && occupied(seat) {
		return ErrSeatOccupied
	}
	if len(s.Seats) >= MaxSeats {
		return ErrTooManySeats
	}
	if gender == "" {
		gender = models.GenderMale
	}
	s.Seats[seat] = &Selection{Gender: gender}
	s.touch()
	return nil
}

// SetSeatGender retags an already selected seat.
func (s *Session) SetSeatGender(seat int, gender models.Gender) error {
	if s.Step != StepSeatSelect {
		return ErrWrongStep
	}
	sel, ok := s.Seats[seat]
	if !ok {
		return ErrSeatNotSelected
	}
	sel.Gender = gender
	s.touch()
	return nil
}

// ProceedToDetails locks the seat choice and moves to the passenger form.
func (s *Session) ProceedToDetails() error {
	if s.Step != StepSeatSelect {
		return ErrWrongStep
	}
	if len(s.Seats) == 0 {
		return ErrNoSeats
	}
	s.Step = StepPassengerDetails
	s.touch()
	return nil
}

// SetPassenger records the identity for one selected seat.
func (s *Session) SetPassenger(seat int, p Passenger) error {
	if s.Step != StepPassengerDetails {
		return ErrWrongStep
	}
	sel, ok := s.Seats[seat]
	if !ok {
		return ErrSeatNotSelected
	}
	if p.Name == "" || p.Phone == "" {
		return ErrMissingPassenger
	}
	sel.Passenger = &p
	s.touch()
	return nil
}

// ProceedToPayment requires a passenger on every seat.
func (s *Session) ProceedToPayment() error {
	if s.Step != StepPassengerDetails {
		return ErrWrongStep
	}
	for _, sel := range s.Seats {
		if sel.Passenger == nil {
			return ErrMissingPassenger
		}
	}
	s.Step = StepPayment
	s.touch()
	return nil
}

// ChoosePayment records the operator the traveler will pay with.
func (s *Session) ChoosePayment(method string) error {
	if s.Step != StepPayment {
		return ErrWrongStep
	}
	for _, m := range PaymentMethods {
		if m == method {
			s.PaymentMethod = method
			s.touch()
			return nil
		}
	}
	return ErrUnknownPayment
}

// Back walks the funnel one step toward the start. Leaving the seat step
// abandons the trip; leaving confirmation starts over entirely.
func (s *Session) Back() {
	switch s.Step {
	case StepSeatSelect:
		s.Trip = nil
		s.TravelDate = ""
		s.Seats = map[int]*Selection{}
		s.Step = StepTripSelect
	case StepPassengerDetails:
		s.Step = StepSeatSelect
	case StepPayment:
		s.PaymentMethod = ""
		s.Step = StepPassengerDetails
	case StepConfirmation:
		s.Reset()
	}
	s.touch()
}

// Reset returns the session to a clean trip-select state.
func (s *Session) Reset() {
	s.Trip = nil
	s.TravelDate = ""
	s.Seats = map[int]*Selection{}
	s.PaymentMethod = ""
	s.Step = StepTripSelect
	s.touch()
}

// Total is the fare times the number of selected seats.
func (s *Session) Total() int {
	if s.Trip == nil {
		return 0
	}
	return s.Trip.Price * len(s.Seats)
}

// SeatNumbers returns the selection in ascending order.
func (s *Session) SeatNumbers() []int {
	seats := make([]int, 0, len(s.Seats))
	for n := range s.Seats {
		seats = append(seats, n)
	}
	sort.Ints(seats)
	return seats
}

// Finalize checks the session is payable and flips it to confirmation.
// The caller issues tickets from the returned snapshot before resetting.
func (s *Session) Finalize() error {
	if s.Step != StepPayment {
		return ErrWrongStep
	}
	if s.Trip == nil {
		return ErrNoTrip
	}
	if len(s.Seats) == 0 {
		return ErrNoSeats
	}
	if s.PaymentMethod == "" {
		return ErrUnknownPayment
	}
	for _, sel := range s.Seats {
		if sel.Passenger == nil {
			return ErrMissingPassenger
		}
	}
	s.Step = StepConfirmation
	s.touch()
	return nil
}
