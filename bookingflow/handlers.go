package bookingflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"monbillet/db"
	"monbillet/globals"
	"monbillet/models"
	"monbillet/mq"
	"monbillet/rdx"
	"monbillet/seatmap"
	"monbillet/tickets"
	"monbillet/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// paymentDelay imitates the operator round trip of a mobile-money charge.
const paymentDelay = 1500 * time.Millisecond

// seatLockTTL bounds how long a confirm attempt may hold its seats.
const seatLockTTL = 2 * time.Minute

// GetSession returns the traveler's funnel state, creating it on first use.
func GetSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, DefaultStore.Get(userID))
}

// SelectTrip begins a booking on the chosen trip.
func SelectTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		TripID     string `json:"tripId"`
		TravelDate string `json:"travelDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.TripID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var trip models.Trip
	if err := db.TripsCollection.FindOne(context.TODO(), bson.M{"tripid": input.TripID}).Decode(&trip); err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	var snapshot *Session
	_ = DefaultStore.With(userID, func(s *Session) error {
		s.SelectTrip(trip, input.TravelDate)
		snapshot = s.Clone()
		return nil
	})
	utils.RespondWithJSON(w, http.StatusOK, snapshot)
}

// ToggleSeat adds or removes one seat from the selection. The occupancy
// snapshot is fetched before the store lock so one traveler's DB round
// trip never stalls the others.
func ToggleSeat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Seat   int           `json:"seat"`
		Gender models.Gender `json:"gender"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var occupied func(int) bool
	if cur := DefaultStore.Get(userID); cur.Trip != nil {
		occupied = occupiedLookup(*cur.Trip)
	}

	var snapshot *Session
	err := DefaultStore.With(userID, func(s *Session) error {
		if err := s.ToggleSeat(input.Seat, input.Gender, occupied); err != nil {
			return err
		}
		snapshot = s.Clone()
		return nil
	})
	if err != nil {
		respondFlowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, snapshot)
}

// SetSeatGender changes the tag on an already selected seat.
func SetSeatGender(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Seat   int           `json:"seat"`
		Gender models.Gender `json:"gender"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Gender != models.GenderMale && input.Gender != models.GenderFemale {
		http.Error(w, "Invalid gender", http.StatusBadRequest)
		return
	}

	var snapshot *Session
	err := DefaultStore.With(userID, func(s *Session) error {
		if err := s.SetSeatGender(input.Seat, input.Gender); err != nil {
			return err
		}
		snapshot = s.Clone()
		return nil
	})
	if err != nil {
		respondFlowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, snapshot)
}

// ConfirmSeats locks the selection and moves to the passenger form.
func ConfirmSeats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stepHandler(w, r, func(s *Session) error { return s.ProceedToDetails() })
}

// SetPassengers records identities for the whole selection and, when every
// seat is covered, advances to payment.
func SetPassengers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Passengers []struct {
			Seat int `json:"seat"`
			Passenger
		} `json:"passengers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var snapshot *Session
	err := DefaultStore.With(userID, func(s *Session) error {
		for _, p := range input.Passengers {
			if err := s.SetPassenger(p.Seat, p.Passenger); err != nil {
				return err
			}
		}
		if err := s.ProceedToPayment(); err != nil {
			return err
		}
		snapshot = s.Clone()
		return nil
	})
	if err != nil {
		respondFlowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, snapshot)
}

// ChoosePayment stores the mobile-money operator for the charge.
func ChoosePayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var snapshot *Session
	err := DefaultStore.With(userID, func(s *Session) error {
		if err := s.ChoosePayment(input.Method); err != nil {
			return err
		}
		snapshot = s.Clone()
		return nil
	})
	if err != nil {
		respondFlowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, snapshot)
}

// ConfirmPayment simulates the charge, takes short-lived Redis locks on
// the chosen seats, re-checks them against tickets sold in the meantime,
// and only then issues one ticket per seat. Conflicting seats send the
// traveler back to seat selection with the lost seats removed.
func ConfirmPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// Simulated operator round trip, outside the store lock.
	time.Sleep(paymentDelay)

	var snap *Session
	err := DefaultStore.With(userID, func(s *Session) error {
		if err := s.Finalize(); err != nil {
			return err
		}
		snap = s.Clone()
		return nil
	})
	if err != nil {
		respondFlowError(w, err)
		return
	}

	tripID := snap.Trip.TripID
	seats := snap.SeatNumbers()

	if !lockSeats(tripID, seats) {
		revertToSeatSelect(userID, nil)
		utils.RespondWithError(w, http.StatusConflict, ErrSeatOccupied.Error())
		return
	}
	defer unlockSeats(tripID, seats)

	if conflicts := conflictingSeats(seats, soldTickets(tripID)); len(conflicts) > 0 {
		revertToSeatSelect(userID, conflicts)
		utils.RespondWithError(w, http.StatusConflict,
			fmt.Sprintf("seats no longer available: %v", conflicts))
		return
	}

	now := time.Now()
	var issued []models.Ticket
	for _, seat := range seats {
		sel := snap.Seats[seat]
		t := models.Ticket{
			TicketID:           utils.GenerateTicketID(),
			TripID:             tripID,
			UserID:             userID,
			PassengerName:      sel.Passenger.Name,
			PassengerPhone:     sel.Passenger.Phone,
			PassengerIDNumber:  sel.Passenger.IDNumber,
			SeatNumber:         strconv.Itoa(seat),
			Gender:             sel.Gender,
			BookingDate:        now,
			TravelDate:         snap.TravelDate,
			DepartureTime:      snap.Trip.DepartureTime,
			OriginStation:      snap.Trip.Origin,
			DestinationStation: snap.Trip.Destination,
			Status:             models.TicketConfirmed,
			Price:              snap.Trip.Price,
			PaymentMethod:      snap.PaymentMethod,
		}
		t.QRPayload = tickets.SignedPayload(t.TripID, t.TicketID, t.SeatNumber, now)
		issued = append(issued, t)
	}

	docs := make([]interface{}, len(issued))
	for i, t := range issued {
		docs[i] = t
	}
	if _, err := db.TicketsCollection.InsertMany(context.TODO(), docs); err != nil {
		log.Printf("Failed to store tickets for %s: %v", userID, err)
		http.Error(w, "Failed to issue tickets", http.StatusInternalServerError)
		return
	}

	for _, t := range issued {
		mq.Emit("ticket-issued", models.Index{EntityType: "ticket", EntityId: t.TicketID, Method: "POST", ItemId: t.TripID, ItemType: "trip"})
	}

	_ = DefaultStore.With(userID, func(s *Session) error {
		s.Reset()
		return nil
	})

	utils.SendResponse(w, http.StatusCreated, map[string]any{
		"paymentRef": utils.GetUUID(),
		"tickets":    issued,
	}, "Payment accepted", nil)
}

// Back walks the funnel one step toward trip selection.
func Back(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stepHandler(w, r, func(s *Session) error { s.Back(); return nil })
}

func stepHandler(w http.ResponseWriter, r *http.Request, fn func(*Session) error) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var snapshot *Session
	err := DefaultStore.With(userID, func(s *Session) error {
		if err := fn(s); err != nil {
			return err
		}
		snapshot = s.Clone()
		return nil
	})
	if err != nil {
		respondFlowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, snapshot)
}

// revertToSeatSelect walks a failed confirm attempt back to seat
// selection, dropping the seats that were lost to another traveler.
func revertToSeatSelect(userID string, lost []int) {
	_ = DefaultStore.With(userID, func(s *Session) error {
		for _, seat := range lost {
			delete(s.Seats, seat)
		}
		s.Step = StepSeatSelect
		return nil
	})
}

func seatLockKey(tripID string, seat int) string {
	return fmt.Sprintf("seatlock:%s:%d", tripID, seat)
}

// lockSeats takes a short-lived Redis lock per seat so two confirm
// attempts on the same trip cannot both pass the sold-seat check.
func lockSeats(tripID string, seats []int) bool {
	acquired := make([]int, 0, len(seats))
	for _, seat := range seats {
		ok, err := rdx.Conn.SetNX(globals.Ctx, seatLockKey(tripID, seat), "1", seatLockTTL).Result()
		if err != nil || !ok {
			unlockSeats(tripID, acquired)
			return false
		}
		acquired = append(acquired, seat)
	}
	return true
}

func unlockSeats(tripID string, seats []int) {
	for _, seat := range seats {
		if err := rdx.Conn.Del(globals.Ctx, seatLockKey(tripID, seat)).Err(); err != nil {
			log.Printf("Failed to release seat lock %s: %v", seatLockKey(tripID, seat), err)
		}
	}
}

// soldTickets fetches the non-cancelled tickets of a trip.
func soldTickets(tripID string) []models.Ticket {
	cursor, err := db.TicketsCollection.Find(context.TODO(), bson.M{
		"tripid": tripID,
		"status": bson.M{"$ne": models.TicketCancelled},
	})
	if err != nil {
		return nil
	}
	defer cursor.Close(context.TODO())

	var sold []models.Ticket
	if err := cursor.All(context.TODO(), &sold); err != nil {
		return nil
	}
	return sold
}

// conflictingSeats reports which of the selected seats already appear on
// a live ticket.
func conflictingSeats(selected []int, sold []models.Ticket) []int {
	taken := map[string]bool{}
	for _, t := range sold {
		if t.Status != models.TicketCancelled {
			taken[t.SeatNumber] = true
		}
	}
	var out []int
	for _, seat := range selected {
		if taken[strconv.Itoa(seat)] {
			out = append(out, seat)
		}
	}
	return out
}

// occupiedLookup merges the deterministic mock occupancy with seats sold
// through the flow.
func occupiedLookup(trip models.Trip) func(int) bool {
	m := seatmap.Build(trip)
	for _, t := range soldTickets(trip.TripID) {
		if seat, err := strconv.Atoi(t.SeatNumber); err == nil {
			m.Occupy(seat, t.Gender)
		}
	}

	return func(seat int) bool {
		for row := range m.Cells {
			for col := range m.Cells[row] {
				if m.Cells[row][col].Number == seat {
					return m.Cells[row][col].Occupied
				}
			}
		}
		return false
	}
}

func respondFlowError(w http.ResponseWriter, err error) {
	code := http.StatusBadRequest
	switch {
	case errors.Is(err, ErrSeatOccupied):
		code = http.StatusConflict
	case errors.Is(err, ErrWrongStep):
		code = http.StatusConflict
	}
	utils.RespondWithError(w, code, err.Error())
}
