package seatmap

import (
	"context"
	"net/http"
	"strconv"

	"monbillet/db"
	"monbillet/models"
	"monbillet/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetTripSeats returns the seat grid for a trip: the deterministic mock
// occupancy with every sold, non-cancelled ticket layered on top.
func GetTripSeats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tripID := ps.ByName("tripid")

	var trip models.Trip
	if err := db.TripsCollection.FindOne(context.TODO(), bson.M{"tripid": tripID}).Decode(&trip); err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	m := Build(trip)

	cursor, err := db.TicketsCollection.Find(context.TODO(), bson.M{
		"tripid": tripID,
		"status": bson.M{"$ne": models.TicketCancelled},
	})
	if err == nil {
		defer cursor.Close(context.TODO())
		var tickets []models.Ticket
		if err := cursor.All(context.TODO(), &tickets); err == nil {
			for _, t := range tickets {
				if seat, err := strconv.Atoi(t.SeatNumber); err == nil {
					m.Occupy(seat, t.Gender)
				}
			}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, m)
}
