package tickets

import (
	"context"
	"encoding/json"
	"net/http"

	"monbillet/db"
	"monbillet/models"
	"monbillet/mq"
	"monbillet/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// ScanTicket validates a boarding code at the gate and marks the ticket
// USED. A second scan of the same ticket is rejected.
func ScanTicket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Payload string `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Payload == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	tripID, ticketID, seat, err := VerifyPayload(input.Payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var t models.Ticket
	err = db.TicketsCollection.FindOne(context.TODO(), bson.M{
		"ticketid":   ticketID,
		"tripid":     tripID,
		"seatnumber": seat,
	}).Decode(&t)
	if err != nil {
		http.Error(w, "Ticket not found", http.StatusNotFound)
		return
	}

	switch t.Status {
	case models.TicketUsed:
		utils.RespondWithError(w, http.StatusConflict, "ticket already used")
		return
	case models.TicketCancelled:
		utils.RespondWithError(w, http.StatusConflict, "ticket is cancelled")
		return
	}

	_, err = db.TicketsCollection.UpdateOne(context.TODO(),
		bson.M{"ticketid": t.TicketID},
		bson.M{"$set": bson.M{"status": models.TicketUsed}})
	if err != nil {
		http.Error(w, "Failed to update ticket", http.StatusInternalServerError)
		return
	}
	t.Status = models.TicketUsed

	mq.Emit("ticket-scanned", models.Index{EntityType: "ticket", EntityId: t.TicketID, Method: "POST", ItemId: t.TripID, ItemType: "trip"})

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"passengerName": t.PassengerName,
		"seatNumber":    t.SeatNumber,
		"tripId":        t.TripID,
		"status":        t.Status,
	}, "Boarding accepted", nil)
}
