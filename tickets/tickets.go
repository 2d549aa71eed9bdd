package tickets

import (
	"context"
	"net/http"

	"monbillet/db"
	"monbillet/models"
	"monbillet/mq"
	"monbillet/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetMyTickets lists the traveler's tickets, newest booking first.
// Cancelled tickets stay in the list; the client greys them out.
func GetMyTickets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	opts := options.Find().SetSort(bson.M{"bookingdate": -1})
	cursor, err := db.TicketsCollection.Find(context.TODO(), bson.M{"userid": userID}, opts)
	if err != nil {
		http.Error(w, "Failed to fetch tickets", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(context.TODO())

	tickets := []models.Ticket{}
	if err := cursor.All(context.TODO(), &tickets); err != nil {
		http.Error(w, "Failed to decode tickets", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tickets)
}

func ownedTicket(r *http.Request, ticketID string) (*models.Ticket, int) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		return nil, http.StatusUnauthorized
	}
	var t models.Ticket
	err := db.TicketsCollection.FindOne(context.TODO(), bson.M{"ticketid": ticketID}).Decode(&t)
	if err != nil {
		return nil, http.StatusNotFound
	}
	if t.UserID != userID {
		return nil, http.StatusForbidden
	}
	return &t, 0
}

func GetTicket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	t, code := ownedTicket(r, ps.ByName("ticketid"))
	if t == nil {
		http.Error(w, http.StatusText(code), code)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, t)
}

// CancelTicket flips a confirmed ticket to CANCELLED. The document stays
// in the collection and the seat frees up on the next seat-map render.
func CancelTicket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	t, code := ownedTicket(r, ps.ByName("ticketid"))
	if t == nil {
		http.Error(w, http.StatusText(code), code)
		return
	}
	if t.Status != models.TicketConfirmed {
		utils.RespondWithError(w, http.StatusConflict, "only confirmed tickets can be cancelled")
		return
	}

	_, err := db.TicketsCollection.UpdateOne(context.TODO(),
		bson.M{"ticketid": t.TicketID},
		bson.M{"$set": bson.M{"status": models.TicketCancelled}})
	if err != nil {
		http.Error(w, "Failed to cancel ticket", http.StatusInternalServerError)
		return
	}
	t.Status = models.TicketCancelled

	mq.Emit("ticket-cancelled", models.Index{EntityType: "ticket", EntityId: t.TicketID, Method: "POST", ItemId: t.TripID, ItemType: "trip"})

	utils.SendResponse(w, http.StatusOK, t, "Ticket cancelled", nil)
}
