package company

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"monbillet/db"
	"monbillet/models"
	"monbillet/mq"
	"monbillet/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func adminCompany(r *http.Request) (string, int) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		return "", http.StatusUnauthorized
	}
	var user models.User
	if err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&user); err != nil {
		return "", http.StatusUnauthorized
	}
	if user.CompanyID == "" {
		return "", http.StatusForbidden
	}
	return user.CompanyID, 0
}

// CompanyTrips lists every trip the admin's company operates.
func CompanyTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	companyID, code := adminCompany(r)
	if companyID == "" {
		http.Error(w, http.StatusText(code), code)
		return
	}

	cursor, err := db.TripsCollection.Find(context.TODO(), bson.M{"companyid": companyID})
	if err != nil {
		http.Error(w, "Failed to fetch trips", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(context.TODO())

	trips := []models.Trip{}
	if err := cursor.All(context.TODO(), &trips); err != nil {
		http.Error(w, "Failed to decode trips", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, trips)
}

type tripInput struct {
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	DepartureTime  string `json:"departureTime"`
	ArrivalTime    string `json:"arrivalTime"`
	Price          int    `json:"price"`
	AvailableSeats int    `json:"availableSeats"`
	VehicleName    string `json:"vehicleName"`
	SeatCount      int    `json:"seatCount"`
}

func (in tripInput) validate() string {
	if in.Origin == "" || in.Destination == "" {
		return "origin and destination are required"
	}
	if in.DepartureTime == "" || in.ArrivalTime == "" {
		return "departure and arrival times are required"
	}
	if in.Price <= 0 {
		return "price must be positive"
	}
	if in.SeatCount != 44 && in.SeatCount != 70 {
		return "seat count must be 44 or 70"
	}
	if in.AvailableSeats < 0 || in.AvailableSeats > in.SeatCount {
		return "available seats out of range"
	}
	return ""
}

// CreateTrip publishes a new trip under the admin's company.
func CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	companyID, code := adminCompany(r)
	if companyID == "" {
		http.Error(w, http.StatusText(code), code)
		return
	}

	var input tripInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if msg := input.validate(); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	trip := models.Trip{
		TripID:         "trip" + utils.GenerateID(10),
		Origin:         input.Origin,
		Destination:    input.Destination,
		DepartureTime:  input.DepartureTime,
		ArrivalTime:    input.ArrivalTime,
		Price:          input.Price,
		CompanyID:      companyID,
		AvailableSeats: input.AvailableSeats,
		VehicleName:    input.VehicleName,
		SeatCount:      input.SeatCount,
		CreatedAt:      time.Now(),
	}

	if _, err := db.TripsCollection.InsertOne(context.TODO(), trip); err != nil {
		http.Error(w, "Failed to store trip", http.StatusInternalServerError)
		return
	}

	mq.Emit("trip-created", models.Index{EntityType: "trip", EntityId: trip.TripID, Method: "POST"})

	utils.SendResponse(w, http.StatusCreated, trip, "Trip created", nil)
}

// UpdateTrip edits schedule or pricing on an owned trip.
func UpdateTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	companyID, code := adminCompany(r)
	if companyID == "" {
		http.Error(w, http.StatusText(code), code)
		return
	}

	var input struct {
		DepartureTime  *string `json:"departureTime"`
		ArrivalTime    *string `json:"arrivalTime"`
		Price          *int    `json:"price"`
		AvailableSeats *int    `json:"availableSeats"`
		VehicleName    *string `json:"vehicleName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	set := bson.M{}
	if input.DepartureTime != nil {
		set["departuretime"] = *input.DepartureTime
	}
	if input.ArrivalTime != nil {
		set["arrivaltime"] = *input.ArrivalTime
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "price must be positive")
			return
		}
		set["price"] = *input.Price
	}
	if input.AvailableSeats != nil {
		set["availableseats"] = *input.AvailableSeats
	}
	if input.VehicleName != nil {
		set["vehiclename"] = *input.VehicleName
	}
	if len(set) == 0 {
		http.Error(w, "Nothing to update", http.StatusBadRequest)
		return
	}

	res, err := db.TripsCollection.UpdateOne(context.TODO(),
		bson.M{"tripid": ps.ByName("tripid"), "companyid": companyID},
		bson.M{"$set": set})
	if err != nil {
		http.Error(w, "Failed to update trip", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Trip updated", nil)
}

// DeleteTrip unpublishes an owned trip. Tickets already sold stay valid.
func DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	companyID, code := adminCompany(r)
	if companyID == "" {
		http.Error(w, http.StatusText(code), code)
		return
	}

	res, err := db.TripsCollection.DeleteOne(context.TODO(),
		bson.M{"tripid": ps.ByName("tripid"), "companyid": companyID})
	if err != nil {
		http.Error(w, "Failed to delete trip", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	mq.Emit("trip-deleted", models.Index{EntityType: "trip", EntityId: ps.ByName("tripid"), Method: "DELETE"})

	utils.SendResponse(w, http.StatusOK, nil, "Trip deleted", nil)
}

// CompanyStats summarizes the company's sales for its dashboard.
func CompanyStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	companyID, code := adminCompany(r)
	if companyID == "" {
		http.Error(w, http.StatusText(code), code)
		return
	}

	cursor, err := db.TripsCollection.Find(context.TODO(), bson.M{"companyid": companyID})
	if err != nil {
		http.Error(w, "Failed to fetch trips", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(context.TODO())

	trips := []models.Trip{}
	if err := cursor.All(context.TODO(), &trips); err != nil {
		http.Error(w, "Failed to decode trips", http.StatusInternalServerError)
		return
	}

	tripIDs := make([]string, len(trips))
	for i, t := range trips {
		tripIDs[i] = t.TripID
	}

	sold, revenue := 0, 0
	if len(tripIDs) > 0 {
		tcur, err := db.TicketsCollection.Find(context.TODO(), bson.M{
			"tripid": bson.M{"$in": tripIDs},
			"status": bson.M{"$ne": models.TicketCancelled},
		})
		if err == nil {
			defer tcur.Close(context.TODO())
			var tickets []models.Ticket
			if err := tcur.All(context.TODO(), &tickets); err == nil {
				sold = len(tickets)
				for _, t := range tickets {
					revenue += t.Price
				}
			}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"trips":       len(trips),
		"ticketsSold": sold,
		"revenue":     revenue,
	})
}
