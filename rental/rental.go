package rental

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

// confirmDelay imitates the partner's approval round trip.
const confirmDelay = 1200 * time.Millisecond

// ListVehicles returns available vehicles, optionally narrowed by type.
func ListVehicles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{"available": true}
	if t := r.URL.Query().Get("type"); t != "" {
		filter["type"] = t
	}

	cursor, err := db.VehiclesCollection.Find(context.TODO(), filter)
	if err != nil {
		http.Error(w, "Failed to fetch vehicles", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(context.TODO())

	vehicles := []models.Vehicle{}
	if err := cursor.All(context.TODO(), &vehicles); err != nil {
		http.Error(w, "Failed to decode vehicles", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, vehicles)
}

// BookVehicle creates a rental over an inclusive date range and confirms
// it after the simulated approval delay.
func BookVehicle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	start, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		http.Error(w, "Invalid start date", http.StatusBadRequest)
		return
	}
	end, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil || end.Before(start) {
		http.Error(w, "Invalid end date", http.StatusBadRequest)
		return
	}
	days := int(end.Sub(start).Hours()/24) + 1

	var vehicle models.Vehicle
	if err := db.VehiclesCollection.FindOne(context.TODO(), bson.M{"vehicleid": ps.ByName("vehicleid")}).Decode(&vehicle); err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}
	if !vehicle.Available {
		utils.RespondWithError(w, http.StatusConflict, "vehicle not available")
		return
	}

	rental := models.Rental{
		RentalID:  "r" + utils.GenerateID(10),
		VehicleID: vehicle.VehicleID,
		UserID:    userID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Days:      days,
		Total:     days * vehicle.PricePerDay,
		Status:    models.RentalPending,
		CreatedAt: time.Now(),
	}

	time.Sleep(confirmDelay)
	rental.Status = models.RentalConfirmed

	if _, err := db.RentalsCollection.InsertOne(context.TODO(), rental); err != nil {
		http.Error(w, "Failed to store rental", http.StatusInternalServerError)
		return
	}

	mq.Emit("rental-confirmed", models.Index{EntityType: "rental", EntityId: rental.RentalID, Method: "POST", ItemId: vehicle.VehicleID, ItemType: "vehicle"})

	utils.SendResponse(w, http.StatusCreated, rental, "Rental confirmed", nil)
}

// GetMyRentals lists the traveler's rentals, newest first.
func GetMyRentals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cursor, err := db.RentalsCollection.Find(context.TODO(), bson.M{"userid": userID})
	if err != nil {
		http.Error(w, "Failed to fetch rentals", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(context.TODO())

	rentals := []models.Rental{}
	if err := cursor.All(context.TODO(), &rentals); err != nil {
		http.Error(w, "Failed to decode rentals", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rentals)
}
