package catalog

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"monbillet/db"
	"monbillet/models"
	"monbillet/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seed upserts the reference tables so a fresh database serves the demo
// catalog immediately. Existing documents keep their id and are refreshed
// in place; trips created by company admins are left untouched.
func Seed(ctx context.Context) error {
	for _, c := range SeedCompanies {
		_, err := db.CompaniesCollection.UpdateOne(ctx,
			bson.M{"companyid": c.CompanyID},
			bson.M{"$set": c},
			options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	for _, t := range SeedTrips {
		_, err := db.TripsCollection.UpdateOne(ctx,
			bson.M{"tripid": t.TripID},
			bson.M{"$set": t},
			options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	for _, v := range SeedVehicles {
		_, err := db.VehiclesCollection.UpdateOne(ctx,
			bson.M{"vehicleid": v.VehicleID},
			bson.M{"$set": v},
			options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	log.Printf("catalog seeded: %d companies, %d trips, %d vehicles",
		len(SeedCompanies), len(SeedTrips), len(SeedVehicles))
	return nil
}

func GetCities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, IvorianCities)
}

func GetCommunes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, AbidjanCommunes)
}

func GetCompanies(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cursor, err := db.CompaniesCollection.Find(context.TODO(), bson.M{})
	if err != nil {
		http.Error(w, "Failed to fetch companies", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(context.TODO())

	companies := []models.Company{}
	if err := cursor.All(context.TODO(), &companies); err != nil {
		http.Error(w, "Failed to decode companies", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, companies)
}

func GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var trip models.Trip
	err := db.TripsCollection.FindOne(context.TODO(), bson.M{"tripid": ps.ByName("tripid")}).Decode(&trip)
	if err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, trip)
}

// SearchTrips validates the search form, then filters the whole trip table
// in memory. The table is demo-sized, so a scan beats maintaining text
// indexes for the station-qualifier rules.
func SearchTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var q TripQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := q.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	cursor, err := db.TripsCollection.Find(context.TODO(), bson.M{})
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

	utils.RespondWithJSON(w, http.StatusOK, FilterTrips(trips, q))
}
