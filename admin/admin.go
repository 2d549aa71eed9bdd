package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"monbillet/db"
	"monbillet/models"
	"monbillet/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetStats summarizes the whole platform for the global dashboard.
func GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := context.TODO()

	users, _ := db.UserCollection.CountDocuments(ctx, bson.M{})
	companies, _ := db.CompaniesCollection.CountDocuments(ctx, bson.M{})
	trips, _ := db.TripsCollection.CountDocuments(ctx, bson.M{})
	tickets, _ := db.TicketsCollection.CountDocuments(ctx, bson.M{})
	rentals, _ := db.RentalsCollection.CountDocuments(ctx, bson.M{})

	revenue := 0
	cursor, err := db.TicketsCollection.Find(ctx, bson.M{"status": bson.M{"$ne": models.TicketCancelled}})
	if err == nil {
		defer cursor.Close(ctx)
		var sold []models.Ticket
		if err := cursor.All(ctx, &sold); err == nil {
			for _, t := range sold {
				revenue += t.Price
			}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"users":     users,
		"companies": companies,
		"trips":     trips,
		"tickets":   tickets,
		"rentals":   rentals,
		"revenue":   revenue,
	})
}

// ListUsers pages through registered accounts, newest first.
func ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := options.Find().SetSort(bson.M{"createdat": -1}).SetLimit(100)
	cursor, err := db.UserCollection.Find(context.TODO(), bson.M{}, opts)
	if err != nil {
		http.Error(w, "Failed to fetch users", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(context.TODO())

	users := []models.User{}
	if err := cursor.All(context.TODO(), &users); err != nil {
		http.Error(w, "Failed to decode users", http.StatusInternalServerError)
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

// UpdateUserRole changes an account's role, optionally attaching it to a
// company for admin and partner roles.
func UpdateUserRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Role      models.UserRole `json:"role"`
		CompanyID string          `json:"companyId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	switch input.Role {
	case models.RoleUser, models.RoleCompanyAdmin, models.RoleServicePartner, models.RoleGlobalAdmin:
	default:
		http.Error(w, "Unknown role", http.StatusBadRequest)
		return
	}

	set := bson.M{"role": input.Role}
	if input.CompanyID != "" {
		set["companyid"] = input.CompanyID
	}

	res, err := db.UserCollection.UpdateOne(context.TODO(),
		bson.M{"userid": ps.ByName("userid")}, bson.M{"$set": set})
	if err != nil {
		http.Error(w, "Failed to update user", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Role updated", nil)
}
