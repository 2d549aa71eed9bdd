package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"monbillet/db"
	"monbillet/models"
	"monbillet/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// GetMyProfile returns the authenticated user's profile without secrets.
func GetMyProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&user); err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	user.Password = ""
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateProfile edits the editable identity fields.
func UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		FirstName *string        `json:"firstName"`
		LastName  *string        `json:"lastName"`
		Email     *string        `json:"email"`
		Gender    *models.Gender `json:"gender"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	set := bson.M{"updatedat": time.Now()}
	if input.FirstName != nil && *input.FirstName != "" {
		set["firstname"] = *input.FirstName
	}
	if input.LastName != nil && *input.LastName != "" {
		set["lastname"] = *input.LastName
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Gender != nil {
		if *input.Gender != models.GenderMale && *input.Gender != models.GenderFemale {
			http.Error(w, "Invalid gender", http.StatusBadRequest)
			return
		}
		set["gender"] = *input.Gender
	}

	_, err := db.UserCollection.UpdateOne(context.TODO(),
		bson.M{"userid": userID}, bson.M{"$set": set})
	if err != nil {
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Profile updated", nil)
}

// ChangePassword verifies the current password before setting a new one.
func ChangePassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.NewPassword == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&user); err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		http.Error(w, "Current password is incorrect", http.StatusUnauthorized)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	_, err = db.UserCollection.UpdateOne(context.TODO(),
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"password": string(hashed), "updatedat": time.Now()}})
	if err != nil {
		http.Error(w, "Failed to update password", http.StatusInternalServerError)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Password changed", nil)
}
