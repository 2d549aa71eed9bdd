package rental

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"

	"monbillet/db"
	"monbillet/models"
	"monbillet/mq"
	"monbillet/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const vehicleImageDir = "./static/vehicles"

func partnerCompany(r *http.Request) (string, int) {
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

// PartnerVehicles lists the fleet of the partner's own company, including
// vehicles currently marked unavailable.
func PartnerVehicles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	companyID, code := partnerCompany(r)
	if companyID == "" {
		http.Error(w, http.StatusText(code), code)
		return
	}

	cursor, err := db.VehiclesCollection.Find(context.TODO(), bson.M{"companyid": companyID})
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

// CreateVehicle adds a vehicle to the partner's fleet.
func CreateVehicle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	companyID, code := partnerCompany(r)
	if companyID == "" {
		http.Error(w, http.StatusText(code), code)
		return
	}

	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil || vehicle.Model == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	vehicle.VehicleID = "v" + utils.GenerateID(10)
	vehicle.CompanyID = companyID
	vehicle.Available = true

	if _, err := db.VehiclesCollection.InsertOne(context.TODO(), vehicle); err != nil {
		http.Error(w, "Failed to store vehicle", http.StatusInternalServerError)
		return
	}

	mq.Emit("vehicle-created", models.Index{EntityType: "vehicle", EntityId: vehicle.VehicleID, Method: "POST"})

	utils.SendResponse(w, http.StatusCreated, vehicle, "Vehicle created", nil)
}

// UpdateVehicle edits price, capacity or availability on an owned vehicle.
func UpdateVehicle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	companyID, code := partnerCompany(r)
	if companyID == "" {
		http.Error(w, http.StatusText(code), code)
		return
	}

	var input struct {
		Model       *string `json:"model"`
		PricePerDay *int    `json:"pricePerDay"`
		Capacity    *int    `json:"capacity"`
		Available   *bool   `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	set := bson.M{}
	if input.Model != nil {
		set["model"] = *input.Model
	}
	if input.PricePerDay != nil {
		set["priceperday"] = *input.PricePerDay
	}
	if input.Capacity != nil {
		set["capacity"] = *input.Capacity
	}
	if input.Available != nil {
		set["available"] = *input.Available
	}
	if len(set) == 0 {
		http.Error(w, "Nothing to update", http.StatusBadRequest)
		return
	}

	res, err := db.VehiclesCollection.UpdateOne(context.TODO(),
		bson.M{"vehicleid": ps.ByName("vehicleid"), "companyid": companyID},
		bson.M{"$set": set})
	if err != nil {
		http.Error(w, "Failed to update vehicle", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Vehicle updated", nil)
}

// DeleteVehicle removes an owned vehicle from the fleet.
func DeleteVehicle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	companyID, code := partnerCompany(r)
	if companyID == "" {
		http.Error(w, http.StatusText(code), code)
		return
	}

	res, err := db.VehiclesCollection.DeleteOne(context.TODO(),
		bson.M{"vehicleid": ps.ByName("vehicleid"), "companyid": companyID})
	if err != nil {
		http.Error(w, "Failed to delete vehicle", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Vehicle deleted", nil)
}

// UploadVehicleImage stores the uploaded photo plus a 300px thumbnail and
// points the vehicle document at both.
func UploadVehicleImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	companyID, code := partnerCompany(r)
	if companyID == "" {
		http.Error(w, http.StatusText(code), code)
		return
	}
	vehicleID := ps.ByName("vehicleid")

	var vehicle models.Vehicle
	err := db.VehiclesCollection.FindOne(context.TODO(),
		bson.M{"vehicleid": vehicleID, "companyid": companyID}).Decode(&vehicle)
	if err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !utils.ValidImageType(header) {
		http.Error(w, "Unsupported image type", http.StatusBadRequest)
		return
	}

	if err := utils.EnsureDir(filepath.Join(vehicleImageDir, "thumb")); err != nil {
		http.Error(w, "Failed to prepare storage", http.StatusInternalServerError)
		return
	}

	filename, err := utils.SaveFile(file, header, vehicleImageDir)
	if err != nil {
		http.Error(w, "Failed to save image", http.StatusInternalServerError)
		return
	}

	src, err := imaging.Open(filepath.Join(vehicleImageDir, filename))
	if err != nil {
		http.Error(w, "Failed to decode image", http.StatusBadRequest)
		return
	}
	thumb := imaging.Resize(src, 300, 0, imaging.Lanczos)
	thumbPath := filepath.Join(vehicleImageDir, "thumb", filename)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		log.Printf("Failed to save thumbnail for %s: %v", vehicleID, err)
		http.Error(w, "Failed to save thumbnail", http.StatusInternalServerError)
		return
	}

	imageURL := "/static/vehicles/" + filename
	thumbURL := "/static/vehicles/thumb/" + filename
	_, err = db.VehiclesCollection.UpdateOne(context.TODO(),
		bson.M{"vehicleid": vehicleID},
		bson.M{"$set": bson.M{"image": imageURL, "thumb": thumbURL}})
	if err != nil {
		http.Error(w, "Failed to update vehicle", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"image": imageURL, "thumb": thumbURL}, "Image uploaded", nil)
}
