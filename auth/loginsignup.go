package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"monbillet/db"
	"monbillet/globals"
	"monbillet/middleware"
	"monbillet/models"
	"monbillet/mq"
	"monbillet/rdx"
	"monbillet/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	refreshTokenTTL = 7 * 24 * time.Hour
	accessTokenTTL  = 12 * time.Hour
)

type registrationInput struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Gender    models.Gender   `json:"gender"`
	Role      models.UserRole `json:"role"`
	CompanyID string          `json:"companyId"`
}

func registerHandler(w http.ResponseWriter, r *http.Request) {
	var input registrationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if input.FirstName == "" || input.LastName == "" || input.Phone == "" || input.Password == "" {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	// Check if the phone is already registered
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"phone": input.Phone}).Err()
	if err == nil {
		http.Error(w, "User already exists", http.StatusConflict)
		return
	} else if err != mongo.ErrNoDocuments {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", input.Phone, err)
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	role := input.Role
	switch role {
	case models.RoleUser, models.RoleCompanyAdmin, models.RoleServicePartner, models.RoleGlobalAdmin:
	case "":
		role = models.RoleUser
	default:
		http.Error(w, "Unknown role", http.StatusBadRequest)
		return
	}

	gender := input.Gender
	if gender == "" {
		gender = models.GenderMale
	}

	user := models.User{
		UserID:    "u" + utils.GenerateRandomString(10),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Email:     input.Email,
		Password:  string(hashedPassword),
		Gender:    gender,
		Role:      role,
		CompanyID: input.CompanyID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := db.UserCollection.InsertOne(context.TODO(), user); err != nil {
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	// Cache only once the account exists, so a failed insert leaves no
	// stale entry behind.
	if err := rdx.RdxSet(fmt.Sprintf("users:%s", user.UserID), user.Phone); err != nil {
		log.Printf("Failed to cache user phone: %v", err)
	}

	mq.Emit("user-registered", models.Index{EntityType: "user", EntityId: user.UserID, Method: "POST"})

	utils.SendResponse(w, http.StatusCreated, map[string]string{"userid": user.UserID}, "Registration successful", nil)
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if input.Phone == "" || input.Password == "" {
		http.Error(w, "Phone and password are required", http.StatusBadRequest)
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"phone": input.Phone}).Decode(&storedUser)
	if err != nil {
		http.Error(w, "Invalid phone or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(input.Password)); err != nil {
		http.Error(w, "Invalid phone or password", http.StatusUnauthorized)
		return
	}

	tokenString, err := generateAccessToken(storedUser)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		http.Error(w, "Error generating refresh token", http.StatusInternalServerError)
		return
	}
	hashedRefresh := hashToken(refreshToken)

	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": storedUser.UserID},
		bson.M{"$set": bson.M{
			"refresh_token":  hashedRefresh,
			"refresh_expiry": time.Now().Add(refreshTokenTTL),
			"last_login":     time.Now(),
		}},
	)
	if err != nil {
		http.Error(w, "Failed to store refresh token", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxHset("tokki", storedUser.UserID, tokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	storedUser.Password = ""
	utils.SendResponse(w, http.StatusOK, map[string]any{
		"token":        tokenString,
		"refreshToken": refreshToken,
		"userid":       storedUser.UserID,
		"profile":      storedUser,
	}, "Login successful", nil)
}

func logoutUserHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	if _, err := rdx.RdxHdel("tokki", claims.UserID); err != nil {
		log.Printf("Error removing token from Redis: %v", err)
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		return
	}

	mq.Emit("user-loggedout", models.Index{EntityType: "user", EntityId: claims.UserID, Method: "POST"})

	utils.SendResponse(w, http.StatusOK, nil, "User logged out successfully", nil)
}

// refreshTokenHandler exchanges a stored refresh token for a fresh access
// token. The refresh token rotates on every use; presenting a token that
// does not match the stored hash, or one past its expiry, is rejected.
func refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.RefreshToken == "" {
		http.Error(w, "Refresh token is required", http.StatusBadRequest)
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{
		"refresh_token":  hashToken(input.RefreshToken),
		"refresh_expiry": bson.M{"$gt": time.Now()},
	}).Decode(&user)
	if err != nil {
		http.Error(w, "Invalid refresh token", http.StatusUnauthorized)
		return
	}

	newTokenString, err := generateAccessToken(user)
	if err != nil {
		http.Error(w, "Failed to refresh token", http.StatusInternalServerError)
		return
	}

	newRefresh, err := generateRefreshToken()
	if err != nil {
		http.Error(w, "Error generating refresh token", http.StatusInternalServerError)
		return
	}
	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": user.UserID},
		bson.M{"$set": bson.M{
			"refresh_token":  hashToken(newRefresh),
			"refresh_expiry": time.Now().Add(refreshTokenTTL),
		}},
	)
	if err != nil {
		http.Error(w, "Failed to rotate refresh token", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxHset("tokki", user.UserID, newTokenString); err != nil {
		log.Printf("Error updating token in Redis: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token":        newTokenString,
		"refreshToken": newRefresh,
	}, "Token refreshed successfully", nil)
}

func generateAccessToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		Phone:  user.Phone,
		Name:   user.FirstName + " " + user.LastName,
		UserID: user.UserID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// Generates a random refresh token
func generateRefreshToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

// Hashes a given token
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
