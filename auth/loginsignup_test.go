package auth

import (
	"testing"

	"monbillet/middleware"
	"monbillet/models"
)

func TestAccessTokenCarriesClaims(t *testing.T) {
	user := models.User{
		UserID:    "u1234567890",
		FirstName: "Awa",
		LastName:  "Traore",
		Phone:     "0700000000",
		Role:      models.RoleCompanyAdmin,
	}

	token, err := generateAccessToken(user)
	if err != nil {
		t.Fatalf("generateAccessToken: %v", err)
	}

	claims, err := middleware.ValidateJWT("Bearer " + token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != user.UserID {
		t.Errorf("userid = %s, want %s", claims.UserID, user.UserID)
	}
	if claims.Role != models.RoleCompanyAdmin {
		t.Errorf("role = %s, want %s", claims.Role, models.RoleCompanyAdmin)
	}
	if claims.Phone != user.Phone {
		t.Errorf("phone = %s, want %s", claims.Phone, user.Phone)
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	a, err := generateRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	b, err := generateRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two refresh tokens came out identical")
	}
	if len(a) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(a))
	}

	// Only the hash is persisted; lookups depend on it being stable.
	if hashToken(a) != hashToken(a) {
		t.Error("hashToken is not deterministic")
	}
	if hashToken(a) == hashToken(b) {
		t.Error("distinct tokens hash identically")
	}
	if hashToken(a) == a {
		t.Error("token stored unhashed")
	}
}
