package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"materialku_backend/internals/configs"
	"materialku_backend/internals/constants"
	userModel "materialku_backend/internals/features/users/user/model"
)

func withTestSecret(t *testing.T) {
	t.Helper()
	old := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = old })
}

func TestIssueAccessTokenClaims(t *testing.T) {
	withTestSecret(t)

	user := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Admin Satu",
		Role:     constants.RoleAdmin,
	}

	tokenString, err := IssueAccessToken(user)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("token tidak bisa diparse: %v", err)
	}

	if got := claims["user_id"]; got != user.ID.String() {
		t.Errorf("user_id = %v, ingin %s", got, user.ID)
	}
	if got := claims["role"]; got != constants.RoleAdmin {
		t.Errorf("role = %v, ingin ADMIN", got)
	}
	if got := claims["user_name"]; got != "Admin Satu" {
		t.Errorf("user_name = %v", got)
	}

	expFloat, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("klaim exp tidak ada")
	}
	exp := time.Unix(int64(expFloat), 0)
	wantExp := time.Now().Add(accessTokenTTL)
	if exp.Before(wantExp.Add(-time.Minute)) || exp.After(wantExp.Add(time.Minute)) {
		t.Errorf("exp = %v, ingin sekitar %v", exp, wantExp)
	}
}

func TestIssueAccessTokenMissingSecret(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = old })

	if _, err := IssueAccessToken(&userModel.UserModel{ID: uuid.New()}); err == nil {
		t.Fatal("ingin error saat JWT_SECRET kosong")
	}
}

func TestParseTokenExpiry(t *testing.T) {
	withTestSecret(t)

	user := &userModel.UserModel{ID: uuid.New(), UserName: "x", Role: constants.RoleAdmin}
	tokenString, err := IssueAccessToken(user)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	exp, err := ParseTokenExpiry(tokenString)
	if err != nil {
		t.Fatalf("ParseTokenExpiry error: %v", err)
	}
	if time.Until(exp) > accessTokenTTL || time.Until(exp) < accessTokenTTL-time.Minute {
		t.Errorf("exp %v tidak sesuai TTL token", exp)
	}

	if _, err := ParseTokenExpiry("bukan.token.jwt"); err == nil {
		t.Error("token rusak harus error")
	}
}
