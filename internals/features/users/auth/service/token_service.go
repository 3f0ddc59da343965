package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"materialku_backend/internals/configs"
	userModel "materialku_backend/internals/features/users/user/model"
)

const accessTokenTTL = 24 * time.Hour

// IssueAccessToken membuat JWT HS256 berisi identitas + role user.
// Klaim inilah yang dibaca AuthMiddleware dan gate IsAdmin.
func IssueAccessToken(user *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// ParseTokenExpiry membaca exp dari token (tanpa validasi exp) — dipakai
// logout untuk tahu sampai kapan entri blacklist harus disimpan.
func ParseTokenExpiry(tokenString string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return time.Time{}, err
	}

	expFloat, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, errors.New("klaim exp tidak ada")
	}
	return time.Unix(int64(expFloat), 0), nil
}
