package service

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"materialku_backend/internals/configs"
	"materialku_backend/internals/constants"
	authModel "materialku_backend/internals/features/users/auth/model"
	userModel "materialku_backend/internals/features/users/user/model"
)

var (
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrNotAdmin           = errors.New("akun ini bukan admin")
	ErrUserInactive       = errors.New("akun dinonaktifkan")
	ErrInvalidGoogleToken = errors.New("Google ID token tidak valid")
)

// Login email+password untuk halaman admin. Hanya role ADMIN yang diterima;
// halaman pengerjaan materi memang tanpa login.
func Login(db *gorm.DB, email, password string) (*userModel.UserModel, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	var user userModel.UserModel
	if err := db.First(&user, "LOWER(email) = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", ErrUserInactive
	}
	if !user.IsAdmin() {
		return nil, "", ErrNotAdmin
	}

	token, err := IssueAccessToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// LoginWithGoogle memverifikasi ID token lalu mencocokkan akun by google_id,
// fallback by email (akun seed yang belum pernah login Google).
func LoginWithGoogle(db *gorm.DB, idToken string) (*userModel.UserModel, string, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, "", ErrInvalidGoogleToken
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, "", ErrInvalidGoogleToken
	}
	email, googleID := strings.ToLower(claimSet.Email), claimSet.Sub

	var user userModel.UserModel
	err = db.First(&user, "google_id = ?", googleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.First(&user, "LOWER(email) = ?", email).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		if err == nil && user.GoogleID == nil {
			// link akun seed ke google_id-nya
			user.GoogleID = &googleID
			if saveErr := db.Save(&user).Error; saveErr != nil {
				return nil, "", saveErr
			}
		}
	}
	if err != nil {
		return nil, "", err
	}

	if !user.IsActive {
		return nil, "", ErrUserInactive
	}
	if user.Role != constants.RoleAdmin {
		return nil, "", ErrNotAdmin
	}

	token, err := IssueAccessToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Logout memasukkan token ke blacklist sampai exp-nya lewat.
// Token yang sudah tidak bisa diparse tetap dianggap sukses logout.
func Logout(db *gorm.DB, tokenString string) error {
	if tokenString == "" {
		return nil
	}

	expiredAt, err := ParseTokenExpiry(tokenString)
	if err != nil {
		return nil
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil {
		// token sudah ada di blacklist = logout idempotent
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "23505") {
			return nil
		}
		return err
	}
	return nil
}
