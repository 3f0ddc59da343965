package model

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"materialku_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users. Akun dibuat oleh admin atau
// lewat Google login; tidak ada registrasi publik.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role     string    `gorm:"type:varchar(20);not null;default:'user'" json:"role" validate:"required"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleUser
	}
}

// IsAdmin: hanya ADMIN yang boleh masuk halaman admin
func (u *UserModel) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}

	for _, role := range constants.AllRoles {
		if u.Role == role {
			return nil
		}
	}
	return errors.New("Role harus salah satu dari: " + strings.Join(constants.AllRoles, ", ") + ".")
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msg := ""
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			msg += fieldErr.Field() + " wajib diisi. "
		case "email":
			msg += "Format email tidak valid. "
		case "min":
			msg += fieldErr.Field() + " minimal " + fieldErr.Param() + " karakter. "
		case "oneof":
			msg += fieldErr.Field() + " harus salah satu dari: " + fieldErr.Param() + ". "
		default:
			msg += fieldErr.Field() + " tidak valid. "
		}
	}
	return errors.New(msg)
}
