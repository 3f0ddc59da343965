package dto

import (
	"strings"

	"materialku_backend/internals/features/users/user/model"
)

// Pembuatan akun oleh admin (tidak ada registrasi publik).
type UserCreateRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ToModel menata input lalu menyerahkan validasi ke aturan di model.
// Password masih plaintext di sini; hashing urusan controller.
func (r *UserCreateRequest) ToModel() *model.UserModel {
	return &model.UserModel{
		UserName: strings.TrimSpace(r.UserName),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
		Role:     strings.TrimSpace(r.Role),
	}
}

// Response tanpa field sensitif
type UserResponse struct {
	ID        string `json:"id"`
	UserName  string `json:"user_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

func ToUserResponse(u *model.UserModel) *UserResponse {
	return &UserResponse{
		ID:        u.ID.String(),
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToUserResponses(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = *ToUserResponse(&users[i])
	}
	return out
}
