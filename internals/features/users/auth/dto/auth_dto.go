package dto

import "materialku_backend/internals/features/users/user/model"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login via Google: frontend mengirim ID token hasil Google Sign-In.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token"`
}

type AuthUserResponse struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	User        AuthUserResponse `json:"user"`
}

func ToLoginResponse(token string, u *model.UserModel) *LoginResponse {
	return &LoginResponse{
		AccessToken: token,
		User: AuthUserResponse{
			ID:       u.ID.String(),
			UserName: u.UserName,
			Email:    u.Email,
			Role:     u.Role,
		},
	}
}
