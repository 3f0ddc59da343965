package model

import (
	"testing"

	"materialku_backend/internals/constants"
)

func validUser() *UserModel {
	return &UserModel{
		UserName: "Admin Satu",
		Email:    "admin@contoh.id",
		Password: "rahasia-panjang",
		Role:     constants.RoleAdmin,
	}
}

func TestUserValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*UserModel)
		wantErr bool
	}{
		{"valid", func(u *UserModel) {}, false},
		{"nama terlalu pendek", func(u *UserModel) { u.UserName = "ab" }, true},
		{"email kosong", func(u *UserModel) { u.Email = "" }, true},
		{"email bukan format email", func(u *UserModel) { u.Email = "bukan-email" }, true},
		{"password terlalu pendek", func(u *UserModel) { u.Password = "1234567" }, true},
		{"role asing", func(u *UserModel) { u.Role = "SUPERADMIN" }, true},
		{"role user biasa", func(u *UserModel) { u.Role = constants.RoleUser }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := validUser()
			tc.mutate(u)
			err := u.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestUserValidateDefaultsRole(t *testing.T) {
	u := validUser()
	u.Role = ""
	if err := u.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if u.Role != constants.RoleUser {
		t.Errorf("Role = %q, role kosong harus default ke user biasa", u.Role)
	}
	if u.IsAdmin() {
		t.Error("IsAdmin() = true untuk role user")
	}

	u.Role = constants.RoleAdmin
	if !u.IsAdmin() {
		t.Error("IsAdmin() = false untuk ADMIN")
	}
}
