package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"materialku_backend/internals/features/users/user/dto"
	"materialku_backend/internals/features/users/user/model"
	helper "materialku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 GET /api/a/users
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := ctrl.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Daftar user berhasil diambil", dto.ToUserResponses(users))
}

// 🟢 POST /api/a/users
// Akun baru hanya dibuat admin; email duplikat → 409 lewat mapping PG.
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	user := req.ToModel()
	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	user.Password = string(hashed)

	if err := ctrl.DB.Create(user).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "User berhasil dibuat", dto.ToUserResponse(user))
}

// 🟢 PATCH /api/a/users/:id/active
// Nonaktifkan/aktifkan akun tanpa menghapus datanya (login menolak akun
// nonaktif dengan 403).
func (ctrl *UserController) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var body struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.BodyParser(&body); err != nil || body.IsActive == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field is_active wajib diisi")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	user.IsActive = *body.IsActive
	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Status user berhasil diupdate", dto.ToUserResponse(&user))
}
