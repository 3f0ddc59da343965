package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"materialku_backend/internals/features/lembaga/offices/dto"
	"materialku_backend/internals/features/lembaga/offices/model"
	materialModel "materialku_backend/internals/features/materials/materials/model"
	helper "materialku_backend/internals/helpers"
)

type OfficeController struct {
	DB *gorm.DB
}

func NewOfficeController(db *gorm.DB) *OfficeController {
	return &OfficeController{DB: db}
}

// 🟢 GET /api/offices
func (ctrl *OfficeController) GetAllOffices(c *fiber.Ctx) error {
	var offices []model.OfficeModel
	if err := ctrl.DB.Order("office_name ASC").Find(&offices).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Daftar kantor berhasil diambil", offices)
}

// 🟢 POST /api/a/offices
// Nama kantor unik; duplikat dipetakan ke 409 lewat error constraint PG.
func (ctrl *OfficeController) CreateOffice(c *fiber.Ctx) error {
	var req dto.OfficeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	office := req.ToModel()
	if err := ctrl.DB.Create(office).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Kantor berhasil dibuat", office)
}

// 🟢 PUT /api/a/offices/:id
func (ctrl *OfficeController) UpdateOffice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kantor tidak valid")
	}

	var req dto.OfficeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	var office model.OfficeModel
	if err := ctrl.DB.First(&office, "office_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kantor tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	office.OfficeName = req.OfficeName
	if err := ctrl.DB.Save(&office).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Kantor berhasil diupdate", office)
}

// 🟢 DELETE /api/a/offices/:id
// Ditolak kalau masih dirujuk materi (kolom material_office menyimpan nama).
func (ctrl *OfficeController) DeleteOffice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kantor tidak valid")
	}

	var office model.OfficeModel
	if err := ctrl.DB.First(&office, "office_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kantor tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var inUse int64
	if err := ctrl.DB.Model(&materialModel.MaterialModel{}).
		Where("material_office = ?", office.OfficeName).
		Count(&inUse).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if inUse > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kantor masih dipakai materi, tidak bisa dihapus")
	}

	if err := ctrl.DB.Delete(&office).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonDeleted(c, "Kantor berhasil dihapus", fiber.Map{"office_id": id.String()})
}
