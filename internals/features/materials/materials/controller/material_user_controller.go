package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"materialku_backend/internals/features/materials/materials/dto"
	"materialku_backend/internals/features/materials/materials/model"
	"materialku_backend/internals/features/materials/workflow"
	helper "materialku_backend/internals/helpers"
)

type MaterialController struct {
	DB *gorm.DB
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

// 🟢 GET /api/materials
// Daftar materi, terbaru dulu (juga dipakai halaman publik daftar pengerjaan).
func (ctrl *MaterialController) GetAllMaterials(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := ctrl.DB.Model(&model.MaterialModel{}).Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var materials []model.MaterialModel
	if err := ctrl.DB.
		Order("material_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&materials).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	responses := make([]dto.MaterialResponse, len(materials))
	for i := range materials {
		responses[i] = *dto.ToMaterialResponse(&materials[i])
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar materi berhasil diambil", responses, &pagination)
}

// 🟢 GET /api/materials/:id
func (ctrl *MaterialController) GetMaterialByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var material model.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Materi berhasil diambil", dto.ToMaterialResponse(&material))
}

// 🟢 PATCH /api/materials/:id
// Update parsial tanpa login, dibatasi allow-list. Perubahan status tahap
// di-gate lewat workflow: tahap unreachable ditolak 422.
func (ctrl *MaterialController) PatchMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	patch, err := dto.FilterPatch(body)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if patch.IsEmpty() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang bisa diupdate")
	}

	var material model.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	// Gating tahap: terapkan perubahan ke snapshot dulu, tolak yang unreachable.
	if len(patch.Stages) > 0 {
		if _, err := material.StageStatuses().ApplyChanges(patch.Stages); err != nil {
			var gateErr *workflow.StageGateError
			if errors.As(err, &gateErr) {
				return helper.JsonValidationError(c, map[string][]string{
					dto.StageColumn(gateErr.Stage): {gateErr.Error()},
				})
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for stage, status := range patch.Stages {
			patch.Updates[dto.StageColumn(stage)] = string(status)
		}
	}

	if err := ctrl.DB.Model(&material).Updates(patch.Updates).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	// Reload supaya response memuat nilai tersimpan + timestamp baru.
	if err := ctrl.DB.First(&material, "material_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Materi berhasil diupdate", dto.ToMaterialResponse(&material))
}

// 🟢 GET /api/software
// Daftar nama software unik (untuk autocomplete form teks).
func (ctrl *MaterialController) GetSoftwareList(c *fiber.Ctx) error {
	var names []string
	if err := ctrl.DB.Model(&model.MaterialModel{}).
		Distinct("material_software").
		Where("material_software IS NOT NULL AND material_software <> ''").
		Order("material_software ASC").
		Pluck("material_software", &names).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Daftar software berhasil diambil", names)
}
