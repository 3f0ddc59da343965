package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	materialModel "materialku_backend/internals/features/materials/materials/model"
	"materialku_backend/internals/features/materials/recipe_steps/dto"
	"materialku_backend/internals/features/materials/recipe_steps/model"
	helper "materialku_backend/internals/helpers"
)

type RecipeStepController struct {
	DB *gorm.DB
}

func NewRecipeStepController(db *gorm.DB) *RecipeStepController {
	return &RecipeStepController{DB: db}
}

// 🟢 GET /api/materials/:id/recipe-steps
func (ctrl *RecipeStepController) GetByMaterial(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var steps []model.RecipeStepModel
	if err := ctrl.DB.
		Where("recipe_step_material_id = ?", materialID).
		Order("recipe_step_number ASC").
		Find(&steps).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Daftar langkah berhasil diambil", dto.ToRecipeStepResponses(steps))
}

// 🟢 POST /api/materials/:id/recipe-steps
// Bulk replace: hapus semua langkah lama lalu insert kiriman baru dalam
// SATU transaksi. Gagal insert = delete ikut di-rollback.
func (ctrl *RecipeStepController) BulkReplace(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var inputs []dto.RecipeStepInput
	if err := c.BodyParser(&inputs); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request harus array langkah")
	}
	if len(inputs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada langkah untuk disimpan")
	}

	steps, err := dto.NormalizeSteps(materialID, inputs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Materi harus ada; jangan diam-diam membuat langkah yatim.
	var material materialModel.MaterialModel
	if err := ctrl.DB.Select("material_id").First(&material, "material_id = ?", materialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.RecipeStepModel{}, "recipe_step_material_id = ?", materialID).Error; err != nil {
			return err
		}
		return tx.Create(&steps).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Langkah berhasil disimpan", dto.ToRecipeStepResponses(steps))
}

// 🟢 DELETE /api/materials/:id/recipe-steps[?stepId=...]
// Dengan stepId: hapus satu langkah (di-scope ke materinya).
// Tanpa stepId: hapus semua langkah materi tersebut.
func (ctrl *RecipeStepController) Delete(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	if stepIDRaw := c.Query("stepId"); stepIDRaw != "" {
		stepID, err := uuid.Parse(stepIDRaw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "stepId tidak valid")
		}

		res := ctrl.DB.Delete(&model.RecipeStepModel{},
			"recipe_step_id = ? AND recipe_step_material_id = ?", stepID, materialID)
		if res.Error != nil {
			return helper.WritePGError(c, res.Error)
		}
		if res.RowsAffected == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Langkah tidak ditemukan")
		}
		return helper.JsonDeleted(c, "Langkah berhasil dihapus", fiber.Map{"recipe_step_id": stepID.String()})
	}

	if err := ctrl.DB.Delete(&model.RecipeStepModel{}, "recipe_step_material_id = ?", materialID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Semua langkah berhasil dihapus", fiber.Map{"material_id": materialID.String()})
}
