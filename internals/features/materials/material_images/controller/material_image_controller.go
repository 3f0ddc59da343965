package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"materialku_backend/internals/features/materials/material_images/model"
	materialModel "materialku_backend/internals/features/materials/materials/model"
	helper "materialku_backend/internals/helpers"
	"materialku_backend/internals/helpers/storage"
)

type MaterialImageController struct {
	DB *gorm.DB
}

func NewMaterialImageController(db *gorm.DB) *MaterialImageController {
	return &MaterialImageController{DB: db}
}

// 🟢 GET /api/materials/:id/images[?step=N]
// Semua gambar materi, urut step lalu order. Filter ?step= opsional.
func (ctrl *MaterialImageController) GetByMaterial(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	q := ctrl.DB.Where("material_image_material_id = ?", materialID)
	if stepRaw := c.Query("step"); stepRaw != "" {
		step, err := strconv.Atoi(stepRaw)
		if err != nil || step < 1 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter step tidak valid")
		}
		q = q.Where("material_image_step_number = ?", step)
	}

	var images []model.MaterialImageModel
	if err := q.
		Order("material_image_step_number ASC").
		Order("material_image_order ASC").
		Find(&images).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Daftar gambar berhasil diambil", images)
}

// 🟢 POST /api/materials/:id/images (multipart: image, step_number)
// Konversi ke WebP dulu baru upload ke Supabase Storage; baris DB dibuat
// setelah upload sukses. Gagal insert → object yang terlanjur naik dihapus.
func (ctrl *MaterialImageController) Upload(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	stepNumber, err := strconv.Atoi(c.FormValue("step_number"))
	if err != nil || stepNumber < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "step_number wajib dan harus >= 1")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File image wajib diupload")
	}
	if fileHeader.Size > storage.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ukuran file maksimal 5MB")
	}

	// Materi harus ada sebelum menyentuh storage
	var material materialModel.MaterialModel
	if err := ctrl.DB.Select("material_id").First(&material, "material_id = ?", materialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	objectKey := storage.GenerateObjectKey(materialID, stepNumber, fileHeader.Filename)
	publicURL, convertedSize, err := storage.UploadImageToSupabase(objectKey, fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Upload gambar gagal: "+err.Error())
	}

	// Order berikutnya dalam (materi, step); append-only
	var maxOrder int
	if err := ctrl.DB.Model(&model.MaterialImageModel{}).
		Where("material_image_material_id = ? AND material_image_step_number = ?", materialID, stepNumber).
		Select("COALESCE(MAX(material_image_order), 0)").
		Scan(&maxOrder).Error; err != nil {
		storage.BestEffortDelete(publicURL)
		return helper.WritePGError(c, err)
	}

	image := model.MaterialImageModel{
		MaterialImageMaterialID: materialID,
		MaterialImageStepNumber: stepNumber,
		MaterialImageURL:        publicURL,
		MaterialImageFileName:   fileHeader.Filename,
		MaterialImageFileSize:   convertedSize,
		MaterialImageMimeType:   "image/webp",
		MaterialImageOrder:      maxOrder + 1,
	}
	if err := ctrl.DB.Create(&image).Error; err != nil {
		storage.BestEffortDelete(publicURL)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Gambar berhasil diupload", image)
}

// 🟢 DELETE /api/materials/:id/images/:imageId
// Baris DB adalah source of truth; penghapusan object storage best-effort.
func (ctrl *MaterialImageController) Delete(c *fiber.Ctx) error {
	materialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}
	imageID, err := uuid.Parse(c.Params("imageId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID gambar tidak valid")
	}

	var image model.MaterialImageModel
	if err := ctrl.DB.First(&image,
		"material_image_id = ? AND material_image_material_id = ?", imageID, materialID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Gambar tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctrl.DB.Delete(&image).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	go storage.BestEffortDelete(image.MaterialImageURL)

	return helper.JsonDeleted(c, "Gambar berhasil dihapus", fiber.Map{"material_image_id": imageID.String()})
}
