package controller

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	imageModel "materialku_backend/internals/features/materials/material_images/model"
	"materialku_backend/internals/features/materials/materials/dto"
	"materialku_backend/internals/features/materials/materials/model"
	stepModel "materialku_backend/internals/features/materials/recipe_steps/model"
	youtubeService "materialku_backend/internals/features/utils/youtube/service"
	helper "materialku_backend/internals/helpers"
	"materialku_backend/internals/helpers/storage"
)

// 🟢 POST /api/a/materials
// Membuat materi baru (admin). Registrasi video = tahap 1, langsung completed.
func (ctrl *MaterialController) CreateMaterial(c *fiber.Ctx) error {
	var req dto.MaterialCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	newMaterial := req.ToModel()

	// Ekstrak id video dari URL; URL tanpa id bukan error fatal
	if req.MaterialYoutubeURL != nil {
		if videoID, ok := youtubeService.ExtractVideoID(*req.MaterialYoutubeURL); ok {
			newMaterial.MaterialYoutubeID = &videoID

			// Best-effort: isi snapshot metadata kalau API key tersedia.
			// Gagal fetch tidak menggagalkan create (frontend bisa lookup ulang).
			if meta, err := youtubeService.FetchVideoMetadata(c.UserContext(), videoID); err == nil {
				applyVideoMetadata(newMaterial, meta)
			} else if !errors.Is(err, youtubeService.ErrMissingAPIKey) {
				log.Printf("[WARN] fetch metadata video %s gagal: %v", videoID, err)
			}
		}
	}

	if err := ctrl.DB.Create(newMaterial).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Materi berhasil dibuat", dto.ToMaterialResponse(newMaterial))
}

// 🟢 PUT /api/a/materials/:id
// Full update field editable (admin). Status tahap tidak disentuh di sini.
func (ctrl *MaterialController) UpdateMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID materi tidak valid")
	}

	var req dto.MaterialUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	var material model.MaterialModel
	if err := ctrl.DB.First(&material, "material_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Materi tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	req.ApplyToModel(&material)

	// URL video berubah → ekstrak ulang id-nya
	if material.MaterialYoutubeURL != nil {
		if videoID, ok := youtubeService.ExtractVideoID(*material.MaterialYoutubeURL); ok {
			material.MaterialYoutubeID = &videoID
		}
	}

	if err := ctrl.DB.Save(&material).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Materi berhasil diupdate", dto.ToMaterialResponse(&material))
}

// 🟢 DELETE /api/a/materials/:id
// Hard delete (aksi eksplisit admin) termasuk langkah & baris gambar dalam
// satu transaksi. Object storage dibersihkan best-effort setelah commit.
func (ctrl *MaterialController) DeleteMaterial(c *fiber.Ctx) error {
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

	var images []imageModel.MaterialImageModel
	if err := ctrl.DB.Find(&images, "material_image_material_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&imageModel.MaterialImageModel{}, "material_image_material_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&stepModel.RecipeStepModel{}, "recipe_step_material_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.MaterialModel{}, "material_id = ?", id).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	go cleanupImageObjects(images)

	return helper.JsonDeleted(c, "Materi berhasil dihapus", fiber.Map{"material_id": id.String()})
}

// cleanupImageObjects: hapus object storage setelah row-nya hilang.
// Best-effort; kegagalan hanya meninggalkan object yatim (lihat DESIGN.md).
func cleanupImageObjects(images []imageModel.MaterialImageModel) {
	for i := range images {
		storage.BestEffortDelete(images[i].MaterialImageURL)
	}
}

func applyVideoMetadata(m *model.MaterialModel, meta interface{}) {
	raw, err := json.Marshal(meta)
	if err != nil {
		return
	}
	m.MaterialVideoMeta = datatypes.JSON(raw)

	var parsed struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Thumbnail    string `json:"thumbnail"`
		ChannelTitle string `json:"channelTitle"`
		PublishedAt  string `json:"publishedAt"`
		Duration     string `json:"duration"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return
	}
	if parsed.Title != "" {
		m.MaterialVideoTitle = &parsed.Title
	}
	if parsed.Description != "" {
		m.MaterialVideoDescription = &parsed.Description
	}
	if parsed.Thumbnail != "" {
		m.MaterialThumbnail = &parsed.Thumbnail
	}
	if parsed.ChannelTitle != "" {
		m.MaterialVideoChannel = &parsed.ChannelTitle
	}
	if parsed.Duration != "" {
		m.MaterialVideoDuration = &parsed.Duration
	}
	if parsed.PublishedAt != "" {
		if t, err := time.Parse(time.RFC3339, parsed.PublishedAt); err == nil {
			m.MaterialVideoPublishedAt = &t
		}
	}
}
