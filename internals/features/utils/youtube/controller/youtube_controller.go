package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "materialku_backend/internals/helpers"

	"materialku_backend/internals/features/utils/youtube/dto"
	"materialku_backend/internals/features/utils/youtube/service"
)

type YoutubeController struct{}

func NewYoutubeController() *YoutubeController {
	return &YoutubeController{}
}

// 🟢 POST /api/youtube
// Body: { "url": "..." } → metadata video ternormalisasi.
func (ctrl *YoutubeController) Lookup(c *fiber.Ctx) error {
	var req dto.YoutubeLookupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if strings.TrimSpace(req.URL) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "URL YouTube wajib diisi")
	}

	videoID, ok := service.ExtractVideoID(req.URL)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bukan URL YouTube yang valid")
	}

	meta, err := service.FetchVideoMetadata(c.UserContext(), videoID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingAPIKey):
			return helper.JsonError(c, fiber.StatusInternalServerError, "YouTube API key belum dikonfigurasi")
		case errors.Is(err, service.ErrVideoNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Video tidak ditemukan")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil metadata video")
		}
	}

	return helper.JsonOK(c, "Metadata video berhasil diambil", meta)
}
