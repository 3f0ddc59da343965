package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"materialku_backend/internals/features/materials/material_images/controller"
	"materialku_backend/internals/middlewares"
)

func MaterialImageRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMaterialImageController(db)

	images := r.Group("/materials/:id/images")
	images.Get("/", ctrl.GetByMaterial)
	images.Post("/", middlewares.UploadRateLimiter(), ctrl.Upload)
	images.Delete("/:imageId", ctrl.Delete)
}
