package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"materialku_backend/internals/features/materials/materials/controller"
)

// Halaman pengerjaan materi memang tanpa login: list, detail, patch
// (status tahap + field konten) terbuka; gating tahap dijaga server-side.
func MaterialUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMaterialController(db)

	materials := r.Group("/materials")
	materials.Get("/", ctrl.GetAllMaterials)
	materials.Get("/:id", ctrl.GetMaterialByID)
	materials.Patch("/:id", ctrl.PatchMaterial)

	r.Get("/software", ctrl.GetSoftwareList)
}

// Create/update/delete materi hanya lewat halaman admin.
func MaterialAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMaterialController(db)

	materials := r.Group("/materials")
	materials.Post("/", ctrl.CreateMaterial)
	materials.Put("/:id", ctrl.UpdateMaterial)
	materials.Delete("/:id", ctrl.DeleteMaterial)
}
