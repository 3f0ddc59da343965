package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"materialku_backend/internals/features/lembaga/offices/controller"
)

// Daftar kantor dipakai dropdown form tanpa login
func OfficeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOfficeController(db)
	r.Get("/offices", ctrl.GetAllOffices)
}

func OfficeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOfficeController(db)

	offices := r.Group("/offices")
	offices.Post("/", ctrl.CreateOffice)
	offices.Put("/:id", ctrl.UpdateOffice)
	offices.Delete("/:id", ctrl.DeleteOffice)
}
