package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"materialku_backend/internals/features/users/user/controller"
)

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := r.Group("/users")
	users.Get("/", ctrl.GetAllUsers)
	users.Post("/", ctrl.CreateUser)
	users.Patch("/:id/active", ctrl.SetActive)
}
