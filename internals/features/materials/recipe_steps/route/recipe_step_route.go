package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"materialku_backend/internals/features/materials/recipe_steps/controller"
)

func RecipeStepRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewRecipeStepController(db)

	steps := r.Group("/materials/:id/recipe-steps")
	steps.Get("/", ctrl.GetByMaterial)
	steps.Post("/", ctrl.BulkReplace)
	steps.Delete("/", ctrl.Delete)
}
