// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	officeRoute "materialku_backend/internals/features/lembaga/offices/route"
	imageRoute "materialku_backend/internals/features/materials/material_images/route"
	materialRoute "materialku_backend/internals/features/materials/materials/route"
	stepRoute "materialku_backend/internals/features/materials/recipe_steps/route"
	authRoute "materialku_backend/internals/features/users/auth/route"
	userRoute "materialku_backend/internals/features/users/user/route"
	youtubeRoute "materialku_backend/internals/features/utils/youtube/route"
	authMiddleware "materialku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)

	// ===================== PUBLIC =====================
	// Halaman pengerjaan materi dipakai tim tanpa login; tulis-nya tetap
	// dijaga gating tahap + rate limiter, bukan autentikasi.
	log.Println("[INFO] Mounting PUBLIC routes...")
	materialRoute.MaterialUserRoutes(api, db)
	stepRoute.RecipeStepRoutes(api, db)
	imageRoute.MaterialImageRoutes(api, db)
	officeRoute.OfficeUserRoutes(api, db)
	youtubeRoute.YoutubeRoutes(api)

	// ===================== ADMIN =====================
	log.Println("[INFO] Mounting ADMIN routes (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.IsAdmin(),
	)
	materialRoute.MaterialAdminRoutes(admin, db)
	officeRoute.OfficeAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
}
