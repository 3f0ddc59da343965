package route

import (
	"github.com/gofiber/fiber/v2"

	"materialku_backend/internals/features/utils/youtube/controller"
)

func YoutubeRoutes(r fiber.Router) {
	ctrl := controller.NewYoutubeController()
	r.Post("/youtube", ctrl.Lookup)
}
