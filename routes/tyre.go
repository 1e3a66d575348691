package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/controllers"
	"github.com/tyrehub/tyrehub-api/middleware"
	"github.com/tyrehub/tyrehub-api/models"
)

// SetupTyreRoutes configures inventory routes
func SetupTyreRoutes(app *fiber.App) {
	tyre := app.Group("/tyres")

	tyre.Get("/", controllers.GetAllTyres)
	tyre.Get("/:id", controllers.GetTyre)
	tyre.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleGarageOwner, models.RoleAdmin), controllers.CreateTyre)
	tyre.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleGarageOwner, models.RoleAdmin), controllers.UpdateTyre)
	tyre.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleGarageOwner, models.RoleAdmin), controllers.DeleteTyre)
	tyre.Post("/:id/image", middleware.Protected(), middleware.RequireRole(models.RoleGarageOwner, models.RoleAdmin), controllers.UploadTyreImage)
}
