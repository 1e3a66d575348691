package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/controllers"
	"github.com/tyrehub/tyrehub-api/middleware"
	"github.com/tyrehub/tyrehub-api/models"
)

// SetupGarageRoutes configures garage CRUD and the schedule endpoints
func SetupGarageRoutes(app *fiber.App) {
	garage := app.Group("/garages")

	garage.Get("/", controllers.GetAllGarages)
	garage.Get("/:id", controllers.GetGarage)
	garage.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleGarageOwner, models.RoleAdmin), controllers.CreateGarage)
	garage.Patch("/:id", middleware.Protected(), controllers.UpdateGarage)
	garage.Delete("/:id", middleware.Protected(), controllers.DeleteGarage)

	// Weekly schedule: read is public, edits are owner-only (enforced
	// against the garage record in the handlers).
	garage.Get("/:id/schedule", controllers.GetSchedule)
	garage.Put("/:id/schedule", middleware.Protected(), controllers.SetSchedule)
	garage.Post("/:id/schedule/copy-day", middleware.Protected(), controllers.CopyScheduleDay)
	garage.Get("/:id/available-slots", controllers.GetAvailableSlots)
}
