package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/controllers"
	"github.com/tyrehub/tyrehub-api/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes.
// Creation runs behind optional auth: the token is the preferred
// identity source but a booking may also name its user in the body.
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/", controllers.GetAllAppointments)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Post("/", middleware.Optional(), controllers.CreateAppointment)
	appointment.Delete("/:id", middleware.Protected(), controllers.DeleteAppointment)
}
