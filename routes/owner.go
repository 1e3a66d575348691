package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/controllers/owner"
	"github.com/tyrehub/tyrehub-api/middleware"
	"github.com/tyrehub/tyrehub-api/models"
)

// SetupOwnerRoutes configures the garage back office
func SetupOwnerRoutes(app *fiber.App) {
	group := app.Group("/owner/garages/:garageId",
		middleware.Protected(),
		middleware.RequireRole(models.RoleGarageOwner, models.RoleAdmin))

	group.Get("/dashboard", owner.GetDashboardOverview)

	group.Get("/appointments/upcoming", owner.GetUpcomingAppointments)
	group.Get("/appointments/history", owner.GetAppointmentHistory)
	group.Patch("/appointments/:id/status", owner.UpdateAppointmentStatus)
	group.Patch("/appointments/:id/reschedule", owner.RescheduleAppointment)

	group.Get("/orders", owner.GetGarageOrders)
	group.Patch("/orders/:id/status", owner.UpdateOrderStatus)
}
