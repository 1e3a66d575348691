package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/controllers/shop"
	"github.com/tyrehub/tyrehub-api/middleware"
)

// SetupShopRoutes configures the storefront checkout and "my" views
func SetupShopRoutes(app *fiber.App) {
	group := app.Group("/shop", middleware.Protected())
	group.Post("/checkout", shop.Checkout)
	group.Get("/orders", shop.GetMyOrders)
	group.Get("/appointments", shop.GetMyAppointments)
}
