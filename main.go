package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/tyrehub/tyrehub-api/cron"
	"github.com/tyrehub/tyrehub-api/db"
	"github.com/tyrehub/tyrehub-api/redis"
	"github.com/tyrehub/tyrehub-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("TyreHub API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupGarageRoutes(app)
	routes.SetupTyreRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupOwnerRoutes(app)
	routes.SetupShopRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
