package db

import (
	"fmt"
	"log"

	"github.com/tyrehub/tyrehub-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Garage{},
		&models.Tyre{},
		&models.Order{},
		&models.OrderItem{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
