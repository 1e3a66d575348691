package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/db"
	"github.com/tyrehub/tyrehub-api/models"
)

// GetAllGarages returns all garages
func GetAllGarages(c *fiber.Ctx) error {
	var garages []models.Garage

	// Get pagination parameters
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	if err := db.DB.Limit(limit).Offset(offset).Find(&garages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch garages",
		})
	}

	var count int64
	db.DB.Model(&models.Garage{}).Count(&count)

	return c.JSON(fiber.Map{
		"garages": garages,
		"total":   count,
		"page":    page,
		"limit":   limit,
		"pages":   (int(count) + limit - 1) / limit,
	})
}

// GetGarage returns a garage by ID
func GetGarage(c *fiber.Ctx) error {
	id := c.Params("id")
	var garage models.Garage
	if err := db.DB.Preload("Tyres").First(&garage, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Garage not found",
		})
	}
	return c.JSON(garage)
}

// CreateGarage creates a new garage owned by the caller. The weekly
// schedule starts all-empty.
func CreateGarage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	garage := new(models.Garage)
	if err := c.BodyParser(garage); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	newGarage := models.Garage{
		Name:    garage.Name,
		Address: garage.Address,
		City:    garage.City,
		Phone:   garage.Phone,
		OwnerID: userID,
	}
	if err := db.DB.Create(&newGarage).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create garage",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(newGarage)
}

// UpdateGarage updates a garage's details (not its schedule)
func UpdateGarage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var garage models.Garage
	if err := db.DB.First(&garage, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Garage not found",
		})
	}
	if !garage.OwnedBy(userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only update your own garage",
		})
	}

	var input models.Garage
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if input.Name != "" {
		garage.Name = input.Name
	}
	if input.Address != "" {
		garage.Address = input.Address
	}
	if input.City != "" {
		garage.City = input.City
	}
	if input.Phone != "" {
		garage.Phone = input.Phone
	}

	if err := db.DB.Save(&garage).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update garage",
		})
	}
	return c.JSON(garage)
}

// DeleteGarage deletes a garage
func DeleteGarage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	id := c.Params("id")
	var garage models.Garage
	if err := db.DB.First(&garage, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Garage not found",
		})
	}
	if !garage.OwnedBy(userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only delete your own garage",
		})
	}

	if err := db.DB.Delete(&garage).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete garage",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
