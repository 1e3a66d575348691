package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/db"
	"github.com/tyrehub/tyrehub-api/models"
	"github.com/tyrehub/tyrehub-api/utils"
)

// GetAllTyres returns tyres, optionally filtered by garage
func GetAllTyres(c *fiber.Ctx) error {
	var tyres []models.Tyre

	query := db.DB
	if garageID := c.QueryInt("garage_id"); garageID > 0 {
		query = query.Where("garage_id = ?", garageID)
	}

	if err := query.Find(&tyres).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(tyres)
}

// GetTyre returns a tyre by ID
func GetTyre(c *fiber.Ctx) error {
	id := c.Params("id")
	var tyre models.Tyre
	if err := db.DB.First(&tyre, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tyre not found",
		})
	}
	return c.JSON(tyre)
}

// ownedGarage loads the garage and checks the caller owns it.
func ownedGarage(c *fiber.Ctx, garageID uint) (*models.Garage, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in context")
	}
	var garage models.Garage
	if err := db.DB.First(&garage, garageID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Garage not found")
	}
	if !garage.OwnedBy(userID) {
		return nil, fiber.NewError(fiber.StatusForbidden, "You can only manage your own garage's inventory")
	}
	return &garage, nil
}

// CreateTyre adds a tyre to the owner's garage inventory
func CreateTyre(c *fiber.Ctx) error {
	tyre := new(models.Tyre)
	if err := c.BodyParser(tyre); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if _, err := ownedGarage(c, tyre.GarageID); err != nil {
		return err
	}

	if err := db.DB.Create(tyre).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create tyre",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(tyre)
}

// UpdateTyre updates an inventory item
func UpdateTyre(c *fiber.Ctx) error {
	id := c.Params("id")
	var tyre models.Tyre
	if err := db.DB.First(&tyre, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tyre not found",
		})
	}

	if _, err := ownedGarage(c, tyre.GarageID); err != nil {
		return err
	}

	var input struct {
		Brand     string   `json:"brand"`
		ModelName string   `json:"model_name"`
		Size      string   `json:"size"`
		Season    string   `json:"season"`
		Price     float64  `json:"price"`
		Stock     *int     `json:"stock"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if input.Brand != "" {
		tyre.Brand = input.Brand
	}
	if input.ModelName != "" {
		tyre.ModelName = input.ModelName
	}
	if input.Size != "" {
		tyre.Size = input.Size
	}
	if input.Season != "" {
		tyre.Season = input.Season
	}
	if input.Price > 0 {
		tyre.Price = input.Price
	}
	// Stock is a pointer so an explicit 0 (sold out) still applies.
	if input.Stock != nil && *input.Stock >= 0 {
		tyre.Stock = *input.Stock
	}

	if err := db.DB.Save(&tyre).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update tyre",
		})
	}
	return c.JSON(tyre)
}

// DeleteTyre removes an inventory item
func DeleteTyre(c *fiber.Ctx) error {
	id := c.Params("id")
	var tyre models.Tyre
	if err := db.DB.First(&tyre, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tyre not found",
		})
	}

	if _, err := ownedGarage(c, tyre.GarageID); err != nil {
		return err
	}

	if err := db.DB.Delete(&tyre).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete tyre",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadTyreImage uploads a product photo to Cloudinary and stores the URL
func UploadTyreImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var tyre models.Tyre
	if err := db.DB.First(&tyre, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tyre not found",
		})
	}

	if _, err := ownedGarage(c, tyre.GarageID); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image file provided",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadTyreImage(file, fmt.Sprintf("tyre-%d", tyre.ID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	tyre.ImageURL = url
	if err := db.DB.Save(&tyre).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save image URL",
		})
	}
	return c.JSON(tyre)
}
