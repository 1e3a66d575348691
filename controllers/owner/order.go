package owner

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/db"
	"github.com/tyrehub/tyrehub-api/models"
)

// GetGarageOrders lists orders placed against the owner's garage.
func GetGarageOrders(c *fiber.Ctx) error {
	garage, err := garageForOwner(c)
	if err != nil {
		return err
	}

	query := db.DB.Preload("Items.Tyre").Preload("User").Where("garage_id = ?", garage.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(orders)
}

// UpdateOrderStatus moves an order to a new status.
func UpdateOrderStatus(c *fiber.Ctx) error {
	garage, err := garageForOwner(c)
	if err != nil {
		return err
	}

	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order ID",
		})
	}

	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	newStatus := models.OrderStatus(updateData.Status)
	switch newStatus {
	case models.OrderPending, models.OrderPaid, models.OrderCompleted, models.OrderCanceled:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status. Must be 'pending', 'paid', 'completed', or 'canceled'.",
		})
	}

	var order models.Order
	if err := db.DB.First(&order, orderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}
	if order.GarageID != garage.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only update your own garage's orders",
		})
	}

	order.Status = newStatus
	if err := db.DB.Save(&order).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update order",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order status updated successfully",
		"order":   order,
	})
}
