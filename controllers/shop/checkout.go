package shop

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/db"
	"github.com/tyrehub/tyrehub-api/models"
	"github.com/tyrehub/tyrehub-api/redis"
	"github.com/tyrehub/tyrehub-api/utils"
	"gorm.io/gorm"
)

type checkoutItem struct {
	TyreID   uint `json:"tyre_id"`
	Quantity int  `json:"quantity"`
}

type fittingRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM
}

type checkoutInput struct {
	GarageID uint            `json:"garage_id"`
	Items    []checkoutItem  `json:"items"`
	Fitting  *fittingRequest `json:"fitting"`
	Note     string          `json:"note"`
}

// Checkout places an order against a garage and, when a fitting time is
// requested, books the pending appointment in the same transaction.
// Slot capacity is deliberately not checked on this path; the schedule
// resolver's counts are advisory and the fitting lands as pending for
// the owner to confirm.
func Checkout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot place order",
			Error:   models.ErrMissingUser.Error(),
		})
	}

	var input checkoutInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if len(input.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Order must contain at least one item",
		})
	}

	var garage models.Garage
	if err := db.DB.First(&garage, input.GarageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Garage not found",
		})
	}

	var fittingTime time.Time
	if input.Fitting != nil {
		var err error
		fittingTime, err = time.Parse("2006-01-02 15:04", input.Fitting.Date+" "+input.Fitting.Time)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid fitting date or time. Use YYYY-MM-DD and HH:MM.",
			})
		}
	}

	order := models.Order{
		Reference: utils.NewOrderReference(),
		UserID:    userID,
		GarageID:  garage.ID,
		Status:    models.OrderPending,
	}
	var appointment *models.Appointment

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range input.Items {
			if item.Quantity < 1 {
				return fmt.Errorf("invalid quantity for tyre %d", item.TyreID)
			}

			var tyre models.Tyre
			if err := tx.First(&tyre, item.TyreID).Error; err != nil {
				return fmt.Errorf("tyre %d not found", item.TyreID)
			}
			if tyre.GarageID != garage.ID {
				return fmt.Errorf("tyre %d does not belong to this garage", item.TyreID)
			}
			if tyre.Stock < item.Quantity {
				return fmt.Errorf("insufficient stock for %s %s", tyre.Brand, tyre.ModelName)
			}

			tyre.Stock -= item.Quantity
			if err := tx.Save(&tyre).Error; err != nil {
				return err
			}

			order.Items = append(order.Items, models.OrderItem{
				TyreID:    tyre.ID,
				Quantity:  item.Quantity,
				UnitPrice: tyre.Price,
			})
			order.Total += tyre.Price * float64(item.Quantity)
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if input.Fitting != nil {
			appointment = &models.Appointment{
				GarageID:        garage.ID,
				UserID:          userID,
				OrderID:         order.ID,
				AppointmentTime: fittingTime,
				Status:          models.StatusPending,
				Note:            input.Note,
			}
			if err := tx.Create(appointment).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Failed to place order",
			Error:   err.Error(),
		})
	}

	if appointment != nil {
		redis.DropSlots(garage.ID, fittingTime.Format("2006-01-02"))
	}

	// Best-effort confirmation email.
	var customer models.User
	if err := db.DB.First(&customer, userID).Error; err == nil && customer.Email != "" {
		fittingLine := "No fitting appointment requested."
		if appointment != nil {
			fittingLine = fmt.Sprintf("Fitting requested for %s (pending confirmation).",
				fittingTime.Format("2006-01-02 15:04"))
		}
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Thank you for your order <strong>%s</strong> at %s.</p>
			<ul>
				<li><strong>Total:</strong> %.2f</li>
				<li><strong>Status:</strong> %s</li>
			</ul>
			<p>%s</p>
			<p>Best regards,<br>TyreHub</p>
		`, customer.Name, order.Reference, garage.Name, order.Total, order.Status, fittingLine)
		if err := utils.SendEmail(customer.Email, "Order Confirmation - "+order.Reference, body); err != nil {
			log.Printf("Failed to send order confirmation for %s: %v", order.Reference, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order":       order,
		"appointment": appointment,
	})
}

// GetMyOrders lists the caller's orders, newest first.
func GetMyOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var orders []models.Order
	if err := db.DB.
		Preload("Items.Tyre").
		Preload("Garage").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(orders)
}

// GetMyAppointments lists the caller's fitting bookings.
func GetMyAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var appointments []models.Appointment
	if err := db.DB.
		Preload("Garage").
		Where("user_id = ?", userID).
		Order("appointment_time desc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(appointments)
}
