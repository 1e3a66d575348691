package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/db"
	"github.com/tyrehub/tyrehub-api/models"
	"github.com/tyrehub/tyrehub-api/redis"
	"github.com/tyrehub/tyrehub-api/utils"
)

// GetAllAppointments returns appointments, filterable by garage
func GetAllAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment

	query := db.DB.Preload("Garage").Preload("User")
	if garageID := c.QueryInt("garage_id"); garageID > 0 {
		query = query.Where("garage_id = ?", garageID)
	}

	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment returns an appointment by ID
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Garage").Preload("User").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// CreateAppointment books a fitting. The booking is always created as
// pending. The user comes from the bearer token when one is present,
// falling back to the user_id in the body (garage owners book on a
// customer's behalf this way). Slot capacity is not checked here:
// the resolver's counts are advisory and the checkout path books
// without consulting them.
func CreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if userID, ok := c.Locals("userID").(uint); ok {
		appointment.UserID = userID
	}
	if appointment.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot create booking",
			Error:   models.ErrMissingUser.Error(),
		})
	}

	var garage models.Garage
	if err := db.DB.First(&garage, appointment.GarageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Garage not found",
			Error:   err.Error(),
		})
	}

	appointment.Status = models.StatusPending
	if err := db.DB.Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	redis.DropSlots(appointment.GarageID, appointment.AppointmentTime.Format("2006-01-02"))

	// Best-effort confirmation email; the booking stands either way.
	var customer models.User
	if err := db.DB.First(&customer, appointment.UserID).Error; err == nil && customer.Email != "" {
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Your fitting appointment at %s has been received.</p>
			<ul>
				<li><strong>Garage:</strong> %s, %s</li>
				<li><strong>Time:</strong> %s</li>
				<li><strong>Status:</strong> %s</li>
			</ul>
			<p>Best regards,<br>TyreHub</p>
		`, customer.Name, garage.Name, garage.Name, garage.Address,
			appointment.AppointmentTime.Format("2006-01-02 15:04"), appointment.Status)
		if err := utils.SendEmail(customer.Email, "Fitting Appointment Received", body); err != nil {
			log.Printf("Failed to send confirmation email for appointment %d: %v", appointment.ID, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// DeleteAppointment hard-deletes a booking. This is an explicit owner
// action and is irreversible; it is not a status transition, so it is
// allowed in any status.
func DeleteAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Garage").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	if !appointment.Garage.OwnedBy(userID) && role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only delete bookings for your own garage",
		})
	}

	if err := db.DB.Unscoped().Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}

	redis.DropSlots(appointment.GarageID, appointment.AppointmentTime.Format("2006-01-02"))

	return c.SendStatus(fiber.StatusNoContent)
}
