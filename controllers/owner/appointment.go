package owner

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/db"
	"github.com/tyrehub/tyrehub-api/models"
	"github.com/tyrehub/tyrehub-api/redis"
)

// garageForOwner resolves the caller's garage from the :garageId param
// and enforces ownership.
func garageForOwner(c *fiber.Ctx) (*models.Garage, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in context")
	}
	role, _ := c.Locals("role").(string)

	garageID, err := c.ParamsInt("garageId")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid garage ID")
	}

	var garage models.Garage
	if err := db.DB.First(&garage, garageID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Garage not found")
	}
	if !garage.OwnedBy(userID) && role != models.RoleAdmin {
		return nil, fiber.NewError(fiber.StatusForbidden, "You can only manage your own garage's bookings")
	}
	return &garage, nil
}

// GetUpcomingAppointments returns pending/confirmed bookings for the
// owner's garage inside a date window.
func GetUpcomingAppointments(c *fiber.Ctx) error {
	garage, err := garageForOwner(c)
	if err != nil {
		return err
	}

	limit := 10
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	now := time.Now()
	startDate := now
	endDate := now.AddDate(0, 0, 30)

	dateFilter := c.Query("filter", "month")
	switch dateFilter {
	case "today":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	case "tomorrow":
		tomorrow := now.AddDate(0, 0, 1)
		startDate = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, now.Location())
		endDate = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 23, 59, 59, 0, now.Location())
	case "week":
		endDate = now.AddDate(0, 0, 7)
	case "month":
		endDate = now.AddDate(0, 1, 0)
	}

	var appointments []models.Appointment
	if err := db.DB.
		Preload("User").
		Where("garage_id = ?", garage.ID).
		Where("appointment_time >= ? AND appointment_time <= ?", startDate, endDate).
		Where("status IN ?", []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Order("appointment_time asc").
		Limit(limit).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
		"filter":       dateFilter,
		"start_date":   startDate.Format("2006-01-02"),
		"end_date":     endDate.Format("2006-01-02"),
	})
}

// GetAppointmentHistory returns completed/canceled bookings with pagination.
func GetAppointmentHistory(c *fiber.Ctx) error {
	garage, err := garageForOwner(c)
	if err != nil {
		return err
	}

	page := 1
	limit := 10
	if c.Query("page") != "" {
		if parsedPage := c.QueryInt("page"); parsedPage > 0 {
			page = parsedPage
		}
	}
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	offset := (page - 1) * limit

	statuses := []models.AppointmentStatus{models.StatusCompleted, models.StatusCanceled}
	switch models.AppointmentStatus(c.Query("status")) {
	case models.StatusCompleted:
		statuses = []models.AppointmentStatus{models.StatusCompleted}
	case models.StatusCanceled:
		statuses = []models.AppointmentStatus{models.StatusCanceled}
	}

	var total int64
	db.DB.Model(&models.Appointment{}).
		Where("garage_id = ?", garage.ID).
		Where("status IN ?", statuses).
		Count(&total)

	var appointments []models.Appointment
	if err := db.DB.
		Preload("User").
		Where("garage_id = ?", garage.ID).
		Where("status IN ?", statuses).
		Order("appointment_time desc").
		Offset(offset).
		Limit(limit).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"total":        total,
		"page":         page,
		"limit":        limit,
		"pages":        (total + int64(limit) - 1) / int64(limit),
	})
}

// UpdateAppointmentStatus sets a booking's status. The value must be
// one of the four known statuses, but any transition is accepted:
// owners can jump a booking straight to any target state, including
// reviving a canceled one. That flexibility is intentional.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	garage, err := garageForOwner(c)
	if err != nil {
		return err
	}

	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
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

	newStatus := models.AppointmentStatus(updateData.Status)
	if !models.ValidStatus(newStatus) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status. Must be 'pending', 'confirmed', 'canceled', or 'completed'.",
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, appointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}
	if appointment.GarageID != garage.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only update your own garage's bookings",
		})
	}

	if err := appointment.SetStatus(db.DB, newStatus); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	redis.DropSlots(appointment.GarageID, appointment.AppointmentTime.Format("2006-01-02"))

	return c.JSON(fiber.Map{
		"message":     "Appointment status updated successfully",
		"appointment": appointment,
	})
}

// RescheduleAppointment rewrites a booking's time. The target slot's
// capacity is not re-checked; the resolver's counts are advisory here,
// matching the create path.
func RescheduleAppointment(c *fiber.Ctx) error {
	garage, err := garageForOwner(c)
	if err != nil {
		return err
	}

	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	var rescheduleData struct {
		Date string `json:"date"` // YYYY-MM-DD
		Time string `json:"time"` // HH:MM
	}
	if err := c.BodyParser(&rescheduleData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	newTime, err := time.Parse("2006-01-02 15:04", rescheduleData.Date+" "+rescheduleData.Time)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date or time. Use YYYY-MM-DD and HH:MM.",
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, appointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}
	if appointment.GarageID != garage.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only reschedule your own garage's bookings",
		})
	}

	oldDate := appointment.AppointmentTime.Format("2006-01-02")
	appointment.AppointmentTime = newTime
	if err := db.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reschedule appointment",
		})
	}

	redis.DropSlots(appointment.GarageID, oldDate)
	redis.DropSlots(appointment.GarageID, newTime.Format("2006-01-02"))

	return c.JSON(fiber.Map{
		"message":     "Appointment rescheduled successfully",
		"appointment": appointment,
	})
}
