package controllers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/db"
	"github.com/tyrehub/tyrehub-api/models"
	"github.com/tyrehub/tyrehub-api/redis"
	"github.com/tyrehub/tyrehub-api/utils"
)

// GetSchedule returns a garage's full weekly schedule template
func GetSchedule(c *fiber.Ctx) error {
	id := c.Params("id")
	var garage models.Garage
	if err := db.DB.First(&garage, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Garage not found",
		})
	}
	garage.Schedule.Normalize()
	return c.JSON(garage.Schedule)
}

// SetSchedule replaces a garage's weekly schedule as a whole. Callers
// always submit the complete structure; there is no per-day PATCH.
// Validation happens before anything is written, so a rejected template
// leaves the stored schedule untouched.
func SetSchedule(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Only the garage owner can edit its schedule",
			Error:   models.ErrNotAuthorized.Error(),
		})
	}

	week := models.WeekSchedule{}
	if err := c.BodyParser(&week); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := week.Validate(); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, models.ErrSlotOverlap) {
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(utils.ErrorResponse{
			Message: "Invalid schedule",
			Error:   err.Error(),
		})
	}
	week.Normalize()

	// Full replace, last writer wins. No versioning on the template.
	if err := db.DB.Model(&garage).Update("schedule", week).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save schedule",
		})
	}

	return c.JSON(week)
}

// CopyScheduleDay duplicates one day's slot list onto another day and
// persists the result through the same full-replace path as SetSchedule.
func CopyScheduleDay(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Only the garage owner can edit its schedule",
			Error:   models.ErrNotAuthorized.Error(),
		})
	}

	var input struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	week := garage.Schedule
	if week == nil {
		week = models.EmptyWeek()
	}
	week.Normalize()

	if err := week.CopyDay(input.From, input.To); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to copy day",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&garage).Update("schedule", week).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save schedule",
		})
	}

	return c.JSON(week)
}

// GetAvailableSlots resolves a garage's bookable hourly slots for one
// calendar date. This endpoint is the single authoritative resolver;
// clients only display what it returns. Responses are cached briefly
// in Redis per garage and date.
func GetAvailableSlots(c *fiber.Ctx) error {
	id := c.Params("id")
	var garage models.Garage
	if err := db.DB.First(&garage, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Garage not found",
		})
	}

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date. Please use YYYY-MM-DD format.",
		})
	}

	if cached := redis.GetCachedSlots(garage.ID, dateStr); cached != "" {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := db.DB.
		Where("garage_id = ?", garage.ID).
		Where("appointment_time >= ? AND appointment_time < ?", dayStart, dayEnd).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}

	week := garage.Schedule
	if week == nil {
		week = models.EmptyWeek()
	}
	slots := utils.ResolveDaySlots(dayStart, week, appointments)

	if payload, err := json.Marshal(fiber.Map{"slots": slots}); err == nil {
		redis.CacheSlots(garage.ID, dateStr, string(payload))
	}

	return c.JSON(fiber.Map{"slots": slots})
}
