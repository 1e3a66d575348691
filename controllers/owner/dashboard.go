package owner

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/tyrehub-api/db"
	"github.com/tyrehub/tyrehub-api/models"
)

// GetDashboardOverview returns booking/inventory/revenue statistics for
// the owner's garage.
func GetDashboardOverview(c *fiber.Ctx) error {
	garage, err := garageForOwner(c)
	if err != nil {
		return err
	}

	var statistics struct {
		TotalAppointments int64     `json:"total_appointments"`
		PendingCount      int64     `json:"pending_count"`
		ConfirmedCount    int64     `json:"confirmed_count"`
		CompletedCount    int64     `json:"completed_count"`
		CanceledCount     int64     `json:"canceled_count"`
		TotalTyres        int64     `json:"total_tyres"`
		TotalOrders       int64     `json:"total_orders"`
		TotalRevenue      float64   `json:"total_revenue"`
		LastUpdated       time.Time `json:"last_updated"`
	}

	appointmentQuery := db.DB.Model(&models.Appointment{}).Where("garage_id = ?", garage.ID)
	appointmentQuery.Count(&statistics.TotalAppointments)

	db.DB.Model(&models.Appointment{}).Where("garage_id = ? AND status = ?", garage.ID, models.StatusPending).Count(&statistics.PendingCount)
	db.DB.Model(&models.Appointment{}).Where("garage_id = ? AND status = ?", garage.ID, models.StatusConfirmed).Count(&statistics.ConfirmedCount)
	db.DB.Model(&models.Appointment{}).Where("garage_id = ? AND status = ?", garage.ID, models.StatusCompleted).Count(&statistics.CompletedCount)
	db.DB.Model(&models.Appointment{}).Where("garage_id = ? AND status = ?", garage.ID, models.StatusCanceled).Count(&statistics.CanceledCount)

	db.DB.Model(&models.Tyre{}).Where("garage_id = ?", garage.ID).Count(&statistics.TotalTyres)
	db.DB.Model(&models.Order{}).Where("garage_id = ?", garage.ID).Count(&statistics.TotalOrders)

	type RevenueResult struct {
		TotalRevenue float64
	}
	var revenueResult RevenueResult
	db.DB.Model(&models.Order{}).
		Where("garage_id = ?", garage.ID).
		Where("status IN ?", []models.OrderStatus{models.OrderPaid, models.OrderCompleted}).
		Select("COALESCE(SUM(total), 0) as total_revenue").
		Scan(&revenueResult)
	statistics.TotalRevenue = revenueResult.TotalRevenue

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}
