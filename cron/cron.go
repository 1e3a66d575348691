package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tyrehub/tyrehub-api/db"
	"github.com/tyrehub/tyrehub-api/models"
	"github.com/tyrehub/tyrehub-api/utils"
)

// StartCronJobs initializes and starts the cron scheduler for fitting reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for fittings in the next hour
	_, err := c.AddFunc("* * * * *", sendFittingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for fitting reminders")
}

// sendFittingReminders checks for upcoming confirmed fittings and sends reminders
func sendFittingReminders() {
	var appointments []models.Appointment
	now := time.Now()
	// Look for fittings starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("User").Preload("Garage").
		Where("status = ? AND appointment_time BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if appointment.User.Email == "" {
			continue
		}
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Tyre Fitting at %s", appointment.Garage.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your tyre fitting scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Garage:</strong> %s</li>
			<li><strong>Address:</strong> %s, %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact the garage as soon as possible.</p>
		<p>Best regards,<br>TyreHub</p>
	`, appointment.User.Name, appointment.Garage.Name,
		appointment.Garage.Address, appointment.Garage.City,
		appointment.AppointmentTime.Format("2006-01-02 15:04"),
		appointment.Status)

	return utils.SendEmail(appointment.User.Email, subject, body)
}
