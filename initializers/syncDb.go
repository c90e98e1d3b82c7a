package initializers

import (
	"log"

	"github.com/dripitout/dripitout-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
		&models.TailorBooking{},
		&models.OnlineAppointment{},
		&models.ContactSupport{},
	)
	log.Println("Database synced successfully.")
}
