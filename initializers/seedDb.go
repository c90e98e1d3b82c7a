package initializers

import (
	"log"

	"github.com/dripitout/dripitout-api/models"
	"github.com/dripitout/dripitout-api/storage"
)

// SeedDatabase loads the starter catalog when the products table is
// empty.
func SeedDatabase() {
	var count int64
	if err := DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Println("Product count failed, skipping seed:", err)
		return
	}
	if count > 0 {
		return
	}

	for _, product := range storage.SampleProducts() {
		if err := DB.Create(&product).Error; err != nil {
			log.Println("Failed to seed product:", product.Name, err)
		}
	}
	log.Println("Seeded starter catalog.")
}
