package models

import "gorm.io/gorm"

// Product prices are stored in minor currency units (cents).
type Product struct {
	gorm.Model
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       int    `json:"price" binding:"required"`
	ImageUrl    string `json:"imageUrl"`
	Category    string `json:"category" binding:"required"`
	Collection  string `json:"collection"`
	InStock     bool   `json:"inStock"`
}

type Review struct {
	gorm.Model
	ProductID int    `json:"productId"`
	UserID    int    `json:"userId"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}
