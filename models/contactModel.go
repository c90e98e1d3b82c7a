package models

import "gorm.io/gorm"

type ContactSupport struct {
	gorm.Model
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Message  string `json:"message" binding:"required"`
	Resolved bool   `json:"resolved"`
}
