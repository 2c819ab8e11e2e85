package models

import "time"

// Product represents a catalog item. IDs are assigned by the uploader
// (current time in milliseconds when omitted), not by the database.
type Product struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name            string    `json:"name" validate:"required,min=3,max=100"`
	Price           float64   `json:"price" validate:"required,gt=0"`
	PriceBeforeSale float64   `json:"priceBeforeSale,omitempty"`
	Category        string    `json:"category" validate:"required"`
	Gender          string    `json:"gender" validate:"required,oneof=Men Women Unisex"`
	IsSale          bool      `json:"isSale"`
	Image           string    `json:"image" validate:"omitempty,url"`
	Rating          float64   `json:"rating" validate:"gte=0,lte=5"`
	CreatedAt       time.Time `json:"-"`
}
