package models

import (
	"time"
)

const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusFailed    = "failed"
)

// PurchaseHistory is one paid order. It references exactly one of
// PhotoID/AlbumID. Rows are created pending at checkout and only the
// Stripe webhook moves them to completed.
type PurchaseHistory struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"not null;index"`
	PhotoID         *uint     `json:"photo_id"`
	AlbumID         *uint     `json:"album_id"`
	Amount          float64   `json:"amount" gorm:"not null"`
	StripeSessionID string    `json:"stripe_session_id" gorm:"unique;not null"`
	Status          string    `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Photo *Photo `json:"photos,omitempty" gorm:"foreignKey:PhotoID"`
	Album *Album `json:"albums,omitempty" gorm:"foreignKey:AlbumID"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
