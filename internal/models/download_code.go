package models

import (
	"time"
)

// Codes stay redeemable for 7 days after issuance.
const DownloadCodeValidity = 7 * 24 * time.Hour

// DownloadCode is a single-use, time-limited token for retrieving one
// photo or one album asset. A code is redeemable only while IsUsed is
// false and ExpiresAt is in the future; redemption burns it whether or
// not the caller ever fetches the asset.
type DownloadCode struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Code      string    `json:"code" gorm:"uniqueIndex;not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	PhotoID   *uint     `json:"photo_id"`
	AlbumID   *uint     `json:"album_id"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	IsUsed    bool      `json:"is_used" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`

	Photo *Photo `json:"photos,omitempty" gorm:"foreignKey:PhotoID"`
	Album *Album `json:"albums,omitempty" gorm:"foreignKey:AlbumID"`
}

type GenerateCodeRequest struct {
	PurchaseID uint `json:"purchase_id" validate:"required"`
}

type RedeemCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

type RedeemCodeResponse struct {
	Code string `json:"code"`
	URL  string `json:"url"`
}
