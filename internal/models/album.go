package models

import (
	"time"
)

type Album struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null;default:0"`
	CoverImage  string    `json:"cover_image"`
	Photos      []Photo   `json:"photos" gorm:"foreignKey:AlbumID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Photo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AlbumID     uint      `json:"album_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateAlbumRequest carries the admin form as submitted. Price stays a
// string here: a value that does not parse as a number is stored as 0.
type CreateAlbumRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price"`
}
