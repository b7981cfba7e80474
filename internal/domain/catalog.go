package domain

import "time"

// Service is the marketing card shown on the public services page.
type Service struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Slug        string    `json:"slug" gorm:"uniqueIndex" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceDetail is the full content record for one Service (1:1 via ServiceID).
type ServiceDetail struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ServiceID   int64     `json:"service_id" gorm:"uniqueIndex" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" gorm:"type:text"`
	CoverImage  string    `json:"cover_image,omitempty"`
	Gallery     []string  `json:"gallery,omitempty" gorm:"serializer:json"`
	Videos      []string  `json:"videos,omitempty" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Packages []Package `json:"packages,omitempty" gorm:"foreignKey:ServiceDetailID"`
}

// Package is a purchasable tier of a service. Identity is a generated UUID:
// lookups are always by id, never by list position, so concurrent catalog
// edits cannot re-target a booking or an admin update.
type Package struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	ServiceDetailID int64     `json:"service_detail_id" gorm:"index"`
	Name            string    `json:"name" validate:"required"`
	Price           string    `json:"price" validate:"required"`
	Features        []string  `json:"features" gorm:"serializer:json"`
	Highlight       bool      `json:"highlight"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
