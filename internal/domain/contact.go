package domain

import "time"

// ContactMessage is a public enquiry submitted from the contact page.
type ContactMessage struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message" gorm:"type:text" validate:"required"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
