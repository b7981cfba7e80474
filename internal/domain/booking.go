package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus validates an admin-supplied status value.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"

	// Refunded and Failed are part of the stored value domain for
	// compatibility with imported history, but no code path produces them.
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// Booking is one customer reservation against a snapshotted service package.
// The snapshot fields (ServiceTitle, PackageName, PackagePrice,
// PackageFeatures) are copied at creation and never re-synced, so later
// catalog edits do not rewrite history.
type Booking struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	UserID          int64  `json:"user_id" validate:"required"`
	ServiceDetailID int64  `json:"service_detail_id" validate:"required"`
	PackageID       string `json:"package_id" validate:"required"`

	ServiceTitle    string   `json:"service_title"`
	PackageName     string   `json:"package_name"`
	PackagePrice    string   `json:"package_price"`
	PackageFeatures []string `json:"package_features" gorm:"serializer:json"`

	FullName    string    `json:"full_name" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone" validate:"required,len=10,numeric"`
	Address     string    `json:"address" validate:"required"`
	BookingDate time.Time `json:"booking_date" validate:"required"`

	AmountPaid    float64       `json:"amount_paid"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Status        BookingStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
