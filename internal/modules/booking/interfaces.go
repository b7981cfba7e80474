package booking

import (
	"context"

	"framelight/internal/domain"
)

// BookingRepository defines the ledger storage operations
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, voidPayment bool) (*domain.Booking, error)
	AddPayment(ctx context.Context, id int64, delta float64, derive func(newPaid float64, price string) (domain.PaymentStatus, error)) (*domain.Booking, error)
}

// CatalogReader is the read-only boundary to the catalog store
type CatalogReader interface {
	GetDetailByID(ctx context.Context, id int64) (*domain.ServiceDetail, error)
	GetPackageByID(ctx context.Context, detailID int64, packageID string) (*domain.Package, error)
}

// EventSink receives ledger events for the admin feed; delivery is
// best-effort and never blocks or fails a ledger write.
type EventSink interface {
	BookingCreated(b *domain.Booking)
	BookingStatusChanged(b *domain.Booking)
	PaymentRecorded(b *domain.Booking, delta float64)
}
