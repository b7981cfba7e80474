package booking

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"framelight/internal/domain"
	"framelight/internal/pkg/validator"
)

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

type Service struct {
	bookings BookingRepository
	catalog  CatalogReader
	events   EventSink
}

func NewService(bookings BookingRepository, catalog CatalogReader, events EventSink) *Service {
	return &Service{
		bookings: bookings,
		catalog:  catalog,
		events:   events,
	}
}

// CreateBooking resolves the catalog references and persists a booking whose
// snapshot fields are copied from the package as it exists right now. Later
// edits to the package never touch the booking.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, ErrValidation
	}
	if !phoneRe.MatchString(strings.TrimSpace(req.Phone)) {
		return nil, ErrValidation
	}
	if strings.TrimSpace(req.Address) == "" {
		return nil, ErrValidation
	}
	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrValidation
	}

	detail, err := s.catalog.GetDetailByID(ctx, req.ServiceDetailID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	pkg, err := s.catalog.GetPackageByID(ctx, detail.ID, req.PackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		UserID:          userID,
		ServiceDetailID: detail.ID,
		PackageID:       pkg.ID,
		ServiceTitle:    detail.Title,
		PackageName:     pkg.Name,
		PackagePrice:    pkg.Price,
		PackageFeatures: append([]string(nil), pkg.Features...),
		FullName:        fullName,
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		Address:         strings.TrimSpace(req.Address),
		BookingDate:     bookingDate,
		AmountPaid:      0,
		PaymentStatus:   domain.PaymentPending,
		Status:          domain.BookingPending,
	}

	if errs := validator.Validate(b); errs != nil {
		return nil, ErrValidation
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.BookingCreated(b)
	}

	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUserID(ctx, userID)
}

// GetUserBookings is owner-or-admin: the handler resolves the caller identity,
// this enforces the policy.
func (s *Service) GetUserBookings(ctx context.Context, targetUserID, callerID int64, callerRole string) ([]domain.Booking, error) {
	if targetUserID != callerID && callerRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	return s.bookings.ListByUserID(ctx, targetUserID)
}

func (s *Service) GetAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

// UpdateStatus is the status transition guard. Any target status in the
// allowed set is reachable from any current status (administrative override).
// Moving to pending or cancelled voids the payment bookkeeping: amount paid
// drops to zero and payment status resets to pending. This clears the
// ledger's view only; it does not trigger an external refund.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, newStatus string) (*domain.Booking, error) {
	status, err := domain.ParseBookingStatus(newStatus)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	voidPayment := status == domain.BookingPending || status == domain.BookingCancelled

	b, err := s.bookings.UpdateStatus(ctx, bookingID, status, voidPayment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.events != nil {
		s.events.BookingStatusChanged(b)
	}

	return b, nil
}

// AddPayment accumulates a positive payment delta and recomputes the derived
// payment status against the frozen package price. The repository performs
// the read-modify-write atomically per booking id.
func (s *Service) AddPayment(ctx context.Context, bookingID int64, delta float64) (*domain.Booking, error) {
	if delta <= 0 {
		return nil, ErrInvalidAmount
	}

	b, err := s.bookings.AddPayment(ctx, bookingID, delta, Reconcile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.events != nil {
		s.events.PaymentRecorded(b, delta)
	}

	return b, nil
}
