package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"framelight/internal/domain"
)

// ---- mocks ----

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = 1
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, voidPayment bool) (*domain.Booking, error) {
	args := m.Called(ctx, id, status, voidPayment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	b := args.Get(0).(*domain.Booking)
	b.Status = status
	if voidPayment {
		b.AmountPaid = 0
		b.PaymentStatus = domain.PaymentPending
	}
	return b, args.Error(1)
}

// AddPayment mirrors the real repository: accumulate the delta, then run the
// caller-supplied derivation against the stored price.
func (m *MockBookingRepository) AddPayment(ctx context.Context, id int64, delta float64, derive func(newPaid float64, price string) (domain.PaymentStatus, error)) (*domain.Booking, error) {
	args := m.Called(ctx, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	b := args.Get(0).(*domain.Booking)
	b.AmountPaid += delta
	status, err := derive(b.AmountPaid, b.PackagePrice)
	if err != nil {
		return nil, err
	}
	b.PaymentStatus = status
	return b, args.Error(1)
}

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) GetDetailByID(ctx context.Context, id int64) (*domain.ServiceDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceDetail), args.Error(1)
}

func (m *MockCatalogReader) GetPackageByID(ctx context.Context, detailID int64, packageID string) (*domain.Package, error) {
	args := m.Called(ctx, detailID, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) BookingCreated(b *domain.Booking)               { m.Called(b) }
func (m *MockEventSink) BookingStatusChanged(b *domain.Booking)         { m.Called(b) }
func (m *MockEventSink) PaymentRecorded(b *domain.Booking, delta float64) { m.Called(b, delta) }

// ---- fixtures ----

func validCreateRequest() CreateBookingRequest {
	return CreateBookingRequest{
		ServiceDetailID: 3,
		PackageID:       "pkg-gold",
		FullName:        "Maya Client",
		Email:           "maya@example.com",
		Phone:           "5551234567",
		Address:         "12 Garden Lane",
		BookingDate:     "2026-10-17",
	}
}

func goldPackage() *domain.Package {
	return &domain.Package{
		ID:              "pkg-gold",
		ServiceDetailID: 3,
		Name:            "Gold",
		Price:           "60000",
		Features:        []string{"10 hours coverage", "400 edited photos"},
	}
}

// ---- CreateBooking ----

func TestService_CreateBooking_SnapshotsPackage(t *testing.T) {
	bookings := new(MockBookingRepository)
	catalog := new(MockCatalogReader)
	events := new(MockEventSink)
	svc := NewService(bookings, catalog, events)

	detail := &domain.ServiceDetail{ID: 3, Title: "Wedding Photography"}
	pkg := goldPackage()

	catalog.On("GetDetailByID", mock.Anything, int64(3)).Return(detail, nil)
	catalog.On("GetPackageByID", mock.Anything, int64(3), "pkg-gold").Return(pkg, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	events.On("BookingCreated", mock.AnythingOfType("*domain.Booking")).Return()

	b, err := svc.CreateBooking(context.Background(), 42, validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), b.UserID)
	assert.Equal(t, "Wedding Photography", b.ServiceTitle)
	assert.Equal(t, "Gold", b.PackageName)
	assert.Equal(t, "60000", b.PackagePrice)
	assert.Equal(t, pkg.Features, b.PackageFeatures)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.Zero(t, b.AmountPaid)

	// snapshot is a copy, not an alias of the catalog slice
	b.PackageFeatures[0] = "mutated"
	assert.Equal(t, "10 hours coverage", pkg.Features[0])

	bookings.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestService_CreateBooking_UnknownPackage(t *testing.T) {
	bookings := new(MockBookingRepository)
	catalog := new(MockCatalogReader)
	svc := NewService(bookings, catalog, nil)

	detail := &domain.ServiceDetail{ID: 3, Title: "Wedding Photography"}
	catalog.On("GetDetailByID", mock.Anything, int64(3)).Return(detail, nil)
	catalog.On("GetPackageByID", mock.Anything, int64(3), "pkg-gold").Return(nil, gorm.ErrRecordNotFound)

	req := validCreateRequest()
	_, err := svc.CreateBooking(context.Background(), 42, req)

	assert.ErrorIs(t, err, ErrNotFound)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_UnknownDetail(t *testing.T) {
	bookings := new(MockBookingRepository)
	catalog := new(MockCatalogReader)
	svc := NewService(bookings, catalog, nil)

	catalog.On("GetDetailByID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateBooking(context.Background(), 42, validCreateRequest())

	assert.ErrorIs(t, err, ErrNotFound)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateBookingRequest)
	}{
		{"empty name", func(r *CreateBookingRequest) { r.FullName = "   " }},
		{"short phone", func(r *CreateBookingRequest) { r.Phone = "55512" }},
		{"alpha phone", func(r *CreateBookingRequest) { r.Phone = "55512345ab" }},
		{"empty address", func(r *CreateBookingRequest) { r.Address = "" }},
		{"bad date", func(r *CreateBookingRequest) { r.BookingDate = "17/10/2026" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bookings := new(MockBookingRepository)
			catalog := new(MockCatalogReader)
			svc := NewService(bookings, catalog, nil)

			req := validCreateRequest()
			tc.mutate(&req)

			_, err := svc.CreateBooking(context.Background(), 42, req)

			assert.ErrorIs(t, err, ErrValidation)
			catalog.AssertNotCalled(t, "GetDetailByID", mock.Anything, mock.Anything)
			bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

// ---- UpdateStatus ----

func TestService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewService(bookings, new(MockCatalogReader), nil)

	_, err := svc.UpdateStatus(context.Background(), 1, "archived")

	assert.ErrorIs(t, err, ErrInvalidStatus)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_CancelVoidsPayment(t *testing.T) {
	bookings := new(MockBookingRepository)
	events := new(MockEventSink)
	svc := NewService(bookings, new(MockCatalogReader), events)

	current := &domain.Booking{
		ID:            7,
		PackagePrice:  "60000",
		AmountPaid:    60000,
		PaymentStatus: domain.PaymentPaid,
		Status:        domain.BookingConfirmed,
	}
	bookings.On("UpdateStatus", mock.Anything, int64(7), domain.BookingCancelled, true).Return(current, nil)
	events.On("BookingStatusChanged", current).Return()

	b, err := svc.UpdateStatus(context.Background(), 7, "cancelled")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	assert.Zero(t, b.AmountPaid)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	bookings.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestService_UpdateStatus_BackToPendingVoidsPayment(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewService(bookings, new(MockCatalogReader), nil)

	current := &domain.Booking{
		ID:            7,
		PackagePrice:  "60000",
		AmountPaid:    20000,
		PaymentStatus: domain.PaymentPartial,
		Status:        domain.BookingConfirmed,
	}
	bookings.On("UpdateStatus", mock.Anything, int64(7), domain.BookingPending, true).Return(current, nil)

	b, err := svc.UpdateStatus(context.Background(), 7, "pending")

	require.NoError(t, err)
	assert.Zero(t, b.AmountPaid)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
}

func TestService_UpdateStatus_ConfirmKeepsPayment(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewService(bookings, new(MockCatalogReader), nil)

	current := &domain.Booking{
		ID:            7,
		PackagePrice:  "60000",
		AmountPaid:    20000,
		PaymentStatus: domain.PaymentPartial,
		Status:        domain.BookingPending,
	}
	bookings.On("UpdateStatus", mock.Anything, int64(7), domain.BookingConfirmed, false).Return(current, nil)

	b, err := svc.UpdateStatus(context.Background(), 7, "confirmed")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, float64(20000), b.AmountPaid)
	assert.Equal(t, domain.PaymentPartial, b.PaymentStatus)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewService(bookings, new(MockCatalogReader), nil)

	bookings.On("UpdateStatus", mock.Anything, int64(99), domain.BookingCompleted, false).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateStatus(context.Background(), 99, "completed")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ---- AddPayment ----

func TestService_AddPayment_RejectsNonPositive(t *testing.T) {
	for _, delta := range []float64{0, -1, -20000} {
		bookings := new(MockBookingRepository)
		svc := NewService(bookings, new(MockCatalogReader), nil)

		_, err := svc.AddPayment(context.Background(), 1, delta)

		assert.ErrorIs(t, err, ErrInvalidAmount)
		bookings.AssertNotCalled(t, "AddPayment", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestService_AddPayment_AccumulatesToPaid(t *testing.T) {
	bookings := new(MockBookingRepository)
	events := new(MockEventSink)
	svc := NewService(bookings, new(MockCatalogReader), events)

	ledger := &domain.Booking{
		ID:            7,
		PackagePrice:  "60000",
		AmountPaid:    0,
		PaymentStatus: domain.PaymentPending,
		Status:        domain.BookingConfirmed,
	}
	bookings.On("AddPayment", mock.Anything, int64(7), float64(20000)).Return(ledger, nil)
	bookings.On("AddPayment", mock.Anything, int64(7), float64(40000)).Return(ledger, nil)
	events.On("PaymentRecorded", ledger, mock.Anything).Return()

	b, err := svc.AddPayment(context.Background(), 7, 20000)
	require.NoError(t, err)
	assert.Equal(t, float64(20000), b.AmountPaid)
	assert.Equal(t, domain.PaymentPartial, b.PaymentStatus)

	b, err = svc.AddPayment(context.Background(), 7, 40000)
	require.NoError(t, err)
	assert.Equal(t, float64(60000), b.AmountPaid)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestService_AddPayment_OverpaymentStaysPaid(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewService(bookings, new(MockCatalogReader), nil)

	ledger := &domain.Booking{
		ID:            7,
		PackagePrice:  "60000",
		AmountPaid:    60000,
		PaymentStatus: domain.PaymentPaid,
	}
	bookings.On("AddPayment", mock.Anything, int64(7), float64(5000)).Return(ledger, nil)

	b, err := svc.AddPayment(context.Background(), 7, 5000)

	require.NoError(t, err)
	assert.Equal(t, float64(65000), b.AmountPaid)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
}

func TestService_AddPayment_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewService(bookings, new(MockCatalogReader), nil)

	bookings.On("AddPayment", mock.Anything, int64(99), float64(100)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.AddPayment(context.Background(), 99, 100)

	assert.ErrorIs(t, err, ErrNotFound)
}

// ---- listing / access ----

func TestService_GetUserBookings_OwnerAllowed(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewService(bookings, new(MockCatalogReader), nil)

	bookings.On("ListByUserID", mock.Anything, int64(42)).Return([]domain.Booking{{ID: 1}}, nil)

	got, err := svc.GetUserBookings(context.Background(), 42, 42, string(domain.RoleClient))

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_GetUserBookings_AdminAllowed(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewService(bookings, new(MockCatalogReader), nil)

	bookings.On("ListByUserID", mock.Anything, int64(42)).Return([]domain.Booking{}, nil)

	_, err := svc.GetUserBookings(context.Background(), 42, 7, string(domain.RoleAdmin))

	assert.NoError(t, err)
}

func TestService_GetUserBookings_StrangerForbidden(t *testing.T) {
	bookings := new(MockBookingRepository)
	svc := NewService(bookings, new(MockCatalogReader), nil)

	_, err := svc.GetUserBookings(context.Background(), 42, 7, string(domain.RoleClient))

	assert.ErrorIs(t, err, ErrForbidden)
	bookings.AssertNotCalled(t, "ListByUserID", mock.Anything, mock.Anything)
}
