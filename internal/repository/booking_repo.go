package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"framelight/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	UserID          int64     `gorm:"column:user_id"`
	ServiceDetailID int64     `gorm:"column:service_detail_id"`
	PackageID       string    `gorm:"column:package_id"`
	ServiceTitle    string    `gorm:"column:service_title"`
	PackageName     string    `gorm:"column:package_name"`
	PackagePrice    string    `gorm:"column:package_price"`
	PackageFeatures []string  `gorm:"column:package_features;serializer:json"`
	FullName        string    `gorm:"column:full_name"`
	Email           string    `gorm:"column:email"`
	Phone           string    `gorm:"column:phone"`
	Address         string    `gorm:"column:address"`
	BookingDate     time.Time `gorm:"column:booking_date"`
	AmountPaid      float64   `gorm:"column:amount_paid"`
	PaymentStatus   string    `gorm:"column:payment_status"`
	Status          string    `gorm:"column:status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		UserID:          m.UserID,
		ServiceDetailID: m.ServiceDetailID,
		PackageID:       m.PackageID,
		ServiceTitle:    m.ServiceTitle,
		PackageName:     m.PackageName,
		PackagePrice:    m.PackagePrice,
		PackageFeatures: m.PackageFeatures,
		FullName:        m.FullName,
		Email:           m.Email,
		Phone:           m.Phone,
		Address:         m.Address,
		BookingDate:     m.BookingDate,
		AmountPaid:      m.AmountPaid,
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		Status:          domain.BookingStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		UserID:          b.UserID,
		ServiceDetailID: b.ServiceDetailID,
		PackageID:       b.PackageID,
		ServiceTitle:    b.ServiceTitle,
		PackageName:     b.PackageName,
		PackagePrice:    b.PackagePrice,
		PackageFeatures: b.PackageFeatures,
		FullName:        b.FullName,
		Email:           b.Email,
		Phone:           b.Phone,
		Address:         b.Address,
		BookingDate:     b.BookingDate,
		AmountPaid:      b.AmountPaid,
		PaymentStatus:   string(b.PaymentStatus),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// UpdateStatus writes the new status and, when voidPayment is set, clears the
// payment fields in the same statement so a reset booking can never be
// observed with stale payment bookkeeping.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, voidPayment bool) (*domain.Booking, error) {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}
	if voidPayment {
		updates["amount_paid"] = 0.0
		updates["payment_status"] = string(domain.PaymentPending)
	}

	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetByID(ctx, id)
}

// AddPayment applies a payment delta inside one transaction, holding a row
// lock so concurrent additions to the same booking serialize instead of
// overwriting each other. The derived payment status is computed by the
// caller-supplied derive func against the frozen package price and persisted
// together with the new amount.
func (r *BookingRepository) AddPayment(
	ctx context.Context,
	id int64,
	delta float64,
	derive func(newPaid float64, price string) (domain.PaymentStatus, error),
) (*domain.Booking, error) {
	var out *domain.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		// SQLite serializes writers on its own and rejects FOR UPDATE.
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var m bookingModel
		if err := q.First(&m, id).Error; err != nil {
			return err
		}

		newPaid := m.AmountPaid + delta
		status, err := derive(newPaid, m.PackagePrice)
		if err != nil {
			return err
		}

		res := tx.Model(&bookingModel{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
			"amount_paid":    newPaid,
			"payment_status": string(status),
			"updated_at":     time.Now().UTC(),
		})
		if res.Error != nil {
			return res.Error
		}

		m.AmountPaid = newPaid
		m.PaymentStatus = string(status)
		out = toDomainBooking(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
