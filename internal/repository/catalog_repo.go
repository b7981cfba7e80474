package repository

import (
	"context"

	"gorm.io/gorm"

	"framelight/internal/domain"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

/* ---------- SERVICES ---------- */

func (r *CatalogRepository) CreateService(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogRepository) UpdateService(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *CatalogRepository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CatalogRepository) ListServices(ctx context.Context) ([]domain.Service, error) {
	var out []domain.Service
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteService removes the service together with its detail record and
// packages. One transaction, so a half-deleted catalog entry is never visible.
func (r *CatalogRepository) DeleteService(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var detail domain.ServiceDetail
		err := tx.Where("service_id = ?", id).First(&detail).Error
		switch {
		case err == nil:
			if err := tx.Where("service_detail_id = ?", detail.ID).Delete(&domain.Package{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&domain.ServiceDetail{}, detail.ID).Error; err != nil {
				return err
			}
		case err != gorm.ErrRecordNotFound:
			return err
		}

		res := tx.Delete(&domain.Service{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

/* ---------- DETAILS ---------- */

func (r *CatalogRepository) GetDetailByID(ctx context.Context, id int64) (*domain.ServiceDetail, error) {
	var d domain.ServiceDetail
	err := r.db.WithContext(ctx).
		Preload("Packages", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&d, id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CatalogRepository) GetDetailByServiceID(ctx context.Context, serviceID int64) (*domain.ServiceDetail, error) {
	var d domain.ServiceDetail
	err := r.db.WithContext(ctx).
		Preload("Packages", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("service_id = ?", serviceID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *CatalogRepository) CreateDetail(ctx context.Context, d *domain.ServiceDetail) error {
	return r.db.WithContext(ctx).Omit("Packages").Create(d).Error
}

func (r *CatalogRepository) UpdateDetail(ctx context.Context, d *domain.ServiceDetail) error {
	return r.db.WithContext(ctx).Omit("Packages").Save(d).Error
}

/* ---------- PACKAGES ---------- */

func (r *CatalogRepository) CreatePackage(ctx context.Context, p *domain.Package) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *CatalogRepository) UpdatePackage(ctx context.Context, p *domain.Package) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *CatalogRepository) DeletePackage(ctx context.Context, detailID int64, packageID string) error {
	res := r.db.WithContext(ctx).
		Where("service_detail_id = ? AND id = ?", detailID, packageID).
		Delete(&domain.Package{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetPackageByID looks a package up by its stable id scoped to the owning
// detail, so a dangling or rotated id can never resolve to a different entry.
func (r *CatalogRepository) GetPackageByID(ctx context.Context, detailID int64, packageID string) (*domain.Package, error) {
	var p domain.Package
	err := r.db.WithContext(ctx).
		Where("service_detail_id = ? AND id = ?", detailID, packageID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
