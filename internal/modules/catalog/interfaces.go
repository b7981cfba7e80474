package catalog

import (
	"context"

	"framelight/internal/domain"
)

// CatalogRepository defines storage for services, details and packages
type CatalogRepository interface {
	CreateService(ctx context.Context, s *domain.Service) error
	UpdateService(ctx context.Context, s *domain.Service) error
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	DeleteService(ctx context.Context, id int64) error

	GetDetailByID(ctx context.Context, id int64) (*domain.ServiceDetail, error)
	GetDetailByServiceID(ctx context.Context, serviceID int64) (*domain.ServiceDetail, error)
	CreateDetail(ctx context.Context, d *domain.ServiceDetail) error
	UpdateDetail(ctx context.Context, d *domain.ServiceDetail) error

	CreatePackage(ctx context.Context, p *domain.Package) error
	UpdatePackage(ctx context.Context, p *domain.Package) error
	DeletePackage(ctx context.Context, detailID int64, packageID string) error
	GetPackageByID(ctx context.Context, detailID int64, packageID string) (*domain.Package, error)
}
