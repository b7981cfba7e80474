package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"framelight/internal/domain"
)

type Service struct {
	repo CatalogRepository
}

func NewService(repo CatalogRepository) *Service {
	return &Service{repo: repo}
}

/* ---------- SERVICES ---------- */

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" || strings.TrimSpace(req.Title) == "" {
		return nil, ErrValidation
	}

	svc := &domain.Service{
		Slug:        slug,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.CreateService(ctx, svc); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		svc.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.ImageURL != nil {
		svc.ImageURL = *req.ImageURL
	}

	if err := s.repo.UpdateService(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.repo.ListServices(ctx)
}

func (s *Service) GetServiceDetail(ctx context.Context, serviceID int64) (*domain.ServiceDetail, error) {
	d, err := s.repo.GetDetailByServiceID(ctx, serviceID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return d, nil
}

func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if err := s.repo.DeleteService(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

/* ---------- DETAILS ---------- */

// UpsertDetail creates or replaces the content record for a service.
func (s *Service) UpsertDetail(ctx context.Context, serviceID int64, req UpsertDetailRequest) (*domain.ServiceDetail, error) {
	if _, err := s.repo.GetServiceByID(ctx, serviceID); err != nil {
		return nil, mapNotFound(err)
	}

	existing, err := s.repo.GetDetailByServiceID(ctx, serviceID)
	switch {
	case err == nil:
		existing.Title = req.Title
		existing.Description = req.Description
		existing.CoverImage = req.CoverImage
		existing.Gallery = req.Gallery
		existing.Videos = req.Videos
		if err := s.repo.UpdateDetail(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		d := &domain.ServiceDetail{
			ServiceID:   serviceID,
			Title:       req.Title,
			Description: req.Description,
			CoverImage:  req.CoverImage,
			Gallery:     req.Gallery,
			Videos:      req.Videos,
		}
		if err := s.repo.CreateDetail(ctx, d); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, err
	}
}

func (s *Service) AddGalleryImages(ctx context.Context, serviceID int64, urls []string) (*domain.ServiceDetail, error) {
	d, err := s.repo.GetDetailByServiceID(ctx, serviceID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	d.Gallery = append(d.Gallery, urls...)
	if err := s.repo.UpdateDetail(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) RemoveGalleryImages(ctx context.Context, serviceID int64, urls []string) (*domain.ServiceDetail, error) {
	d, err := s.repo.GetDetailByServiceID(ctx, serviceID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	drop := make(map[string]bool, len(urls))
	for _, u := range urls {
		drop[u] = true
	}
	kept := d.Gallery[:0]
	for _, u := range d.Gallery {
		if !drop[u] {
			kept = append(kept, u)
		}
	}
	d.Gallery = kept

	if err := s.repo.UpdateDetail(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

/* ---------- PACKAGES ---------- */

// AddPackage creates a package with a generated stable id. Updates and
// deletes address that id, never a list index, so concurrent catalog edits
// cannot corrupt a neighbouring entry.
func (s *Service) AddPackage(ctx context.Context, serviceID int64, req CreatePackageRequest) (*domain.Package, error) {
	if strings.TrimSpace(req.Name) == "" || !domain.ValidPrice(req.Price) {
		return nil, ErrValidation
	}

	d, err := s.repo.GetDetailByServiceID(ctx, serviceID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	p := &domain.Package{
		ID:              uuid.NewString(),
		ServiceDetailID: d.ID,
		Name:            strings.TrimSpace(req.Name),
		Price:           strings.TrimSpace(req.Price),
		Features:        req.Features,
		Highlight:       req.Highlight,
		SortOrder:       req.SortOrder,
	}

	if err := s.repo.CreatePackage(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdatePackage(ctx context.Context, serviceID int64, packageID string, req UpdatePackageRequest) (*domain.Package, error) {
	d, err := s.repo.GetDetailByServiceID(ctx, serviceID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	p, err := s.repo.GetPackageByID(ctx, d.ID, packageID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		if !domain.ValidPrice(*req.Price) {
			return nil, ErrValidation
		}
		p.Price = strings.TrimSpace(*req.Price)
	}
	if req.Features != nil {
		p.Features = *req.Features
	}
	if req.Highlight != nil {
		p.Highlight = *req.Highlight
	}
	if req.SortOrder != nil {
		p.SortOrder = *req.SortOrder
	}

	if err := s.repo.UpdatePackage(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeletePackage(ctx context.Context, serviceID int64, packageID string) error {
	d, err := s.repo.GetDetailByServiceID(ctx, serviceID)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.repo.DeletePackage(ctx, d.ID, packageID); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// SQLite reports constraint failures as plain strings.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
