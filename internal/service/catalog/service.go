package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-StorefrontService/internal/service/catalog/models"
)

// Service сервис для чтения каталога товаров витрины
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает краткие карточки всех товаров каталога
func (s *Service) List(ctx context.Context) ([]models.ProductSummary, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: load catalog: %v", ErrInternal, err)
	}

	summaries := make([]models.ProductSummary, len(products))
	for i, p := range products {
		summaries[i] = models.FromDomainSummary(p)
	}

	s.logger.Info("List: returned %d products", len(summaries))
	return summaries, nil
}

// GetBySlug возвращает полную карточку товара по slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.ProductResponse, error) {
	product, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			s.logger.Warn("GetBySlug: product %s not found", slug)
			return nil, ErrProductNotFound
		}
		s.logger.Error("GetBySlug: failed to load product %s: %v", slug, err)
		return nil, fmt.Errorf("%w: load product: %v", ErrInternal, err)
	}
	return models.FromDomain(product), nil
}
