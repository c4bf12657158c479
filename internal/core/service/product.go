package service

import (
	"context"
	"strings"

	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
	"go.uber.org/zap"
)

func normalizeSort(sortBy, order string) (string, bool) {
	switch strings.ToLower(sortBy) {
	case "price", "stock", "category":
		sortBy = strings.ToLower(sortBy)
	default:
		sortBy = "name"
	}
	return sortBy, strings.EqualFold(order, "desc")
}

func normalizeCategory(category string) string {
	if strings.EqualFold(category, "ALL") {
		return ""
	}
	return category
}

// SearchPublicProducts lists active products visible in the storefront.
func (s *Service) SearchPublicProducts(ctx context.Context, query, category, sortBy, order string) ([]*domain.Product, error) {
	by, desc := normalizeSort(sortBy, order)
	return s.repo.ListProducts(ctx, port.ProductFilter{
		Query:      query,
		Category:   normalizeCategory(category),
		ActiveOnly: true,
		SortBy:     by,
		SortDesc:   desc,
	})
}

// SearchSellerProducts lists the seller's own products, inactive included.
func (s *Service) SearchSellerProducts(ctx context.Context, sellerEmail, query, category, sortBy, order string) ([]*domain.Product, error) {
	by, desc := normalizeSort(sortBy, order)
	return s.repo.ListProducts(ctx, port.ProductFilter{
		SellerEmail: sellerEmail,
		Query:       query,
		Category:    normalizeCategory(category),
		SortBy:      by,
		SortDesc:    desc,
	})
}

func (s *Service) GetProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	return s.repo.ReadProduct(ctx, productID)
}

func (s *Service) AddProduct(ctx context.Context, product *domain.Product, sellerEmail string) (*domain.Product, error) {
	product.SellerEmail = sellerEmail
	product.Active = true

	newProduct, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		s.logger.Error("Create product", zap.Error(err))
		return nil, err
	}
	return newProduct, nil
}

func applyPatch(existing *domain.Product, patch *domain.ProductPatch) {
	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Price != nil {
		existing.Price = *patch.Price
	}
	if patch.Stock != nil {
		existing.Stock = *patch.Stock
	}
	if patch.Category != nil {
		existing.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		existing.ImageURL = *patch.ImageURL
	}
	if patch.Active != nil {
		existing.Active = *patch.Active
	}
}

func (s *Service) UpdateProductOwned(ctx context.Context, productID uint64, patch *domain.ProductPatch, sellerEmail string) (*domain.Product, error) {
	existing, err := s.repo.ReadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(existing.SellerEmail, sellerEmail) {
		return nil, domain.ErrForbidden
	}

	applyPatch(existing, patch)
	return s.repo.UpdateProduct(ctx, existing)
}

func (s *Service) DeleteProductOwned(ctx context.Context, productID uint64, sellerEmail string) error {
	existing, err := s.repo.ReadProduct(ctx, productID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(existing.SellerEmail, sellerEmail) {
		return domain.ErrForbidden
	}
	return s.repo.DeleteProduct(ctx, productID)
}

func (s *Service) ListProductsAdmin(ctx context.Context, query, category string) ([]*domain.Product, error) {
	return s.repo.ListProducts(ctx, port.ProductFilter{
		Query:    query,
		Category: normalizeCategory(category),
		SortBy:   "name",
	})
}

func (s *Service) UpdateProductAdmin(ctx context.Context, productID uint64, patch *domain.ProductPatch) (*domain.Product, error) {
	existing, err := s.repo.ReadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	applyPatch(existing, patch)
	return s.repo.UpdateProduct(ctx, existing)
}

func (s *Service) SetProductActiveAdmin(ctx context.Context, productID uint64, active bool) (*domain.Product, error) {
	existing, err := s.repo.ReadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	existing.Active = active
	return s.repo.UpdateProduct(ctx, existing)
}

func (s *Service) DeleteProductAdmin(ctx context.Context, productID uint64) error {
	return s.repo.DeleteProduct(ctx, productID)
}
