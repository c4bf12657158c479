package service

import (
	"context"

	"github.com/shopease/backend/internal/core/domain"
)

func (s *Service) GetCartByBuyer(ctx context.Context, buyerEmail string) ([]*domain.CartItem, error) {
	return s.repo.ListCartByBuyer(ctx, buyerEmail)
}

func (s *Service) AddCartItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	return s.repo.AddCartItem(ctx, item)
}

func (s *Service) RemoveCartItem(ctx context.Context, buyerEmail string, productID uint64) error {
	return s.repo.RemoveCartItem(ctx, buyerEmail, productID)
}

func (s *Service) GetWishlistByBuyer(ctx context.Context, buyerEmail string) ([]*domain.WishlistItem, error) {
	return s.repo.ListWishlistByBuyer(ctx, buyerEmail)
}

func (s *Service) AddWishlistItem(ctx context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error) {
	return s.repo.AddWishlistItem(ctx, item)
}

func (s *Service) RemoveWishlistItem(ctx context.Context, buyerEmail string, productID uint64) error {
	return s.repo.RemoveWishlistItem(ctx, buyerEmail, productID)
}
