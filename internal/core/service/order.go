package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopease/backend/internal/core/domain"
	"go.uber.org/zap"
)

// PlaceOrder reserves stock and creates the order in one atomic unit.
// The reserve closure runs with the product row locked, so two concurrent
// placements cannot both pass the stock check against a stale value.
func (s *Service) PlaceOrder(ctx context.Context, productID uint64, quantity int, buyerEmail string) (*domain.Order, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	order := &domain.Order{
		ProductID:  productID,
		Quantity:   quantity,
		BuyerEmail: buyerEmail,
		Status:     domain.OrderStatusPlaced,
		OrderDate:  time.Now(),
	}

	newOrder, err := s.repo.CreateOrder(ctx, order, func(product *domain.Product) error {
		if product.Stock < quantity {
			return domain.ErrInsufficientStock
		}
		product.Stock -= quantity
		order.SellerEmail = product.SellerEmail
		order.Product = product
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) && !errors.Is(err, domain.ErrInsufficientStock) {
			s.logger.Error("Place order", zap.Error(err))
		}
		return nil, err
	}

	return newOrder, nil
}

// UpdateOrderStatusOwned advances an order's status on behalf of the seller
// owning the order's product.
func (s *Service) UpdateOrderStatusOwned(ctx context.Context, orderID uint64, next domain.OrderStatus, sellerEmail string) (*domain.Order, error) {
	return s.applyTransition(ctx, orderID, next, func(order *domain.Order, product *domain.Product) error {
		if product.SellerEmail != sellerEmail {
			return domain.ErrForbidden
		}
		return nil
	})
}

// SetOrderStatusAdmin applies the same transition and restock rules with no
// ownership check.
func (s *Service) SetOrderStatusAdmin(ctx context.Context, orderID uint64, next domain.OrderStatus) (*domain.Order, error) {
	return s.applyTransition(ctx, orderID, next, nil)
}

// applyTransition is the shared status-change path. The closure runs with the
// order and product rows locked: the current status is re-read under the lock,
// so a concurrent transition on the same order is rejected rather than
// applied twice.
func (s *Service) applyTransition(ctx context.Context, orderID uint64, next domain.OrderStatus,
	guard func(*domain.Order, *domain.Product) error) (*domain.Order, error) {
	order, err := s.repo.UpdateOrderWithProduct(ctx, orderID, func(order *domain.Order, product *domain.Product) error {
		if guard != nil {
			if err := guard(order, product); err != nil {
				return err
			}
		}
		if !domain.CanTransition(order.Status, next) {
			return domain.ErrInvalidStatusTransition
		}
		if next == domain.OrderStatusCancelled && domain.CanCancel(order.Status) {
			product.Stock += order.Quantity
		}
		order.Status = next
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) && !errors.Is(err, domain.ErrForbidden) &&
			!errors.Is(err, domain.ErrInvalidStatusTransition) {
			s.logger.Error("Update order status", zap.Uint64("order", orderID), zap.Error(err))
		}
		return nil, err
	}
	return order, nil
}

// CancelOrderByBuyer cancels the buyer's own order while it is still in a
// pre-fulfillment status, returning the reserved stock to the product.
func (s *Service) CancelOrderByBuyer(ctx context.Context, orderID uint64, buyerEmail string) (*domain.Order, error) {
	order, err := s.repo.UpdateOrderWithProduct(ctx, orderID, func(order *domain.Order, product *domain.Product) error {
		if order.BuyerEmail != buyerEmail {
			return domain.ErrForbidden
		}
		if !domain.CanCancel(order.Status) {
			return domain.ErrOrderNotCancellable
		}
		product.Stock += order.Quantity
		order.Status = domain.OrderStatusCancelled
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) && !errors.Is(err, domain.ErrForbidden) &&
			!errors.Is(err, domain.ErrOrderNotCancellable) {
			s.logger.Error("Cancel order", zap.Uint64("order", orderID), zap.Error(err))
		}
		return nil, err
	}
	return order, nil
}

func (s *Service) GetOrdersByBuyer(ctx context.Context, buyerEmail string) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByBuyer(ctx, buyerEmail)
	if err != nil {
		s.logger.Error("List orders for buyer", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) GetOrdersBySeller(ctx context.Context, sellerEmail string, statuses []domain.OrderStatus) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersBySeller(ctx, sellerEmail, statuses)
	if err != nil {
		s.logger.Error("List orders for seller", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) ListOrdersAdmin(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	return s.repo.ListOrders(ctx, status)
}

func (s *Service) GetOrderAdmin(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, orderID)
}

// DeleteOrderAdmin physically removes an order. This is an escape hatch
// outside the state machine: it does not restock.
func (s *Service) DeleteOrderAdmin(ctx context.Context, orderID uint64) error {
	return s.repo.DeleteOrder(ctx, orderID)
}
