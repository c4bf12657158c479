package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
	"github.com/shopease/backend/internal/core/port/mock"
	"github.com/shopease/backend/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository)

func newTestService(t *testing.T, prepare prepareMocks) *service.Service {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	t.Cleanup(mockCtrl.Finish)

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	if prepare != nil {
		prepare(repo)
	}

	logger, _ := zap.NewProduction()
	s, err := service.NewService(repo, ts, logger)
	assert.NoError(t, err)
	return s
}

// placementRepo wires CreateOrder to run the reserve closure against the given
// product, the way the real repository does inside its transaction.
func placementRepo(product *domain.Product) prepareMocks {
	return func(repo *mock.MockRepository) {
		repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order, reserve port.ReserveStockFn) (*domain.Order, error) {
				if product == nil {
					return nil, domain.ErrDataNotFound
				}
				if err := reserve(product); err != nil {
					return nil, err
				}
				order.ID = 1
				return order, nil
			})
	}
}

func TestService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name     string
		product  *domain.Product
		quantity int
		expError error
		expStock int
	}{
		{
			name:     "stock reserved",
			product:  &domain.Product{ID: 7, Stock: 5, SellerEmail: "seller@example.com", Active: true},
			quantity: 2,
			expStock: 3,
		},
		{
			name:     "exact remaining stock",
			product:  &domain.Product{ID: 7, Stock: 2, SellerEmail: "seller@example.com", Active: true},
			quantity: 2,
			expStock: 0,
		},
		{
			name:     "insufficient stock",
			product:  &domain.Product{ID: 7, Stock: 1, SellerEmail: "seller@example.com", Active: true},
			quantity: 2,
			expError: domain.ErrInsufficientStock,
			expStock: 1,
		},
		{
			name:     "product not found",
			product:  nil,
			quantity: 1,
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, placementRepo(test.product))

			order, err := s.PlaceOrder(context.Background(), 7, test.quantity, "buyer@example.com")

			assert.ErrorIs(t, err, test.expError)
			if test.expError != nil {
				assert.Nil(t, order)
				if test.product != nil {
					assert.Equal(t, test.expStock, test.product.Stock)
				}
				return
			}

			assert.Equal(t, test.expStock, test.product.Stock)
			assert.Equal(t, domain.OrderStatusPlaced, order.Status)
			assert.Equal(t, "buyer@example.com", order.BuyerEmail)
			assert.Equal(t, "seller@example.com", order.SellerEmail)
			assert.Equal(t, test.quantity, order.Quantity)
		})
	}
}

func TestService_PlaceOrderBadQuantity(t *testing.T) {
	s := newTestService(t, nil)

	for _, quantity := range []int{0, -1} {
		order, err := s.PlaceOrder(context.Background(), 7, quantity, "buyer@example.com")
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.Nil(t, order)
	}
}

// transitionRepo wires UpdateOrderWithProduct to run the update closure
// against the given order and product under a simulated row lock.
func transitionRepo(order *domain.Order, product *domain.Product) prepareMocks {
	return func(repo *mock.MockRepository) {
		repo.EXPECT().UpdateOrderWithProduct(gomock.Any(), order.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint64, fn port.UpdateOrderFn) (*domain.Order, error) {
				if err := fn(order, product); err != nil {
					return nil, err
				}
				return order, nil
			}).AnyTimes()
	}
}

func TestService_UpdateOrderStatusOwned(t *testing.T) {
	tests := []struct {
		name      string
		from      domain.OrderStatus
		to        domain.OrderStatus
		seller    string
		expError  error
		expStock  int
		expStatus domain.OrderStatus
	}{
		{
			name:      "confirm placed",
			from:      domain.OrderStatusPlaced,
			to:        domain.OrderStatusConfirmed,
			seller:    "seller@example.com",
			expStock:  5,
			expStatus: domain.OrderStatusConfirmed,
		},
		{
			name:      "ship confirmed",
			from:      domain.OrderStatusConfirmed,
			to:        domain.OrderStatusShipped,
			seller:    "seller@example.com",
			expStock:  5,
			expStatus: domain.OrderStatusShipped,
		},
		{
			name:      "deliver shipped",
			from:      domain.OrderStatusShipped,
			to:        domain.OrderStatusDelivered,
			seller:    "seller@example.com",
			expStock:  5,
			expStatus: domain.OrderStatusDelivered,
		},
		{
			name:      "cancel placed restocks",
			from:      domain.OrderStatusPlaced,
			to:        domain.OrderStatusCancelled,
			seller:    "seller@example.com",
			expStock:  7,
			expStatus: domain.OrderStatusCancelled,
		},
		{
			name:      "cancel confirmed restocks",
			from:      domain.OrderStatusConfirmed,
			to:        domain.OrderStatusCancelled,
			seller:    "seller@example.com",
			expStock:  7,
			expStatus: domain.OrderStatusCancelled,
		},
		{
			name:      "skip confirmation",
			from:      domain.OrderStatusPlaced,
			to:        domain.OrderStatusShipped,
			seller:    "seller@example.com",
			expError:  domain.ErrInvalidStatusTransition,
			expStock:  5,
			expStatus: domain.OrderStatusPlaced,
		},
		{
			name:      "cancel shipped",
			from:      domain.OrderStatusShipped,
			to:        domain.OrderStatusCancelled,
			seller:    "seller@example.com",
			expError:  domain.ErrInvalidStatusTransition,
			expStock:  5,
			expStatus: domain.OrderStatusShipped,
		},
		{
			name:      "delivered is terminal",
			from:      domain.OrderStatusDelivered,
			to:        domain.OrderStatusCancelled,
			seller:    "seller@example.com",
			expError:  domain.ErrInvalidStatusTransition,
			expStock:  5,
			expStatus: domain.OrderStatusDelivered,
		},
		{
			name:      "foreign seller",
			from:      domain.OrderStatusPlaced,
			to:        domain.OrderStatusConfirmed,
			seller:    "other@example.com",
			expError:  domain.ErrForbidden,
			expStock:  5,
			expStatus: domain.OrderStatusPlaced,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			product := &domain.Product{ID: 7, Stock: 5, SellerEmail: "seller@example.com"}
			order := &domain.Order{ID: 1, Quantity: 2, Status: test.from, ProductID: 7,
				BuyerEmail: "buyer@example.com", SellerEmail: "seller@example.com"}
			s := newTestService(t, transitionRepo(order, product))

			result, err := s.UpdateOrderStatusOwned(context.Background(), order.ID, test.to, test.seller)

			assert.ErrorIs(t, err, test.expError)
			if test.expError == nil {
				assert.Equal(t, test.expStatus, result.Status)
			} else {
				assert.Nil(t, result)
			}
			assert.Equal(t, test.expStatus, order.Status)
			assert.Equal(t, test.expStock, product.Stock)
		})
	}
}

func TestService_SetOrderStatusAdmin(t *testing.T) {
	// Same rules as the seller path, minus the ownership check.
	product := &domain.Product{ID: 7, Stock: 5, SellerEmail: "seller@example.com"}
	order := &domain.Order{ID: 1, Quantity: 2, Status: domain.OrderStatusPlaced, ProductID: 7}
	s := newTestService(t, transitionRepo(order, product))

	result, err := s.SetOrderStatusAdmin(context.Background(), order.ID, domain.OrderStatusCancelled)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, result.Status)
	assert.Equal(t, 7, product.Stock)

	// Terminal now, even for an admin.
	result, err = s.SetOrderStatusAdmin(context.Background(), order.ID, domain.OrderStatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	assert.Nil(t, result)
	assert.Equal(t, 7, product.Stock)
}

func TestService_CancelOrderByBuyer(t *testing.T) {
	tests := []struct {
		name      string
		from      domain.OrderStatus
		buyer     string
		expError  error
		expStock  int
		expStatus domain.OrderStatus
	}{
		{
			name:      "cancel placed",
			from:      domain.OrderStatusPlaced,
			buyer:     "buyer@example.com",
			expStock:  7,
			expStatus: domain.OrderStatusCancelled,
		},
		{
			name:      "cancel confirmed",
			from:      domain.OrderStatusConfirmed,
			buyer:     "buyer@example.com",
			expStock:  7,
			expStatus: domain.OrderStatusCancelled,
		},
		{
			name:      "shipped too late",
			from:      domain.OrderStatusShipped,
			buyer:     "buyer@example.com",
			expError:  domain.ErrOrderNotCancellable,
			expStock:  5,
			expStatus: domain.OrderStatusShipped,
		},
		{
			name:      "delivered too late",
			from:      domain.OrderStatusDelivered,
			buyer:     "buyer@example.com",
			expError:  domain.ErrOrderNotCancellable,
			expStock:  5,
			expStatus: domain.OrderStatusDelivered,
		},
		{
			name:      "foreign buyer",
			from:      domain.OrderStatusPlaced,
			buyer:     "other@example.com",
			expError:  domain.ErrForbidden,
			expStock:  5,
			expStatus: domain.OrderStatusPlaced,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			product := &domain.Product{ID: 7, Stock: 5, SellerEmail: "seller@example.com"}
			order := &domain.Order{ID: 1, Quantity: 2, Status: test.from, ProductID: 7,
				BuyerEmail: "buyer@example.com"}
			s := newTestService(t, transitionRepo(order, product))

			result, err := s.CancelOrderByBuyer(context.Background(), order.ID, test.buyer)

			assert.ErrorIs(t, err, test.expError)
			if test.expError == nil {
				assert.Equal(t, domain.OrderStatusCancelled, result.Status)
			}
			assert.Equal(t, test.expStatus, order.Status)
			assert.Equal(t, test.expStock, product.Stock)
		})
	}
}

func TestService_CancelOrderTwice(t *testing.T) {
	// The second cancellation re-reads the status under the row lock, sees
	// CANCELLED and is rejected, so the stock is returned exactly once.
	product := &domain.Product{ID: 7, Stock: 5, SellerEmail: "seller@example.com"}
	order := &domain.Order{ID: 1, Quantity: 2, Status: domain.OrderStatusPlaced, ProductID: 7,
		BuyerEmail: "buyer@example.com"}
	s := newTestService(t, transitionRepo(order, product))

	result, err := s.CancelOrderByBuyer(context.Background(), order.ID, "buyer@example.com")
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, result.Status)
	assert.Equal(t, 7, product.Stock)

	result, err = s.CancelOrderByBuyer(context.Background(), order.ID, "buyer@example.com")
	assert.ErrorIs(t, err, domain.ErrOrderNotCancellable)
	assert.Nil(t, result)
	assert.Equal(t, 7, product.Stock)
}

func TestService_OrderLifecycle(t *testing.T) {
	// Place, confirm, ship, deliver. Stock goes down once at placement and
	// never comes back on the happy path.
	product := &domain.Product{ID: 7, Stock: 5, SellerEmail: "seller@example.com", Active: true}

	s := newTestService(t, func(repo *mock.MockRepository) {
		var stored *domain.Order
		repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order, reserve port.ReserveStockFn) (*domain.Order, error) {
				if err := reserve(product); err != nil {
					return nil, err
				}
				order.ID = 1
				stored = order
				return order, nil
			})
		repo.EXPECT().UpdateOrderWithProduct(gomock.Any(), uint64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint64, fn port.UpdateOrderFn) (*domain.Order, error) {
				if err := fn(stored, product); err != nil {
					return nil, err
				}
				return stored, nil
			}).Times(3)
	})

	order, err := s.PlaceOrder(context.Background(), 7, 3, "buyer@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 2, product.Stock)

	for _, next := range []domain.OrderStatus{
		domain.OrderStatusConfirmed,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
	} {
		order, err = s.UpdateOrderStatusOwned(context.Background(), 1, next, "seller@example.com")
		assert.NoError(t, err)
		assert.Equal(t, next, order.Status)
	}

	assert.Equal(t, 2, product.Stock)
}
