package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
	"github.com/shopease/backend/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
)

func TestService_AddProduct(t *testing.T) {
	price := decimal.MustParse("19.99")
	product := domain.Product{Name: "Mug", Price: price, Stock: 10, Category: "Home"}

	s := newTestService(t, func(repo *mock.MockRepository) {
		repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Product) (*domain.Product, error) {
				assert.Equal(t, "seller@example.com", p.SellerEmail)
				assert.True(t, p.Active)
				p.ID = 7
				return p, nil
			})
	})

	result, err := s.AddProduct(context.Background(), &product, "seller@example.com")
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), result.ID)
	assert.Equal(t, "seller@example.com", result.SellerEmail)
}

func TestService_UpdateProductOwned(t *testing.T) {
	price := decimal.MustParse("10.00")
	newPrice := decimal.MustParse("12.50")
	newStock := 3

	tests := []struct {
		name     string
		seller   string
		patch    domain.ProductPatch
		mock     prepareMocks
		expError error
	}{
		{
			name:   "patch own product",
			seller: "seller@example.com",
			patch:  domain.ProductPatch{Price: &newPrice, Stock: &newStock},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(7)).
					Return(&domain.Product{ID: 7, Name: "Mug", Price: price, Stock: 10,
						SellerEmail: "seller@example.com", Active: true}, nil)
				repo.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Product) (*domain.Product, error) {
						assert.Equal(t, newPrice, p.Price)
						assert.Equal(t, newStock, p.Stock)
						assert.Equal(t, "Mug", p.Name)
						return p, nil
					})
			},
		},
		{
			name:   "foreign product",
			seller: "other@example.com",
			patch:  domain.ProductPatch{Price: &newPrice},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(7)).
					Return(&domain.Product{ID: 7, SellerEmail: "seller@example.com"}, nil)
			},
			expError: domain.ErrForbidden,
		},
		{
			name:   "missing product",
			seller: "seller@example.com",
			patch:  domain.ProductPatch{Price: &newPrice},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadProduct(gomock.Any(), uint64(7)).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, test.mock)

			result, err := s.UpdateProductOwned(context.Background(), 7, &test.patch, test.seller)

			assert.ErrorIs(t, err, test.expError)
			if test.expError != nil {
				assert.Nil(t, result)
			}
		})
	}
}

func TestService_SearchPublicProducts(t *testing.T) {
	s := newTestService(t, func(repo *mock.MockRepository) {
		repo.EXPECT().ListProducts(gomock.Any(), port.ProductFilter{
			Query:      "mug",
			ActiveOnly: true,
			SortBy:     "price",
			SortDesc:   true,
		}).Return([]*domain.Product{}, nil)
	})

	// Category ALL means no category filter, unknown sort keys fall back to name.
	_, err := s.SearchPublicProducts(context.Background(), "mug", "ALL", "Price", "DESC")
	assert.NoError(t, err)
}
