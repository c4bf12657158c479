package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
	"go.uber.org/zap"
)

type CartHandler struct {
	Handler
	service port.Service
}

func NewCartHandler(service port.Service, logger *zap.Logger) (*CartHandler, error) {
	return &CartHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (ch *CartHandler) GetCart(ctx *gin.Context) {
	buyerEmail := getAuthPayload(ctx).Email

	list, err := ch.service.GetCartByBuyer(ctx, buyerEmail)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]CartItemResponse, 0, len(list))
	for _, item := range list {
		resp := CartItemResponse{ID: item.ID, Quantity: item.Quantity}
		if item.Product != nil {
			product := newProductResponse(item.Product)
			resp.Product = &product
		}
		result = append(result, resp)
	}
	ch.handleSuccess(ctx, result)
}

type cartItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (ch *CartHandler) AddCartItem(ctx *gin.Context) {
	buyerEmail := getAuthPayload(ctx).Email

	var req cartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	item := &domain.CartItem{
		BuyerEmail: buyerEmail,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	}

	newItem, err := ch.service.AddCartItem(ctx, item)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccessWithStatus(ctx, gin.H{"id": newItem.ID}, http.StatusCreated)
}

func (ch *CartHandler) RemoveCartItem(ctx *gin.Context) {
	buyerEmail := getAuthPayload(ctx).Email

	productID, err := parseIDParam(ctx, "productId")
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err = ch.service.RemoveCartItem(ctx, buyerEmail, productID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (ch *CartHandler) GetWishlist(ctx *gin.Context) {
	buyerEmail := getAuthPayload(ctx).Email

	list, err := ch.service.GetWishlistByBuyer(ctx, buyerEmail)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]WishlistItemResponse, 0, len(list))
	for _, item := range list {
		resp := WishlistItemResponse{ID: item.ID}
		if item.Product != nil {
			product := newProductResponse(item.Product)
			resp.Product = &product
		}
		result = append(result, resp)
	}
	ch.handleSuccess(ctx, result)
}

type wishlistItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
}

func (ch *CartHandler) AddWishlistItem(ctx *gin.Context) {
	buyerEmail := getAuthPayload(ctx).Email

	var req wishlistItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	item := &domain.WishlistItem{
		BuyerEmail: buyerEmail,
		ProductID:  req.ProductID,
	}

	newItem, err := ch.service.AddWishlistItem(ctx, item)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccessWithStatus(ctx, gin.H{"id": newItem.ID}, http.StatusCreated)
}

func (ch *CartHandler) RemoveWishlistItem(ctx *gin.Context) {
	buyerEmail := getAuthPayload(ctx).Email

	productID, err := parseIDParam(ctx, "productId")
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err = ch.service.RemoveWishlistItem(ctx, buyerEmail, productID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
