package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
	"go.uber.org/zap"
)

type AdminHandler struct {
	Handler
	service port.Service
}

func NewAdminHandler(service port.Service, logger *zap.Logger) (*AdminHandler, error) {
	return &AdminHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (ah *AdminHandler) GetStats(ctx *gin.Context) {
	stats, err := ah.service.GetAdminStats(ctx)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, gin.H{
		"users":         stats.Users,
		"products":      stats.Products,
		"ordersPending": stats.OrdersPending,
		"ticketsOpen":   stats.TicketsOpen,
	})
}

func (ah *AdminHandler) ListOrders(ctx *gin.Context) {
	list, err := ah.service.ListOrdersAdmin(ctx, domain.OrderStatus(ctx.Query("status")))
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	ah.handleSuccess(ctx, newOrderListResponse(list))
}

func (ah *AdminHandler) GetOrder(ctx *gin.Context) {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := ah.service.GetOrderAdmin(ctx, orderID)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	ah.handleSuccess(ctx, newOrderResponse(order))
}

func (ah *AdminHandler) SetOrderStatus(ctx *gin.Context) {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	next := domain.OrderStatus(ctx.Query("status"))
	if next == "" {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := ah.service.SetOrderStatusAdmin(ctx, orderID, next)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	ah.handleSuccess(ctx, newOrderResponse(order))
}

func (ah *AdminHandler) DeleteOrder(ctx *gin.Context) {
	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err = ah.service.DeleteOrderAdmin(ctx, orderID)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	ah.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (ah *AdminHandler) ListProducts(ctx *gin.Context) {
	list, err := ah.service.ListProductsAdmin(ctx, ctx.Query("q"), ctx.Query("category"))
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	ah.handleSuccess(ctx, newProductListResponse(list))
}

func (ah *AdminHandler) UpdateProduct(ctx *gin.Context) {
	productID, err := parseIDParam(ctx, "id")
	if err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	var req productPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	product, err := ah.service.UpdateProductAdmin(ctx, productID, patch)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	ah.handleSuccess(ctx, newProductResponse(product))
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (ah *AdminHandler) SetProductActive(ctx *gin.Context) {
	productID, err := parseIDParam(ctx, "id")
	if err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	var req setActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	product, err := ah.service.SetProductActiveAdmin(ctx, productID, *req.Active)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	ah.handleSuccess(ctx, newProductResponse(product))
}

func (ah *AdminHandler) DeleteProduct(ctx *gin.Context) {
	productID, err := parseIDParam(ctx, "id")
	if err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err = ah.service.DeleteProductAdmin(ctx, productID)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}
	ah.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
