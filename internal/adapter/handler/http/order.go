package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type placeOrderRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func (oh *OrderHandler) PlaceOrder(ctx *gin.Context) {
	buyerEmail := getAuthPayload(ctx).Email

	var req placeOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.PlaceOrder(ctx, req.ProductID, req.Quantity, buyerEmail)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) ListBuyerOrders(ctx *gin.Context) {
	buyerEmail := getAuthPayload(ctx).Email

	list, err := oh.service.GetOrdersByBuyer(ctx, buyerEmail)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderListResponse(list))
}

func (oh *OrderHandler) ListSellerOrders(ctx *gin.Context) {
	sellerEmail := getAuthPayload(ctx).Email

	var statuses []domain.OrderStatus
	for _, s := range ctx.QueryArray("status") {
		statuses = append(statuses, domain.OrderStatus(s))
	}

	list, err := oh.service.GetOrdersBySeller(ctx, sellerEmail, statuses)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderListResponse(list))
}

func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	sellerEmail := getAuthPayload(ctx).Email

	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	next := domain.OrderStatus(ctx.Query("status"))
	if next == "" {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.UpdateOrderStatusOwned(ctx, orderID, next, sellerEmail)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	buyerEmail := getAuthPayload(ctx).Email

	orderID, err := parseIDParam(ctx, "id")
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.CancelOrderByBuyer(ctx, orderID, buyerEmail)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}
