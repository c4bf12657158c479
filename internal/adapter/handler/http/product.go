package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Handler
	service port.Service
}

func NewProductHandler(service port.Service, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (ph *ProductHandler) SearchPublic(ctx *gin.Context) {
	list, err := ph.service.SearchPublicProducts(ctx,
		ctx.Query("q"), ctx.Query("category"), ctx.Query("sortBy"), ctx.Query("order"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newProductListResponse(list))
}

func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	productID, err := parseIDParam(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	product, err := ph.service.GetProduct(ctx, productID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newProductResponse(product))
}

func (ph *ProductHandler) SearchMine(ctx *gin.Context) {
	sellerEmail := getAuthPayload(ctx).Email

	list, err := ph.service.SearchSellerProducts(ctx, sellerEmail,
		ctx.Query("q"), ctx.Query("category"), ctx.Query("sortBy"), ctx.Query("order"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newProductListResponse(list))
}

type productRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

func (ph *ProductHandler) AddProduct(ctx *gin.Context) {
	sellerEmail := getAuthPayload(ctx).Email

	var req productRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	price := decimal.Zero
	if req.Price != "" {
		var err error
		price, err = decimal.Parse(req.Price)
		if err != nil {
			ph.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
	}

	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}

	newProduct, err := ph.service.AddProduct(ctx, product, sellerEmail)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccessWithStatus(ctx, newProductResponse(newProduct), http.StatusCreated)
}

type productPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Stock       *int    `json:"stock"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	Active      *bool   `json:"active"`
}

func (r *productPatchRequest) toPatch() (*domain.ProductPatch, error) {
	patch := &domain.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Stock:       r.Stock,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Active:      r.Active,
	}
	if r.Price != nil {
		price, err := decimal.Parse(*r.Price)
		if err != nil {
			return nil, domain.ErrBadRequest
		}
		patch.Price = &price
	}
	return patch, nil
}

func (ph *ProductHandler) UpdateProduct(ctx *gin.Context) {
	sellerEmail := getAuthPayload(ctx).Email

	productID, err := parseIDParam(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	var req productPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	product, err := ph.service.UpdateProductOwned(ctx, productID, patch, sellerEmail)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccess(ctx, newProductResponse(product))
}

func (ph *ProductHandler) DeleteProduct(ctx *gin.Context) {
	sellerEmail := getAuthPayload(ctx).Email

	productID, err := parseIDParam(ctx, "id")
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err = ph.service.DeleteProductOwned(ctx, productID, sellerEmail)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}
	ph.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
