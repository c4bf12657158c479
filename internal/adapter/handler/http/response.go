package http

import (
	"time"

	"github.com/govalues/decimal"
	"github.com/shopease/backend/internal/core/domain"
)

type UserResponse struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}
}

type ProductResponse struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	SellerEmail string          `json:"sellerEmail"`
	Active      bool            `json:"active"`
}

func newProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		SellerEmail: product.SellerEmail,
		Active:      product.Active,
	}
}

func newProductListResponse(list []*domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(list))
	for _, product := range list {
		result = append(result, newProductResponse(product))
	}
	return result
}

type OrderResponse struct {
	ID          uint64           `json:"id"`
	BuyerEmail  string           `json:"buyerEmail"`
	SellerEmail string           `json:"sellerEmail"`
	Quantity    int              `json:"quantity"`
	Status      string           `json:"status"`
	OrderDate   time.Time        `json:"orderDate"`
	Product     *ProductResponse `json:"product,omitempty"`
}

func newOrderResponse(order *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:          order.ID,
		BuyerEmail:  order.BuyerEmail,
		SellerEmail: order.SellerEmail,
		Quantity:    order.Quantity,
		Status:      string(order.Status),
		OrderDate:   order.OrderDate,
	}
	if order.Product != nil {
		product := newProductResponse(order.Product)
		resp.Product = &product
	}
	return resp
}

func newOrderListResponse(list []*domain.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResponse(order))
	}
	return result
}

type CartItemResponse struct {
	ID       uint64           `json:"id"`
	Quantity int              `json:"quantity"`
	Product  *ProductResponse `json:"product,omitempty"`
}

type WishlistItemResponse struct {
	ID      uint64           `json:"id"`
	Product *ProductResponse `json:"product,omitempty"`
}

type ContactReplyResponse struct {
	ID             uint64    `json:"id"`
	Body           string    `json:"body"`
	ResponderEmail string    `json:"responderEmail"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ContactMessageResponse struct {
	ID        uint64                 `json:"id"`
	UserEmail string                 `json:"userEmail"`
	Name      string                 `json:"name"`
	Subject   string                 `json:"subject"`
	Message   string                 `json:"message"`
	Status    string                 `json:"status"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
	Replies   []ContactReplyResponse `json:"replies,omitempty"`
}

func newContactMessageResponse(ticket *domain.ContactMessage) ContactMessageResponse {
	resp := ContactMessageResponse{
		ID:        ticket.ID,
		UserEmail: ticket.UserEmail,
		Name:      ticket.Name,
		Subject:   ticket.Subject,
		Message:   ticket.Message,
		Status:    string(ticket.Status),
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
	for _, reply := range ticket.Replies {
		resp.Replies = append(resp.Replies, ContactReplyResponse{
			ID:             reply.ID,
			Body:           reply.Body,
			ResponderEmail: reply.ResponderEmail,
			CreatedAt:      reply.CreatedAt,
		})
	}
	return resp
}
