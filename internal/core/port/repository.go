package port

import (
	"context"

	"github.com/shopease/backend/internal/core/domain"
)

// ReserveStockFn runs inside the placement transaction with the product row
// locked. It checks and decrements stock; returning an error rolls the whole
// placement back.
type ReserveStockFn func(product *domain.Product) error

// UpdateOrderFn runs inside a status-change transaction with both the order
// and its product row locked. Mutations to either entity are persisted
// together on return; an error rolls both back.
type UpdateOrderFn func(order *domain.Order, product *domain.Product) error

// ProductFilter narrows product listings. An empty field means no filter;
// Category "ALL" is treated as empty.
type ProductFilter struct {
	SellerEmail string
	Query       string
	Category    string
	ActiveOnly  bool
	SortBy      string
	SortDesc    bool
}

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, emailQuery string) ([]*domain.User, error)
	UpdateUserRole(ctx context.Context, userID uint64, role domain.UserRole) error
	DeleteUser(ctx context.Context, userID uint64) error

	// Product
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	ReadProduct(ctx context.Context, productID uint64) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID uint64) error
	ListProducts(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)

	// Order
	CreateOrder(ctx context.Context, order *domain.Order, reserve ReserveStockFn) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	UpdateOrderWithProduct(ctx context.Context, orderID uint64, fn UpdateOrderFn) (*domain.Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerEmail string) ([]*domain.Order, error)
	ListOrdersBySeller(ctx context.Context, sellerEmail string, statuses []domain.OrderStatus) ([]*domain.Order, error)
	ListOrders(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uint64) error

	// Cart
	ListCartByBuyer(ctx context.Context, buyerEmail string) ([]*domain.CartItem, error)
	AddCartItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	RemoveCartItem(ctx context.Context, buyerEmail string, productID uint64) error

	// Wishlist
	ListWishlistByBuyer(ctx context.Context, buyerEmail string) ([]*domain.WishlistItem, error)
	AddWishlistItem(ctx context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error)
	RemoveWishlistItem(ctx context.Context, buyerEmail string, productID uint64) error

	// Contact
	CreateTicket(ctx context.Context, message *domain.ContactMessage) (*domain.ContactMessage, error)
	ReadTicket(ctx context.Context, ticketID uint64) (*domain.ContactMessage, error)
	ListTicketsByUser(ctx context.Context, userEmail string) ([]*domain.ContactMessage, error)
	ListTickets(ctx context.Context, status domain.TicketStatus) ([]*domain.ContactMessage, error)
	AddTicketReply(ctx context.Context, reply *domain.ContactReply) error
	DeleteTicket(ctx context.Context, ticketID uint64) error

	// Stats
	ReadAdminStats(ctx context.Context) (*domain.AdminStats, error)
}
