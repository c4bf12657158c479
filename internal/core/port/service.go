package port

import (
	"context"

	"github.com/shopease/backend/internal/core/domain"
)

type Service interface {
	// Accounts
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, email string, password string) (string, *domain.User, error)
	ListUsers(ctx context.Context, emailQuery string) ([]*domain.User, error)
	ChangeUserRole(ctx context.Context, userID uint64, role domain.UserRole) error
	DeleteUser(ctx context.Context, userID uint64) error

	// Catalog
	SearchPublicProducts(ctx context.Context, query, category, sortBy, order string) ([]*domain.Product, error)
	SearchSellerProducts(ctx context.Context, sellerEmail, query, category, sortBy, order string) ([]*domain.Product, error)
	GetProduct(ctx context.Context, productID uint64) (*domain.Product, error)
	AddProduct(ctx context.Context, product *domain.Product, sellerEmail string) (*domain.Product, error)
	UpdateProductOwned(ctx context.Context, productID uint64, patch *domain.ProductPatch, sellerEmail string) (*domain.Product, error)
	DeleteProductOwned(ctx context.Context, productID uint64, sellerEmail string) error
	ListProductsAdmin(ctx context.Context, query, category string) ([]*domain.Product, error)
	UpdateProductAdmin(ctx context.Context, productID uint64, patch *domain.ProductPatch) (*domain.Product, error)
	SetProductActiveAdmin(ctx context.Context, productID uint64, active bool) (*domain.Product, error)
	DeleteProductAdmin(ctx context.Context, productID uint64) error

	// Orders
	PlaceOrder(ctx context.Context, productID uint64, quantity int, buyerEmail string) (*domain.Order, error)
	UpdateOrderStatusOwned(ctx context.Context, orderID uint64, next domain.OrderStatus, sellerEmail string) (*domain.Order, error)
	CancelOrderByBuyer(ctx context.Context, orderID uint64, buyerEmail string) (*domain.Order, error)
	SetOrderStatusAdmin(ctx context.Context, orderID uint64, next domain.OrderStatus) (*domain.Order, error)
	GetOrdersByBuyer(ctx context.Context, buyerEmail string) ([]*domain.Order, error)
	GetOrdersBySeller(ctx context.Context, sellerEmail string, statuses []domain.OrderStatus) ([]*domain.Order, error)
	ListOrdersAdmin(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	GetOrderAdmin(ctx context.Context, orderID uint64) (*domain.Order, error)
	DeleteOrderAdmin(ctx context.Context, orderID uint64) error

	// Cart
	GetCartByBuyer(ctx context.Context, buyerEmail string) ([]*domain.CartItem, error)
	AddCartItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	RemoveCartItem(ctx context.Context, buyerEmail string, productID uint64) error

	// Wishlist
	GetWishlistByBuyer(ctx context.Context, buyerEmail string) ([]*domain.WishlistItem, error)
	AddWishlistItem(ctx context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error)
	RemoveWishlistItem(ctx context.Context, buyerEmail string, productID uint64) error

	// Contact
	CreateTicket(ctx context.Context, name, email, subject, body, authEmail string) (*domain.ContactMessage, error)
	ListMyTickets(ctx context.Context, userEmail string) ([]*domain.ContactMessage, error)
	GetTicketForUser(ctx context.Context, ticketID uint64, userEmail string) (*domain.ContactMessage, error)
	ListTicketsAdmin(ctx context.Context, status domain.TicketStatus) ([]*domain.ContactMessage, error)
	GetTicketAdmin(ctx context.Context, ticketID uint64) (*domain.ContactMessage, error)
	ReplyTicketAdmin(ctx context.Context, ticketID uint64, body, adminEmail string) error
	DeleteTicketAdmin(ctx context.Context, ticketID uint64) error

	// Admin dashboard
	GetAdminStats(ctx context.Context) (*domain.AdminStats, error)
}
