package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shopease/backend/internal/adapter/config"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	uploads *config.Uploads,
	tokenService port.TokenService,
	userHandler *UserHandler,
	productHandler *ProductHandler,
	orderHandler *OrderHandler,
	cartHandler *CartHandler,
	contactHandler *ContactHandler,
	adminHandler *AdminHandler,
	uploadHandler *UploadHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded product images
	router.Static("/uploads", uploads.Dir)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", userHandler.RegisterUser)
			auth.POST("/login", userHandler.LoginUser)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.SearchPublic)

			mine := products.Group("", authCheck(tokenService), requireRole(domain.RoleSeller))
			{
				mine.GET("/mine", productHandler.SearchMine)
				mine.POST("", productHandler.AddProduct)
				mine.PUT("/:id", productHandler.UpdateProduct)
				mine.DELETE("/:id", productHandler.DeleteProduct)
			}

			products.GET("/:id", productHandler.GetProduct)
		}

		orders := api.Group("/orders", authCheck(tokenService))
		{
			buyer := orders.Group("", requireRole(domain.RoleBuyer))
			{
				buyer.GET("/buyer/me", orderHandler.ListBuyerOrders)
				buyer.POST("", orderHandler.PlaceOrder)
				buyer.PUT("/:id/cancel", orderHandler.CancelOrder)
			}

			seller := orders.Group("", requireRole(domain.RoleSeller))
			{
				seller.GET("/seller/me", orderHandler.ListSellerOrders)
				seller.PUT("/:id/status", orderHandler.UpdateOrderStatus)
			}
		}

		cart := api.Group("/cart", authCheck(tokenService), requireRole(domain.RoleBuyer))
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("", cartHandler.AddCartItem)
			cart.DELETE("/:productId", cartHandler.RemoveCartItem)
		}

		wishlist := api.Group("/wishlist", authCheck(tokenService), requireRole(domain.RoleBuyer))
		{
			wishlist.GET("", cartHandler.GetWishlist)
			wishlist.POST("", cartHandler.AddWishlistItem)
			wishlist.DELETE("/:productId", cartHandler.RemoveWishlistItem)
		}

		contact := api.Group("/contact", authCheck(tokenService))
		{
			contact.POST("", contactHandler.CreateTicket)
			contact.GET("/mine", contactHandler.ListMyTickets)
			contact.GET("/:id", contactHandler.GetMyTicket)
		}

		files := api.Group("/files", authCheck(tokenService), requireRole(domain.RoleSeller))
		{
			files.POST("", uploadHandler.UploadImage)
		}

		admin := api.Group("/admin", authCheck(tokenService), requireRole(domain.RoleAdmin))
		{
			admin.GET("/stats", adminHandler.GetStats)

			admin.GET("/users", userHandler.ListUsers)
			admin.PUT("/users/:id/role", userHandler.ChangeUserRole)
			admin.DELETE("/users/:id", userHandler.DeleteUser)

			admin.GET("/products", adminHandler.ListProducts)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.PUT("/products/:id/active", adminHandler.SetProductActive)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/:id", adminHandler.GetOrder)
			admin.PUT("/orders/:id/status", adminHandler.SetOrderStatus)
			admin.DELETE("/orders/:id", adminHandler.DeleteOrder)

			admin.GET("/contact", contactHandler.ListTicketsAdmin)
			admin.GET("/contact/:id", contactHandler.GetTicketAdmin)
			admin.POST("/contact/:id/replies", contactHandler.ReplyTicketAdmin)
			admin.DELETE("/contact/:id", contactHandler.DeleteTicketAdmin)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
