package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authH "github.com/lucasbarrena/shopsphere-gateway/internal/auth/handler"
	brandH "github.com/lucasbarrena/shopsphere-gateway/internal/brand/handler"
	cartH "github.com/lucasbarrena/shopsphere-gateway/internal/cart/handler"
	categoryH "github.com/lucasbarrena/shopsphere-gateway/internal/category/handler"
	"github.com/lucasbarrena/shopsphere-gateway/internal/middleware"
	orderH "github.com/lucasbarrena/shopsphere-gateway/internal/order/handler"
	productH "github.com/lucasbarrena/shopsphere-gateway/internal/product/handler"
	providerH "github.com/lucasbarrena/shopsphere-gateway/internal/provider/handler"
	purchaseH "github.com/lucasbarrena/shopsphere-gateway/internal/purchase/handler"
	reportH "github.com/lucasbarrena/shopsphere-gateway/internal/report/handler"
	shipmentH "github.com/lucasbarrena/shopsphere-gateway/internal/shipment/handler"
	stockH "github.com/lucasbarrena/shopsphere-gateway/internal/stock/handler"
	usersH "github.com/lucasbarrena/shopsphere-gateway/internal/users/handler"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *authH.AuthHandler
	Product  *productH.ProductHandler
	Brand    *brandH.BrandHandler
	Category *categoryH.CategoryHandler
	Cart     *cartH.CartHandler
	Order    *orderH.OrderHandler
	Shipment *shipmentH.ShipmentHandler
	Report   *reportH.ReportHandler
	Provider *providerH.ProviderHandler
	Purchase *purchaseH.PurchaseHandler
	Stock    *stockH.StockHandler
	Users    *usersH.UserHandler
}

type Server struct {
	engine   *gin.Engine
	handlers Handlers
}

func New(h Handlers, log *zap.Logger) *Server {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log, "/health"),
		middleware.Authenticate(),
	)

	s := &Server{engine: r, handlers: h}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := s.engine.Group("/api")

	// Public storefront surface
	{
		api.POST("/auth/login", s.handlers.Auth.Login)
		api.POST("/auth/register", s.handlers.Auth.Register)
		api.POST("/auth/verify-email", s.handlers.Auth.VerifyEmail)
		api.POST("/auth/forgot-password", s.handlers.Auth.ForgotPassword)
		api.POST("/auth/reset-password", s.handlers.Auth.ResetPassword)
		api.GET("/session", s.handlers.Auth.Session)

		api.GET("/products", s.handlers.Product.Storefront)
		api.GET("/products/:id", s.handlers.Product.Detail)
		api.GET("/brands", s.handlers.Brand.Active)
		api.GET("/categories", s.handlers.Category.Active)

		api.GET("/shipments/track/:code", s.handlers.Shipment.Track)
	}

	// Account surface: anything touching the caller's own data
	user := api.Group("", middleware.RequireAuth())
	{
		user.GET("/cart", s.handlers.Cart.Get)
		user.POST("/cart/items", s.handlers.Cart.AddItem)
		user.PUT("/cart/items/:productId", s.handlers.Cart.UpdateItem)
		user.DELETE("/cart/items/:productId", s.handlers.Cart.RemoveItem)

		user.GET("/checkout", s.handlers.Cart.Checkout)
		user.PUT("/checkout/shipping", s.handlers.Cart.SetShipping)
		user.POST("/checkout/payment-preference", s.handlers.Cart.PaymentPreference)

		user.GET("/orders", s.handlers.Order.Mine)
		user.GET("/orders/:id", s.handlers.Order.Detail)
		user.GET("/shipments/order/:orderId", s.handlers.Shipment.ByOrder)

		user.GET("/profile", s.handlers.Users.Profile)
		user.PUT("/profile", s.handlers.Users.UpdateProfile)
	}

	// Admin console surface
	admin := api.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/products", s.handlers.Product.AdminList)
		admin.GET("/products/suggest", s.handlers.Product.Suggest)
		admin.POST("/products", s.handlers.Product.Create)
		admin.PUT("/products/:id", s.handlers.Product.Update)
		admin.PUT("/products/:id/deactivate", s.handlers.Product.Deactivate)
		admin.PUT("/products/:id/reactivate", s.handlers.Product.Reactivate)

		admin.GET("/brands", s.handlers.Brand.List)
		admin.POST("/brands", s.handlers.Brand.Create)
		admin.PUT("/brands/:id", s.handlers.Brand.Update)
		admin.PUT("/brands/:id/deactivate", s.handlers.Brand.Deactivate)
		admin.PUT("/brands/:id/reactivate", s.handlers.Brand.Reactivate)

		admin.GET("/categories", s.handlers.Category.List)
		admin.POST("/categories", s.handlers.Category.Create)
		admin.PUT("/categories/:id", s.handlers.Category.Update)
		admin.PUT("/categories/:id/deactivate", s.handlers.Category.Deactivate)
		admin.PUT("/categories/:id/reactivate", s.handlers.Category.Reactivate)

		admin.GET("/orders", s.handlers.Order.AdminList)
		admin.GET("/orders/:id", s.handlers.Order.Detail)
		admin.PUT("/orders/:id/status", s.handlers.Order.UpdateStatus)

		admin.POST("/shipments", s.handlers.Shipment.Create)
		admin.PUT("/shipments/:id/status", s.handlers.Shipment.UpdateStatus)
		admin.GET("/shipments/order/:orderId", s.handlers.Shipment.ByOrder)

		admin.GET("/providers", s.handlers.Provider.List)
		admin.GET("/providers/:id", s.handlers.Provider.Detail)
		admin.POST("/providers", s.handlers.Provider.Create)
		admin.PUT("/providers/:id", s.handlers.Provider.Update)
		admin.PUT("/providers/:id/deactivate", s.handlers.Provider.Deactivate)

		admin.GET("/purchase-orders", s.handlers.Purchase.List)
		admin.GET("/purchase-orders/:id", s.handlers.Purchase.Detail)
		admin.POST("/purchase-orders", s.handlers.Purchase.Create)
		admin.POST("/purchase-orders/:id/simulate", s.handlers.Purchase.Simulate)
		admin.POST("/purchase-orders/:id/confirm", s.handlers.Purchase.Confirm)

		admin.GET("/stock-movements", s.handlers.Stock.Movements)

		admin.GET("/reports/payment-methods", s.handlers.Report.PaymentMethods)
		admin.GET("/reports/top-selling-products", s.handlers.Report.TopSellingProducts)
	}
}
