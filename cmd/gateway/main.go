package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lucasbarrena/shopsphere-gateway/config"
	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/server"
	"github.com/lucasbarrena/shopsphere-gateway/pkg/logger"

	authClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/auth/client"
	authH "github.com/lucasbarrena/shopsphere-gateway/internal/auth/handler"

	productClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/product/client"
	productH "github.com/lucasbarrena/shopsphere-gateway/internal/product/handler"
	productUCPkg "github.com/lucasbarrena/shopsphere-gateway/internal/product/usecase"

	brandClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/brand/client"
	brandH "github.com/lucasbarrena/shopsphere-gateway/internal/brand/handler"

	categoryClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/category/client"
	categoryH "github.com/lucasbarrena/shopsphere-gateway/internal/category/handler"
	categoryUCPkg "github.com/lucasbarrena/shopsphere-gateway/internal/category/usecase"

	cartClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/cart/client"
	cartH "github.com/lucasbarrena/shopsphere-gateway/internal/cart/handler"
	cartUCPkg "github.com/lucasbarrena/shopsphere-gateway/internal/cart/usecase"

	paymentClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/payment/client"

	orderClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/order/client"
	orderH "github.com/lucasbarrena/shopsphere-gateway/internal/order/handler"
	orderUCPkg "github.com/lucasbarrena/shopsphere-gateway/internal/order/usecase"

	shipmentClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/shipment/client"
	shipmentH "github.com/lucasbarrena/shopsphere-gateway/internal/shipment/handler"

	reportClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/report/client"
	reportH "github.com/lucasbarrena/shopsphere-gateway/internal/report/handler"

	providerClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/provider/client"
	providerH "github.com/lucasbarrena/shopsphere-gateway/internal/provider/handler"

	purchaseClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/purchase/client"
	purchaseH "github.com/lucasbarrena/shopsphere-gateway/internal/purchase/handler"

	stockClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/stock/client"
	stockH "github.com/lucasbarrena/shopsphere-gateway/internal/stock/handler"

	usersClientPkg "github.com/lucasbarrena/shopsphere-gateway/internal/users/client"
	usersH "github.com/lucasbarrena/shopsphere-gateway/internal/users/handler"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		IsDevelopment:     false,
		Level:             cfg.Logger.Level,
		Encoding:          "json",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	appLogger := logger.New(logConfig)
	defer appLogger.Sync()

	// 3. Backend Clients
	svc := cfg.Services
	authClient := authClientPkg.NewRESTClient(httpx.New(svc.AuthURL, svc.RequestTimeout))
	productClient := productClientPkg.NewRESTClient(httpx.New(svc.ProductsURL, svc.RequestTimeout))
	brandClient := brandClientPkg.NewRESTClient(httpx.New(svc.BrandsURL, svc.RequestTimeout))
	categoryClient := categoryClientPkg.NewRESTClient(httpx.New(svc.CategoriesURL, svc.RequestTimeout))
	cartClient := cartClientPkg.NewRESTClient(httpx.New(svc.CartURL, svc.RequestTimeout))
	paymentClient := paymentClientPkg.NewRESTClient(httpx.New(svc.PaymentURL, svc.RequestTimeout))
	orderClient := orderClientPkg.NewRESTClient(httpx.New(svc.OrdersURL, svc.RequestTimeout))
	shipmentClient := shipmentClientPkg.NewRESTClient(httpx.New(svc.ShipmentsURL, svc.RequestTimeout))
	reportClient := reportClientPkg.NewRESTClient(httpx.New(svc.ReportsURL, svc.RequestTimeout))
	providerClient := providerClientPkg.NewRESTClient(httpx.New(svc.ProvidersURL, svc.RequestTimeout))
	purchaseClient := purchaseClientPkg.NewRESTClient(httpx.New(svc.PurchaseURL, svc.RequestTimeout))
	stockClient := stockClientPkg.NewRESTClient(httpx.New(svc.ReplenishmentURL, svc.RequestTimeout))
	usersClient := usersClientPkg.NewRESTClient(httpx.New(svc.UsersURL, svc.RequestTimeout))

	// 4. Use Cases
	productUC := productUCPkg.NewProductUseCase(productClient, cfg.Search.DebounceDelay, appLogger)
	categoryUC := categoryUCPkg.NewCategoryUseCase(categoryClient, appLogger)
	cartUC := cartUCPkg.NewCartUseCase(cartClient, paymentClient, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderClient, appLogger)

	// 5. Handlers + Router
	srv := server.New(server.Handlers{
		Auth:     authH.NewAuthHandler(authClient, appLogger),
		Product:  productH.NewProductHandler(productUC, appLogger),
		Brand:    brandH.NewBrandHandler(brandClient),
		Category: categoryH.NewCategoryHandler(categoryUC),
		Cart:     cartH.NewCartHandler(cartUC),
		Order:    orderH.NewOrderHandler(orderUC),
		Shipment: shipmentH.NewShipmentHandler(shipmentClient),
		Report:   reportH.NewReportHandler(reportClient),
		Provider: providerH.NewProviderHandler(providerClient),
		Purchase: purchaseH.NewPurchaseHandler(purchaseClient),
		Stock:    stockH.NewStockHandler(stockClient),
		Users:    usersH.NewUserHandler(usersClient),
	}, appLogger)

	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: srv.Engine(),
	}

	// 6. Serve with graceful shutdown
	go func() {
		appLogger.Info("gateway listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
}
