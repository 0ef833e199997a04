package httpserver

import (
	"context"
	"log"

	"tillmate/internal/domain"
	salerepo "tillmate/internal/repository/sale"
	"tillmate/internal/service/catalog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// basketService is the cart surface the HTTP adapter drives.
type basketService interface {
	AddItem(p domain.Product)
	ClearEntry()
	CancelAll()
	SetCustomerName(name string)
	CustomerName() *string
	Lines() []domain.Product
	RunningTotalCents() int64
	Checkout(ctx context.Context) (*domain.Receipt, error)
	LoadDailySales(ctx context.Context, dayKey string) (domain.DailySales, error)
}

// salesService is the reporting surface over the ledger.
type salesService interface {
	Receipts(ctx context.Context, dayKey string) ([]domain.Receipt, error)
	History(ctx context.Context) ([]domain.Receipt, error)
	ReceiptLines(ctx context.Context, receiptID string) ([]domain.ReceiptLine, error)
}

// Deps carries the services the routes depend on.
type Deps struct {
	CatalogSvc *catalog.Service
	BasketSvc  basketService
	SalesSvc   salesService
	SaleRepo   salerepo.Repository
}

// buildRouter wires routes for the till API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	if deps.CatalogSvc != nil {
		router.GET("/products", listProductsHandler(deps.CatalogSvc))
		router.POST("/products", createProductHandler(deps.CatalogSvc))
		router.GET("/products/:id", getProductHandler(deps.CatalogSvc))
		router.PUT("/products/:id", updateProductHandler(deps.CatalogSvc))
		router.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))
	}

	if deps.BasketSvc != nil {
		router.GET("/basket", basketStateHandler(deps.BasketSvc))
		router.POST("/basket/items", addBasketItemHandler(deps.BasketSvc, deps.CatalogSvc))
		router.DELETE("/basket/items/last", clearEntryHandler(deps.BasketSvc))
		router.DELETE("/basket", cancelAllHandler(deps.BasketSvc))
		router.PUT("/basket/customer", setCustomerHandler(deps.BasketSvc))
		router.POST("/basket/checkout", checkoutHandler(deps.BasketSvc))
		router.GET("/sales/daily", dailySalesHandler(deps.BasketSvc))
	}

	if deps.SalesSvc != nil {
		router.GET("/receipts", receiptsHandler(deps.SalesSvc))
		router.GET("/receipts/:id/lines", receiptLinesHandler(deps.SalesSvc))
	}

	if deps.SaleRepo != nil {
		router.GET("/sales", listLegacySalesHandler(deps.SaleRepo))
		router.GET("/sales/:id", getLegacySaleHandler(deps.SaleRepo))
		router.DELETE("/sales/:id", deleteLegacySaleHandler(deps.SaleRepo))
	}

	return router
}
