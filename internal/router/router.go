package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/config"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/handler"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/infra"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/middleware"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/repository"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/service"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine plus the
// load-list worker the caller hands to the worker pool.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) (*gin.Engine, *worker.LoadListWorker) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productionRepo := repository.NewProductionRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	clientSvc := service.NewClientService(clientRepo)
	productSvc := service.NewProductService(productRepo)
	orderSvc := service.NewOrderService(orderRepo, clientRepo, productRepo)
	productionSvc := service.NewProductionService(productionRepo, productRepo)
	stockSvc := service.NewStockService(productRepo, productionRepo, orderRepo)
	exportSvc := service.NewExportService(stockSvc)
	reportSvc := service.NewReportService(reportRepo)

	// Worker dispatcher — injected into handlers that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)
	loadListWorker := worker.NewLoadListWorker(exportSvc, mailer, smtpCB, rdb, cfg.LoadListRecipient)

	// ── Handlers ─────────────────────────────────────────────────────────────
	clientsH := handler.NewClientsHandler(clientSvc)
	productsH := handler.NewProductsHandler(productSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	productionH := handler.NewProductionHandler(productionSvc)
	stockH := handler.NewStockHandler(stockSvc)
	exportH := handler.NewExportHandler(exportSvc, dispatcher)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		clients := v1.Group("/clients")
		{
			clients.POST("", clientsH.Create)
			clients.GET("", clientsH.List)
			clients.DELETE("/:id", clientsH.Delete)
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", ordersH.Create)
			orders.GET("", ordersH.List)
			orders.GET("/day-document", ordersH.DayDocument)
			orders.GET("/:id", ordersH.Get)
			orders.GET("/:id/checklist", ordersH.Checklist)
			orders.DELETE("/:id", ordersH.Delete)
		}

		production := v1.Group("/production")
		{
			production.POST("", productionH.Record)
			production.GET("", productionH.List)
		}

		v1.GET("/stock", stockH.List)
		v1.GET("/stock/:id", stockH.Get)
		v1.GET("/load-list", stockH.LoadList)

		export := v1.Group("/export")
		{
			export.GET("/load-list", exportH.LoadListCSV)
			export.GET("/stock", exportH.StockCSV)
			export.POST("/load-list/email", exportH.EmailLoadList)
		}

		v1.GET("/reports/stats", reportsH.Stats)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, loadListWorker
}
