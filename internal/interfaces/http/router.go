package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/magicshop/admin-api/internal/application/analytics"
	"github.com/magicshop/admin-api/internal/application/auth"
	"github.com/magicshop/admin-api/internal/application/inventory"
	"github.com/magicshop/admin-api/internal/application/usecase"
	"github.com/magicshop/admin-api/internal/application/warehouse"
	"github.com/magicshop/admin-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	CategoryUC       *usecase.CategoryUseCase
	PublisherUC      *usecase.PublisherUseCase
	OrderUC          *usecase.OrderUseCase
	ReviewUC         *usecase.ReviewUseCase
	RegisterMovement *inventory.RecordMovementUseCase
	Ledger           *inventory.LedgerUseCase
	SlotRegistry     *warehouse.SlotRegistryUseCase
	DashboardUC      *analytics.DashboardUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/price-histogram", productHandler.PriceHistogram)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Reviews (protegido; se listan bajo el producto)
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	products.Get("/:id/reviews", reviewHandler.ListByProduct)
	protected.Delete("/reviews/:id", RequireRole(entity.RoleAdmin), reviewHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Publishers (protegido)
	publishers := protected.Group("/publishers")
	publisherHandler := NewPublisherHandler(deps.PublisherUC)
	publishers.Post("/", publisherHandler.Create)
	publishers.Get("/", publisherHandler.List)
	publishers.Get("/:id", publisherHandler.GetByID)
	publishers.Put("/:id", publisherHandler.Update)
	publishers.Delete("/:id", RequireRole(entity.RoleAdmin), publisherHandler.Delete)

	// Inventory movements (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.Ledger)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListRecent)
	invGroup.Get("/products/:id/movements", inventoryHandler.ListByProduct)

	// Warehouse slots (protegido)
	slots := protected.Group("/warehouse/slots")
	warehouseHandler := NewWarehouseHandler(deps.SlotRegistry)
	slots.Post("/", warehouseHandler.Create)
	slots.Get("/", warehouseHandler.List)
	slots.Get("/:id", warehouseHandler.GetByID)
	slots.Put("/:id/product", warehouseHandler.AssignProduct)
	slots.Delete("/:id/product", warehouseHandler.UnassignProduct)
	slots.Put("/:id/capacity", warehouseHandler.UpdateCapacity)
	slots.Delete("/:id", warehouseHandler.Delete)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/packing-slip", orderHandler.PackingSlip)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)
}
