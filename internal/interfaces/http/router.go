package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	ProductUC        *usecase.ProductUseCase
	CategoryUC       *usecase.CategoryUseCase
	UnitUC           *usecase.UnitUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	PartnerUC        *usecase.PartnerUseCase
	MovementTypeUC   *usecase.MovementTypeUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	StockQuery       *inventory.StockQueryUseCase
	JWTService       *jwt.Service
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTService))

	protected.Get("/me", authHandler.Me)
	protected.Post("/logout", authHandler.Logout)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Units
	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Post("/", unitHandler.Create)
	units.Get("/", unitHandler.List)
	units.Get("/:id", unitHandler.GetByID)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	// Movement types
	movementTypes := protected.Group("/movement-types")
	movementTypeHandler := NewMovementTypeHandler(deps.MovementTypeUC)
	movementTypes.Post("/", movementTypeHandler.Create)
	movementTypes.Get("/", movementTypeHandler.List)
	movementTypes.Get("/:id", movementTypeHandler.GetByID)
	movementTypes.Put("/:id", movementTypeHandler.Update)
	movementTypes.Delete("/:id", movementTypeHandler.Delete)

	// Warehouses
	warehouses := protected.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Partners
	partners := protected.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partners.Post("/", partnerHandler.Create)
	partners.Get("/", partnerHandler.List)
	partners.Get("/:id", partnerHandler.GetByID)
	partners.Put("/:id", partnerHandler.Update)
	partners.Delete("/:id", partnerHandler.Delete)

	// Inventory: vista de stock, reporte y libro de movimientos
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementQuery, deps.StockQuery)
	invGroup.Get("/", inventoryHandler.ListStock)
	invGroup.Get("/report", inventoryHandler.StockReport)

	movements := invGroup.Group("/movements")
	movements.Post("/", inventoryHandler.RegisterMovement)
	movements.Get("/", inventoryHandler.ListMovements)
	movements.Get("/stock", inventoryHandler.GetCurrentStock)
	movements.Get("/product/:id", inventoryHandler.ListByProduct)
	movements.Get("/warehouse/:id", inventoryHandler.ListByWarehouse)
	movements.Get("/:id", inventoryHandler.GetMovement)
	movements.Put("/:id", inventoryHandler.UpdateMovement)
	movements.Delete("/:id", inventoryHandler.DeleteMovement)
	movements.Post("/:id/restore", inventoryHandler.RestoreMovement)
}
