package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/Temucosoft-api/internal/application/analytics"
	"github.com/jhoicas/Temucosoft-api/internal/application/auth"
	appinventory "github.com/jhoicas/Temucosoft-api/internal/application/inventory"
	"github.com/jhoicas/Temucosoft-api/internal/application/usecase"
	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/plan"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	CompanyUC      *usecase.CompanyUseCase
	SubscriptionUC *usecase.SubscriptionUseCase
	PlanUC         *usecase.PlanUseCase
	BranchUC       *usecase.BranchUseCase
	ProductUC      *usecase.ProductUseCase
	SupplierUC     *usecase.SupplierUseCase
	InventoryUC    *usecase.InventoryUseCase
	Replenishment  *appinventory.ReplenishmentUseCase
	SaleUC         *usecase.SaleUseCase
	ReceiptUC      *usecase.ReceiptUseCase
	PurchaseUC     *usecase.PurchaseUseCase
	OrderUC        *usecase.OrderUseCase
	ReportUC       *analytics.ReportUseCase
	Features       featureChecker
	Metrics        nethttp.Handler // opcional
	JWTSecret      string
}

const (
	superAdmin   = entity.RoleSuperAdmin
	adminCliente = entity.RoleAdminCliente
	gerente      = entity.RoleGerente
	clienteFinal = entity.RoleClienteFinal
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")
	authn := AuthMiddleware(deps.JWTSecret)
	optional := OptionalAuth(deps.JWTSecret)
	managers := RequireRole(superAdmin, adminCliente, gerente)
	onlySuper := RequireRole(superAdmin)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Plans: catálogo público, selección para clientes finales
	planHandler := NewPlanHandler(deps.PlanUC)
	plans := api.Group("/plans")
	plans.Get("/", planHandler.List)
	plans.Get("/mine", authn, planHandler.Mine)
	plans.Post("/select", authn, RequireRole(clienteFinal), planHandler.Select)

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users", authn)
	users.Get("/me", userHandler.Me)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", RequireRole(superAdmin, adminCliente), userHandler.Create)
	users.Put("/:id", RequireRole(superAdmin, adminCliente), userHandler.Update)
	users.Delete("/:id", RequireRole(superAdmin, adminCliente), userHandler.Delete)

	// Companies y subscriptions (super_admin)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.SubscriptionUC)
	companies := api.Group("/companies", authn, onlySuper)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Post("/:id/subscribe", companyHandler.Subscribe)

	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subscriptions := api.Group("/subscriptions", authn, onlySuper)
	subscriptions.Get("/", subscriptionHandler.List)
	subscriptions.Post("/", subscriptionHandler.Upsert)
	subscriptions.Get("/:id", subscriptionHandler.GetByID)

	// Branches (límite por plan)
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches := api.Group("/branches", authn, managers)
	branches.Get("/", branchHandler.List)
	branches.Post("/", branchHandler.Create)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", branchHandler.Delete)

	// Products: lectura pública, escritura autenticada
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", optional, productHandler.List)
	products.Get("/:id", optional, productHandler.GetByID)
	products.Post("/", authn, productHandler.Create)
	products.Put("/:id", authn, productHandler.Update)
	products.Delete("/:id", authn, productHandler.Delete)

	// Suppliers
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := api.Group("/suppliers", authn, managers)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Inventory (low-stock antes de /:id)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Replenishment)
	inventory := api.Group("/inventory", authn)
	inventory.Get("/low-stock", inventoryHandler.LowStock)
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)

	// Sales
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	sales := api.Group("/sales", authn)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Purchases
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases := api.Group("/purchases", authn, managers)
	purchases.Get("/", purchaseHandler.List)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/:id", purchaseHandler.GetByID)

	// Orders: el listado sin token responde vacío
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := api.Group("/orders")
	orders.Get("/", optional, orderHandler.List)
	orders.Post("/", authn, orderHandler.Create)
	orders.Get("/:id", authn, orderHandler.GetByID)
	orders.Patch("/:id/status", authn, orderHandler.UpdateStatus)
	orders.Delete("/:id", authn, orderHandler.Delete)

	// Reports (según plan)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := api.Group("/reports", authn, managers)
	reports.Get("/sales-summary", RequireFeature(plan.StandardReports, deps.Features), reportHandler.SalesSummary)
	reports.Get("/top-products", RequireFeature(plan.AdvancedReports, deps.Features), reportHandler.TopProducts)
}
