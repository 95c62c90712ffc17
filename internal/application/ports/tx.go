package ports

import (
	"context"

	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

// Repos agrupa los repositorios atados a un mismo Querier (pool o transacción).
type Repos struct {
	Companies     repository.CompanyRepository
	Subscriptions repository.SubscriptionRepository
	Users         repository.UserRepository
	Branches      repository.BranchRepository
	Products      repository.ProductRepository
	Suppliers     repository.SupplierRepository
	Inventory     repository.InventoryRepository
	Purchases     repository.PurchaseRepository
	Sales         repository.SaleRepository
	Orders        repository.OrderRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx Repos) error) error
}
