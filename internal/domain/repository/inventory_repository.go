package repository

import (
	"context"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// InventoryFilter acota listados de inventario. La empresa se resuelve a través de la sucursal.
type InventoryFilter struct {
	CompanyID string
	BranchID  string
}

// InventoryRepository existencias por sucursal y producto. Usado dentro de transacciones
// para ajustar stock con compras y ventas.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Inventory, error)
	Update(ctx context.Context, inv *entity.Inventory) error
	Delete(ctx context.Context, companyID, id string) error
	List(ctx context.Context, f InventoryFilter, limit, offset int) ([]*entity.Inventory, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, branchID, productID string) (*entity.Inventory, error)
	// AddStock suma qty al par sucursal/producto en una sola sentencia, creando la fila con id
	// si no existe. Toma el bloqueo de la fila igual que GetForUpdate.
	AddStock(ctx context.Context, id, branchID, productID string, qty int) error
	// ListLowStock filas con stock bajo el punto de reposición, con datos de producto y sucursal.
	ListLowStock(ctx context.Context, f InventoryFilter) ([]*entity.LowStockItem, error)
}
