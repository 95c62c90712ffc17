package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo existencias por sucursal y producto. La empresa se obtiene de la sucursal.
type InventoryRepo struct {
	q Querier
}

func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `i.id, i.branch_id, i.product_id, i.stock, i.reorder_point`

// Create inserta la fila; el par (branch_id, product_id) repetido devuelve domain.ErrDuplicate.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory (id, branch_id, product_id, stock, reorder_point)
		VALUES ($1, $2, $3, $4, $5)`,
		inv.ID, inv.BranchID, inv.ProductID, inv.Stock, inv.ReorderPoint,
	)
	return writeErr("insert inventory", err)
}

func (r *InventoryRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Inventory, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+inventoryColumns+`
		FROM inventory i JOIN branches b ON b.id = i.branch_id
		WHERE i.id = $2 AND ($1::text = '' OR b.company_id = NULLIF($1::text, '')::uuid)`, companyID, id)
	inv, err := scanInventory(row)
	if err != nil {
		if missing(err) {
			return nil, nil
		}
		return nil, readErr("get inventory", err)
	}
	return inv, nil
}

// GetForUpdate bloquea la fila del par sucursal/producto hasta el fin de la transacción.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, branchID, productID string) (*entity.Inventory, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+inventoryColumns+` FROM inventory i
		WHERE i.branch_id = $1 AND i.product_id = $2
		FOR UPDATE`, branchID, productID)
	inv, err := scanInventory(row)
	if err != nil {
		if missing(err) {
			return nil, nil
		}
		return nil, readErr("lock inventory", err)
	}
	return inv, nil
}

// AddStock upsert sobre el índice único (branch_id, product_id).
func (r *InventoryRepo) AddStock(ctx context.Context, id, branchID, productID string, qty int) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory (id, branch_id, product_id, stock, reorder_point)
		VALUES ($1, $2, $3, $4, 0)
		ON CONFLICT (branch_id, product_id) DO UPDATE SET stock = inventory.stock + EXCLUDED.stock`,
		id, branchID, productID, qty,
	)
	return writeErr("add stock", err)
}

// Update ajusta stock y punto de reposición. El CHECK stock >= 0 queda como última barrera.
func (r *InventoryRepo) Update(ctx context.Context, inv *entity.Inventory) error {
	tag, err := r.q.Exec(ctx, `UPDATE inventory SET stock = $2, reorder_point = $3 WHERE id = $1`,
		inv.ID, inv.Stock, inv.ReorderPoint)
	if err != nil {
		return writeErr("update inventory", err)
	}
	return affected(tag)
}

func (r *InventoryRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM inventory i USING branches b
		WHERE b.id = i.branch_id AND i.id = $2
		  AND ($1::text = '' OR b.company_id = NULLIF($1::text, '')::uuid)`, companyID, id)
	if err != nil {
		return deleteErr("delete inventory", err)
	}
	return affected(tag)
}

func (r *InventoryRepo) List(ctx context.Context, f repository.InventoryFilter, limit, offset int) ([]*entity.Inventory, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+inventoryColumns+`
		FROM inventory i JOIN branches b ON b.id = i.branch_id
		WHERE ($1::text = '' OR b.company_id = NULLIF($1::text, '')::uuid)
		  AND ($2::text = '' OR i.branch_id = NULLIF($2::text, '')::uuid)
		ORDER BY b.name, i.product_id
		LIMIT $3 OFFSET $4`, f.CompanyID, f.BranchID, limit, offset)
	if err != nil {
		return nil, readErr("list inventory", err)
	}
	defer rows.Close()

	var list []*entity.Inventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// ListLowStock filas con stock < reorder_point, mayor déficit primero.
func (r *InventoryRepo) ListLowStock(ctx context.Context, f repository.InventoryFilter) ([]*entity.LowStockItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+inventoryColumns+`, p.sku, p.name, b.name, p.price, p.cost
		FROM inventory i
		JOIN branches b ON b.id = i.branch_id
		JOIN products p ON p.id = i.product_id
		WHERE i.stock < i.reorder_point
		  AND ($1::text = '' OR b.company_id = NULLIF($1::text, '')::uuid)
		  AND ($2::text = '' OR i.branch_id = NULLIF($2::text, '')::uuid)
		ORDER BY (i.reorder_point - i.stock) DESC, p.sku`, f.CompanyID, f.BranchID)
	if err != nil {
		return nil, readErr("list low stock", err)
	}
	defer rows.Close()

	var list []*entity.LowStockItem
	for rows.Next() {
		var it entity.LowStockItem
		if err := rows.Scan(&it.ID, &it.BranchID, &it.ProductID, &it.Stock, &it.ReorderPoint,
			&it.SKU, &it.ProductName, &it.BranchName, &it.Price, &it.Cost); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var inv entity.Inventory
	if err := row.Scan(&inv.ID, &inv.BranchID, &inv.ProductID, &inv.Stock, &inv.ReorderPoint); err != nil {
		return nil, err
	}
	return &inv, nil
}
