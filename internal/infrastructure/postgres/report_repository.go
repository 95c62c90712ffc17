package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre ventas. Los rangos son [from, to);
// companyID vacío agrega todas las empresas.
type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesSummary totales de la empresa en el rango y su desglose por sucursal.
// Usa COALESCE para devolver cero si no hay ventas en el período.
func (r *ReportRepo) SalesSummary(ctx context.Context, companyID string, from, to time.Time) (*entity.SalesSummary, error) {
	sum := &entity.SalesSummary{From: from, To: to}

	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(s.total), 0)
		FROM sales s JOIN branches b ON b.id = s.branch_id
		WHERE ($1::text = '' OR b.company_id = NULLIF($1::text, '')::uuid) AND s.created_at >= $2 AND s.created_at < $3`,
		companyID, from, to).Scan(&sum.SalesCount, &sum.Revenue)
	if err != nil {
		return nil, readErr("sales summary", err)
	}

	err = r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(si.quantity), 0)
		FROM sale_items si
		JOIN sales s    ON s.id = si.sale_id
		JOIN branches b ON b.id = s.branch_id
		WHERE ($1::text = '' OR b.company_id = NULLIF($1::text, '')::uuid) AND s.created_at >= $2 AND s.created_at < $3`,
		companyID, from, to).Scan(&sum.Units)
	if err != nil {
		return nil, readErr("sales units", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT b.id::text, b.name, COUNT(s.id), COALESCE(SUM(s.total), 0)
		FROM branches b
		JOIN sales s ON s.branch_id = b.id AND s.created_at >= $2 AND s.created_at < $3
		WHERE ($1::text = '' OR b.company_id = NULLIF($1::text, '')::uuid)
		GROUP BY b.id, b.name
		ORDER BY 4 DESC, b.name`, companyID, from, to)
	if err != nil {
		return nil, readErr("sales by branch", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bs entity.BranchSales
		if err := rows.Scan(&bs.BranchID, &bs.BranchName, &bs.SalesCount, &bs.Revenue); err != nil {
			return nil, fmt.Errorf("scan branch sales: %w", err)
		}
		sum.ByBranch = append(sum.ByBranch, bs)
	}
	return sum, rows.Err()
}

// TopProducts productos más vendidos por unidades. El margen usa el costo actual del producto.
func (r *ReportRepo) TopProducts(ctx context.Context, companyID string, from, to time.Time, limit int) ([]entity.TopProduct, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id::text, p.sku, p.name,
		       SUM(si.quantity),
		       SUM(si.quantity * si.price),
		       SUM(si.quantity * (si.price - p.cost))
		FROM sale_items si
		JOIN sales s    ON s.id = si.sale_id
		JOIN branches b ON b.id = s.branch_id
		JOIN products p ON p.id = si.product_id
		WHERE ($1::text = '' OR b.company_id = NULLIF($1::text, '')::uuid) AND s.created_at >= $2 AND s.created_at < $3
		GROUP BY p.id, p.sku, p.name
		ORDER BY 4 DESC, 5 DESC, p.sku
		LIMIT $4`, companyID, from, to, limit)
	if err != nil {
		return nil, readErr("top products", err)
	}
	defer rows.Close()

	var list []entity.TopProduct
	for rows.Next() {
		var tp entity.TopProduct
		if err := rows.Scan(&tp.ProductID, &tp.SKU, &tp.Name, &tp.Units, &tp.Revenue, &tp.Margin); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, tp)
	}
	return list, rows.Err()
}
