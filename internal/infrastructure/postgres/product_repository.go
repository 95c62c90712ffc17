package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
	"github.com/jhoicas/Temucosoft-api/internal/domain/repository"
)

// Asegura que ProductRepo implementa repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// price y cost son NUMERIC; el tipo decimal se registra en el pool (pgx-shopspring-decimal).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, company_id, sku, name, description, price, cost, category`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (id, company_id, sku, name, description, price, cost, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.CompanyID, p.SKU, p.Name, p.Description, p.Price, p.Cost, p.Category,
	)
	return writeErr("insert product", err)
}

// GetByID obtiene un producto por ID dentro del alcance de la empresa.
func (r *ProductRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE id = $2 AND ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)`, companyID, id)
	p, err := scanProduct(row)
	if err != nil {
		if missing(err) {
			return nil, nil
		}
		return nil, readErr("get product", err)
	}
	return p, nil
}

// Update actualiza los datos del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE products SET sku = $2, name = $3, description = $4, price = $5, cost = $6, category = $7
		WHERE id = $1`,
		p.ID, p.SKU, p.Name, p.Description, p.Price, p.Cost, p.Category,
	)
	if err != nil {
		return writeErr("update product", err)
	}
	return affected(tag)
}

// Delete elimina el producto. Referenciado por líneas de detalle devuelve domain.ErrProtected
// (FK sin cascada); sus filas de inventario se borran en cascada.
func (r *ProductRepo) Delete(ctx context.Context, companyID, id string) error {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM products
		WHERE id = $2 AND ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)`, companyID, id)
	if err != nil {
		return deleteErr("delete product", err)
	}
	return affected(tag)
}

// List lista productos por empresa con paginación.
func (r *ProductRepo) List(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE ($1::text = '' OR company_id = NULLIF($1::text, '')::uuid)
		ORDER BY sku, id
		LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, readErr("list products", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Cost, &p.Category)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
