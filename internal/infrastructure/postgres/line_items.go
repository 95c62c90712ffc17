package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// lineTable describe una tabla de detalle (purchase_items, sale_items, order_items).
type lineTable struct {
	name   string
	parent string // columna FK hacia la cabecera
}

var (
	purchaseLines = lineTable{name: "purchase_items", parent: "purchase_id"}
	saleLines     = lineTable{name: "sale_items", parent: "sale_id"}
	orderLines    = lineTable{name: "order_items", parent: "order_id"}
)

// insert envía todas las líneas en un solo batch; position conserva el orden recibido.
func (t lineTable) insert(ctx context.Context, q Querier, parentID string, items []entity.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	sql := fmt.Sprintf(`INSERT INTO %s (id, %s, product_id, position, quantity, price) VALUES ($1, $2, $3, $4, $5, $6)`,
		t.name, t.parent)
	batch := &pgx.Batch{}
	for i, it := range items {
		batch.Queue(sql, it.ID, parentID, it.ProductID, i, it.Quantity, it.Price)
	}
	br := q.SendBatch(ctx, batch)
	for range items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return writeErr("insert "+t.name, err)
		}
	}
	return br.Close()
}

// load devuelve las líneas de las cabeceras indicadas agrupadas por cabecera.
func (t lineTable) load(ctx context.Context, q Querier, parentIDs []string) (map[string][]entity.LineItem, error) {
	out := make(map[string][]entity.LineItem, len(parentIDs))
	if len(parentIDs) == 0 {
		return out, nil
	}
	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %[2]s::text, id, product_id, quantity, price FROM %[1]s
		WHERE %[2]s = ANY($1::uuid[])
		ORDER BY %[2]s, position`, t.name, t.parent), parentIDs)
	if err != nil {
		return nil, readErr("list "+t.name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var parent string
		var it entity.LineItem
		if err := rows.Scan(&parent, &it.ID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		out[parent] = append(out[parent], it)
	}
	return out, rows.Err()
}
