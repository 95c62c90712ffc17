package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Temucosoft-api/internal/domain/entity"
)

// ReportRepository consultas de solo lectura para reportes de ventas.
// Los rangos son [from, to).
type ReportRepository interface {
	SalesSummary(ctx context.Context, companyID string, from, to time.Time) (*entity.SalesSummary, error)
	TopProducts(ctx context.Context, companyID string, from, to time.Time, limit int) ([]entity.TopProduct, error)
}
