package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de ventas.
// Agrupa los pedidos COMPLETED y une la fila del cliente o vendedor dueño del grupo.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// ClientTotals suma el total de pedidos COMPLETED agrupados por cliente.
func (r *ReportRepo) ClientTotals(ctx context.Context) ([]repository.ClientTotal, error) {
	const query = `
	SELECT c.id, c.name, c.lastname, c.company, c.email, c.phone, c.seller_id, c.created_at,
	       SUM(o.total) AS total
	FROM orders o
	JOIN clients c ON c.id = o.client_id
	WHERE o.status = 'COMPLETED'
	GROUP BY c.id, c.name, c.lastname, c.company, c.email, c.phone, c.seller_id, c.created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.ClientTotals: %w", err)
	}
	defer rows.Close()

	var results []repository.ClientTotal
	for rows.Next() {
		var row repository.ClientTotal
		if err := rows.Scan(
			&row.Client.ID, &row.Client.Name, &row.Client.Lastname, &row.Client.Company,
			&row.Client.Email, &row.Client.Phone, &row.Client.SellerID, &row.Client.CreatedAt,
			&row.Total,
		); err != nil {
			return nil, fmt.Errorf("report.ClientTotals scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SellerTotals suma el total de pedidos COMPLETED agrupados por vendedor.
// Sin ORDER BY ni LIMIT: el caso de uso ordena primero y después trunca.
func (r *ReportRepo) SellerTotals(ctx context.Context) ([]repository.SellerTotal, error) {
	const query = `
	SELECT u.id, u.name, u.lastname, u.email, u.created_at,
	       SUM(o.total) AS total
	FROM orders o
	JOIN users u ON u.id = o.seller_id
	WHERE o.status = 'COMPLETED'
	GROUP BY u.id, u.name, u.lastname, u.email, u.created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.SellerTotals: %w", err)
	}
	defer rows.Close()

	var results []repository.SellerTotal
	for rows.Next() {
		var row repository.SellerTotal
		if err := rows.Scan(
			&row.Seller.ID, &row.Seller.Name, &row.Seller.Lastname, &row.Seller.Email,
			&row.Seller.CreatedAt,
			&row.Total,
		); err != nil {
			return nil, fmt.Errorf("report.SellerTotals scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
