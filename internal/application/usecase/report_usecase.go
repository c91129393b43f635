package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// topSellersLimit cantidad máxima de vendedores en el reporte bestSellers.
const topSellersLimit = 5

// ReportUseCase reportes agregados sobre pedidos COMPLETED.
// El orden se calcula aquí sobre la población completa de grupos y el límite
// se aplica DESPUÉS de ordenar (una revisión anterior limitaba antes de ordenar).
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// BestClients clientes ordenados por total comprado (pedidos COMPLETED), descendente.
func (uc *ReportUseCase) BestClients(ctx context.Context) ([]repository.ClientTotal, error) {
	totals, err := uc.repo.ClientTotals(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	return totals, nil
}

// BestSellers los 5 vendedores con mayor total vendido (pedidos COMPLETED), descendente.
func (uc *ReportUseCase) BestSellers(ctx context.Context) ([]repository.SellerTotal, error) {
	totals, err := uc.repo.SellerTotals(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	if len(totals) > topSellersLimit {
		totals = totals[:topSellersLimit]
	}
	return totals, nil
}
