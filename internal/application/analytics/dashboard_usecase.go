// Package analytics contiene los casos de uso de reportes del panel de
// administración (dashboard).
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magicshop/admin-api/internal/application/dto"
	"github.com/magicshop/admin-api/internal/application/inventory"
	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

const (
	dashboardTopProducts = 5  // productos en el widget de más vendidos
	dashboardMovements   = 10 // movimientos recientes mostrados
)

// DashboardUseCase genera el resumen del panel: catálogo, pedidos, ingresos del
// día y del mes, más vendidos y movimientos recientes.
//
// Fuente de datos: AnalyticsRepository y MovementRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	movRepo       repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, movRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, movRepo: movRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro grupos de consultas en paralelo:
//  1. Conteos de catálogo y pedidos por estado
//  2. Ingresos de hoy y del mes en curso
//  3. Más vendidos del mes
//  4. Movimientos recientes del libro
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// ── Rangos de fecha ───────────────────────────────────────────────────────
	// Hoy: 00:00:00.000 – 23:59:59.999; mes: día 1 a las 00:00 – hoy a las 23:59
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type countsResult struct {
		products   int
		outOfStock int
		orders     map[string]int
		err        error
	}
	type revenueResult struct {
		today decimal.Decimal
		month decimal.Decimal
		err   error
	}
	type topResult struct {
		top []repository.TopProductResult
		err error
	}
	type movementsResult struct {
		recent []*entity.StockMovement
		err    error
	}

	countsCh := make(chan countsResult, 1)
	revenueCh := make(chan revenueResult, 1)
	topCh := make(chan topResult, 1)
	movementsCh := make(chan movementsResult, 1)

	// ── Goroutines para paralelizar las consultas DB ──────────────────────────
	go func() {
		var res countsResult
		res.products, res.err = uc.analyticsRepo.CountProducts(ctx)
		if res.err == nil {
			res.outOfStock, res.err = uc.analyticsRepo.CountOutOfStock(ctx)
		}
		if res.err == nil {
			res.orders, res.err = uc.analyticsRepo.CountOrdersByStatus(ctx)
		}
		countsCh <- res
	}()
	go func() {
		var res revenueResult
		res.today, res.err = uc.analyticsRepo.GetRevenue(ctx, todayStart, todayEnd)
		if res.err == nil {
			res.month, res.err = uc.analyticsRepo.GetRevenue(ctx, monthStart, todayEnd)
		}
		revenueCh <- res
	}()
	go func() {
		top, err := uc.analyticsRepo.GetTopProducts(ctx, monthStart, todayEnd, dashboardTopProducts)
		topCh <- topResult{top, err}
	}()
	go func() {
		recent, err := uc.movRepo.ListRecent(dashboardMovements)
		movementsCh <- movementsResult{recent, err}
	}()

	counts := <-countsCh
	revenue := <-revenueCh
	top := <-topCh
	movements := <-movementsCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos: %w", revenue.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: más vendidos: %w", top.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", movements.err)
	}

	// ── Construir DTO ─────────────────────────────────────────────────────────
	summary := &dto.DashboardSummaryDTO{
		ProductCount:    counts.products,
		OutOfStockCount: counts.outOfStock,
		OrdersByStatus:  counts.orders,
		TodayRevenue:    revenue.today.Round(2),
		MonthRevenue:    revenue.month.Round(2),
		TopProducts:     make([]dto.TopProductDTO, 0, len(top.top)),
		RecentMovements: inventory.ToMovementResponses(movements.recent),
	}
	for _, t := range top.top {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			UnitsSold:   t.UnitsSold,
			Revenue:     t.Revenue.Round(2),
		})
	}
	return summary, nil
}
