package repository

import (
	"context"

	"github.com/quickhaul/logistics-backend/internal/domain/entity"
)

// DailyStat is one row of the per-day rollup.
type DailyStat struct {
	Day        string `json:"day"`
	Deliveries int    `json:"deliveries"`
	Boxes      int    `json:"boxes"`
	Fees       int    `json:"fees"`
	Settled    int    `json:"settled"`
}

// MonthlyStat is one row of the per-month rollup.
type MonthlyStat struct {
	Month      string `json:"month"`
	Deliveries int    `json:"deliveries"`
	Boxes      int    `json:"boxes"`
	Fees       int    `json:"fees"`
	Settled    int    `json:"settled"`
}

// DeliveryRepository defines the storage operations for deliveries. Reads
// join the owning recipient; stats are pure projections with no side
// effects, ordered descending by period.
type DeliveryRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Delivery, error)
	FindAll(ctx context.Context) ([]entity.Delivery, error)
	Create(ctx context.Context, d *entity.Delivery) error
	// UpdateStatus persists the new status and refreshes updated_at.
	UpdateStatus(ctx context.Context, id string, status entity.Status) error
	DailyStats(ctx context.Context, startDate, endDate string) ([]DailyStat, error)
	MonthlyStats(ctx context.Context, yearMonth string) ([]MonthlyStat, error)
}
