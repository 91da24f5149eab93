package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickhaul/logistics-backend/internal/domain/entity"
	"github.com/quickhaul/logistics-backend/internal/domain/repository"
)

func testRecipient() entity.Recipient {
	return entity.Recipient{
		ID:      "r1",
		Phone:   "010-1111-2222",
		Address: entity.Address{Full: "Seoul"},
	}
}

func TestRegisterAlwaysStartsPickedUp(t *testing.T) {
	repo := newMemDeliveryRepo()
	svc := NewDeliveryService(repo, nil)

	fee := 5000
	d, err := svc.Register(context.Background(), testRecipient(), RegisterDeliveryInput{
		PickupPlace: "Warehouse A",
		BoxCount:    3,
		Settlement:  entity.SettlementPrepaid,
		Fee:         &fee,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, entity.StatusPickedUp, d.Status)

	stored, err := repo.FindByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPickedUp, stored.Status)
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestChangeStatusHappyPath(t *testing.T) {
	repo := newMemDeliveryRepo()
	svc := NewDeliveryService(repo, nil)

	var events []entity.DeliveryStatusChanged
	svc.OnStatusChanged = func(ev entity.DeliveryStatusChanged) { events = append(events, ev) }

	ctx := context.Background()
	d, err := svc.Register(ctx, testRecipient(), RegisterDeliveryInput{
		PickupPlace: "Warehouse A",
		BoxCount:    1,
		Settlement:  entity.SettlementCollect,
	})
	require.NoError(t, err)

	require.NoError(t, svc.ChangeStatus(ctx, d.ID, entity.StatusDelivered))
	require.NoError(t, svc.ChangeStatus(ctx, d.ID, entity.StatusSettled))

	stored, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSettled, stored.Status)

	require.Len(t, events, 2)
	assert.Equal(t, entity.StatusPickedUp, events[0].OldStatus)
	assert.Equal(t, entity.StatusDelivered, events[0].NewStatus)
	assert.Equal(t, entity.StatusDelivered, events[1].OldStatus)
	assert.Equal(t, entity.StatusSettled, events[1].NewStatus)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestChangeStatusRejectsInvalidTransition(t *testing.T) {
	repo := newMemDeliveryRepo()
	svc := NewDeliveryService(repo, nil)

	var events []entity.DeliveryStatusChanged
	svc.OnStatusChanged = func(ev entity.DeliveryStatusChanged) { events = append(events, ev) }

	ctx := context.Background()
	d, err := svc.Register(ctx, testRecipient(), RegisterDeliveryInput{
		PickupPlace: "Warehouse A",
		BoxCount:    1,
		Settlement:  entity.SettlementOffice,
	})
	require.NoError(t, err)

	// Skipping DELIVERED is rejected and nothing is written or emitted.
	err = svc.ChangeStatus(ctx, d.ID, entity.StatusSettled)
	require.ErrorIs(t, err, entity.ErrInvalidTransition)

	stored, ferr := repo.FindByID(ctx, d.ID)
	require.NoError(t, ferr)
	assert.Equal(t, entity.StatusPickedUp, stored.Status)
	assert.Empty(t, events)

	// Settled is terminal.
	require.NoError(t, svc.ChangeStatus(ctx, d.ID, entity.StatusDelivered))
	require.NoError(t, svc.ChangeStatus(ctx, d.ID, entity.StatusSettled))
	require.ErrorIs(t, svc.ChangeStatus(ctx, d.ID, entity.StatusDelivered), entity.ErrInvalidTransition)
}

func TestChangeStatusUnknownDelivery(t *testing.T) {
	svc := NewDeliveryService(newMemDeliveryRepo(), nil)

	err := svc.ChangeStatus(context.Background(), "missing", entity.StatusDelivered)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.EqualError(t, err, "Delivery with id missing not found")
}

func TestStatsPassThrough(t *testing.T) {
	repo := newMemDeliveryRepo()
	repo.daily = []repository.DailyStat{{Day: "2024-01-02", Deliveries: 4, Boxes: 9, Fees: 20000, Settled: 2}}
	repo.monthly = []repository.MonthlyStat{{Month: "2024-01", Deliveries: 4, Boxes: 9, Fees: 20000, Settled: 2}}
	svc := NewDeliveryService(repo, nil)

	daily, err := svc.DailyStats(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.LessOrEqual(t, daily[0].Settled, daily[0].Deliveries)

	monthly, err := svc.MonthlyStats(context.Background(), "2024-01")
	require.NoError(t, err)
	assert.Equal(t, repo.monthly, monthly)
}
