package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/quickhaul/logistics-backend/internal/domain/entity"
	repo "github.com/quickhaul/logistics-backend/internal/domain/repository"
)

// RegisterDeliveryInput carries the caller-supplied shipment fields. Status
// is deliberately absent: registration always starts at PICKED_UP.
type RegisterDeliveryInput struct {
	PickupPlace string
	BoxCount    int
	Settlement  entity.Settlement
	Fee         *int
	Note        *string
}

type DeliveryService struct {
	Repo   repo.DeliveryRepository
	Logger *logrus.Logger

	// OnStatusChanged is called after a transition has been persisted.
	OnStatusChanged StatusListener
}

func NewDeliveryService(r repo.DeliveryRepository, logger *logrus.Logger) *DeliveryService {
	return &DeliveryService{
		Repo:            r,
		Logger:          logger,
		OnStatusChanged: LogStatusListener(logger),
	}
}

func (s *DeliveryService) FindByID(ctx context.Context, id string) (*entity.Delivery, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *DeliveryService) FindAll(ctx context.Context) ([]entity.Delivery, error) {
	return s.Repo.FindAll(ctx)
}

// Register creates a delivery bound to the given recipient. The recipient
// must already be persisted; registration does not write it.
func (s *DeliveryService) Register(ctx context.Context, recipient entity.Recipient, in RegisterDeliveryInput) (*entity.Delivery, error) {
	d := &entity.Delivery{
		ID:          uuid.NewString(),
		Recipient:   recipient,
		PickupPlace: in.PickupPlace,
		BoxCount:    in.BoxCount,
		Settlement:  in.Settlement,
		Fee:         in.Fee,
		Note:        in.Note,
		Status:      entity.StatusPickedUp,
	}
	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ChangeStatus applies a guarded lifecycle transition. The service re-reads
// the delivery and lets the entity validate the transition, so an invalid
// request is rejected before any write. The check runs against this read,
// not under a store-enforced compare-and-swap; two concurrent requests can
// both observe the same prior status (accepted race).
func (s *DeliveryService) ChangeStatus(ctx context.Context, id string, newStatus entity.Status) error {
	d, err := s.Repo.FindByID(ctx, id)
	if err != nil || d == nil {
		return &NotFoundError{Resource: "Delivery", ID: id}
	}

	oldStatus := d.Status
	if err := d.TransitionTo(newStatus); err != nil {
		return err
	}

	if err := s.Repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return err
	}

	if s.OnStatusChanged != nil {
		s.OnStatusChanged(entity.DeliveryStatusChanged{
			DeliveryID: id,
			OldStatus:  oldStatus,
			NewStatus:  newStatus,
			Timestamp:  time.Now().UTC(),
		})
	}
	return nil
}

func (s *DeliveryService) DailyStats(ctx context.Context, startDate, endDate string) ([]repo.DailyStat, error) {
	return s.Repo.DailyStats(ctx, startDate, endDate)
}

func (s *DeliveryService) MonthlyStats(ctx context.Context, yearMonth string) ([]repo.MonthlyStat, error) {
	return s.Repo.MonthlyStats(ctx, yearMonth)
}
