package entity

import (
	"errors"
	"fmt"
	"time"
)

// Status is the delivery lifecycle state. The only legal path is
// PICKED_UP -> DELIVERED -> SETTLED; there is no cancellation or return
// state and no transition ever moves backwards.
type Status string

const (
	StatusPickedUp  Status = "PICKED_UP"
	StatusDelivered Status = "DELIVERED"
	StatusSettled   Status = "SETTLED"
)

// Valid reports whether s is one of the three lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPickedUp, StatusDelivered, StatusSettled:
		return true
	}
	return false
}

// Settlement is how a delivery's fee is collected.
type Settlement string

const (
	SettlementPrepaid         Settlement = "PREPAID"
	SettlementCollect         Settlement = "COLLECT"
	SettlementOffice          Settlement = "OFFICE"
	SettlementReceiptRequired Settlement = "RECEIPT_REQUIRED"
)

// Valid reports whether s is a known settlement method.
func (s Settlement) Valid() bool {
	switch s {
	case SettlementPrepaid, SettlementCollect, SettlementOffice, SettlementReceiptRequired:
		return true
	}
	return false
}

// ErrInvalidTransition is wrapped by every rejected status change.
var ErrInvalidTransition = errors.New("invalid status transition")

// Delivery is the aggregate root of a shipment. The recipient is embedded by
// value at read time and referenced by foreign key in storage. Fee is nil
// when not yet determined or not applicable.
type Delivery struct {
	ID          string     `json:"id"`
	Recipient   Recipient  `json:"recipient"`
	PickupPlace string     `json:"pickupPlace"`
	BoxCount    int        `json:"boxCount"`
	Settlement  Settlement `json:"settlement"`
	Fee         *int       `json:"fee"`
	Note        *string    `json:"note,omitempty"`
	Status      Status     `json:"status"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Deliver moves the delivery from PICKED_UP to DELIVERED.
func (d *Delivery) Deliver() error {
	if d.Status != StatusPickedUp {
		return fmt.Errorf("%w: cannot deliver: delivery is not in PICKED_UP status", ErrInvalidTransition)
	}
	d.Status = StatusDelivered
	return nil
}

// Settle moves the delivery from DELIVERED to SETTLED, the terminal state.
func (d *Delivery) Settle() error {
	if d.Status != StatusDelivered {
		return fmt.Errorf("%w: cannot settle: delivery is not in DELIVERED status", ErrInvalidTransition)
	}
	d.Status = StatusSettled
	return nil
}

// TransitionTo applies the guarded transition to the requested target state.
// It is the single place the lifecycle rules live; both the entity methods
// and the application service go through it.
func (d *Delivery) TransitionTo(target Status) error {
	switch target {
	case StatusDelivered:
		return d.Deliver()
	case StatusSettled:
		return d.Settle()
	default:
		return fmt.Errorf("%w: cannot transition to %s", ErrInvalidTransition, target)
	}
}

// DeliveryStatusChanged records a successful transition. It is not persisted;
// it exists as a seam for future event consumers and is currently only
// written to the diagnostic log.
type DeliveryStatusChanged struct {
	DeliveryID string
	OldStatus  Status
	NewStatus  Status
	Timestamp  time.Time
}
