package application

import (
	"github.com/sirupsen/logrus"

	"github.com/quickhaul/logistics-backend/internal/domain/entity"
)

// StatusListener receives DeliveryStatusChanged events after a transition
// has been persisted. This is the extension seam for future consumers; the
// only listener today writes to the diagnostic log.
type StatusListener func(ev entity.DeliveryStatusChanged)

// LogStatusListener returns the default listener, which records the
// transition on the application logger.
func LogStatusListener(logger *logrus.Logger) StatusListener {
	return func(ev entity.DeliveryStatusChanged) {
		if logger == nil {
			return
		}
		logger.WithFields(logrus.Fields{
			"delivery_id": ev.DeliveryID,
			"old_status":  ev.OldStatus,
			"new_status":  ev.NewStatus,
			"at":          ev.Timestamp,
		}).Info("delivery status changed")
	}
}
