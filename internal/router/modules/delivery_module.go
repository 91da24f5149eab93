package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/quickhaul/logistics-backend/internal/interface/http"
)

// DeliveryModule wires delivery registration, listing, status transitions
// and the stats rollups.

type DeliveryModule struct {
	Handler *handlers.DeliveryHandler
}

func NewDeliveryModule(h *handlers.DeliveryHandler) *DeliveryModule {
	return &DeliveryModule{Handler: h}
}

func (m *DeliveryModule) Register(rg *gin.RouterGroup) {
	rg.GET("/deliveries", m.Handler.List)
	rg.POST("/deliveries", m.Handler.Register)
	rg.POST("/deliveries/:id/status", m.Handler.ChangeStatus)

	rg.GET("/stats/daily", m.Handler.DailyStats)
	rg.GET("/stats/monthly", m.Handler.MonthlyStats)
}
