package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/quickhaul/logistics-backend/internal/interface/http"
)

// RecipientModule wires recipient CRUD and search routes.
// GET /api/recipients?q=, POST /api/recipients,
// PUT /api/recipients/:id, DELETE /api/recipients/:id

type RecipientModule struct {
	Handler *handlers.RecipientHandler
}

func NewRecipientModule(h *handlers.RecipientHandler) *RecipientModule {
	return &RecipientModule{Handler: h}
}

func (m *RecipientModule) Register(rg *gin.RouterGroup) {
	rg.GET("/recipients", m.Handler.Search)
	rg.POST("/recipients", m.Handler.Create)
	rg.PUT("/recipients/:id", m.Handler.Update)
	rg.DELETE("/recipients/:id", m.Handler.Delete)
}
