package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/quickhaul/logistics-backend/internal/interface/http"
)

// ContactModule wires the contact address-book CRUD and lookup routes.

type ContactModule struct {
	Handler *handlers.ContactHandler
}

func NewContactModule(h *handlers.ContactHandler) *ContactModule {
	return &ContactModule{Handler: h}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	rg.GET("/contacts", m.Handler.List)
	rg.GET("/contacts/:id", m.Handler.Get)
	rg.POST("/contacts", m.Handler.Create)
	rg.PUT("/contacts/:id", m.Handler.Update)
	rg.DELETE("/contacts/:id", m.Handler.Delete)
}
