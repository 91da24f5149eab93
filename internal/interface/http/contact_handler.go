package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/quickhaul/logistics-backend/internal/application"
	"github.com/quickhaul/logistics-backend/internal/domain/repository"
	"github.com/quickhaul/logistics-backend/pkg/response"
	"github.com/quickhaul/logistics-backend/pkg/validation"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger *logrus.Logger
}

func NewContactHandler(svc *application.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	BusinessName string  `json:"businessName" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	Note         *string `json:"note"`
}

func (r contactRequest) toInput() application.ContactInput {
	return application.ContactInput{
		BusinessName: r.BusinessName,
		Phone:        r.Phone,
		Address:      r.Address,
		Note:         r.Note,
	}
}

// List handles GET /api/contacts. With ?businessName= it performs an exact
// name lookup instead of listing everything.
func (h *ContactHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if name := c.Query("businessName"); name != "" {
		contact, err := h.Svc.FindByBusinessName(ctx, name)
		if err != nil || contact == nil {
			response.Error(c, http.StatusNotFound, "Contact with business name "+name+" not found")
			return
		}
		response.JSON(c, http.StatusOK, contact)
		return
	}
	contacts, err := h.Svc.FindAll(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, contacts)
}

func (h *ContactHandler) Get(c *gin.Context) {
	contact, err := h.Svc.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil || contact == nil {
		response.Error(c, http.StatusNotFound, "Contact with id "+c.Param("id")+" not found")
		return
	}
	response.JSON(c, http.StatusOK, contact)
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}
	contact, err := h.Svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}
	contact, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, http.StatusOK)
}
