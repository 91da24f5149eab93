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

type RecipientHandler struct {
	Svc    *application.RecipientService
	Logger *logrus.Logger
}

func NewRecipientHandler(svc *application.RecipientService, logger *logrus.Logger) *RecipientHandler {
	return &RecipientHandler{Svc: svc, Logger: logger}
}

type recipientRequest struct {
	Name    *string  `json:"name"`
	Phone   string   `json:"phone" binding:"required"`
	Address string   `json:"address" binding:"required"`
	Memo    *string  `json:"memo"`
	Lat     *float64 `json:"lat" binding:"omitempty,latitude"`
	Lng     *float64 `json:"lng" binding:"omitempty,longitude"`
}

func (r recipientRequest) toInput() application.RecipientInput {
	return application.RecipientInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Address: r.Address,
		Memo:    r.Memo,
		Lat:     r.Lat,
		Lng:     r.Lng,
	}
}

// Search handles GET /api/recipients?q= and returns at most 10 matches.
func (h *RecipientHandler) Search(c *gin.Context) {
	recipients, err := h.Svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, recipients)
}

func (h *RecipientHandler) Create(c *gin.Context) {
	var req recipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}
	rec, err := h.Svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, rec)
}

func (h *RecipientHandler) Update(c *gin.Context) {
	var req recipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}
	rec, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, rec)
}

func (h *RecipientHandler) Delete(c *gin.Context) {
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
