package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/quickhaul/logistics-backend/internal/application"
	"github.com/quickhaul/logistics-backend/internal/domain/entity"
	"github.com/quickhaul/logistics-backend/pkg/response"
	"github.com/quickhaul/logistics-backend/pkg/validation"
)

type DeliveryHandler struct {
	Svc        *application.DeliveryService
	Recipients *application.RecipientService
	Contacts   *application.ContactService
	Logger     *logrus.Logger
}

func NewDeliveryHandler(svc *application.DeliveryService, recipients *application.RecipientService, contacts *application.ContactService, logger *logrus.Logger) *DeliveryHandler {
	return &DeliveryHandler{Svc: svc, Recipients: recipients, Contacts: contacts, Logger: logger}
}

type registerDeliveryRequest struct {
	RecipientID  string            `json:"recipientId"`
	Recipient    *recipientRequest `json:"recipient"`
	BusinessName string            `json:"businessName"`
	PickupPlace  string            `json:"pickupPlace" binding:"required"`
	BoxCount     int               `json:"boxCount" binding:"required,gt=0"`
	Settlement   entity.Settlement `json:"settlement" binding:"required,oneof=PREPAID COLLECT OFFICE RECEIPT_REQUIRED"`
	Fee          *int              `json:"fee"`
	Note         *string           `json:"note"`
}

type changeStatusRequest struct {
	Status entity.Status `json:"status" binding:"required"`
}

func (h *DeliveryHandler) List(c *gin.Context) {
	deliveries, err := h.Svc.FindAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, deliveries)
}

// Register handles POST /api/deliveries. The caller supplies either an
// existing recipientId or an inline recipient to create; an inline recipient
// plus a businessName additionally upserts a contact by that name. The three
// writes are independent and not atomic.
func (h *DeliveryHandler) Register(c *gin.Context) {
	var req registerDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	ctx := c.Request.Context()
	var recipient *entity.Recipient
	switch {
	case req.RecipientID != "":
		rec, err := h.Recipients.FindByID(ctx, req.RecipientID)
		if err != nil || rec == nil {
			response.Error(c, http.StatusNotFound, "Recipient with id "+req.RecipientID+" not found")
			return
		}
		recipient = rec
	case req.Recipient != nil:
		rec, err := h.Recipients.Create(ctx, req.Recipient.toInput())
		if err != nil {
			response.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		recipient = rec
		if req.BusinessName != "" {
			if _, err := h.Contacts.FindOrCreate(ctx, application.ContactInput{
				BusinessName: req.BusinessName,
				Phone:        rec.Phone,
				Address:      rec.Address.Full,
			}); err != nil && h.Logger != nil {
				h.Logger.WithError(err).WithField("business_name", req.BusinessName).Warn("contact find-or-create failed")
			}
		}
	default:
		response.Error(c, http.StatusBadRequest, "Either recipientId or recipient object is required")
		return
	}

	d, err := h.Svc.Register(ctx, *recipient, application.RegisterDeliveryInput{
		PickupPlace: req.PickupPlace,
		BoxCount:    req.BoxCount,
		Settlement:  req.Settlement,
		Fee:         req.Fee,
		Note:        req.Note,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, d)
}

// ChangeStatus handles POST /api/deliveries/:id/status. Unknown ids and
// invalid transitions both come back as 400.
func (h *DeliveryHandler) ChangeStatus(c *gin.Context) {
	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}
	if err := h.Svc.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OK(c, http.StatusOK)
}

func (h *DeliveryHandler) DailyStats(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		response.Error(c, http.StatusBadRequest, "Both start and end dates are required")
		return
	}
	stats, err := h.Svc.DailyStats(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

func (h *DeliveryHandler) MonthlyStats(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.Error(c, http.StatusBadRequest, "Month parameter is required (format: YYYY-MM)")
		return
	}
	stats, err := h.Svc.MonthlyStats(c.Request.Context(), month)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.JSON(c, http.StatusOK, stats)
}
