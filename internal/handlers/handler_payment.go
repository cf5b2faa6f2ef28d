package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func registerPaymentRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &paymentHandler{paymentService: services.Payment}

	rg.POST("/payments", caOnly(), h.markPayment)
	rg.DELETE("/payments/:payment_id", caOnly(), h.deletePayment)
	rg.GET("/bills/:bill_id/payments", h.getPaymentHistory)
}

func (h *paymentHandler) markPayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.MarkPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.paymentService.MarkPayment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, resp)
}

func (h *paymentHandler) getPaymentHistory(c *gin.Context) {
	payments, err := h.paymentService.GetPaymentHistory(c.Request.Context(), c.Param("bill_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, payments)
}

func (h *paymentHandler) deletePayment(c *gin.Context) {
	if err := h.paymentService.DeletePayment(c.Request.Context(), c.Param("payment_id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Payment deleted", nil)
}
