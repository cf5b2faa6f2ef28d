package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

type billHandler struct {
	billService portssvc.BillSvcFacade
}

func registerBillRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &billHandler{billService: services.Bill}

	bills := rg.Group("/bills")
	bills.POST("", h.createBill)
	bills.GET("", h.listBills)
	bills.GET("/by-number/:bill_no", h.getBillByNumber)
	bills.GET("/:bill_id", h.getBill)
	bills.PUT("/:bill_id", h.updateBill)
	bills.PUT("/:bill_id/finalize", h.finalizeBill)
	bills.DELETE("/:bill_id", h.deleteBill)
	bills.POST("/:bill_id/services", h.addService)
	bills.DELETE("/:bill_id/services/:service_id", h.deleteService)
	bills.POST("/:bill_id/email-sent", h.recordEmailSent)
	bills.GET("/:bill_id/history", h.getBillHistory)
}

func (h *billHandler) createBill(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, bill)
}

func (h *billHandler) listBills(c *gin.Context) {
	var params dto.ListBillsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.billService.ListBills(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, page)
}

func (h *billHandler) getBill(c *gin.Context) {
	bill, err := h.billService.GetBillByID(c.Request.Context(), c.Param("bill_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, bill)
}

func (h *billHandler) getBillByNumber(c *gin.Context) {
	bill, err := h.billService.GetBillByBillNo(c.Request.Context(), c.Param("bill_no"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, bill)
}

func (h *billHandler) updateBill(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bill, err := h.billService.UpdateBill(c.Request.Context(), c.Param("bill_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, bill)
}

func (h *billHandler) finalizeBill(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	bill, err := h.billService.FinalizeBill(c.Request.Context(), c.Param("bill_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, bill)
}

func (h *billHandler) deleteBill(c *gin.Context) {
	if err := h.billService.DeleteBill(c.Request.Context(), c.Param("bill_id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Bill deleted", nil)
}

func (h *billHandler) addService(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AddBillServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	bill, err := h.billService.AddService(c.Request.Context(), c.Param("bill_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, bill)
}

func (h *billHandler) deleteService(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	bill, err := h.billService.DeleteService(c.Request.Context(), c.Param("bill_id"), c.Param("service_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, bill)
}

// emailSentRequest records the outcome of a send attempt made by the
// frontend's mail integration.
type emailSentRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=SENT FAILED"`
}

func (h *billHandler) recordEmailSent(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req emailSentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.billService.RecordEmailSent(c.Request.Context(), c.Param("bill_id"), userID, req.Outcome); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Email event recorded", nil)
}

func (h *billHandler) getBillHistory(c *gin.Context) {
	history, err := h.billService.GetBillHistory(c.Request.Context(), c.Param("bill_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, history)
}
