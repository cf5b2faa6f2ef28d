package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

type mastersHandler struct {
	mastersService portssvc.MastersSvcFacade
}

// registerMastersRoutes exposes the three master catalogs. Reads are open to
// both roles; writes and deletes are CA territory.
func registerMastersRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &mastersHandler{mastersService: services.Masters}

	masters := rg.Group("/masters")

	particulars := masters.Group("/particulars")
	particulars.POST("", caOnly(), h.createParticulars)
	particulars.GET("", h.listParticulars)
	particulars.PUT("/:particulars_id", caOnly(), h.updateParticulars)
	particulars.DELETE("/:particulars_id", caOnly(), h.deleteParticulars)

	rates := masters.Group("/gst-rates")
	rates.POST("", caOnly(), h.createGSTRate)
	rates.GET("", h.listGSTRates)
	rates.PUT("/:gst_rate_id", caOnly(), h.updateGSTRate)
	rates.DELETE("/:gst_rate_id", caOnly(), h.deleteGSTRate)

	terms := masters.Group("/payment-terms")
	terms.POST("", caOnly(), h.createPaymentTerm)
	terms.GET("", h.listPaymentTerms)
	terms.PUT("/:payment_term_id", caOnly(), h.updatePaymentTerm)
	terms.DELETE("/:payment_term_id", caOnly(), h.deletePaymentTerm)
}

func (h *mastersHandler) createParticulars(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateParticularsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p, err := h.mastersService.CreateParticulars(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, p)
}

func (h *mastersHandler) listParticulars(c *gin.Context) {
	items, err := h.mastersService.ListParticulars(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

func (h *mastersHandler) updateParticulars(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateParticularsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	p, err := h.mastersService.UpdateParticulars(c.Request.Context(), c.Param("particulars_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, p)
}

func (h *mastersHandler) deleteParticulars(c *gin.Context) {
	if err := h.mastersService.DeleteParticulars(c.Request.Context(), c.Param("particulars_id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Particulars deleted", nil)
}

func (h *mastersHandler) createGSTRate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGSTRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rate, err := h.mastersService.CreateGSTRate(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, rate)
}

func (h *mastersHandler) listGSTRates(c *gin.Context) {
	items, err := h.mastersService.ListGSTRates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

func (h *mastersHandler) updateGSTRate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateGSTRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rate, err := h.mastersService.UpdateGSTRate(c.Request.Context(), c.Param("gst_rate_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rate)
}

func (h *mastersHandler) deleteGSTRate(c *gin.Context) {
	if err := h.mastersService.DeleteGSTRate(c.Request.Context(), c.Param("gst_rate_id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "GST rate deleted", nil)
}

func (h *mastersHandler) createPaymentTerm(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	term, err := h.mastersService.CreatePaymentTerm(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, term)
}

func (h *mastersHandler) listPaymentTerms(c *gin.Context) {
	items, err := h.mastersService.ListPaymentTerms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, items)
}

func (h *mastersHandler) updatePaymentTerm(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	term, err := h.mastersService.UpdatePaymentTerm(c.Request.Context(), c.Param("payment_term_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, term)
}

func (h *mastersHandler) deletePaymentTerm(c *gin.Context) {
	if err := h.mastersService.DeletePaymentTerm(c.Request.Context(), c.Param("payment_term_id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Payment term deleted", nil)
}
