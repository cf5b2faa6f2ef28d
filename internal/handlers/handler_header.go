package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

type headerHandler struct {
	headerService portssvc.HeaderSvcFacade
}

func registerHeaderRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &headerHandler{headerService: services.Header}

	headers := rg.Group("/headers")
	headers.POST("", caOnly(), h.createHeader)
	headers.GET("", h.listHeaders)
	headers.GET("/:header_id", h.getHeader)
	headers.PUT("/:header_id", caOnly(), h.updateHeader)
}

func (h *headerHandler) createHeader(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	header, err := h.headerService.CreateHeader(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, header)
}

func (h *headerHandler) listHeaders(c *gin.Context) {
	headers, err := h.headerService.ListHeaders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, headers)
}

func (h *headerHandler) getHeader(c *gin.Context) {
	header, err := h.headerService.GetHeaderByID(c.Request.Context(), c.Param("header_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, header)
}

func (h *headerHandler) updateHeader(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	header, err := h.headerService.UpdateHeader(c.Request.Context(), c.Param("header_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, header)
}
