package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/gstbill/gst_billing_app/internal/core/ports/services"
	"github.com/gstbill/gst_billing_app/internal/dto"
)

type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func registerClientRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &clientHandler{clientService: services.Client}

	clients := rg.Group("/clients")
	clients.POST("", h.createClient)
	clients.GET("", h.listClients)
	clients.GET("/search", h.searchClients)
	clients.POST("/bulk-import", h.bulkImportClients)
	clients.GET("/:client_id", h.getClient)
	clients.PUT("/:client_id", h.updateClient)
	clients.DELETE("/:client_id", caOnly(), h.deleteClient)
}

// createClient inserts a client. When the name resembles existing clients
// and the request was not confirmed, nothing is written and the candidates
// come back as a warning, not an error.
func (h *clientHandler) createClient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	outcome, err := h.clientService.CreateClient(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if outcome.Client == nil {
		respondOK(c, dto.DuplicateWarningResponse{
			Warning:    "Similar client names already exist; resubmit with confirmed=true to create anyway",
			Candidates: outcome.Candidates,
		})
		return
	}
	respondCreated(c, outcome.Client)
}

func (h *clientHandler) listClients(c *gin.Context) {
	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, clients)
}

func (h *clientHandler) searchClients(c *gin.Context) {
	var params dto.SearchClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	clients, err := h.clientService.SearchClients(c.Request.Context(), params.Q)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, clients)
}

func (h *clientHandler) bulkImportClients(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.BulkImportClientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.clientService.BulkImportClients(c.Request.Context(), req.Clients, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result)
}

func (h *clientHandler) getClient(c *gin.Context) {
	client, err := h.clientService.GetClientByID(c.Request.Context(), c.Param("client_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, client)
}

func (h *clientHandler) updateClient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), c.Param("client_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, client)
}

func (h *clientHandler) deleteClient(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), c.Param("client_id"), userID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Client deactivated", nil)
}
