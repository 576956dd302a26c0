package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/service"
)

type ClientsHandler struct{ svc service.ClientService }

func NewClientsHandler(svc service.ClientService) *ClientsHandler {
	return &ClientsHandler{svc: svc}
}

// Create godoc
// @Summary Registra un nuovo cliente
// @Tags clienti
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Dati cliente"
// @Success 201 {object} dto.ClientResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/clients [post]
func (h *ClientsHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary Elenca i clienti in ordine alfabetico
// @Tags clienti
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Router /v1/clients [get]
func (h *ClientsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Elimina un cliente senza ordini
// @Tags clienti
// @Param id path string true "ID cliente"
// @Success 204
// @Failure 409 {object} apierror.APIError
// @Router /v1/clients/{id} [delete]
func (h *ClientsHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
