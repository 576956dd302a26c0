package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/apierror"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/infra"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/service"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// Create godoc
// @Summary      Registra un nuovo ordine
// @Description  Le righe non valide vengono scartate singolarmente; l'ordine viene salvato in un'unica transazione solo se almeno una riga è valida.
// @Tags         ordini
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateOrderRequest true "Ordine con righe candidate"
// @Success      201  {object} dto.OrderCreatedResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/orders [post]
func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
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

func (h *OrdersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Elimina un ordine con le sue righe
// @Tags         ordini
// @Param        id path string true "ID ordine"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/orders/{id} [delete]
func (h *OrdersHandler) Delete(c *gin.Context) {
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

// Checklist godoc
// @Summary      Scheda di preparazione PDF di un ordine
// @Tags         ordini
// @Produce      application/pdf
// @Param        id path string true "ID ordine"
// @Success      200 {file} binary
// @Router       /v1/orders/{id}/checklist [get]
func (h *OrdersHandler) Checklist(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	detail, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	body, err := infra.GenerateOrderChecklistPDF(detail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Generazione PDF fallita"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="ordine_%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", body)
}

// DayDocument godoc
// @Summary      Documento di giornata PDF con tutti gli ordini di una data
// @Tags         ordini
// @Produce      application/pdf
// @Param        date query string false "Data YYYY-MM-DD (default: oggi)"
// @Success      200 {file} binary
// @Router       /v1/orders/day-document [get]
func (h *OrdersHandler) DayDocument(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	orders, err := h.svc.DayOrders(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	body, err := infra.GenerateDayDocumentPDF(date, orders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Generazione PDF fallita"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="giornata_%s.pdf"`, date))
	c.Data(http.StatusOK, "application/pdf", body)
}
