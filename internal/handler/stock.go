package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/service"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

// List godoc
// @Summary      Giacenza di magazzino per tutti i prodotti
// @Description  Ricalcola la giacenza da giacenza iniziale, produzioni e ordini ad ogni richiesta.
// @Tags         magazzino
// @Produce      json
// @Success      200 {array} dto.StockSnapshot
// @Router       /v1/stock [get]
func (h *StockHandler) List(c *gin.Context) {
	resp, err := h.svc.ListSnapshots(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StockHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetSnapshot(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LoadList godoc
// @Summary      Lista di carico di una giornata
// @Tags         magazzino
// @Produce      json
// @Param        date query string false "Data YYYY-MM-DD (default: oggi)"
// @Success      200 {array} dto.LoadListRow
// @Router       /v1/load-list [get]
func (h *StockHandler) LoadList(c *gin.Context) {
	resp, err := h.svc.LoadList(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
