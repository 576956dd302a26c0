package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/service"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Stats godoc
// @Summary      Statistiche di vendita
// @Description  Prodotti e clienti più ordinati e andamento mensile delle quantità.
// @Tags         report
// @Produce      json
// @Success      200 {object} dto.StatsResponse
// @Router       /v1/reports/stats [get]
func (h *ReportsHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
