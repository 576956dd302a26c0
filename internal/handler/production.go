package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/service"
)

type ProductionHandler struct{ svc service.ProductionService }

func NewProductionHandler(svc service.ProductionService) *ProductionHandler {
	return &ProductionHandler{svc: svc}
}

// Record godoc
// @Summary      Registra vaschette prodotte
// @Tags         produzione
// @Accept       json
// @Produce      json
// @Param        body body dto.RecordProductionRequest true "Vaschette prodotte"
// @Success      201  {object} dto.ProductionEntryResponse
// @Router       /v1/production [post]
func (h *ProductionHandler) Record(c *gin.Context) {
	var req dto.RecordProductionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductionHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
