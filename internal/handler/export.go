package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/service"
)

// LoadListEnqueuer dispatches the load-list email job to the async queue.
// Implemented by worker.Dispatcher.
type LoadListEnqueuer interface {
	EnqueueLoadList(ctx context.Context, date, recipient string) error
}

type ExportHandler struct {
	svc      service.ExportService
	enqueuer LoadListEnqueuer
}

func NewExportHandler(svc service.ExportService, enqueuer LoadListEnqueuer) *ExportHandler {
	return &ExportHandler{svc: svc, enqueuer: enqueuer}
}

// LoadListCSV godoc
// @Summary      Esporta la lista di carico in CSV
// @Tags         export
// @Produce      text/csv
// @Param        date query string false "Data YYYY-MM-DD (default: oggi)"
// @Success      200 {file} binary
// @Router       /v1/export/load-list [get]
func (h *ExportHandler) LoadListCSV(c *gin.Context) {
	body, filename, err := h.svc.LoadListCSV(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

// StockCSV godoc
// @Summary      Esporta la giacenza di magazzino in CSV
// @Tags         export
// @Produce      text/csv
// @Success      200 {file} binary
// @Router       /v1/export/stock [get]
func (h *ExportHandler) StockCSV(c *gin.Context) {
	body, filename, err := h.svc.StockCSV(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

// EmailLoadList godoc
// @Summary      Invia la lista di carico via email (asincrono)
// @Description  Accoda il lavoro e risponde subito; l'invio avviene nel worker pool con retry e dead letter queue.
// @Tags         export
// @Accept       json
// @Produce      json
// @Param        body body dto.EmailLoadListRequest true "Data e destinatario opzionali"
// @Success      202 {object} map[string]string
// @Router       /v1/export/load-list/email [post]
func (h *ExportHandler) EmailLoadList(c *gin.Context) {
	var req dto.EmailLoadListRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.enqueuer.EnqueueLoadList(c.Request.Context(), req.Date, req.Recipient); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "accodato"})
}
