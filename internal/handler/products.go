package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/service"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Create godoc
// @Summary      Registra un nuovo prodotto
// @Description  Il fattore kg/vaschetta e la giacenza iniziale accettano la virgola come separatore decimale.
// @Tags         prodotti
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateProductRequest true "Dati prodotto"
// @Success      201  {object} dto.ProductResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
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

func (h *ProductsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Modifica un prodotto esistente
// @Description  Aggiorna solo i campi presenti nel corpo. Lo storico di ordini e produzioni resta invariato e la giacenza viene ricalcolata con il nuovo fattore.
// @Tags         prodotti
// @Accept       json
// @Produce      json
// @Param        id   path string true "ID prodotto"
// @Param        body body dto.UpdateProductRequest true "Campi da aggiornare"
// @Success      200  {object} dto.ProductResponse
// @Router       /v1/products/{id} [put]
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
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
