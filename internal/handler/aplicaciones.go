package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agustinbotella/articulos-api/internal/dto"
	"github.com/agustinbotella/articulos-api/internal/service"
)

type AplicacionesHandler struct{ svc service.AplicacionService }

func NewAplicacionesHandler(svc service.AplicacionService) *AplicacionesHandler {
	return &AplicacionesHandler{svc: svc}
}

// Buscar godoc
// @Summary Busqueda de aplicaciones (vehiculo/motor) con conteo de articulos
// @Tags aplicaciones
// @Produce json
// @Param search query string true  "Palabras de busqueda (obligatorio)"
// @Param page   query int    false "Pagina (desde 1)"
// @Param limit  query int    false "Filas por pagina (max 20)"
// @Param forBot query bool   false "Respuesta completa sin paginar"
// @Success 200 {object} dto.AplicacionListResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/aplicaciones [get]
func (h *AplicacionesHandler) Buscar(c *gin.Context) {
	var filter dto.AplicacionFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), filter)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
