package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agustinbotella/articulos-api/internal/dto"
	"github.com/agustinbotella/articulos-api/internal/service"
)

type ArticulosHandler struct{ svc service.ArticuloService }

func NewArticulosHandler(svc service.ArticuloService) *ArticulosHandler {
	return &ArticulosHandler{svc: svc}
}

// Listar godoc
// @Summary Busqueda paginada de articulos con precios, stock, aplicaciones y relacionados
// @Tags articulos
// @Produce json
// @Param search        query string false "Palabras de busqueda (hasta 5)"
// @Param page          query int    false "Pagina (desde 1)"
// @Param limit         query int    false "Filas por pagina (max 100)"
// @Param onlyWithStock query bool   false "Solo articulos con stock"
// @Param aplicacionId  query int    false "Filtrar por aplicacion"
// @Param rubroId       query int    false "Filtrar por rubro"
// @Param forBot        query bool   false "Respuesta completa sin paginar"
// @Success 200 {object} dto.ArticuloListResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/articulos [get]
func (h *ArticulosHandler) Listar(c *gin.Context) {
	var filter dto.ArticuloFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorAplicacion godoc
// @Summary Todos los articulos compatibles con una o varias aplicaciones, sin paginar
// @Tags articulos
// @Produce json
// @Param aplicacionId  query int    false "Aplicacion"
// @Param aplicacionIds query string false "Lista de aplicaciones separadas por coma"
// @Param onlyWithStock query bool   false "Solo articulos con stock"
// @Success 200 {object} dto.ArticuloListResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/articulos/por-aplicacion [get]
func (h *ArticulosHandler) ListarPorAplicacion(c *gin.Context) {
	var filter dto.PorAplicacionFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListarPorAplicacion(c.Request.Context(), filter)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
