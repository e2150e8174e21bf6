package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agustinbotella/articulos-api/internal/dto"
	"github.com/agustinbotella/articulos-api/internal/service"
)

type RubrosHandler struct{ svc service.RubroService }

func NewRubrosHandler(svc service.RubroService) *RubrosHandler {
	return &RubrosHandler{svc: svc}
}

// Listar godoc
// @Summary Arbol de rubros aplanado con conteo de articulos por rubro
// @Tags rubros
// @Produce json
// @Param search query string false "Filtro sobre el path del rubro"
// @Param forBot query bool   false "Sin efecto: el listado nunca pagina"
// @Success 200 {object} dto.RubroListResponse
// @Router /v1/rubros [get]
func (h *RubrosHandler) Listar(c *gin.Context) {
	var filter dto.RubroFilter
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
