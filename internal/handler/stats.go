package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/agustinbotella/articulos-api/internal/apierror"
	"github.com/agustinbotella/articulos-api/internal/worker"
)

// StatsHandler exposes the counters the worker pool aggregates from search
// events. Reads Redis directly; there is no service layer to go through.
type StatsHandler struct{ rdb *redis.Client }

func NewStatsHandler(rdb *redis.Client) *StatsHandler {
	return &StatsHandler{rdb: rdb}
}

// Obtener godoc
// @Summary Contadores de busquedas acumulados por capacidad
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]map[string]string
// @Router /v1/stats [get]
func (h *StatsHandler) Obtener(c *gin.Context) {
	ctx := c.Request.Context()

	resultado := make(map[string]map[string]string, len(worker.Capacidades))
	for _, cap := range worker.Capacidades {
		valores, err := h.rdb.HGetAll(ctx, worker.PrefijoContadores+cap).Result()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, apierror.New(apierror.CodeUpstreamConnection, "Estadisticas no disponibles"))
			return
		}
		resultado[cap] = valores
	}
	c.JSON(http.StatusOK, resultado)
}
