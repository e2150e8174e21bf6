package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agustinbotella/articulos-api/internal/dto"
	"github.com/agustinbotella/articulos-api/internal/query"
	"github.com/agustinbotella/articulos-api/internal/repository"
)

type stubArticuloService struct {
	resp   *dto.ArticuloListResponse
	err    error
	filtro dto.ArticuloFilter
}

func (s *stubArticuloService) Listar(_ context.Context, f dto.ArticuloFilter) (*dto.ArticuloListResponse, error) {
	s.filtro = f
	return s.resp, s.err
}

func (s *stubArticuloService) ListarPorAplicacion(_ context.Context, _ dto.PorAplicacionFilter) (*dto.ArticuloListResponse, error) {
	return s.resp, s.err
}

func routerDePrueba(svc *stubArticuloService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewArticulosHandler(svc)
	r.GET("/v1/articulos", h.Listar)
	r.GET("/v1/articulos/por-aplicacion", h.ListarPorAplicacion)
	return r
}

func hacerGET(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListarArticulosOK(t *testing.T) {
	svc := &stubArticuloService{
		resp: &dto.ArticuloListResponse{
			Data: []dto.ArticuloResponse{{
				ID:              1,
				Stock:           dto.Stock{Kind: dto.StockDesconocido},
				Complementarios: []dto.RelacionadoResponse{},
				Sustitutos:      []dto.RelacionadoResponse{},
			}},
		},
	}
	r := routerDePrueba(svc)

	w := hacerGET(t, r, "/v1/articulos?search=bomba+agua&page=3&limit=50&onlyWithStock=true")
	require.Equal(t, http.StatusOK, w.Code)

	// Bound filter reaches the service intact, defaults aside.
	assert.Equal(t, "bomba agua", svc.filtro.Search)
	assert.Equal(t, 3, svc.filtro.Page)
	assert.Equal(t, 50, svc.filtro.Limit)
	assert.True(t, svc.filtro.OnlyWithStock)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].([]interface{})
	fila := data[0].(map[string]interface{})

	// Wire contract: precio and stock always present, stock unknown is null.
	assert.Contains(t, fila, "precio")
	assert.Nil(t, fila["precio"])
	assert.Contains(t, fila, "stock")
	assert.Nil(t, fila["stock"])
	assert.NotContains(t, fila, "descripcion")
}

func TestListarArticulosDefaults(t *testing.T) {
	svc := &stubArticuloService{resp: &dto.ArticuloListResponse{}}
	r := routerDePrueba(svc)

	w := hacerGET(t, r, "/v1/articulos?search=x")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.filtro.Page)
	assert.Equal(t, 20, svc.filtro.Limit)
}

func TestListarArticulosValidacion(t *testing.T) {
	svc := &stubArticuloService{resp: &dto.ArticuloListResponse{}}
	r := routerDePrueba(svc)

	w := hacerGET(t, r, "/v1/articulos?search=x&page=0")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")
	assert.Contains(t, w.Body.String(), "Page")
}

func TestMapeoDeErrores(t *testing.T) {
	casos := []struct {
		err    error
		status int
		codigo string
	}{
		{query.ErrMissingFilterCriteria, http.StatusBadRequest, "missing_filter_criteria"},
		{fmt.Errorf("dial: %w", repository.ErrConexion), http.StatusServiceUnavailable, "upstream_connection_failure"},
		{fmt.Errorf("scan: %w", repository.ErrConsulta), http.StatusInternalServerError, "upstream_query_failure"},
		{fmt.Errorf("sorpresa"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range casos {
		t.Run(tc.codigo, func(t *testing.T) {
			svc := &stubArticuloService{err: tc.err}
			w := hacerGET(t, routerDePrueba(svc), "/v1/articulos?search=x")

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.codigo)
			// Driver internals never leak to the client.
			assert.NotContains(t, w.Body.String(), "dial")
			assert.NotContains(t, w.Body.String(), "scan")
		})
	}
}

func TestPorAplicacionOK(t *testing.T) {
	total := int64(2)
	svc := &stubArticuloService{
		resp: &dto.ArticuloListResponse{
			Data: []dto.ArticuloResponse{},
			Meta: dto.Meta{QueryTimeMs: 4, TotalCount: &total},
		},
	}
	w := hacerGET(t, routerDePrueba(svc), "/v1/articulos/por-aplicacion?aplicacionIds=3,4")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "pagination")
	meta := body["meta"].(map[string]interface{})
	assert.EqualValues(t, 2, meta["totalCount"])
}
