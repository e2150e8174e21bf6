package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agustinbotella/articulos-api/internal/dto"
	"github.com/agustinbotella/articulos-api/internal/model"
	"github.com/agustinbotella/articulos-api/internal/query"
	"github.com/agustinbotella/articulos-api/internal/worker"
)

type stubAplicacionRepo struct {
	rows    []model.AplicacionConteo
	total   int64
	ventana query.Window
}

func (r *stubAplicacionRepo) Buscar(_ context.Context, _ query.Criteria, w query.Window) ([]model.AplicacionConteo, int64, error) {
	r.ventana = w
	return r.rows, r.total, nil
}

func TestBuscarAplicaciones(t *testing.T) {
	repo := &stubAplicacionRepo{
		rows: []model.AplicacionConteo{
			{AplicID: 10, Path: "FORD -> FIESTA -> 1.6 16V", Nota: str("  desde 2011  "), Articulos: 42},
			{AplicID: 11, Path: "FORD -> FOCUS -> 2.0", Articulos: 0},
		},
		total: 2,
	}
	svc := NewAplicacionService(repo, nil)

	resp, err := svc.Buscar(context.Background(), dto.AplicacionFilter{Search: "ford"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	assert.Equal(t, 10, resp.Data[0].ID)
	assert.Equal(t, "FORD -> FIESTA -> 1.6 16V", resp.Data[0].Aplicacion)
	require.NotNil(t, resp.Data[0].Nota)
	assert.Equal(t, "desde 2011", *resp.Data[0].Nota)
	assert.Equal(t, int64(42), resp.Data[0].Articulos)

	assert.Nil(t, resp.Data[1].Nota)
	assert.Zero(t, resp.Data[1].Articulos)

	require.NotNil(t, resp.Pagination)
	assert.Equal(t, 20, resp.Pagination.Limit) // tighter default cap than articles
	require.NotNil(t, resp.Meta.SearchWordCount)
	assert.Equal(t, 1, *resp.Meta.SearchWordCount)
}

func TestBuscarAplicacionesLimiteAcotado(t *testing.T) {
	repo := &stubAplicacionRepo{}
	svc := NewAplicacionService(repo, nil)

	_, err := svc.Buscar(context.Background(), dto.AplicacionFilter{Search: "ford", Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, query.MaxLimitAplicaciones, repo.ventana.Limit)
}

func TestBuscarAplicacionesRequiereBusqueda(t *testing.T) {
	svc := NewAplicacionService(&stubAplicacionRepo{}, nil)

	_, err := svc.Buscar(context.Background(), dto.AplicacionFilter{Search: "   "})
	assert.ErrorIs(t, err, query.ErrMissingFilterCriteria)
}

// The stats enqueue is best effort in every service: an unreachable Redis
// must never surface as a request error.
func TestBuscarAplicacionesConStatsCaido(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := &stubAplicacionRepo{
		rows:  []model.AplicacionConteo{{AplicID: 1, Path: "VW -> GOL"}},
		total: 1,
	}
	svc := NewAplicacionService(repo, worker.NewDispatcher(rdb))

	resp, err := svc.Buscar(context.Background(), dto.AplicacionFilter{Search: "gol"})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
}

func TestBuscarAplicacionesModoBot(t *testing.T) {
	repo := &stubAplicacionRepo{
		rows:  []model.AplicacionConteo{{AplicID: 1, Path: "VW -> GOL"}},
		total: 1,
	}
	svc := NewAplicacionService(repo, nil)

	resp, err := svc.Buscar(context.Background(), dto.AplicacionFilter{Search: "gol", ForBot: true})
	require.NoError(t, err)

	assert.True(t, repo.ventana.Bot)
	assert.Nil(t, resp.Pagination)
	require.NotNil(t, resp.Meta.TotalCount)
	assert.Equal(t, int64(1), *resp.Meta.TotalCount)
}
