package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agustinbotella/articulos-api/internal/dto"
	"github.com/agustinbotella/articulos-api/internal/model"
	"github.com/agustinbotella/articulos-api/internal/query"
)

type stubRubroRepo struct {
	rows []model.RubroConteo
	crit query.Criteria
}

func (r *stubRubroRepo) Listar(_ context.Context, crit query.Criteria) ([]model.RubroConteo, error) {
	r.crit = crit
	return r.rows, nil
}

func TestListarRubros(t *testing.T) {
	padre := 1
	repo := &stubRubroRepo{
		rows: []model.RubroConteo{
			{RubroID: 1, Nombre: "Frenos", Path: "Frenos", Articulos: 120},
			{RubroID: 2, PadreID: &padre, Nombre: "Pastillas", Path: "Frenos -> Pastillas", Articulos: 80},
		},
	}
	svc := NewRubroService(repo, nil)

	resp, err := svc.Listar(context.Background(), dto.RubroFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	assert.Nil(t, resp.Data[0].PadreID)
	require.NotNil(t, resp.Data[1].PadreID)
	assert.Equal(t, 1, *resp.Data[1].PadreID)
	assert.Equal(t, "Frenos -> Pastillas", resp.Data[1].Path)
	assert.Equal(t, int64(80), resp.Data[1].Articulos)

	// Always a full listing: the reply carries totalCount, never a
	// pagination block.
	require.NotNil(t, resp.Meta.TotalCount)
	assert.Equal(t, int64(2), *resp.Meta.TotalCount)
	assert.Empty(t, repo.crit.Predicates)
}

func TestListarRubrosConFiltro(t *testing.T) {
	repo := &stubRubroRepo{}
	svc := NewRubroService(repo, nil)

	resp, err := svc.Listar(context.Background(), dto.RubroFilter{Search: "frenos discos"})
	require.NoError(t, err)

	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Len(t, repo.crit.Predicates, 2)
}
