package service

import (
	"context"
	"time"

	"github.com/agustinbotella/articulos-api/internal/dto"
	"github.com/agustinbotella/articulos-api/internal/query"
	"github.com/agustinbotella/articulos-api/internal/repository"
	"github.com/agustinbotella/articulos-api/internal/worker"
)

// RubroService lists the flattened category tree with derived article counts.
// Always a full listing — the tree is small and consumed whole, so the
// forBot flag only exists for interface symmetry with the other listings.
type RubroService interface {
	Listar(ctx context.Context, f dto.RubroFilter) (*dto.RubroListResponse, error)
}

type rubroService struct {
	repo  repository.RubroRepository
	stats *worker.Dispatcher
}

func NewRubroService(repo repository.RubroRepository, stats *worker.Dispatcher) RubroService {
	return &rubroService{repo: repo, stats: stats}
}

func (s *rubroService) Listar(ctx context.Context, f dto.RubroFilter) (*dto.RubroListResponse, error) {
	inicio := time.Now()

	crit := query.ParaRubros(f.Search)
	rows, err := s.repo.Listar(ctx, crit)
	if err != nil {
		return nil, err
	}

	data := make([]dto.RubroResponse, 0, len(rows))
	for _, r := range rows {
		data = append(data, dto.RubroResponse{
			ID:        r.RubroID,
			PadreID:   r.PadreID,
			Nombre:    r.Nombre,
			Path:      r.Path,
			Nota:      campoOpcional(r.Nota),
			Articulos: r.Articulos,
		})
	}

	resp := &dto.RubroListResponse{
		Data: data,
		Meta: metaBot(inicio, int64(len(data))),
	}

	registrarBusqueda(ctx, s.stats, worker.CapacidadRubros, crit.WordCount, int64(len(data)), inicio)
	return resp, nil
}
