package service

import (
	"context"
	"time"

	"github.com/agustinbotella/articulos-api/internal/dto"
	"github.com/agustinbotella/articulos-api/internal/query"
	"github.com/agustinbotella/articulos-api/internal/repository"
	"github.com/agustinbotella/articulos-api/internal/worker"
)

// AplicacionService serves the fitment search: free-text over the hierarchy
// path, paginated tighter than articles (the rows are cheap but the tree is
// deep).
type AplicacionService interface {
	Buscar(ctx context.Context, f dto.AplicacionFilter) (*dto.AplicacionListResponse, error)
}

type aplicacionService struct {
	repo  repository.AplicacionRepository
	stats *worker.Dispatcher
}

func NewAplicacionService(repo repository.AplicacionRepository, stats *worker.Dispatcher) AplicacionService {
	return &aplicacionService{repo: repo, stats: stats}
}

func (s *aplicacionService) Buscar(ctx context.Context, f dto.AplicacionFilter) (*dto.AplicacionListResponse, error) {
	inicio := time.Now()

	crit, err := query.ParaAplicaciones(f.Search)
	if err != nil {
		return nil, err
	}
	w := query.PlanWindow(f.Page, f.Limit, query.MaxLimitAplicaciones, f.ForBot)

	rows, total, err := s.repo.Buscar(ctx, crit, w)
	if err != nil {
		return nil, err
	}

	data := make([]dto.AplicacionResponse, 0, len(rows))
	for _, ap := range rows {
		path := ap.Path
		resp := dto.AplicacionResponse{
			ID:        ap.AplicID,
			Nota:      campoOpcional(ap.Nota),
			Articulos: ap.Articulos,
		}
		if p := campoOpcional(&path); p != nil {
			resp.Aplicacion = *p
		}
		data = append(data, resp)
	}

	resp := &dto.AplicacionListResponse{Data: data}
	if w.Bot {
		resp.Meta = metaBot(inicio, total)
	} else {
		resp.Pagination = paginacion(query.Paginate(w, total))
		resp.Meta = metaPaginada(inicio, crit.WordCount)
	}

	registrarBusqueda(ctx, s.stats, worker.CapacidadAplicaciones, crit.WordCount, total, inicio)
	return resp, nil
}
