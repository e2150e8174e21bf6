package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agustinbotella/articulos-api/internal/config"
	"github.com/agustinbotella/articulos-api/internal/model"
	"github.com/agustinbotella/articulos-api/internal/query"
)

// AplicacionRepository searches the fitment tree. Read-only.
type AplicacionRepository interface {
	// Buscar returns applications matching the criteria within the window,
	// each with its linked-article count, plus the unwindowed total.
	Buscar(ctx context.Context, crit query.Criteria, w query.Window) ([]model.AplicacionConteo, int64, error)
}

type aplicacionRepo struct {
	db        *gorm.DB
	empresaID int
}

func NewAplicacionRepository(db *gorm.DB, cfg *config.Config) AplicacionRepository {
	return &aplicacionRepo{db: db, empresaID: cfg.EmpresaID}
}

func (r *aplicacionRepo) base(ctx context.Context, preds []query.Predicate) *gorm.DB {
	q := r.db.WithContext(ctx).Table("aplicaciones ap")
	return aplicarPredicadosPath(q, preds, "ap.path")
}

func (r *aplicacionRepo) Buscar(ctx context.Context, crit query.Criteria, w query.Window) ([]model.AplicacionConteo, int64, error) {
	var total int64
	if err := r.base(ctx, crit.Predicates).Count(&total).Error; err != nil {
		return nil, 0, clasificar(err)
	}

	// The linked-article count only counts articles of the configured
	// company; fitment links to other companies' articles stay invisible.
	q := r.base(ctx, crit.Predicates).
		Select(`ap.aplic_id, ap.path, ap.nota,
			(SELECT COUNT(*) FROM articulo_aplicaciones aa
			   JOIN articulos a ON a.art_id = aa.art_id AND a.empresa_id = ?
			 WHERE aa.aplic_id = ap.aplic_id) AS articulos`, r.empresaID).
		Order("ap.path")
	if !w.Bot {
		q = q.Offset(w.Offset).Limit(w.Limit)
	}

	var rows []model.AplicacionConteo
	if err := q.Scan(&rows).Error; err != nil {
		return nil, 0, clasificar(err)
	}
	return rows, total, nil
}
