package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agustinbotella/articulos-api/internal/config"
	"github.com/agustinbotella/articulos-api/internal/model"
	"github.com/agustinbotella/articulos-api/internal/query"
)

// RubroRepository lists the category tree. Read-only.
type RubroRepository interface {
	// Listar returns the flattened tree (optionally path-filtered) with
	// derived article counts, ordered by path.
	Listar(ctx context.Context, crit query.Criteria) ([]model.RubroConteo, error)
}

type rubroRepo struct {
	db        *gorm.DB
	empresaID int
}

func NewRubroRepository(db *gorm.DB, cfg *config.Config) RubroRepository {
	return &rubroRepo{db: db, empresaID: cfg.EmpresaID}
}

func (r *rubroRepo) Listar(ctx context.Context, crit query.Criteria) ([]model.RubroConteo, error) {
	q := r.db.WithContext(ctx).
		Table("rubros ru").
		Select(`ru.rubro_id, ru.padre_id, ru.nombre, ru.path, ru.nota,
			(SELECT COUNT(*) FROM articulos a
			 WHERE a.rubro_id = ru.rubro_id AND a.empresa_id = ?) AS articulos`, r.empresaID).
		Order("ru.path")
	q = aplicarPredicadosPath(q, crit.Predicates, "ru.path")

	var rows []model.RubroConteo
	if err := q.Scan(&rows).Error; err != nil {
		return nil, clasificar(err)
	}
	return rows, nil
}
