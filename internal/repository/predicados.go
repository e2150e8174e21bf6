package repository

import (
	"gorm.io/gorm"

	"github.com/agustinbotella/articulos-api/internal/query"
)

// aplicarPredicadosArticulo translates the filter builder's structured
// predicates into parameterized clauses against the article listing query.
// Query text never embeds user input; every value travels as a bind argument.
// The article table is aliased "a" in every query this is applied to.
func aplicarPredicadosArticulo(q *gorm.DB, preds []query.Predicate, depositoID int) *gorm.DB {
	for _, p := range preds {
		switch {
		case p.Field == query.FieldDescripcion && p.Op == query.OpContainsFold:
			q = q.Where("a.descripcion_ext ILIKE ?", "%"+p.Value.(string)+"%")
		case p.Field == query.FieldRubro && p.Op == query.OpEquals:
			q = q.Where("a.rubro_id = ?", p.Value)
		case p.Field == query.FieldStock && p.Op == query.OpStockPositive:
			q = q.Where(
				"EXISTS (SELECT 1 FROM stocks s WHERE s.art_id = a.art_id AND s.deposito_id = ? AND s.existencia > 0)",
				depositoID)
		case p.Field == query.FieldAplicacion && p.Op == query.OpFitmentAny:
			q = q.Where(
				"EXISTS (SELECT 1 FROM articulo_aplicaciones aa WHERE aa.art_id = a.art_id AND aa.aplic_id IN ?)",
				p.Value)
		}
	}
	return q
}

// aplicarPredicadosPath translates the path-contains predicates used by the
// application and category searches. alias is the column reference to match.
func aplicarPredicadosPath(q *gorm.DB, preds []query.Predicate, alias string) *gorm.DB {
	for _, p := range preds {
		if p.Field == query.FieldPath && p.Op == query.OpContainsFold {
			q = q.Where(alias+" ILIKE ?", "%"+p.Value.(string)+"%")
		}
	}
	return q
}
