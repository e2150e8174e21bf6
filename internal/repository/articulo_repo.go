package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/agustinbotella/articulos-api/internal/config"
	"github.com/agustinbotella/articulos-api/internal/model"
	"github.com/agustinbotella/articulos-api/internal/query"
)

// ArticuloRepository is the data access contract for the article listing and
// its auxiliary fetches. The service depends on this interface, not on the
// concrete GORM implementation, enabling clean unit testing via stubs.
//
// Every method is read-only and scoped to the configured company, price list
// and warehouse. Result order is deterministic (ORDER BY on each query) so
// assembling the same row sets twice yields identical output.
type ArticuloRepository interface {
	// Listar returns the primary article rows matching the criteria within
	// the window, plus the unwindowed total count.
	Listar(ctx context.Context, crit query.Criteria, w query.Window) ([]model.ArticuloDetalle, int64, error)

	// Auxiliary fetches, each keyed by owning article id.
	Precios(ctx context.Context, ids []int) ([]model.Precio, error)
	Existencias(ctx context.Context, ids []int) ([]model.Stock, error)
	Relaciones(ctx context.Context, ids []int) ([]model.Relacion, error)
	Aplicaciones(ctx context.Context, ids []int) ([]model.AplicacionArticulo, error)

	// Resumenes is the second-order fetch: summary detail (including price
	// and stock) for articles referenced by relations but absent from the
	// primary row set.
	Resumenes(ctx context.Context, ids []int) ([]model.ArticuloResumen, error)
}

type articuloRepo struct {
	db         *gorm.DB
	empresaID  int
	listaID    int
	depositoID int
}

func NewArticuloRepository(db *gorm.DB, cfg *config.Config) ArticuloRepository {
	return &articuloRepo{
		db:         db,
		empresaID:  cfg.EmpresaID,
		listaID:    cfg.ListaID,
		depositoID: cfg.DepositoID,
	}
}

const columnasDetalle = "a.art_id, a.descripcion_ext, a.nota, a.medida, a.anio_desde, a.anio_hasta, m.nombre AS marca, r.path AS rubro"

// base builds the filtered article query shared by the count and the page
// select. Brand and category are LEFT JOINed: articles without either still
// list.
func (r *articuloRepo) base(ctx context.Context, preds []query.Predicate) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("articulos a").
		Joins("LEFT JOIN marcas m ON m.marca_id = a.marca_id").
		Joins("LEFT JOIN rubros r ON r.rubro_id = a.rubro_id").
		Where("a.empresa_id = ?", r.empresaID)
	return aplicarPredicadosArticulo(q, preds, r.depositoID)
}

func (r *articuloRepo) Listar(ctx context.Context, crit query.Criteria, w query.Window) ([]model.ArticuloDetalle, int64, error) {
	var total int64
	if err := r.base(ctx, crit.Predicates).Count(&total).Error; err != nil {
		return nil, 0, clasificar(err)
	}

	q := r.base(ctx, crit.Predicates).
		Select(columnasDetalle).
		Order("a.art_id")
	if !w.Bot {
		q = q.Offset(w.Offset).Limit(w.Limit)
	}

	var rows []model.ArticuloDetalle
	if err := q.Scan(&rows).Error; err != nil {
		return nil, 0, clasificar(err)
	}
	return rows, total, nil
}

func (r *articuloRepo) Precios(ctx context.Context, ids []int) ([]model.Precio, error) {
	var rows []model.Precio
	err := r.db.WithContext(ctx).
		Where("lista_id = ? AND art_id IN ?", r.listaID, ids).
		Order("art_id").
		Find(&rows).Error
	if err != nil {
		return nil, clasificar(err)
	}
	return rows, nil
}

func (r *articuloRepo) Existencias(ctx context.Context, ids []int) ([]model.Stock, error) {
	var rows []model.Stock
	err := r.db.WithContext(ctx).
		Where("deposito_id = ? AND art_id IN ?", r.depositoID, ids).
		Order("art_id").
		Find(&rows).Error
	if err != nil {
		return nil, clasificar(err)
	}
	return rows, nil
}

func (r *articuloRepo) Relaciones(ctx context.Context, ids []int) ([]model.Relacion, error) {
	var rows []model.Relacion
	err := r.db.WithContext(ctx).
		Where("art_id IN ?", ids).
		Order("art_id, art_rel_id").
		Find(&rows).Error
	if err != nil {
		return nil, clasificar(err)
	}
	return rows, nil
}

func (r *articuloRepo) Aplicaciones(ctx context.Context, ids []int) ([]model.AplicacionArticulo, error) {
	var rows []model.AplicacionArticulo
	err := r.db.WithContext(ctx).
		Table("articulo_aplicaciones aa").
		Select("aa.art_id, ap.path, aa.nota, aa.desde, aa.hasta").
		Joins("JOIN aplicaciones ap ON ap.aplic_id = aa.aplic_id").
		Where("aa.art_id IN ?", ids).
		Order("aa.art_id, ap.path").
		Scan(&rows).Error
	if err != nil {
		return nil, clasificar(err)
	}
	return rows, nil
}

func (r *articuloRepo) Resumenes(ctx context.Context, ids []int) ([]model.ArticuloResumen, error) {
	var rows []model.ArticuloResumen
	err := r.db.WithContext(ctx).
		Table("articulos a").
		Select(columnasDetalle+", p.precio_final AS precio, s.existencia").
		Joins("LEFT JOIN marcas m ON m.marca_id = a.marca_id").
		Joins("LEFT JOIN rubros r ON r.rubro_id = a.rubro_id").
		Joins("LEFT JOIN precios p ON p.art_id = a.art_id AND p.lista_id = ?", r.listaID).
		Joins("LEFT JOIN stocks s ON s.art_id = a.art_id AND s.deposito_id = ?", r.depositoID).
		Where("a.empresa_id = ? AND a.art_id IN ?", r.empresaID, ids).
		Order("a.art_id").
		Scan(&rows).Error
	if err != nil {
		return nil, clasificar(err)
	}
	return rows, nil
}
