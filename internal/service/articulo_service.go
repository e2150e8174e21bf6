package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/agustinbotella/articulos-api/internal/dto"
	"github.com/agustinbotella/articulos-api/internal/model"
	"github.com/agustinbotella/articulos-api/internal/query"
	"github.com/agustinbotella/articulos-api/internal/repository"
	"github.com/agustinbotella/articulos-api/internal/worker"
)

// ArticuloService composes the article listings: it builds the filter
// criteria, fetches the primary row set, and assembles the auxiliary row sets
// (prices, stock, fitment, relations, related-article detail) into the
// nested response shape.
type ArticuloService interface {
	Listar(ctx context.Context, f dto.ArticuloFilter) (*dto.ArticuloListResponse, error)
	ListarPorAplicacion(ctx context.Context, f dto.PorAplicacionFilter) (*dto.ArticuloListResponse, error)
}

type articuloService struct {
	repo  repository.ArticuloRepository
	stats *worker.Dispatcher
}

func NewArticuloService(repo repository.ArticuloRepository, stats *worker.Dispatcher) ArticuloService {
	return &articuloService{repo: repo, stats: stats}
}

func (s *articuloService) Listar(ctx context.Context, f dto.ArticuloFilter) (*dto.ArticuloListResponse, error) {
	inicio := time.Now()

	var aplicacionIDs []int
	if f.AplicacionID > 0 {
		aplicacionIDs = []int{f.AplicacionID}
	}
	crit, err := query.ParaArticulos(f.Search, f.OnlyWithStock, f.RubroID, aplicacionIDs)
	if err != nil {
		return nil, err
	}
	w := query.PlanWindow(f.Page, f.Limit, query.MaxLimitArticulos, f.ForBot)

	rows, total, err := s.repo.Listar(ctx, crit, w)
	if err != nil {
		return nil, err
	}

	resp := &dto.ArticuloListResponse{Data: s.ensamblar(ctx, rows, proyeccionListado)}
	if w.Bot {
		resp.Meta = metaBot(inicio, total)
	} else {
		resp.Pagination = paginacion(query.Paginate(w, total))
		resp.Meta = metaPaginada(inicio, crit.WordCount)
	}

	registrarBusqueda(ctx, s.stats, proyeccionListado.Capacidad, crit.WordCount, total, inicio)
	return resp, nil
}

func (s *articuloService) ListarPorAplicacion(ctx context.Context, f dto.PorAplicacionFilter) (*dto.ArticuloListResponse, error) {
	inicio := time.Now()

	ids, err := idsDeAplicacion(f)
	if err != nil {
		return nil, err
	}
	crit, err := query.ParaArticulos("", f.OnlyWithStock, 0, ids)
	if err != nil {
		return nil, err
	}

	// Never paginated: a fitment browser shows the whole compatible set.
	rows, total, err := s.repo.Listar(ctx, crit, query.PlanWindow(0, 0, 0, true))
	if err != nil {
		return nil, err
	}

	resp := &dto.ArticuloListResponse{
		Data: s.ensamblar(ctx, rows, proyeccionPorAplicacion),
		Meta: metaBot(inicio, total),
	}

	registrarBusqueda(ctx, s.stats, proyeccionPorAplicacion.Capacidad, 0, total, inicio)
	return resp, nil
}

// idsDeAplicacion resolves the single-id and csv forms into one id list.
// Malformed csv entries are skipped; an empty result is MissingFilterCriteria.
func idsDeAplicacion(f dto.PorAplicacionFilter) ([]int, error) {
	var ids []int
	if f.AplicacionID > 0 {
		ids = append(ids, f.AplicacionID)
	}
	for _, parte := range strings.Split(f.AplicacionIDs, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(parte)); err == nil && n > 0 {
			ids = append(ids, n)
		}
	}
	if len(ids) == 0 {
		return nil, query.ErrMissingFilterCriteria
	}
	return ids, nil
}

// ─── Assembly ────────────────────────────────────────────────────────────────

// ensamblar joins the primary rows with the auxiliary row sets and produces
// the nested entities in primary order. The auxiliary fetches are independent
// and run concurrently; the related-article detail fetch is a continuation of
// the relations fetch since it needs the relation rows' output. A failed
// auxiliary fetch degrades that category to empty — a price or stock lookup
// failure never blanks out the whole response.
func (s *articuloService) ensamblar(ctx context.Context, rows []model.ArticuloDetalle, proy Proyeccion) []dto.ArticuloResponse {
	resultado := make([]dto.ArticuloResponse, 0, len(rows))
	if len(rows) == 0 {
		// Short circuit: no auxiliary fetches for an empty page.
		return resultado
	}

	ids := make([]int, 0, len(rows))
	enPrimarios := make(map[int]bool, len(rows))
	for _, a := range rows {
		ids = append(ids, a.ArtID)
		enPrimarios[a.ArtID] = true
	}

	var (
		precios     []model.Precio
		existencias []model.Stock
		relaciones  []model.Relacion
		fitment     []model.AplicacionArticulo
		resumenes   []model.ArticuloResumen

		wg sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		rows, err := s.repo.Precios(ctx, ids)
		precios = degradar(rows, err, "precios")
	}()
	go func() {
		defer wg.Done()
		rows, err := s.repo.Existencias(ctx, ids)
		existencias = degradar(rows, err, "existencias")
	}()
	go func() {
		defer wg.Done()
		rows, err := s.repo.Relaciones(ctx, ids)
		relaciones = degradar(rows, err, "relaciones")

		// Second-order fetch: summary detail for related ids outside the
		// primary set. Issued only when relations actually exist.
		faltantes := idsRelacionadosFaltantes(relaciones, enPrimarios)
		if len(faltantes) > 0 {
			res, err := s.repo.Resumenes(ctx, faltantes)
			resumenes = degradar(res, err, "resumenes")
		}
	}()
	if proy.ConAplicaciones {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows, err := s.repo.Aplicaciones(ctx, ids)
			fitment = degradar(rows, err, "aplicaciones")
		}()
	}
	wg.Wait()

	// Index the auxiliary sets. Price and stock use first-match-by-id.
	precioPor := make(map[int]decimal.Decimal, len(precios))
	for _, p := range precios {
		if _, ok := precioPor[p.ArtID]; !ok {
			precioPor[p.ArtID] = p.PrecioFinal
		}
	}
	existenciaPor := make(map[int]int, len(existencias))
	for _, e := range existencias {
		if _, ok := existenciaPor[e.ArtID]; !ok {
			existenciaPor[e.ArtID] = e.Existencia
		}
	}
	relacionesPor := make(map[int][]model.Relacion, len(rows))
	for _, r := range relaciones {
		relacionesPor[r.ArtID] = append(relacionesPor[r.ArtID], r)
	}
	fitmentPor := make(map[int][]model.AplicacionArticulo)
	for _, ap := range fitment {
		fitmentPor[ap.ArtID] = append(fitmentPor[ap.ArtID], ap)
	}

	resumenPor := make(map[int]model.ArticuloResumen, len(resumenes))
	for _, r := range resumenes {
		if _, ok := resumenPor[r.ArtID]; !ok {
			resumenPor[r.ArtID] = r
		}
	}
	// Related ids that are themselves primary rows resolve from data already
	// in hand instead of a second fetch.
	for _, a := range rows {
		if _, ok := resumenPor[a.ArtID]; ok {
			continue
		}
		res := model.ArticuloResumen{ArticuloDetalle: a}
		if p, ok := precioPor[a.ArtID]; ok {
			res.Precio = decimal.NullDecimal{Decimal: p, Valid: true}
		}
		if e, ok := existenciaPor[a.ArtID]; ok {
			ex := e
			res.Existencia = &ex
		}
		resumenPor[a.ArtID] = res
	}

	for _, a := range rows {
		resultado = append(resultado, s.armarArticulo(a, proy, precioPor, existenciaPor, relacionesPor, fitmentPor, resumenPor))
	}
	return resultado
}

func (s *articuloService) armarArticulo(
	a model.ArticuloDetalle,
	proy Proyeccion,
	precioPor map[int]decimal.Decimal,
	existenciaPor map[int]int,
	relacionesPor map[int][]model.Relacion,
	fitmentPor map[int][]model.AplicacionArticulo,
	resumenPor map[int]model.ArticuloResumen,
) dto.ArticuloResponse {
	resp := dto.ArticuloResponse{
		ID:              a.ArtID,
		Descripcion:     campoOpcional(&a.DescripcionExt),
		Marca:           campoOpcional(a.Marca),
		Rubro:           campoOpcional(a.Rubro),
		Medida:          campoOpcional(a.Medida),
		Anios:           rangoAnios(a.AnioDesde, a.AnioHasta),
		Nota:            campoOpcional(a.Nota),
		Complementarios: []dto.RelacionadoResponse{},
		Sustitutos:      []dto.RelacionadoResponse{},
	}

	if p, ok := precioPor[a.ArtID]; ok {
		precio := p
		resp.Precio = &precio
	}

	ex, tieneStock := existenciaPor[a.ArtID]
	switch {
	case !tieneStock && proy.StockFaltanteCero:
		resp.Stock = dto.Stock{Kind: dto.StockCero}
	case !tieneStock:
		resp.Stock = dto.Stock{Kind: dto.StockDesconocido}
	case ex > 0:
		resp.Stock = dto.Stock{Kind: dto.StockPositivo, Cantidad: ex}
	default:
		resp.Stock = dto.Stock{Kind: dto.StockCero}
	}

	if proy.ConAplicaciones {
		aps := make([]dto.AplicacionDeArticulo, 0, len(fitmentPor[a.ArtID]))
		for _, ap := range fitmentPor[a.ArtID] {
			path := ap.Path
			aps = append(aps, dto.AplicacionDeArticulo{
				Aplicacion: campoOpcional(&path),
				Nota:       campoOpcional(ap.Nota),
				Desde:      campoOpcional(ap.Desde),
				Hasta:      campoOpcional(ap.Hasta),
			})
		}
		resp.Aplicaciones = &aps
	}

	// Partition relations by kind; unknown kinds are dropped without error.
	for _, rel := range relacionesPor[a.ArtID] {
		switch rel.TipoID {
		case model.RelacionComplementario:
			resp.Complementarios = append(resp.Complementarios, relacionado(rel.ArtRelID, resumenPor))
		case model.RelacionSustituto:
			resp.Sustitutos = append(resp.Sustitutos, relacionado(rel.ArtRelID, resumenPor))
		}
	}

	// Zero-or-unknown own stock plus a substitute with positive stock
	// becomes the "zero, but substitutes available" sentinel.
	if resp.Stock.Kind == dto.StockCero || resp.Stock.Kind == dto.StockDesconocido {
		for _, sust := range resp.Sustitutos {
			if sust.Stock != nil && sust.Stock.Kind == dto.StockPositivo {
				resp.Stock = dto.Stock{Kind: dto.StockCeroConSustituto}
				break
			}
		}
	}

	return resp
}

// relacionado maps one relation target through the detail lookup. A target
// with no resolvable detail degrades to a bare-id stub — never omitted,
// never fabricated.
func relacionado(id int, resumenPor map[int]model.ArticuloResumen) dto.RelacionadoResponse {
	r, ok := resumenPor[id]
	if !ok {
		return dto.RelacionadoResponse{ID: id}
	}

	out := dto.RelacionadoResponse{
		ID:          id,
		Descripcion: campoOpcional(&r.DescripcionExt),
		Marca:       campoOpcional(r.Marca),
		Rubro:       campoOpcional(r.Rubro),
		Medida:      campoOpcional(r.Medida),
		Anios:       rangoAnios(r.AnioDesde, r.AnioHasta),
		Nota:        campoOpcional(r.Nota),
	}
	if r.Precio.Valid {
		precio := r.Precio.Decimal
		out.Precio = &precio
	}
	if r.Existencia != nil {
		st := dto.Stock{Kind: dto.StockCero}
		if *r.Existencia > 0 {
			st = dto.Stock{Kind: dto.StockPositivo, Cantidad: *r.Existencia}
		}
		out.Stock = &st
	}
	return out
}

// idsRelacionadosFaltantes collects the distinct related ids that are not in
// the primary set, preserving first-seen order for deterministic fetches.
func idsRelacionadosFaltantes(relaciones []model.Relacion, enPrimarios map[int]bool) []int {
	var faltantes []int
	vistos := make(map[int]bool)
	for _, r := range relaciones {
		if enPrimarios[r.ArtRelID] || vistos[r.ArtRelID] {
			continue
		}
		vistos[r.ArtRelID] = true
		faltantes = append(faltantes, r.ArtRelID)
	}
	return faltantes
}

// degradar is the graceful-degradation policy for auxiliary fetches: on error
// the category becomes empty and assembly proceeds.
func degradar[T any](rows []T, err error, categoria string) []T {
	if err != nil {
		log.Warn().Err(err).Str("categoria", categoria).Msg("consulta auxiliar degradada a vacio")
		return nil
	}
	return rows
}

// registrarBusqueda enqueues one search-stats event. Best effort for every
// service: a nil dispatcher or a failed enqueue never affects the response.
func registrarBusqueda(ctx context.Context, stats *worker.Dispatcher, capacidad string, palabras int, filas int64, inicio time.Time) {
	if stats == nil {
		return
	}
	ev := worker.EventoBusqueda{
		Capacidad:  capacidad,
		Palabras:   palabras,
		Filas:      filas,
		DuracionMs: time.Since(inicio).Milliseconds(),
	}
	if err := stats.RegistrarBusqueda(ctx, ev); err != nil {
		log.Debug().Err(err).Msg("no se pudo registrar la busqueda")
	}
}
