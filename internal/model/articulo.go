// Package model holds the read-only row types the repositories scan into.
// The upstream ERP owns the schema; this service never writes to it, so the
// types mirror query projections rather than full tables.
package model

import "github.com/shopspring/decimal"

// ArticuloDetalle is the row shape returned by the article listing query:
// the article joined with its brand name and category path. It is also the
// source for related-article summaries, where Precio and Existencia come
// from extra LEFT JOINs against the configured price list and warehouse.
type ArticuloDetalle struct {
	ArtID          int     `gorm:"column:art_id"`
	DescripcionExt string  `gorm:"column:descripcion_ext"`
	Nota           *string `gorm:"column:nota"`
	Medida         *string `gorm:"column:medida"`
	AnioDesde      *int    `gorm:"column:anio_desde"`
	AnioHasta      *int    `gorm:"column:anio_hasta"`
	Marca          *string `gorm:"column:marca"`
	Rubro          *string `gorm:"column:rubro"`
}

// ArticuloResumen is the second-order fetch row used to expand
// complementary/substitute references: article detail plus its price on
// the configured list and stock in the configured warehouse.
type ArticuloResumen struct {
	ArticuloDetalle
	Precio     decimal.NullDecimal `gorm:"column:precio"`
	Existencia *int                `gorm:"column:existencia"`
}
