package model

import "github.com/shopspring/decimal"

// Precio is an article's final price on one price list.
// The API only ever reads the configured list (cfg.ListaID).
type Precio struct {
	ArtID       int             `gorm:"column:art_id"`
	ListaID     int             `gorm:"column:lista_id"`
	PrecioFinal decimal.Decimal `gorm:"column:precio_final;type:decimal(12,2)"`
}

func (Precio) TableName() string { return "precios" }
