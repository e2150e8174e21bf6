package dto

import "github.com/shopspring/decimal"

// ─── Filter DTOs (bound from query params) ───────────────────────────────────

type ArticuloFilter struct {
	Search        string `form:"search"`
	Page          int    `form:"page,default=1"   validate:"min=1"`
	Limit         int    `form:"limit,default=20" validate:"min=1"`
	OnlyWithStock bool   `form:"onlyWithStock"`
	AplicacionID  int    `form:"aplicacionId"     validate:"min=0"`
	RubroID       int    `form:"rubroId"          validate:"min=0"`
	ForBot        bool   `form:"forBot"`
}

// PorAplicacionFilter drives the by-application listing: one application id or
// a csv of several. Never paginated.
type PorAplicacionFilter struct {
	AplicacionID  int    `form:"aplicacionId"  validate:"min=0"`
	AplicacionIDs string `form:"aplicacionIds"`
	OnlyWithStock bool   `form:"onlyWithStock"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// AplicacionDeArticulo is one fitment entry nested in an article.
type AplicacionDeArticulo struct {
	Aplicacion *string `json:"aplicacion,omitempty"`
	Nota       *string `json:"nota,omitempty"`
	Desde      *string `json:"desde,omitempty"`
	Hasta      *string `json:"hasta,omitempty"`
}

// RelacionadoResponse is the reduced article projection used inside another
// article's complementarios/sustitutos lists. When the related id has no
// resolvable detail every field but ID stays empty and the entry serializes
// as a bare {"id": n} stub.
type RelacionadoResponse struct {
	ID          int              `json:"id"`
	Descripcion *string          `json:"descripcion,omitempty"`
	Marca       *string          `json:"marca,omitempty"`
	Rubro       *string          `json:"rubro,omitempty"`
	Medida      *string          `json:"medida,omitempty"`
	Anios       *string          `json:"anios,omitempty"`
	Nota        *string          `json:"nota,omitempty"`
	Precio      *decimal.Decimal `json:"precio,omitempty"`
	Stock       *Stock           `json:"stock,omitempty"`
}

type ArticuloResponse struct {
	ID          int              `json:"id"`
	Descripcion *string          `json:"descripcion,omitempty"`
	Marca       *string          `json:"marca,omitempty"`
	Rubro       *string          `json:"rubro,omitempty"`
	Medida      *string          `json:"medida,omitempty"`
	Anios       *string          `json:"anios,omitempty"`
	Nota        *string          `json:"nota,omitempty"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       Stock            `json:"stock"`
	// Aplicaciones is nil (key absent) on capabilities that skip the
	// fitment fetch. When the fetch ran it always points to a list, so an
	// article with no fitment rows still serializes "aplicaciones": [].
	// A plain slice with omitempty cannot express that distinction.
	Aplicaciones    *[]AplicacionDeArticulo `json:"aplicaciones,omitempty"`
	Complementarios []RelacionadoResponse   `json:"complementarios"`
	Sustitutos      []RelacionadoResponse   `json:"sustitutos"`
}

type ArticuloListResponse struct {
	Data       []ArticuloResponse `json:"data"`
	Pagination *Pagination        `json:"pagination,omitempty"`
	Meta       Meta               `json:"meta"`
}
