package dto

// ─── Filter DTOs ─────────────────────────────────────────────────────────────

type AplicacionFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1"`
	ForBot bool   `form:"forBot"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AplicacionResponse struct {
	ID         int     `json:"id"`
	Aplicacion string  `json:"aplicacion"`
	Nota       *string `json:"nota,omitempty"`
	Articulos  int64   `json:"articulos"`
}

type AplicacionListResponse struct {
	Data       []AplicacionResponse `json:"data"`
	Pagination *Pagination          `json:"pagination,omitempty"`
	Meta       Meta                 `json:"meta"`
}
