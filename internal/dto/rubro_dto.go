package dto

// ─── Filter DTOs ─────────────────────────────────────────────────────────────

type RubroFilter struct {
	Search string `form:"search"`
	ForBot bool   `form:"forBot"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// RubroResponse is one flattened category tree node with its derived article
// count. PadreID is omitted for roots.
type RubroResponse struct {
	ID        int     `json:"id"`
	PadreID   *int    `json:"padreId,omitempty"`
	Nombre    string  `json:"nombre"`
	Path      string  `json:"path"`
	Nota      *string `json:"nota,omitempty"`
	Articulos int64   `json:"articulos"`
}

// RubroListResponse is always unpaginated: the category tree is small and is
// consumed whole by the browser sidebar and by bots alike.
type RubroListResponse struct {
	Data []RubroResponse `json:"data"`
	Meta Meta            `json:"meta"`
}
