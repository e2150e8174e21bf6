package dto

// Pagination is the paginated envelope's metadata block.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Meta carries diagnostic info about the request. Paginated responses set
// SearchWordCount; bot (unpaginated) responses set TotalCount instead.
// QueryTimeMs never affects control flow.
type Meta struct {
	QueryTimeMs     int64  `json:"queryTimeMs"`
	SearchWordCount *int   `json:"searchWordCount,omitempty"`
	TotalCount      *int64 `json:"totalCount,omitempty"`
}
