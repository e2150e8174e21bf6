package query

const (
	// DefaultLimit applies when the request carries no limit.
	DefaultLimit = 20
	// MaxLimitArticulos caps the article listing page size.
	MaxLimitArticulos = 100
	// MaxLimitAplicaciones caps the application search page size.
	MaxLimitAplicaciones = 20
	// MaxTotalPages caps the reported page count regardless of the real
	// total — a circuit breaker against unbounded pagination metadata.
	MaxTotalPages = 100
)

// Window is the planned result window for one request.
// Bot windows bypass pagination entirely: every matching row is returned.
type Window struct {
	Page   int
	Limit  int
	Offset int
	Bot    bool
}

// PlanWindow normalizes page/limit against the capability's cap and derives
// the offset. maxLimit <= 0 falls back to DefaultLimit.
func PlanWindow(page, limit, maxLimit int, bot bool) Window {
	if bot {
		return Window{Bot: true}
	}
	if maxLimit <= 0 {
		maxLimit = DefaultLimit
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Window{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// PageInfo is the derived pagination metadata for a window and a total count.
type PageInfo struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Paginate computes pagination metadata. TotalPages is capped at
// MaxTotalPages; HasNext is evaluated after the cap, so pages past the cap
// are never reachable. An empty result yields TotalPages 0 with both
// cursors false, never an error.
func Paginate(w Window, total int64) PageInfo {
	pages := 0
	if total > 0 && w.Limit > 0 {
		pages = int((total + int64(w.Limit) - 1) / int64(w.Limit))
		if pages > MaxTotalPages {
			pages = MaxTotalPages
		}
	}
	return PageInfo{
		Page:       w.Page,
		Limit:      w.Limit,
		Total:      total,
		TotalPages: pages,
		HasNext:    w.Page < pages,
		HasPrev:    w.Page > 1,
	}
}
