package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/agustinbotella/articulos-api/internal/dto"
	"github.com/agustinbotella/articulos-api/internal/query"
)

// campoOpcional applies the optional-field rule: the result is a trimmed copy
// of the value, or nil when the value is absent or blank after trimming.
// A nil result keeps the field out of the serialized response entirely —
// optional fields are never emitted as "".
func campoOpcional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// rangoAnios derives the display year range from the article's desde/hasta
// columns. Open ends keep their side of the dash; both absent yields nil so
// the field is omitted.
func rangoAnios(desde, hasta *int) *string {
	var r string
	switch {
	case desde != nil && hasta != nil:
		r = fmt.Sprintf("%d-%d", *desde, *hasta)
	case desde != nil:
		r = fmt.Sprintf("%d-", *desde)
	case hasta != nil:
		r = fmt.Sprintf("-%d", *hasta)
	default:
		return nil
	}
	return &r
}

// metaPaginada builds the meta block for paginated envelopes.
func metaPaginada(inicio time.Time, palabras int) dto.Meta {
	wc := palabras
	return dto.Meta{
		QueryTimeMs:     time.Since(inicio).Milliseconds(),
		SearchWordCount: &wc,
	}
}

// metaBot builds the meta block for bot (unpaginated) envelopes.
func metaBot(inicio time.Time, total int64) dto.Meta {
	tc := total
	return dto.Meta{
		QueryTimeMs: time.Since(inicio).Milliseconds(),
		TotalCount:  &tc,
	}
}

// paginacion maps the planner's page info to the response block.
func paginacion(pi query.PageInfo) *dto.Pagination {
	return &dto.Pagination{
		Page:       pi.Page,
		Limit:      pi.Limit,
		Total:      pi.Total,
		TotalPages: pi.TotalPages,
		HasNext:    pi.HasNext,
		HasPrev:    pi.HasPrev,
	}
}
