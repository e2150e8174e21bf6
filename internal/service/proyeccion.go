package service

import "github.com/agustinbotella/articulos-api/internal/worker"

// Proyeccion is the capability-keyed projection policy: which optional pieces
// of an article each capability includes and how it renders missing stock.
// All capabilities run through the same assembly; only the policy differs.
type Proyeccion struct {
	Capacidad string

	// ConAplicaciones controls whether the fitment list is fetched and
	// nested into each article. When false, no fitment query is issued.
	ConAplicaciones bool

	// StockFaltanteCero renders a missing stock row as a literal zero
	// instead of "unknown". The paginated listing distinguishes the two;
	// the by-application listing reports zero.
	StockFaltanteCero bool
}

var (
	proyeccionListado = Proyeccion{
		Capacidad:       worker.CapacidadArticulos,
		ConAplicaciones: true,
	}

	proyeccionPorAplicacion = Proyeccion{
		Capacidad:         worker.CapacidadPorAplicacion,
		StockFaltanteCero: true,
	}
)
