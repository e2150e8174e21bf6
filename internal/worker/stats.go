// Package worker implements the async search-stats pipeline: services enqueue
// one small event per request into a Redis list and a goroutine pool folds the
// events into per-capability counters. Strictly diagnostic — an enqueue failure
// never affects a response.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// ColaBusquedas is the Redis list the dispatcher feeds and the pool drains.
	ColaBusquedas = "stats:busquedas"
	// PrefijoContadores prefixes the per-capability counter hashes.
	PrefijoContadores = "stats:capacidad:"
)

// Capability names used as counter keys and in enqueued events.
const (
	CapacidadArticulos     = "articulos"
	CapacidadPorAplicacion = "articulos_por_aplicacion"
	CapacidadAplicaciones  = "aplicaciones"
	CapacidadRubros        = "rubros"
)

// Capacidades lists every capability with counters, in display order.
var Capacidades = []string{
	CapacidadArticulos,
	CapacidadPorAplicacion,
	CapacidadAplicaciones,
	CapacidadRubros,
}

// EventoBusqueda is one completed search, as enqueued by the services.
type EventoBusqueda struct {
	Capacidad  string `json:"capacidad"`
	Palabras   int    `json:"palabras"`
	Filas      int64  `json:"filas"`
	DuracionMs int64  `json:"duracion_ms"`
}

// Dispatcher enqueues search events into Redis.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// RegistrarBusqueda pushes one event. Best effort: callers log and move on
// when it fails.
func (d *Dispatcher) RegistrarBusqueda(ctx context.Context, ev EventoBusqueda) error {
	encoded, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, ColaBusquedas, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the stats queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i)
	}
	log.Info().Msgf("stats worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("stats worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, ColaBusquedas).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			procesarEvento(ctx, rdb, result[1])
		}
	}
}

// procesarEvento folds one event into the capability's counter hash.
func procesarEvento(ctx context.Context, rdb *redis.Client, raw string) {
	var ev EventoBusqueda
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal stats event")
		return
	}
	key := PrefijoContadores + ev.Capacidad
	pipe := rdb.Pipeline()
	pipe.HIncrBy(ctx, key, "busquedas", 1)
	pipe.HIncrBy(ctx, key, "palabras", int64(ev.Palabras))
	pipe.HIncrBy(ctx, key, "filas", ev.Filas)
	pipe.HIncrBy(ctx, key, "duracion_ms", ev.DuracionMs)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("capacidad", ev.Capacidad).Msg("failed to update stats counters")
	}
}
