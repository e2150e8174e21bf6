package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

var (
	// ErrConexion marks failures reaching or authenticating to the data
	// source. Fatal to the request; surfaced as a 503.
	ErrConexion = errors.New("fallo de conexion con la base de datos")
	// ErrConsulta marks a query that failed on an established connection.
	// Fatal when it is the primary fetch; auxiliary fetches degrade instead.
	ErrConsulta = errors.New("fallo la consulta a la base de datos")
)

// clasificar wraps a driver error with the matching sentinel so callers can
// branch with errors.Is without seeing driver internals.
func clasificar(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrConexion, err)
	}
	return fmt.Errorf("%w: %v", ErrConsulta, err)
}
