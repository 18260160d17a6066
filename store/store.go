// Package store persists routes and their destinations. All mutation happens
// inside Transact, and reads made through a Tx observe that Tx's own writes.
package store

import (
	"context"
	"errors"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

var (
	ErrDuplicateDestination = errors.New("destination already exists on route")
	ErrTxConflict           = errors.New("transaction aborted after too many conflicting writes")
)

type TxFunc func(ctx context.Context, tx Tx) error

type Store interface {
	// Transact runs fn as one unit of work. Nothing fn wrote is kept if it
	// returns an error. fn may be invoked more than once.
	Transact(ctx context.Context, fn TxFunc) error

	// Routes returns every known route with its destinations.
	Routes(ctx context.Context) ([]models.Route, error)
}

type Tx interface {
	SaveRoute(route models.Route) error
	Destinations(routeGuid string) ([]models.Destination, error)
	DestinationsForProcess(process models.ProcessKey) ([]models.Destination, error)
	Create(destination models.Destination) (models.Destination, error)
	Remove(destination models.Destination) error
	UpdateWeight(destinationGuid string, weight *int) error
}

func copyWeight(weight *int) *int {
	if weight == nil {
		return nil
	}
	w := *weight
	return &w
}
