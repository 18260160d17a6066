package routefetcher

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/metrics"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

//go:generate counterfeiter -o fakes/route_lister.go --fake-name RouteLister . routeLister
type routeLister interface {
	Routes(ctx context.Context) ([]models.Route, error)
}

//go:generate counterfeiter -o fakes/snapshotrepo.go --fake-name SnapshotRepo . snapshotRepo
type snapshotRepo interface {
	Put(snapshot *models.RouteSnapshot) bool
}

type Fetcher struct {
	Store        routeLister
	SnapshotRepo snapshotRepo
	// Clock defaults to time.Now
	Clock func() time.Time
}

// FetchOnce reads every route from the store, builds a snapshot and puts it into the repo
func (f *Fetcher) FetchOnce(ctx context.Context) error {
	fetchedAt := f.now()
	routes, err := f.Store.Routes(ctx)
	if err != nil {
		return fmt.Errorf("store list routes: %w", err)
	}

	snapshot := &models.RouteSnapshot{Routes: routes, FetchedAt: fetchedAt}
	if !f.SnapshotRepo.Put(snapshot) {
		log.WithField("fetched_at", fetchedAt).Debug("Dropped snapshot older than the current one")
		return nil
	}
	metrics.Update(snapshot)

	log.WithFields(log.Fields{
		"routes": len(routes),
	}).Debug("Fetched and put snapshot")

	return nil
}

func (f *Fetcher) now() time.Time {
	if f.Clock != nil {
		return f.Clock()
	}
	return time.Now()
}
