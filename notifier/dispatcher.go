// Package notifier tells downstream systems about destinations that were
// mapped or unmapped. It runs after the change has been committed and never
// undoes it.
package notifier

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/metrics"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

const (
	auditSink = "audit"
	meshSink  = "mesh"
)

//go:generate counterfeiter -o fakes/audit_repository.go --fake-name AuditRepository . AuditRepository
type AuditRepository interface {
	RecordMapRoute(ctx context.Context, actor models.UserAuditInfo, route models.Route, destination models.Destination, manifestTriggered bool) error
	RecordUnmapRoute(ctx context.Context, actor models.UserAuditInfo, route models.Route, destination models.Destination, manifestTriggered bool) error
}

//go:generate counterfeiter -o fakes/mesh_adapter.go --fake-name MeshAdapter . MeshAdapter
type MeshAdapter interface {
	MapRoute(ctx context.Context, route models.Route, destination models.Destination) error
	UnmapRoute(ctx context.Context, route models.Route, destination models.Destination) error
}

// Changes is one committed update to a route. A destination whose weight
// changed appears in Unmapped with its old weight and in Mapped with the new.
type Changes struct {
	Route             models.Route
	Actor             models.UserAuditInfo
	ManifestTriggered bool
	Mapped            []models.Destination
	Unmapped          []models.Destination
}

type Dispatcher struct {
	AuditRepository AuditRepository
	MeshAdapter     MeshAdapter
}

// Dispatch calls every sink once per unmapped and then once per mapped
// destination, so a destination that is both is left mapped. A failing call
// does not prevent the rest; all failures are returned together.
func (d *Dispatcher) Dispatch(ctx context.Context, changes Changes) error {
	var result error

	for _, dest := range changes.Unmapped {
		if d.AuditRepository != nil {
			err := d.AuditRepository.RecordUnmapRoute(ctx, changes.Actor, changes.Route, dest, changes.ManifestTriggered)
			result = multierr.Append(result, d.failed(auditSink, "unmap", dest, err))
		}
		if d.MeshAdapter != nil {
			err := d.MeshAdapter.UnmapRoute(ctx, changes.Route, dest)
			result = multierr.Append(result, d.failed(meshSink, "unmap", dest, err))
		}
	}

	for _, dest := range changes.Mapped {
		if d.AuditRepository != nil {
			err := d.AuditRepository.RecordMapRoute(ctx, changes.Actor, changes.Route, dest, changes.ManifestTriggered)
			result = multierr.Append(result, d.failed(auditSink, "map", dest, err))
		}
		if d.MeshAdapter != nil {
			err := d.MeshAdapter.MapRoute(ctx, changes.Route, dest)
			result = multierr.Append(result, d.failed(meshSink, "map", dest, err))
		}
	}

	return result
}

func (d *Dispatcher) failed(sink, action string, dest models.Destination, err error) error {
	if err == nil {
		return nil
	}
	metrics.RecordNotificationFailure(sink)
	log.WithFields(log.Fields{
		"sink":             sink,
		"action":           action,
		"route_guid":       dest.RouteGuid,
		"destination_guid": dest.Guid,
	}).WithError(err).Warn("notification failed")
	return fmt.Errorf("%s %s destination %s: %w", sink, action, dest.Guid, err)
}
