// Package audit records who mapped or unmapped which destination.
package audit

import (
	"context"
	"time"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

const (
	EventTypeMapRoute   = "audit.app.map-route"
	EventTypeUnmapRoute = "audit.app.unmap-route"

	ActorTypeUser = "user"
	ActeeTypeApp  = "app"
)

type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Actor     Actor     `json:"actor"`
	Actee     Actee     `json:"actee"`
	Metadata  Metadata  `json:"metadata"`
}

type Actor struct {
	Guid  string `json:"guid"`
	Type  string `json:"type"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

type Actee struct {
	Guid string `json:"guid"`
	Type string `json:"type"`
}

type Metadata struct {
	RouteGuid         string `json:"route_guid"`
	DestinationGuid   string `json:"destination_guid"`
	AppPort           *int   `json:"app_port"`
	ProcessType       string `json:"process_type"`
	Weight            *int   `json:"weight"`
	ManifestTriggered bool   `json:"manifest_triggered,omitempty"`
}

//go:generate counterfeiter -o fakes/event_writer.go --fake-name EventWriter . EventWriter
type EventWriter interface {
	Write(ctx context.Context, event Event) error
}

// Repository turns route mapping changes into audit events
type Repository struct {
	Writer EventWriter
	Clock  func() time.Time
}

func (r *Repository) RecordMapRoute(ctx context.Context, actor models.UserAuditInfo, route models.Route, destination models.Destination, manifestTriggered bool) error {
	return r.Writer.Write(ctx, r.build(EventTypeMapRoute, actor, route, destination, manifestTriggered))
}

func (r *Repository) RecordUnmapRoute(ctx context.Context, actor models.UserAuditInfo, route models.Route, destination models.Destination, manifestTriggered bool) error {
	return r.Writer.Write(ctx, r.build(EventTypeUnmapRoute, actor, route, destination, manifestTriggered))
}

func (r *Repository) build(eventType string, actor models.UserAuditInfo, route models.Route, destination models.Destination, manifestTriggered bool) Event {
	now := time.Now
	if r.Clock != nil {
		now = r.Clock
	}

	// the sentinel port is reported as no port at all
	var port *int
	if destination.Port != models.NoAppPortSpecified {
		port = models.IntPtr(destination.Port)
	}
	var weight *int
	if destination.Weight != nil {
		weight = models.IntPtr(*destination.Weight)
	}

	return Event{
		Type:      eventType,
		Timestamp: now().UTC(),
		Actor: Actor{
			Guid:  actor.UserGuid,
			Type:  ActorTypeUser,
			Email: actor.UserEmail,
			Name:  actor.UserName,
		},
		Actee: Actee{Guid: destination.App.Guid, Type: ActeeTypeApp},
		Metadata: Metadata{
			RouteGuid:         route.Guid,
			DestinationGuid:   destination.Guid,
			AppPort:           port,
			ProcessType:       destination.App.Process.Type,
			Weight:            weight,
			ManifestTriggered: manifestTriggered,
		},
	}
}
