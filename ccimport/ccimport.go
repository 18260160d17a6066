// Package ccimport adopts the routes Cloud Controller already knows about by
// replaying their destinations through the reconciliation engine.
package ccimport

import (
	"context"
	"fmt"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/ccclient"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/destinations"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

//go:generate counterfeiter -o fakes/ccclient.go --fake-name CCClient . ccClient
type ccClient interface {
	ListRoutes(ctx context.Context, token string) ([]ccclient.Route, error)
	ListDestinationsForRoute(ctx context.Context, routeGUID, token string) ([]ccclient.Destination, error)
	ListDomains(ctx context.Context, token string) ([]ccclient.Domain, error)
}

//go:generate counterfeiter -o fakes/uaaclient.go --fake-name UAAClient . uaaClient
type uaaClient interface {
	GetToken(ctx context.Context) (string, error)
}

//go:generate counterfeiter -o fakes/updater.go --fake-name Updater . updater
type updater interface {
	Replace(ctx context.Context, requests []destinations.DestinationRequest, route models.Route, resolver destinations.AppResolver, actor models.UserAuditInfo, manifestTriggered bool) ([]models.Destination, []models.Destination, error)
}

type Importer struct {
	CCClient  ccClient
	UAAClient uaaClient
	Updater   updater
	Resolver  destinations.AppResolver
	// Actor is recorded on the audit events of imported destinations
	Actor models.UserAuditInfo
}

// ImportOnce makes the destinations of every CC route match what CC reports.
// A route that fails does not stop the others.
func (i *Importer) ImportOnce(ctx context.Context) error {
	token, err := i.UAAClient.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("uaa get token: %w", err)
	}

	routes, err := i.CCClient.ListRoutes(ctx, token)
	if err != nil {
		return fmt.Errorf("cc list routes: %w", err)
	}

	domains, err := i.CCClient.ListDomains(ctx, token)
	if err != nil {
		return fmt.Errorf("cc list domains: %w", err)
	}
	domainsMap := make(map[string]ccclient.Domain)
	for _, domain := range domains {
		domainsMap[domain.Guid] = domain
	}

	var (
		result           error
		imported         int
		created, removed int
	)
	for _, route := range routes {
		c, r, err := i.importRoute(ctx, token, route, domainsMap)
		if err != nil {
			log.WithFields(log.Fields{"route_guid": route.Guid}).WithError(err).Warn("failed to import route")
			result = multierr.Append(result, err)
			continue
		}
		imported++
		created += c
		removed += r
	}

	log.WithFields(log.Fields{
		"routes":   len(routes),
		"imported": imported,
		"created":  created,
		"removed":  removed,
	}).Info("imported routes from cloud controller")

	return result
}

func (i *Importer) importRoute(ctx context.Context, token string, route ccclient.Route, domains map[string]ccclient.Domain) (int, int, error) {
	routeDomainGuid := route.Relationships.Domain.Data.Guid
	domain, ok := domains[routeDomainGuid]
	if !ok {
		return 0, 0, fmt.Errorf("route %s refers to missing domain %s", route.Guid, routeDomainGuid)
	}

	destList, err := i.CCClient.ListDestinationsForRoute(ctx, route.Guid, token)
	if err != nil {
		return 0, 0, fmt.Errorf("cc list destinations for %s: %w", route.Guid, err)
	}

	created, removed, err := i.Updater.Replace(ctx, buildRequests(destList), buildRoute(route, domain), i.Resolver, i.Actor, false)
	if err != nil {
		return 0, 0, fmt.Errorf("import route %s: %w", route.Guid, err)
	}
	return len(created), len(removed), nil
}

func buildRequests(ccDestinations []ccclient.Destination) []destinations.DestinationRequest {
	requests := make([]destinations.DestinationRequest, 0, len(ccDestinations))
	for _, d := range ccDestinations {
		requests = append(requests, destinations.DestinationRequest{
			AppGuid:     d.App.Guid,
			ProcessType: d.App.Process.Type,
			Port:        d.Port,
			Weight:      d.Weight,
		})
	}
	return requests
}

func buildRoute(route ccclient.Route, domain ccclient.Domain) models.Route {
	return models.Route{
		Guid: route.Guid,
		Host: strings.ToLower(route.Host),
		Path: route.Path,
		Url:  normalizedUrl(route, domain),
		Domain: models.Domain{
			Guid:     domain.Guid,
			Name:     strings.ToLower(domain.Name),
			Internal: domain.Internal,
		},
	}
}

func normalizedUrl(route ccclient.Route, domain ccclient.Domain) string {
	fqdn := strings.ToLower(domain.Name)
	if route.Host != "" {
		fqdn = fmt.Sprintf("%s.%s", strings.ToLower(route.Host), fqdn)
	}
	return path.Join(fqdn, route.Path)
}
