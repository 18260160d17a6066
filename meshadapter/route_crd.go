// Package meshadapter projects route destinations onto the Route custom
// resources the route controller turns into mesh configuration.
package meshadapter

import (
	"context"
	"fmt"
	"path"

	"github.com/go-logr/logr"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	appsv1alpha1 "code.cloudfoundry.org/cf-k8s-networking/routedestinations/apis/apps/v1alpha1"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

type RouteCRDAdapter struct {
	Client    client.Client
	Namespace string
	Log       logr.Logger
}

// +kubebuilder:rbac:groups=apps.cloudfoundry.org,resources=routes,verbs=get;list;watch;create;update;patch

func (a *RouteCRDAdapter) MapRoute(ctx context.Context, route models.Route, destination models.Destination) error {
	log := a.Log.WithValues("route", route.Guid, "destination", destination.Guid)

	actual := &appsv1alpha1.Route{
		ObjectMeta: metav1.ObjectMeta{Name: route.Guid, Namespace: a.Namespace},
	}
	desired := BuildRoute(route, a.Namespace)

	result, err := controllerutil.CreateOrUpdate(ctx, a.Client, actual, func() error {
		if actual.Labels == nil {
			actual.Labels = map[string]string{}
		}
		for k, v := range desired.Labels {
			actual.Labels[k] = v
		}
		destinations := actual.Spec.Destinations
		actual.Spec = desired.Spec
		actual.Spec.Destinations = destinations

		if _, ok := actual.Destination(destination.Guid); !ok {
			actual.Spec.Destinations = append(actual.Spec.Destinations, BuildDestination(destination))
		}
		return nil
	})
	if err != nil {
		log.Error(err, "failed to map destination onto Route")
		return fmt.Errorf("map destination %s onto route %s: %w", destination.Guid, route.Guid, err)
	}

	log.V(1).Info("mapped destination", "operation", result)
	return nil
}

func (a *RouteCRDAdapter) UnmapRoute(ctx context.Context, route models.Route, destination models.Destination) error {
	log := a.Log.WithValues("route", route.Guid, "destination", destination.Guid)

	actual := &appsv1alpha1.Route{}
	err := a.Client.Get(ctx, types.NamespacedName{Name: route.Guid, Namespace: a.Namespace}, actual)
	if apierrors.IsNotFound(err) {
		log.V(1).Info("route has no custom resource, nothing to unmap")
		return nil
	}
	if err != nil {
		return fmt.Errorf("get route %s: %w", route.Guid, err)
	}

	if !actual.RemoveDestination(destination.Guid) {
		return nil
	}
	if err := a.Client.Update(ctx, actual); err != nil {
		log.Error(err, "failed to unmap destination from Route")
		return fmt.Errorf("unmap destination %s from route %s: %w", destination.Guid, route.Guid, err)
	}

	log.V(1).Info("unmapped destination")
	return nil
}

// BuildRoute builds the complete custom resource for a route and its destinations
func BuildRoute(route models.Route, namespace string) appsv1alpha1.Route {
	destinations := make([]appsv1alpha1.RouteDestination, 0, len(route.Destinations))
	for _, d := range route.Destinations {
		destinations = append(destinations, BuildDestination(d))
	}

	url := route.Url
	if url == "" {
		url = path.Join(route.FQDN(), route.Path)
	}

	return appsv1alpha1.Route{
		TypeMeta: metav1.TypeMeta{
			APIVersion: appsv1alpha1.GroupVersion.String(),
			Kind:       "Route",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      route.Guid,
			Namespace: namespace,
			Labels: map[string]string{
				appsv1alpha1.RouteGuidLabel: route.Guid,
			},
		},
		Spec: appsv1alpha1.RouteSpec{
			Host: route.Host,
			Path: route.Path,
			Url:  url,
			Domain: appsv1alpha1.RouteDomain{
				Name:     route.Domain.Name,
				Internal: route.Domain.Internal,
			},
			Destinations: destinations,
		},
	}
}

func BuildDestination(destination models.Destination) appsv1alpha1.RouteDestination {
	var port *int
	if destination.Port != models.NoAppPortSpecified {
		port = ptr.To(destination.Port)
	}
	var weight *int
	if destination.Weight != nil {
		weight = ptr.To(*destination.Weight)
	}

	return appsv1alpha1.RouteDestination{
		Guid:   destination.Guid,
		Weight: weight,
		Port:   port,
		App: appsv1alpha1.DestinationApp{
			Guid:    destination.App.Guid,
			Process: appsv1alpha1.AppProcess{Type: destination.App.Process.Type},
		},
		Selector: appsv1alpha1.DestinationSelector{
			MatchLabels: map[string]string{
				appsv1alpha1.AppGuidLabel:     destination.App.Guid,
				appsv1alpha1.ProcessTypeLabel: destination.App.Process.Type,
			},
		},
	}
}
