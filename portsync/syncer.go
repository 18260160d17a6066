// Package portsync converges the ports a process listens on through a
// Kubernetes Service per process.
package portsync

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

type ServicePortSyncer struct {
	Client    client.Client
	Namespace string
	Log       logr.Logger
}

// +kubebuilder:rbac:groups=core,resources=services,verbs=get;list;watch;create;update;patch

func (s *ServicePortSyncer) UpdateRouteInformation(ctx context.Context, process models.ProcessKey, ports []int, validate bool) error {
	log := s.Log.WithValues("process", process.String())

	if validate {
		for _, port := range ports {
			if port < models.MinAppPort || port > models.MaxAppPort {
				return fmt.Errorf("process %s: port %d is outside the %d-%d range", process, port, models.MinAppPort, models.MaxAppPort)
			}
		}
	}

	builder := ServiceBuilder{Namespace: s.Namespace}
	desired := builder.Build(process, ports)
	actual := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      desired.Name,
			Namespace: desired.Namespace,
		},
	}

	result, err := controllerutil.CreateOrUpdate(ctx, s.Client, actual, builder.BuildMutateFunction(actual, &desired))
	if err != nil {
		log.Error(err, "failed to create or update Service")
		return fmt.Errorf("sync service for process %s: %w", process, err)
	}

	log.V(1).Info("synced process ports", "service", desired.Name, "ports", ports, "operation", result)
	return nil
}
