package portsync

import (
	"crypto/sha256"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	appsv1alpha1 "code.cloudfoundry.org/cf-k8s-networking/routedestinations/apis/apps/v1alpha1"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

const (
	httpPortName      = "http"
	processAnnotation = "cloudfoundry.org/process"
)

type ServiceBuilder struct {
	Namespace string
}

// ProcessServiceName is the name of the Service that exposes a process.
// Service names cannot start with numbers and app guids often do.
func ProcessServiceName(process models.ProcessKey) string {
	sum := sha256.Sum256([]byte(process.String()))
	return fmt.Sprintf("p-%x", sum[:10])
}

// Build returns the Service opening ports on the process. Without ports the
// process keeps its default port.
func (b *ServiceBuilder) Build(process models.ProcessKey, ports []int) corev1.Service {
	servicePorts := []corev1.ServicePort{}
	for _, port := range ports {
		servicePorts = append(servicePorts, corev1.ServicePort{
			Name:       fmt.Sprintf("%s-%d", httpPortName, port),
			Port:       int32(port),
			TargetPort: intstr.FromInt(port),
		})
	}
	if len(servicePorts) == 0 {
		servicePorts = append(servicePorts, corev1.ServicePort{
			Name:       httpPortName,
			Port:       models.DefaultHTTPPort,
			TargetPort: intstr.FromInt(models.DefaultHTTPPort),
		})
	}

	labels := map[string]string{
		appsv1alpha1.AppGuidLabel:     process.AppGuid,
		appsv1alpha1.ProcessTypeLabel: process.ProcessType,
	}
	return corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:        ProcessServiceName(process),
			Namespace:   b.Namespace,
			Labels:      labels,
			Annotations: map[string]string{processAnnotation: process.String()},
		},
		Spec: corev1.ServiceSpec{
			Selector: map[string]string{
				appsv1alpha1.AppGuidLabel:     process.AppGuid,
				appsv1alpha1.ProcessTypeLabel: process.ProcessType,
			},
			Ports: servicePorts,
		},
	}
}

func (b *ServiceBuilder) BuildMutateFunction(actualService, desiredService *corev1.Service) controllerutil.MutateFn {
	return func() error {
		actualService.ObjectMeta.Labels = desiredService.ObjectMeta.Labels
		actualService.ObjectMeta.Annotations = desiredService.ObjectMeta.Annotations
		actualService.Spec.Selector = desiredService.Spec.Selector
		actualService.Spec.Ports = desiredService.Spec.Ports
		return nil
	}
}
