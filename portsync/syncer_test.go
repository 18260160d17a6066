package portsync_test

import (
	"context"
	"regexp"

	"github.com/go-logr/logr"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/portsync"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ServicePortSyncer", func() {
	var (
		ctx       context.Context
		k8sClient client.Client
		syncer    *portsync.ServicePortSyncer
		process   models.ProcessKey
	)

	getService := func() *corev1.Service {
		service := &corev1.Service{}
		Expect(k8sClient.Get(ctx, types.NamespacedName{
			Name:      portsync.ProcessServiceName(process),
			Namespace: "cf-workloads",
		}, service)).To(Succeed())
		return service
	}

	BeforeEach(func() {
		ctx = context.Background()
		scheme := runtime.NewScheme()
		Expect(corev1.AddToScheme(scheme)).To(Succeed())
		k8sClient = fake.NewClientBuilder().WithScheme(scheme).Build()
		syncer = &portsync.ServicePortSyncer{
			Client:    k8sClient,
			Namespace: "cf-workloads",
			Log:       logr.Discard(),
		}
		process = models.ProcessKey{AppGuid: "1234-app-guid", ProcessType: "web"}
	})

	It("creates a Service opening every port on the process", func() {
		Expect(syncer.UpdateRouteInformation(ctx, process, []int{8080, 9000}, false)).To(Succeed())

		service := getService()
		Expect(service.Spec.Selector).To(Equal(map[string]string{
			"cloudfoundry.org/app_guid":     "1234-app-guid",
			"cloudfoundry.org/process_type": "web",
		}))
		Expect(service.Labels).To(HaveKeyWithValue("cloudfoundry.org/app_guid", "1234-app-guid"))
		Expect(service.Annotations).To(HaveKeyWithValue("cloudfoundry.org/process", "1234-app-guid/web"))
		Expect(service.Spec.Ports).To(Equal([]corev1.ServicePort{
			{Name: "http-8080", Port: 8080, TargetPort: intstr.FromInt(8080)},
			{Name: "http-9000", Port: 9000, TargetPort: intstr.FromInt(9000)},
		}))
	})

	It("converges the ports of an existing Service", func() {
		Expect(syncer.UpdateRouteInformation(ctx, process, []int{8080, 9000}, false)).To(Succeed())
		Expect(syncer.UpdateRouteInformation(ctx, process, []int{9000}, false)).To(Succeed())

		Expect(getService().Spec.Ports).To(Equal([]corev1.ServicePort{
			{Name: "http-9000", Port: 9000, TargetPort: intstr.FromInt(9000)},
		}))
	})

	It("falls back to the default port when no ports are required", func() {
		Expect(syncer.UpdateRouteInformation(ctx, process, []int{9000}, false)).To(Succeed())
		Expect(syncer.UpdateRouteInformation(ctx, process, nil, false)).To(Succeed())

		Expect(getService().Spec.Ports).To(Equal([]corev1.ServicePort{
			{Name: "http", Port: 8080, TargetPort: intstr.FromInt(8080)},
		}))
	})

	Context("when validating", func() {
		It("rejects ports outside the allowed range", func() {
			err := syncer.UpdateRouteInformation(ctx, process, []int{8080, 80}, true)
			Expect(err).To(MatchError("process 1234-app-guid/web: port 80 is outside the 1024-65535 range"))

			services := &corev1.ServiceList{}
			Expect(k8sClient.List(ctx, services)).To(Succeed())
			Expect(services.Items).To(BeEmpty())
		})

		It("accepts valid ports", func() {
			Expect(syncer.UpdateRouteInformation(ctx, process, []int{8080}, true)).To(Succeed())
		})
	})

	It("skips validation when asked to", func() {
		Expect(syncer.UpdateRouteInformation(ctx, process, []int{80}, false)).To(Succeed())
	})
})

var _ = Describe("ProcessServiceName", func() {
	It("is a stable DNS-1035 label unique per process", func() {
		web := portsync.ProcessServiceName(models.ProcessKey{AppGuid: "1234-app-guid", ProcessType: "web"})
		worker := portsync.ProcessServiceName(models.ProcessKey{AppGuid: "1234-app-guid", ProcessType: "worker"})

		Expect(web).To(Equal(portsync.ProcessServiceName(models.ProcessKey{AppGuid: "1234-app-guid", ProcessType: "web"})))
		Expect(web).NotTo(Equal(worker))
		Expect(regexp.MustCompile(`^[a-z]([-a-z0-9]*[a-z0-9])?$`).MatchString(web)).To(BeTrue())
		Expect(len(web)).To(BeNumerically("<=", 63))
	})
})
