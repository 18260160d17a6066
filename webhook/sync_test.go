package webhook_test

import (
	"context"

	appsv1alpha1 "code.cloudfoundry.org/cf-k8s-networking/routedestinations/apis/apps/v1alpha1"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/webhook"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/webhook/fakes"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

var _ = Describe("Sync", func() {
	var (
		ctx              context.Context
		fakeSnapshotRepo *fakes.SnapshotRepo
		fakeBuilder      *fakes.K8sResourceBuilder
		syncHandler      *webhook.Lineage
		syncRequest      webhook.SyncRequest
		snapshot         *models.RouteSnapshot
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeSnapshotRepo = &fakes.SnapshotRepo{}
		fakeBuilder = &fakes.K8sResourceBuilder{}
		fakeBuilder.BuildReturns([]webhook.K8sResource{"child-1", "child-2"})
		syncHandler = &webhook.Lineage{
			RouteSnapshotRepo:   fakeSnapshotRepo,
			K8sResourceBuilders: []webhook.K8sResourceBuilder{fakeBuilder, &webhook.RouteBuilder{}},
		}

		snapshot = &models.RouteSnapshot{
			Routes: []models.Route{
				{
					Guid: "route-guid-0",
					Host: "test0",
					Path: "/path0",
					Domain: models.Domain{
						Guid: "domain-0-guid",
						Name: "domain0.example.com",
					},
					Destinations: []models.Destination{
						{
							Guid:   "route-0-destination-guid-0",
							App:    models.App{Guid: "app-guid-0", Process: models.Process{Type: "process-type-1"}},
							Port:   9000,
							Weight: models.IntPtr(10),
						},
						{
							Guid:   "route-0-destination-guid-1",
							App:    models.App{Guid: "app-guid-1", Process: models.Process{Type: "process-type-1"}},
							Port:   models.NoAppPortSpecified,
							Weight: models.IntPtr(11),
						},
					},
				},
				{
					Guid: "route-guid-1",
					Host: "test1",
					Domain: models.Domain{
						Guid:     "domain-1-guid",
						Name:     "domain1.apps.internal",
						Internal: true,
					},
				},
			},
		}
		fakeSnapshotRepo.GetReturns(snapshot, true)

		syncRequest = webhook.SyncRequest{
			Parent: webhook.BulkSync{
				Spec: webhook.BulkSyncSpec{
					Template: webhook.Template{
						ObjectMeta: metav1.ObjectMeta{
							Namespace: "cf-workloads",
							Labels: map[string]string{
								"cloudfoundry.org/bulk-sync-route": "true",
								"label-for-routes":                 "cool-label",
							},
						},
					},
				},
			},
		}
	})

	It("returns the children of every builder", func() {
		syncResponse, err := syncHandler.Sync(ctx, syncRequest)
		Expect(err).ToNot(HaveOccurred())
		Expect(syncResponse.Children).To(HaveLen(4))
		Expect(syncResponse.Children[:2]).To(Equal([]webhook.K8sResource{"child-1", "child-2"}))

		routes, template := fakeBuilder.BuildArgsForCall(0)
		Expect(routes).To(Equal(snapshot.Routes))
		Expect(template).To(Equal(syncRequest.Parent.Spec.Template))
	})

	It("renders each route as a Route resource carrying the template labels", func() {
		syncResponse, err := syncHandler.Sync(ctx, syncRequest)
		Expect(err).ToNot(HaveOccurred())

		route0 := syncResponse.Children[2].(appsv1alpha1.Route)
		Expect(route0.Name).To(Equal("route-guid-0"))
		Expect(route0.Namespace).To(Equal("cf-workloads"))
		Expect(route0.Labels).To(Equal(map[string]string{
			"cloudfoundry.org/route_guid":      "route-guid-0",
			"cloudfoundry.org/bulk-sync-route": "true",
			"label-for-routes":                 "cool-label",
		}))
		Expect(route0.Spec.Url).To(Equal("test0.domain0.example.com/path0"))
		Expect(route0.Spec.Destinations).To(HaveLen(2))
		Expect(*route0.Spec.Destinations[0].Port).To(Equal(9000))
		Expect(route0.Spec.Destinations[1].Port).To(BeNil())

		route1 := syncResponse.Children[3].(appsv1alpha1.Route)
		Expect(route1.Spec.Domain.Internal).To(BeTrue())
		Expect(route1.Spec.Destinations).To(BeEmpty())
	})

	Context("when the template names no namespace", func() {
		BeforeEach(func() {
			syncRequest.Parent.Spec.Template.Namespace = ""
			syncHandler.K8sResourceBuilders = []webhook.K8sResourceBuilder{&webhook.RouteBuilder{DefaultNamespace: "workloads"}}
		})

		It("places the routes in the builder's default namespace", func() {
			syncResponse, err := syncHandler.Sync(ctx, syncRequest)
			Expect(err).ToNot(HaveOccurred())
			Expect(syncResponse.Children).To(HaveLen(2))
			Expect(syncResponse.Children[0].(appsv1alpha1.Route).Namespace).To(Equal("workloads"))
		})
	})

	Context("when there's a valid snapshot but it does not contain any routes", func() {
		BeforeEach(func() {
			fakeSnapshotRepo.GetReturns(&models.RouteSnapshot{}, true)
			syncHandler.K8sResourceBuilders = []webhook.K8sResourceBuilder{&webhook.RouteBuilder{}}
		})

		It("returns an empty list of children in the response", func() {
			syncResponse, err := syncHandler.Sync(ctx, syncRequest)
			Expect(err).ToNot(HaveOccurred())
			Expect(syncResponse).NotTo(BeNil())
			Expect(syncResponse.Children).To(Equal([]webhook.K8sResource{}))
		})
	})

	Context("when the repo says no snapshot is available", func() {
		BeforeEach(func() {
			fakeSnapshotRepo.GetReturns(nil, false)
		})

		It("returns a meaningful error", func() {
			_, err := syncHandler.Sync(ctx, syncRequest)
			Expect(err).To(Equal(webhook.UninitializedError))
			Expect(fakeBuilder.BuildCallCount()).To(Equal(0))
		})
	})

	Context("when the parent is being finalized", func() {
		BeforeEach(func() {
			syncRequest.Finalizing = true
		})

		It("returns no children and marks the parent finalized", func() {
			syncResponse, err := syncHandler.Sync(ctx, syncRequest)
			Expect(err).ToNot(HaveOccurred())
			Expect(syncResponse.Children).To(BeEmpty())
			Expect(syncResponse.Finalized).To(BeTrue())
			Expect(fakeBuilder.BuildCallCount()).To(Equal(0))
		})
	})

	Context("when the request was cancelled", func() {
		It("returns the context error", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := syncHandler.Sync(cancelled, syncRequest)
			Expect(err).To(Equal(context.Canceled))
		})
	})
})
