package notifier_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/multierr"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/metrics"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/notifier"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/notifier/fakes"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Dispatcher", func() {
	var (
		ctx        context.Context
		audit      *fakes.AuditRepository
		mesh       *fakes.MeshAdapter
		dispatcher *notifier.Dispatcher
		changes    notifier.Changes
		route      models.Route
		actor      models.UserAuditInfo
	)

	BeforeEach(func() {
		ctx = context.Background()
		audit = &fakes.AuditRepository{}
		mesh = &fakes.MeshAdapter{}
		dispatcher = &notifier.Dispatcher{AuditRepository: audit, MeshAdapter: mesh}

		route = models.Route{Guid: "route-guid", Host: "app", Domain: models.Domain{Name: "example.com"}}
		actor = models.UserAuditInfo{UserGuid: "user-guid", UserName: "admin"}
		changes = notifier.Changes{
			Route:             route,
			Actor:             actor,
			ManifestTriggered: true,
			Mapped: []models.Destination{
				{Guid: "dest-1", RouteGuid: "route-guid", App: models.App{Guid: "app-1", Process: models.Process{Type: "web"}}, Port: 8080},
				{Guid: "dest-2", RouteGuid: "route-guid", App: models.App{Guid: "app-2", Process: models.Process{Type: "web"}}, Port: 8080},
			},
			Unmapped: []models.Destination{
				{Guid: "dest-3", RouteGuid: "route-guid", App: models.App{Guid: "app-3", Process: models.Process{Type: "worker"}}, Port: 9000},
			},
		}
	})

	It("records one audit event and one mesh update per destination", func() {
		Expect(dispatcher.Dispatch(ctx, changes)).To(Succeed())

		Expect(audit.RecordMapRouteCallCount()).To(Equal(2))
		_, gotActor, gotRoute, gotDest, manifest := audit.RecordMapRouteArgsForCall(0)
		Expect(gotActor).To(Equal(actor))
		Expect(gotRoute).To(Equal(route))
		Expect(gotDest.Guid).To(Equal("dest-1"))
		Expect(manifest).To(BeTrue())
		_, _, _, gotDest, _ = audit.RecordMapRouteArgsForCall(1)
		Expect(gotDest.Guid).To(Equal("dest-2"))

		Expect(audit.RecordUnmapRouteCallCount()).To(Equal(1))
		_, _, _, gotDest, _ = audit.RecordUnmapRouteArgsForCall(0)
		Expect(gotDest.Guid).To(Equal("dest-3"))

		Expect(mesh.MapRouteCallCount()).To(Equal(2))
		Expect(mesh.UnmapRouteCallCount()).To(Equal(1))
		_, gotRoute, gotDest = mesh.UnmapRouteArgsForCall(0)
		Expect(gotRoute).To(Equal(route))
		Expect(gotDest.Guid).To(Equal("dest-3"))
	})

	It("does nothing when there are no changes", func() {
		Expect(dispatcher.Dispatch(ctx, notifier.Changes{Route: route})).To(Succeed())
		Expect(audit.RecordMapRouteCallCount()).To(Equal(0))
		Expect(mesh.MapRouteCallCount()).To(Equal(0))
	})

	Context("when a destination's weight changed", func() {
		var calls []string

		BeforeEach(func() {
			before := models.Destination{Guid: "dest-w", RouteGuid: "route-guid", Port: 8080, Weight: models.IntPtr(1)}
			after := before
			after.Weight = models.IntPtr(90)
			changes.Mapped = []models.Destination{after}
			changes.Unmapped = []models.Destination{before}

			calls = nil
			mesh.UnmapRouteStub = func(_ context.Context, _ models.Route, d models.Destination) error {
				calls = append(calls, fmt.Sprintf("unmap %s weight %d", d.Guid, *d.Weight))
				return nil
			}
			mesh.MapRouteStub = func(_ context.Context, _ models.Route, d models.Destination) error {
				calls = append(calls, fmt.Sprintf("map %s weight %d", d.Guid, *d.Weight))
				return nil
			}
		})

		It("unmaps the old weight before mapping the new one", func() {
			Expect(dispatcher.Dispatch(ctx, changes)).To(Succeed())
			Expect(calls).To(Equal([]string{"unmap dest-w weight 1", "map dest-w weight 90"}))
		})
	})

	Context("when a sink is not configured", func() {
		BeforeEach(func() {
			dispatcher.MeshAdapter = nil
		})

		It("skips it", func() {
			Expect(dispatcher.Dispatch(ctx, changes)).To(Succeed())
			Expect(audit.RecordMapRouteCallCount()).To(Equal(2))
			Expect(audit.RecordUnmapRouteCallCount()).To(Equal(1))
		})
	})

	Context("when sinks fail", func() {
		BeforeEach(func() {
			audit.RecordMapRouteReturnsOnCall(0, errors.New("audit down"))
			mesh.UnmapRouteReturns(errors.New("mesh down"))
		})

		It("still calls every sink and returns all the failures", func() {
			err := dispatcher.Dispatch(ctx, changes)
			Expect(err).To(HaveOccurred())

			Expect(audit.RecordMapRouteCallCount()).To(Equal(2))
			Expect(mesh.MapRouteCallCount()).To(Equal(2))
			Expect(audit.RecordUnmapRouteCallCount()).To(Equal(1))
			Expect(mesh.UnmapRouteCallCount()).To(Equal(1))

			errs := multierr.Errors(err)
			Expect(errs).To(HaveLen(2))
			Expect(errs[0]).To(MatchError("mesh unmap destination dest-3: mesh down"))
			Expect(errs[1]).To(MatchError("audit map destination dest-1: audit down"))
		})

		It("counts the failures per sink", func() {
			failures := metrics.DefaultMetrics.ObservedValues.NotificationFailures
			auditBefore := testutil.ToFloat64(failures.WithLabelValues("audit"))
			meshBefore := testutil.ToFloat64(failures.WithLabelValues("mesh"))

			_ = dispatcher.Dispatch(ctx, changes)

			Expect(testutil.ToFloat64(failures.WithLabelValues("audit"))).To(Equal(auditBefore + 1))
			Expect(testutil.ToFloat64(failures.WithLabelValues("mesh"))).To(Equal(meshBefore + 1))
		})
	})
})
