package store_test

import (
	"context"
	"sync"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/store"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("MemoryStore", func() {
	itBehavesLikeAStore(func() store.Store {
		return store.NewMemoryStore()
	})

	It("does not let callers mutate stored weights", func() {
		s := store.NewMemoryStore()
		weight := 10
		Expect(s.Transact(context.Background(), func(ctx context.Context, tx store.Tx) error {
			Expect(tx.SaveRoute(models.Route{Guid: "route-1"})).To(Succeed())
			d := newDestination("route-1", "app-a", "web", 3001)
			d.Weight = &weight
			_, err := tx.Create(d)
			return err
		})).To(Succeed())

		weight = 99

		routes, err := s.Routes(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(*routes[0].Destinations[0].Weight).To(Equal(10))
	})

	// this test is only meaningful if run using the -race flag
	It("serializes concurrent transactions", func() {
		s := store.NewMemoryStore()
		const workers = 20

		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func(port int) {
				defer GinkgoRecover()
				defer wg.Done()
				Expect(s.Transact(context.Background(), func(ctx context.Context, tx store.Tx) error {
					Expect(tx.SaveRoute(models.Route{Guid: "route-1"})).To(Succeed())
					_, err := tx.Create(newDestination("route-1", "app-a", "web", port))
					return err
				})).To(Succeed())
			}(2000 + i)
		}
		wg.Wait()

		routes, err := s.Routes(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(routes[0].Destinations).To(HaveLen(workers))
	})

	Context("when the context is already cancelled", func() {
		It("does not run the transaction", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			called := false
			err := store.NewMemoryStore().Transact(ctx, func(ctx context.Context, tx store.Tx) error {
				called = true
				return nil
			})
			Expect(err).To(MatchError(context.Canceled))
			Expect(called).To(BeFalse())
		})
	})
})
