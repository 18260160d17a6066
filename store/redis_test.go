package store_test

import (
	"context"
	"fmt"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/store"
	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("RedisStore", func() {
	var (
		server *miniredis.Miniredis
		client *backend.Client
	)

	BeforeEach(func() {
		var err error
		server, err = miniredis.Run()
		Expect(err).NotTo(HaveOccurred())
		client = backend.NewClient(&backend.Options{Addr: server.Addr()})
	})

	AfterEach(func() {
		client.Close()
		server.Close()
	})

	itBehavesLikeAStore(func() store.Store {
		return store.NewRedisStoreFromClient(client, store.WithKeyPrefix("test:"))
	})

	It("keeps its keys under the configured prefix", func() {
		s := store.NewRedisStoreFromClient(client, store.WithKeyPrefix("test:"))
		Expect(s.Transact(context.Background(), func(ctx context.Context, tx store.Tx) error {
			Expect(tx.SaveRoute(models.Route{Guid: "route-1"})).To(Succeed())
			_, err := tx.Create(newDestination("route-1", "app-a", "web", 8080))
			return err
		})).To(Succeed())

		Expect(server.Exists("test:routes")).To(BeTrue())
		Expect(server.Exists("test:route:route-1")).To(BeTrue())
		members, err := server.Members("test:process:app-a:web:destinations")
		Expect(err).NotTo(HaveOccurred())
		Expect(members).To(HaveLen(1))
	})

	Context("when another writer touches a watched key", func() {
		It("re-runs the transaction against the new state", func() {
			s := store.NewRedisStoreFromClient(client, store.WithKeyPrefix("test:"))
			other := store.NewRedisStoreFromClient(backend.NewClient(&backend.Options{Addr: server.Addr()}), store.WithKeyPrefix("test:"))

			attempts := 0
			err := s.Transact(context.Background(), func(ctx context.Context, tx store.Tx) error {
				attempts++
				existing, err := tx.Destinations("route-1")
				if err != nil {
					return err
				}

				if attempts == 1 {
					Expect(existing).To(BeEmpty())
					Expect(other.Transact(ctx, func(ctx context.Context, otherTx store.Tx) error {
						Expect(otherTx.SaveRoute(models.Route{Guid: "route-1"})).To(Succeed())
						_, err := otherTx.Create(newDestination("route-1", "app-b", "web", 9000))
						return err
					})).To(Succeed())
				} else {
					Expect(existing).To(HaveLen(1))
				}

				Expect(tx.SaveRoute(models.Route{Guid: "route-1"})).To(Succeed())
				_, err = tx.Create(newDestination("route-1", "app-a", "web", 8080))
				return err
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(attempts).To(Equal(2))

			routes, err := s.Routes(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(routes[0].Destinations).To(HaveLen(2))
		})

		It("gives up after the configured number of retries", func() {
			s := store.NewRedisStoreFromClient(client, store.WithKeyPrefix("test:"), store.WithMaxRetries(2))
			other := backend.NewClient(&backend.Options{Addr: server.Addr()})
			defer other.Close()

			attempts := 0
			err := s.Transact(context.Background(), func(ctx context.Context, tx store.Tx) error {
				attempts++
				if _, err := tx.Destinations("route-1"); err != nil {
					return err
				}
				Expect(other.SAdd(ctx, "test:route:route-1:destinations", fmt.Sprintf("interloper-%d", attempts)).Err()).To(Succeed())
				return tx.SaveRoute(models.Route{Guid: "route-1"})
			})
			Expect(err).To(MatchError(store.ErrTxConflict))
			Expect(attempts).To(Equal(2))
		})
	})

	It("skips index entries whose destination record is missing", func() {
		s := store.NewRedisStoreFromClient(client, store.WithKeyPrefix("test:"))
		Expect(s.Transact(context.Background(), func(ctx context.Context, tx store.Tx) error {
			return tx.SaveRoute(models.Route{Guid: "route-1"})
		})).To(Succeed())
		_, err := server.SAdd("test:route:route-1:destinations", "dangling")
		Expect(err).NotTo(HaveOccurred())

		routes, err := s.Routes(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(routes[0].Destinations).To(BeEmpty())
	})
})
