package audit_test

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/audit"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func someEvent() audit.Event {
	return audit.Event{
		Type:      audit.EventTypeMapRoute,
		Timestamp: time.Date(2020, 3, 4, 5, 6, 7, 0, time.UTC),
		Actor:     audit.Actor{Guid: "user-guid", Type: audit.ActorTypeUser},
		Actee:     audit.Actee{Guid: "app-guid", Type: audit.ActeeTypeApp},
		Metadata: audit.Metadata{
			RouteGuid:       "route-guid",
			DestinationGuid: "destination-guid",
			AppPort:         models.IntPtr(8080),
			ProcessType:     "web",
		},
	}
}

var _ = Describe("RedisStreamWriter", func() {
	var (
		server *miniredis.Miniredis
		client *backend.Client
		writer *audit.RedisStreamWriter
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		server = miniredis.NewMiniRedis()
		Expect(server.Start()).To(Succeed())
		client = backend.NewClient(&backend.Options{Addr: server.Addr()})
		writer = &audit.RedisStreamWriter{Client: client, Stream: "audit-events"}
	})

	AfterEach(func() {
		client.Close()
		server.Close()
	})

	It("appends the event to the stream as json", func() {
		Expect(writer.Write(ctx, someEvent())).To(Succeed())

		entries, err := client.XRange(ctx, "audit-events", "-", "+").Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Values["type"]).To(Equal("audit.app.map-route"))

		var decoded audit.Event
		Expect(json.Unmarshal([]byte(entries[0].Values["event"].(string)), &decoded)).To(Succeed())
		Expect(decoded).To(Equal(someEvent()))
	})

	It("keeps appending in order", func() {
		first := someEvent()
		second := someEvent()
		second.Type = audit.EventTypeUnmapRoute

		Expect(writer.Write(ctx, first)).To(Succeed())
		Expect(writer.Write(ctx, second)).To(Succeed())

		entries, err := client.XRange(ctx, "audit-events", "-", "+").Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(2))
		Expect(entries[1].Values["type"]).To(Equal("audit.app.unmap-route"))
	})

	It("caps the stream when asked to", func() {
		writer.MaxLen = 2
		for i := 0; i < 5; i++ {
			Expect(writer.Write(ctx, someEvent())).To(Succeed())
		}

		length, err := client.XLen(ctx, "audit-events").Result()
		Expect(err).NotTo(HaveOccurred())
		Expect(length).To(BeNumerically("<=", 5))
		Expect(length).To(BeNumerically(">=", 2))
	})

	Context("when redis is unreachable", func() {
		It("returns a helpful error", func() {
			server.Close()
			err := writer.Write(ctx, someEvent())
			Expect(err).To(MatchError(ContainSubstring("xadd audit-events")))
		})
	})
})

var _ = Describe("LogWriter", func() {
	It("logs the event with its identifying fields", func() {
		logger, hook := test.NewNullLogger()
		writer := &audit.LogWriter{Logger: logger}

		event := someEvent()
		event.Metadata.Weight = models.IntPtr(4)
		event.Metadata.ManifestTriggered = true
		Expect(writer.Write(context.Background(), event)).To(Succeed())

		Expect(hook.Entries).To(HaveLen(1))
		entry := hook.LastEntry()
		Expect(entry.Level).To(Equal(log.InfoLevel))
		Expect(entry.Message).To(Equal("audit event"))
		Expect(entry.Data).To(HaveKeyWithValue("type", "audit.app.map-route"))
		Expect(entry.Data).To(HaveKeyWithValue("route_guid", "route-guid"))
		Expect(entry.Data).To(HaveKeyWithValue("destination_guid", "destination-guid"))
		Expect(entry.Data).To(HaveKeyWithValue("app_port", 8080))
		Expect(entry.Data).To(HaveKeyWithValue("weight", 4))
		Expect(entry.Data).To(HaveKeyWithValue("manifest_triggered", true))
	})
})
