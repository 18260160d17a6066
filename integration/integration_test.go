package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/ccclient"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/cfg"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/store"
	"code.cloudfoundry.org/cf-networking-helpers/testsupport/ports"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

const syncRequestBody = `{
	"controller": {},
	"parent": {
		"apiVersion": "apps.cloudfoundry.org/v1alpha1",
		"kind": "RouteBulkSync",
		"metadata": {"name": "route-bulk-sync"},
		"spec": {
			"selector": {"matchLabels": {"cloudfoundry.org/bulk-sync-route": "true"}},
			"template": {
				"metadata": {
					"namespace": "cf-workloads",
					"labels": {"cloudfoundry.org/bulk-sync-route": "true"}
				}
			}
		}
	},
	"children": [],
	"finalizing": false
}`

var _ = Describe("Integration of routedestinations with redis, UAA, CC and metacontroller", func() {
	var (
		te  *TestEnv
		ctx context.Context
	)

	seedRoute := func(route models.Route, destinations ...models.Destination) {
		s := te.Store()
		defer s.Close()
		err := s.Transact(ctx, func(ctx context.Context, tx store.Tx) error {
			if err := tx.SaveRoute(route); err != nil {
				return err
			}
			for _, d := range destinations {
				d.RouteGuid = route.Guid
				if _, err := tx.Create(d); err != nil {
					return err
				}
			}
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
	}

	storedRoutes := func() []models.Route {
		s := te.Store()
		defer s.Close()
		routes, err := s.Routes(ctx)
		Expect(err).NotTo(HaveOccurred())
		return routes
	}

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		te, err = NewTestEnv()
		Expect(err).NotTo(HaveOccurred())

		app := ccclient.App{Guid: "app-0-guid"}
		app.Lifecycle.Type = "buildpack"
		te.FakeCC.Data.Apps["app-0-guid"] = app

		seedRoute(
			models.Route{
				Guid: "route-0-guid",
				Host: "route-0-host",
				Url:  "route-0-host.domain0.example.com",
				Domain: models.Domain{
					Guid: "domain-0",
					Name: "domain0.example.com",
				},
			},
			models.Destination{
				App:  models.App{Guid: "app-0-guid", Process: models.Process{Type: "web"}},
				Port: 8080,
			},
		)
	})

	AfterEach(func() {
		te.Cleanup()
	})

	Specify("list prints the stored routes", func() {
		session, err := gexec.Start(te.Command("list"), GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session, 10*time.Second).Should(gexec.Exit(0))

		var routes []models.Route
		Expect(json.Unmarshal(session.Out.Contents(), &routes)).To(Succeed())
		Expect(routes).To(HaveLen(1))
		Expect(routes[0].Guid).To(Equal("route-0-guid"))
		Expect(routes[0].Destinations).To(HaveLen(1))
		Expect(routes[0].Destinations[0].App.Guid).To(Equal("app-0-guid"))
	})

	Specify("add rejects an app cloud controller does not know and changes nothing", func() {
		session, err := gexec.Start(te.Command("add", "--route", "route-0-guid", "missing-app-guid"), GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session, 10*time.Second).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say("App with guid missing-app-guid not found."))

		Expect(storedRoutes()[0].Destinations).To(HaveLen(1))
	})

	Specify("add rolls back when the process ports cannot be synced", func() {
		session, err := gexec.Start(te.Command("add", "--route", "route-0-guid", "app-0-guid:web:9000"), GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session, 30*time.Second).Should(gexec.Exit(1))
		Expect(session.Err).To(gbytes.Say("sync ports for process app-0-guid/web"))

		routes := storedRoutes()
		Expect(routes[0].Destinations).To(HaveLen(1))
		Expect(routes[0].Destinations[0].Port).To(Equal(8080))
		Expect(te.Redis.Exists("audit-events")).To(BeFalse())
	})

	Specify("serve boots, stays running and serves the routes to metacontroller", func() {
		webhookListenAddr := fmt.Sprintf("127.0.0.1:%d", ports.PickAPort())
		metricsListenAddr := fmt.Sprintf("127.0.0.1:%d", ports.PickAPort())
		Expect(te.WriteConfig(cfg.FileListenAddress, webhookListenAddr)).To(Succeed())
		Expect(te.WriteConfig(cfg.FileMetricsAddress, metricsListenAddr)).To(Succeed())
		Expect(te.WriteConfig(cfg.FileSnapshotInterval, "100ms")).To(Succeed())

		session, err := gexec.Start(te.Command("serve"), GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		defer func() {
			session.Terminate().Wait("2s")
		}()

		Eventually(session.Err).Should(gbytes.Say("starting server"))
		Eventually(session.Err, 10*time.Second).Should(gbytes.Say("Fetched and put snapshot"))

		var children []struct {
			Kind     string `json:"kind"`
			Metadata struct {
				Name      string            `json:"name"`
				Namespace string            `json:"namespace"`
				Labels    map[string]string `json:"labels"`
			} `json:"metadata"`
			Spec struct {
				Url          string `json:"url"`
				Destinations []struct {
					Port int `json:"port"`
				} `json:"destinations"`
			} `json:"spec"`
		}
		Eventually(func() error {
			resp, err := http.Post(fmt.Sprintf("http://%s/sync", webhookListenAddr), "application/json", strings.NewReader(syncRequestBody))
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status %d", resp.StatusCode)
			}
			response := struct {
				Children interface{} `json:"children"`
			}{Children: &children}
			return json.NewDecoder(resp.Body).Decode(&response)
		}, 10*time.Second, 100*time.Millisecond).Should(Succeed())

		Expect(children).To(HaveLen(1))
		Expect(children[0].Kind).To(Equal("Route"))
		Expect(children[0].Metadata.Name).To(Equal("route-0-guid"))
		Expect(children[0].Metadata.Namespace).To(Equal("cf-workloads"))
		Expect(children[0].Metadata.Labels).To(HaveKeyWithValue("cloudfoundry.org/bulk-sync-route", "true"))
		Expect(children[0].Spec.Url).To(Equal("route-0-host.domain0.example.com"))
		Expect(children[0].Spec.Destinations).To(HaveLen(1))
		Expect(children[0].Spec.Destinations[0].Port).To(Equal(8080))

		Eventually(func() (string, error) {
			resp, err := http.Get(fmt.Sprintf("http://%s/metrics", metricsListenAddr))
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			return string(body), err
		}, 10*time.Second).Should(ContainSubstring("routedestinations_routes 1"))
	})
})
