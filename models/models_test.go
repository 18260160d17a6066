package models_test

import (
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Route", func() {
	Describe("FQDN()", func() {
		Context("when the route does not have a host", func() {
			It("returns an fqdn containing only the domain name", func() {
				route := models.Route{
					Host: "",
					Path: "/path",
					Domain: models.Domain{
						Name: "domain.example.com",
					},
				}

				Expect(route.FQDN()).To(Equal("domain.example.com"))
			})
		})

		Context("when the route has a host", func() {
			It("returns an fqdn containing the host and domain name", func() {
				route := models.Route{
					Host: "host",
					Path: "/path",
					Domain: models.Domain{
						Name: "domain.example.com",
					},
				}

				Expect(route.FQDN()).To(Equal("host.domain.example.com"))
			})
		})
	})
})

var _ = Describe("Destination", func() {
	var destination models.Destination

	BeforeEach(func() {
		destination = models.Destination{
			Guid: "destination-guid",
			App: models.App{
				Guid:    "app-guid",
				Process: models.Process{Type: "web"},
			},
			Port: 8080,
		}
	})

	It("is keyed by app, process type and port", func() {
		Expect(destination.Key()).To(Equal(models.DestinationKey{
			AppGuid:     "app-guid",
			ProcessType: "web",
			Port:        8080,
		}))
		Expect(destination.ProcessKey()).To(Equal(models.ProcessKey{AppGuid: "app-guid", ProcessType: "web"}))
	})

	It("ignores the weight in its key", func() {
		weighted := destination
		weighted.Weight = models.IntPtr(10)
		weighted.Guid = "other-guid"

		Expect(weighted.Key()).To(Equal(destination.Key()))
		Expect(weighted.Weighted()).To(BeTrue())
		Expect(destination.Weighted()).To(BeFalse())
	})
})

var _ = Describe("AppRecord", func() {
	It("defaults buildpack apps to 8080", func() {
		app := models.AppRecord{Guid: "app", Lifecycle: models.LifecycleBuildpack}
		Expect(app.DefaultPort()).To(Equal(8080))
	})

	It("defers to the process for docker apps", func() {
		app := models.AppRecord{Guid: "app", Lifecycle: models.LifecycleDocker}
		Expect(app.DefaultPort()).To(Equal(models.NoAppPortSpecified))
	})

	It("finds processes by type", func() {
		app := models.AppRecord{Processes: []models.ProcessRecord{{Guid: "p1", Type: "web"}, {Guid: "p2", Type: "worker"}}}

		process, ok := app.Process("worker")
		Expect(ok).To(BeTrue())
		Expect(process.Guid).To(Equal("p2"))

		_, ok = app.Process("clock")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("ValidPort", func() {
	It("accepts the sentinel and the unprivileged range", func() {
		Expect(models.ValidPort(models.NoAppPortSpecified)).To(BeTrue())
		Expect(models.ValidPort(1024)).To(BeTrue())
		Expect(models.ValidPort(65535)).To(BeTrue())
	})

	It("rejects everything else", func() {
		Expect(models.ValidPort(0)).To(BeFalse())
		Expect(models.ValidPort(80)).To(BeFalse())
		Expect(models.ValidPort(1023)).To(BeFalse())
		Expect(models.ValidPort(65536)).To(BeFalse())
		Expect(models.ValidPort(-2000000)).To(BeFalse())
	})
})
