package ccclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/ccclient"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/ccclient/fakes"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Cloud Controller Client", func() {
	var (
		ccClient   *ccclient.Client
		jsonClient *fakes.JSONClient
		token      string
		ctx        context.Context
	)

	respondWith := func(body string) {
		jsonClient.MakeRequestStub = func(req *http.Request, responseStruct interface{}) error {
			return json.Unmarshal([]byte(body), responseStruct)
		}
	}

	itSendsTheToken := func(call func() error) {
		It("sets the provided token as an Authorization header on the request", func() {
			Expect(call()).To(Succeed())

			receivedRequest, _ := jsonClient.MakeRequestArgsForCall(0)
			authHeader := receivedRequest.Header["Authorization"]
			Expect(authHeader).To(HaveLen(1))
			Expect(authHeader[0]).To(Equal("bearer fake-token"))
			Expect(receivedRequest.Context()).To(Equal(ctx))
		})
	}

	itHandlesErrors := func(call func() error) {
		Context("when the json client returns an error", func() {
			BeforeEach(func() {
				jsonClient.MakeRequestReturns(errors.New("potato"))
			})

			It("returns a helpful error", func() {
				Expect(call()).To(MatchError(ContainSubstring("potato")))
			})
		})

		Context("when the url is malformed", func() {
			BeforeEach(func() {
				ccClient.BaseURL = "%%%%%%%"
			})

			It("returns a helpful error", func() {
				Expect(call()).To(MatchError(ContainSubstring("invalid URL escape")))
			})
		})
	}

	BeforeEach(func() {
		jsonClient = &fakes.JSONClient{}
		ccClient = &ccclient.Client{
			JSONClient: jsonClient,
			BaseURL:    "https://some.base.url",
		}
		token = "fake-token"
		ctx = context.Background()
	})

	Describe("ListRoutes", func() {
		listRoutes := func() error {
			_, err := ccClient.ListRoutes(ctx, token)
			return err
		}

		BeforeEach(func() {
			respondWith(`
			{
				"pagination": {
					"total_results": 2,
					"total_pages": 1
				},
				"resources": [{
						"guid": "fake-guid",
						"host": "fake-host",
						"path": "/fake_path",
						"url": "fake-host.fake-domain.com/fake_path",
						"relationships": {
							"domain": { "data": { "guid": "fake-domain-1-guid" } },
							"space": { "data": { "guid": "fake-space-1-guid" } }
						}
					},
					{
						"guid": "fake-guid2",
						"host": "fake-host2",
						"path": "/fake_path2",
						"url": "fake-host2.fake-domain.com/fake_path2",
						"relationships": {
							"domain": { "data": { "guid": "fake-domain-2-guid" } }
						}
					}
				]
			}`)
		})

		It("returns a list of routes", func() {
			routeResults, err := ccClient.ListRoutes(ctx, token)
			Expect(err).To(Not(HaveOccurred()))

			route1 := ccclient.Route{
				Guid: "fake-guid",
				Host: "fake-host",
				Path: "/fake_path",
				Url:  "fake-host.fake-domain.com/fake_path",
			}
			route1.Relationships.Domain.Data.Guid = "fake-domain-1-guid"

			route2 := ccclient.Route{
				Guid: "fake-guid2",
				Host: "fake-host2",
				Path: "/fake_path2",
				Url:  "fake-host2.fake-domain.com/fake_path2",
			}
			route2.Relationships.Domain.Data.Guid = "fake-domain-2-guid"

			Expect(routeResults).To(ConsistOf(route1, route2))
		})

		It("forms the right request URL", func() {
			Expect(listRoutes()).To(Succeed())

			receivedRequest, _ := jsonClient.MakeRequestArgsForCall(0)
			Expect(receivedRequest.Method).To(Equal("GET"))
			Expect(receivedRequest.URL.Path).To(Equal("/v3/routes"))
			Expect(receivedRequest.URL.Query()["per_page"]).To(Equal([]string{"5000"}))
		})

		It("errors if there is more than one page of results", func() {
			respondWith(`{ "pagination": { "total_pages": 2 } }`)
			Expect(listRoutes()).To(MatchError(ContainSubstring("too many results, paging not implemented")))
		})

		itSendsTheToken(listRoutes)
		itHandlesErrors(listRoutes)
	})

	Describe("ListDestinationsForRoute", func() {
		listDestinations := func() error {
			_, err := ccClient.ListDestinationsForRoute(ctx, "fake-route-guid", token)
			return err
		}

		BeforeEach(func() {
			respondWith(`
			{
				"destinations": [
				  {
					"guid": "fake-destination-guid-1",
					"app": { "guid": "fake-app-guid-1", "process": { "type": "web" } },
					"weight": null,
					"port": 8080
				  },
				  {
					"guid": "fake-destination-guid-2",
					"app": { "guid": "fake-app-guid-2", "process": { "type": "worker" } },
					"weight": 5,
					"port": null
				  }
				]
			}`)
		})

		It("returns a list of destinations for the given route", func() {
			results, err := ccClient.ListDestinationsForRoute(ctx, "fake-route-guid", token)
			Expect(err).To(Not(HaveOccurred()))

			port := 8080
			weight := 5
			destination1 := ccclient.Destination{Guid: "fake-destination-guid-1", Port: &port}
			destination1.App.Guid = "fake-app-guid-1"
			destination1.App.Process.Type = "web"

			destination2 := ccclient.Destination{Guid: "fake-destination-guid-2", Weight: &weight}
			destination2.App.Guid = "fake-app-guid-2"
			destination2.App.Process.Type = "worker"

			Expect(results).To(ConsistOf(destination1, destination2))
		})

		It("forms the right request URL", func() {
			Expect(listDestinations()).To(Succeed())

			receivedRequest, _ := jsonClient.MakeRequestArgsForCall(0)
			Expect(receivedRequest.Method).To(Equal("GET"))
			Expect(receivedRequest.URL.Path).To(Equal(fmt.Sprintf("/v3/routes/%s/destinations", "fake-route-guid")))
		})

		itSendsTheToken(listDestinations)
		itHandlesErrors(listDestinations)
	})

	Describe("ListDomains", func() {
		listDomains := func() error {
			_, err := ccClient.ListDomains(ctx, token)
			return err
		}

		BeforeEach(func() {
			respondWith(`
			{
			  "pagination": { "total_results": 2, "total_pages": 1 },
			  "resources": [
				{ "guid": "fake-domain-1-guid", "name": "fake-domain1.example.com", "internal": false },
				{ "guid": "fake-domain-2-guid", "name": "fake-domain2.example.com", "internal": true }
			  ]
			}`)
		})

		It("returns a list of domains", func() {
			domainResults, err := ccClient.ListDomains(ctx, token)
			Expect(err).To(Not(HaveOccurred()))
			Expect(domainResults).To(ConsistOf(
				ccclient.Domain{Guid: "fake-domain-1-guid", Name: "fake-domain1.example.com", Internal: false},
				ccclient.Domain{Guid: "fake-domain-2-guid", Name: "fake-domain2.example.com", Internal: true},
			))
		})

		It("forms the right request URL", func() {
			Expect(listDomains()).To(Succeed())

			receivedRequest, _ := jsonClient.MakeRequestArgsForCall(0)
			Expect(receivedRequest.Method).To(Equal("GET"))
			Expect(receivedRequest.URL.Path).To(Equal("/v3/domains"))
			Expect(receivedRequest.URL.Query()["per_page"]).To(Equal([]string{"5000"}))
		})

		It("errors if there is more than one page of results", func() {
			respondWith(`{ "pagination": { "total_pages": 2 } }`)
			Expect(listDomains()).To(MatchError(ContainSubstring("too many results, paging not implemented")))
		})

		itSendsTheToken(listDomains)
		itHandlesErrors(listDomains)
	})

	Describe("GetApp", func() {
		getApp := func() error {
			_, err := ccClient.GetApp(ctx, "fake-app-guid", token)
			return err
		}

		BeforeEach(func() {
			respondWith(`
			{
			  "guid": "fake-app-guid",
			  "name": "my_app",
			  "state": "STARTED",
			  "lifecycle": { "type": "docker", "data": {} }
			}`)
		})

		It("returns the app with its lifecycle", func() {
			app, err := ccClient.GetApp(ctx, "fake-app-guid", token)
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Guid).To(Equal("fake-app-guid"))
			Expect(app.Lifecycle.Type).To(Equal("docker"))
		})

		It("forms the right request URL", func() {
			Expect(getApp()).To(Succeed())

			receivedRequest, _ := jsonClient.MakeRequestArgsForCall(0)
			Expect(receivedRequest.Method).To(Equal("GET"))
			Expect(receivedRequest.URL.Path).To(Equal("/v3/apps/fake-app-guid"))
		})

		itSendsTheToken(getApp)
		itHandlesErrors(getApp)
	})

	Describe("ListProcessesForApp", func() {
		listProcesses := func() error {
			_, err := ccClient.ListProcessesForApp(ctx, "fake-app-guid", token)
			return err
		}

		BeforeEach(func() {
			respondWith(`
			{
			  "pagination": { "total_results": 2, "total_pages": 1 },
			  "resources": [
				{ "guid": "process-1", "type": "web", "instances": 5 },
				{ "guid": "process-2", "type": "worker", "instances": 1 }
			  ]
			}`)
		})

		It("returns the processes of the app", func() {
			processes, err := ccClient.ListProcessesForApp(ctx, "fake-app-guid", token)
			Expect(err).NotTo(HaveOccurred())
			Expect(processes).To(Equal([]ccclient.Process{
				{Guid: "process-1", Type: "web"},
				{Guid: "process-2", Type: "worker"},
			}))
		})

		It("forms the right request URL", func() {
			Expect(listProcesses()).To(Succeed())

			receivedRequest, _ := jsonClient.MakeRequestArgsForCall(0)
			Expect(receivedRequest.Method).To(Equal("GET"))
			Expect(receivedRequest.URL.Path).To(Equal("/v3/apps/fake-app-guid/processes"))
			Expect(receivedRequest.URL.Query()["per_page"]).To(Equal([]string{"5000"}))
		})

		It("errors if there is more than one page of results", func() {
			respondWith(`{ "pagination": { "total_pages": 2 } }`)
			Expect(listProcesses()).To(MatchError(ContainSubstring("too many results, paging not implemented")))
		})

		itSendsTheToken(listProcesses)
		itHandlesErrors(listProcesses)
	})
})
