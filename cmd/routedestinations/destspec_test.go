package main

import (
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/destinations"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("parseDestination", func() {
	It("accepts just an app guid", func() {
		request, err := parseDestination("app-guid")
		Expect(err).NotTo(HaveOccurred())
		Expect(request).To(Equal(destinations.DestinationRequest{AppGuid: "app-guid"}))
	})

	It("reads every field", func() {
		request, err := parseDestination("app-guid:worker:9000:30")
		Expect(err).NotTo(HaveOccurred())
		Expect(request).To(Equal(destinations.DestinationRequest{
			AppGuid:     "app-guid",
			ProcessType: "worker",
			Port:        models.IntPtr(9000),
			Weight:      models.IntPtr(30),
		}))
	})

	It("leaves empty fields to the defaults", func() {
		request, err := parseDestination("app-guid::8080")
		Expect(err).NotTo(HaveOccurred())
		Expect(request).To(Equal(destinations.DestinationRequest{AppGuid: "app-guid", Port: models.IntPtr(8080)}))

		request, err = parseDestination("app-guid:web::50")
		Expect(err).NotTo(HaveOccurred())
		Expect(request.Port).To(BeNil())
		Expect(request.Weight).To(Equal(models.IntPtr(50)))
	})

	It("passes out of range values through for the engine to reject", func() {
		request, err := parseDestination("app-guid:web:80")
		Expect(err).NotTo(HaveOccurred())
		Expect(*request.Port).To(Equal(80))
	})

	DescribeTable("rejects malformed destinations",
		func(spec, message string) {
			_, err := parseDestination(spec)
			Expect(err).To(MatchError(ContainSubstring(message)))
		},
		Entry("no app guid", ":web:8080", "app guid is required"),
		Entry("too many fields", "a:web:8080:1:2", "expected app-guid[:process-type[:port[:weight]]]"),
		Entry("port not a number", "a:web:http", "port:"),
		Entry("weight not a number", "a:web:8080:heavy", "weight:"),
	)

	It("parses a list and stops at the first bad entry", func() {
		requests, err := parseDestinations([]string{"a", "b:worker"})
		Expect(err).NotTo(HaveOccurred())
		Expect(requests).To(HaveLen(2))

		_, err = parseDestinations([]string{"a", ""})
		Expect(err).To(HaveOccurred())
	})
})
