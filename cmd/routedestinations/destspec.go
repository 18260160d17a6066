package main

import (
	"fmt"
	"strconv"
	"strings"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/destinations"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
)

// parseDestination reads app-guid[:process-type[:port[:weight]]]. Empty
// fields fall back to the engine defaults.
func parseDestination(spec string) (destinations.DestinationRequest, error) {
	fields := strings.Split(spec, ":")
	if len(fields) > 4 {
		return destinations.DestinationRequest{}, fmt.Errorf("destination %q: expected app-guid[:process-type[:port[:weight]]]", spec)
	}
	if fields[0] == "" {
		return destinations.DestinationRequest{}, fmt.Errorf("destination %q: app guid is required", spec)
	}

	request := destinations.DestinationRequest{AppGuid: fields[0]}
	if len(fields) > 1 {
		request.ProcessType = fields[1]
	}

	var err error
	if len(fields) > 2 {
		if request.Port, err = optionalInt(fields[2]); err != nil {
			return destinations.DestinationRequest{}, fmt.Errorf("destination %q: port: %w", spec, err)
		}
	}
	if len(fields) > 3 {
		if request.Weight, err = optionalInt(fields[3]); err != nil {
			return destinations.DestinationRequest{}, fmt.Errorf("destination %q: weight: %w", spec, err)
		}
	}
	return request, nil
}

func parseDestinations(specs []string) ([]destinations.DestinationRequest, error) {
	requests := make([]destinations.DestinationRequest, 0, len(specs))
	for _, spec := range specs {
		r, err := parseDestination(spec)
		if err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, nil
}

func optionalInt(field string) (*int, error) {
	if field == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return nil, err
	}
	return models.IntPtr(n), nil
}
