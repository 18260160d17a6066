package ccclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type Client struct {
	JSONClient jsonClient
	BaseURL    string
}

//go:generate counterfeiter -o fakes/json_client.go --fake-name JSONClient . jsonClient
type jsonClient interface {
	MakeRequest(*http.Request, interface{}) error
}

type Route struct {
	Guid          string
	Host          string
	Path          string
	Url           string
	Relationships struct {
		Domain struct {
			Data struct {
				Guid string
			}
		}
	}
}

type Destination struct {
	Guid string
	App  struct {
		Guid    string
		Process struct {
			Type string
		}
	}
	Weight *int
	Port   *int
}

type Domain struct {
	Guid     string
	Name     string
	Internal bool
}

type App struct {
	Guid      string
	Lifecycle struct {
		Type string
	}
}

type Process struct {
	Guid string
	Type string
}

// determined by CC API: https://v3-apidocs.cloudfoundry.org/version/3.76.0/index.html#get-a-route
const MaxResultsPerPage int = 5000

type pagination struct {
	TotalPages int `json:"total_pages"`
}

func (c *Client) ListRoutes(ctx context.Context, token string) ([]Route, error) {
	type listRoutesResponse struct {
		Pagination pagination
		Resources  []Route
	}
	response := &listRoutesResponse{}

	err := c.get(ctx, fmt.Sprintf("/v3/routes?per_page=%d", MaxResultsPerPage), token, response)
	if err != nil {
		return nil, err
	}
	if response.Pagination.TotalPages > 1 {
		return nil, errors.New("too many results, paging not implemented")
	}

	return response.Resources, nil
}

func (c *Client) ListDestinationsForRoute(ctx context.Context, routeGUID, token string) ([]Destination, error) {
	type listDestinationsResponse struct {
		Destinations []Destination
	}
	response := &listDestinationsResponse{}

	err := c.get(ctx, fmt.Sprintf("/v3/routes/%s/destinations", routeGUID), token, response)
	if err != nil {
		return nil, err
	}

	return response.Destinations, nil
}

func (c *Client) ListDomains(ctx context.Context, token string) ([]Domain, error) {
	type listDomainsResponse struct {
		Pagination pagination
		Resources  []Domain
	}
	response := &listDomainsResponse{}

	err := c.get(ctx, fmt.Sprintf("/v3/domains?per_page=%d", MaxResultsPerPage), token, response)
	if err != nil {
		return nil, err
	}
	if response.Pagination.TotalPages > 1 {
		return nil, errors.New("too many results, paging not implemented")
	}

	return response.Resources, nil
}

func (c *Client) GetApp(ctx context.Context, appGUID, token string) (App, error) {
	response := App{}
	err := c.get(ctx, fmt.Sprintf("/v3/apps/%s", appGUID), token, &response)
	if err != nil {
		return App{}, err
	}
	return response, nil
}

func (c *Client) ListProcessesForApp(ctx context.Context, appGUID, token string) ([]Process, error) {
	type listProcessesResponse struct {
		Pagination pagination
		Resources  []Process
	}
	response := &listProcessesResponse{}

	err := c.get(ctx, fmt.Sprintf("/v3/apps/%s/processes?per_page=%d", appGUID, MaxResultsPerPage), token, response)
	if err != nil {
		return nil, err
	}
	if response.Pagination.TotalPages > 1 {
		return nil, errors.New("too many results, paging not implemented")
	}

	return response.Resources, nil
}

func (c *Client) get(ctx context.Context, path, token string, response interface{}) error {
	request, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+path, strings.NewReader(""))
	if err != nil {
		return err
	}
	request.Header.Set("Authorization", "bearer "+token)

	return c.JSONClient.MakeRequest(request, response)
}
