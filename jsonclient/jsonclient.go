package jsonclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNotFound is matched by errors for responses with status 404
var ErrNotFound = errors.New("resource not found")

//go:generate counterfeiter -o fakes/http_client.go --fake-name HTTPClient . HttpClient
type HttpClient interface {
	Do(*http.Request) (*http.Response, error)
}

// APIError is a non-2xx answer. Cloud Controller v3 explains failures in
// an errors list; other servers leave Errors empty and Body set.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Errors     []CCError
	Body       string
}

type CCError struct {
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s %s: bad response, code %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	details := make([]string, 0, len(e.Errors))
	for _, ccErr := range e.Errors {
		details = append(details, fmt.Sprintf("%s: %s", ccErr.Title, ccErr.Detail))
	}
	return fmt.Sprintf("%s %s: bad response, code %d: %s", e.Method, e.Path, e.StatusCode, strings.Join(details, "; "))
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

type JSONClient struct {
	HTTPClient HttpClient
}

// MakeRequest sends request and decodes a successful JSON answer into response
func (c *JSONClient) MakeRequest(request *http.Request, response interface{}) error {
	request.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(request)
	if err != nil {
		return fmt.Errorf("http client: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(request, resp.StatusCode, respBytes)
	}

	err = json.Unmarshal(respBytes, response)
	if err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	return nil
}

func newAPIError(request *http.Request, statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Method:     request.Method,
		Path:       request.URL.Path,
		StatusCode: statusCode,
	}

	ccErrors := struct {
		Errors []CCError `json:"errors"`
	}{}
	if json.Unmarshal(body, &ccErrors) == nil && len(ccErrors.Errors) > 0 {
		apiErr.Errors = ccErrors.Errors
	} else {
		apiErr.Body = string(body)
	}
	return apiErr
}
