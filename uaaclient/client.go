package uaaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// tokens are refreshed this long before UAA says they expire
const expiryLeeway = 30 * time.Second

// Client fetches client-credentials tokens and reuses each until shortly
// before it expires.
type Client struct {
	BaseURL    string
	Name       string
	Secret     string
	JSONClient jsonClient
	// Clock defaults to time.Now
	Clock func() time.Time

	mutex     sync.Mutex
	token     string
	expiresAt time.Time
}

//go:generate counterfeiter -o fakes/json_client.go --fake-name JSONClient . jsonClient
type jsonClient interface {
	MakeRequest(*http.Request, interface{}) error
}

func (c *Client) GetToken(ctx context.Context) (string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.now()
	if c.token != "" && now.Before(c.expiresAt) {
		return c.token, nil
	}

	token, expiresIn, err := c.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiresAt = now.Add(time.Duration(expiresIn)*time.Second - expiryLeeway)
	return token, nil
}

func (c *Client) fetchToken(ctx context.Context) (string, int, error) {
	reqURL := fmt.Sprintf("%s/oauth/token", c.BaseURL)
	form := url.Values{
		"client_id":  {c.Name},
		"grant_type": {"client_credentials"},
	}
	request, err := http.NewRequestWithContext(ctx, "POST", reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	request.SetBasicAuth(c.Name, c.Secret)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	type getTokenResponse struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	response := &getTokenResponse{}
	err = c.JSONClient.MakeRequest(request, response)
	if err != nil {
		return "", 0, err
	}
	return response.AccessToken, response.ExpiresIn, nil
}

func (c *Client) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}
