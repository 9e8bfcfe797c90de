package research

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBraveEndpoint = "https://api.search.brave.com/res/v1/web/search"

type BraveResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type braveWebSection struct {
	Results []*BraveResult `json:"results"`
}

type braveSearchResponse struct {
	Web *braveWebSection `json:"web"`
}

// BraveClient queries the Brave web search API.
type BraveClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewBraveClient(apiKey string) *BraveClient {
	return &BraveClient{
		apiKey:   apiKey,
		endpoint: defaultBraveEndpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewBraveClientWithEndpoint is used by tests to target a local server.
func NewBraveClientWithEndpoint(apiKey, endpoint string) *BraveClient {
	c := NewBraveClient(apiKey)
	c.endpoint = endpoint
	return c
}

func (c *BraveClient) Search(ctx context.Context, query string, count int) ([]*BraveResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("brave search api key is not configured")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(count))
	params.Set("country", "US")
	params.Set("search_lang", "en")
	params.Set("safesearch", "moderate")
	params.Set("text_decorations", "false")

	req, err := http.NewRequestWithContext(ctx, "GET", c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var braveRes braveSearchResponse
	if err := json.Unmarshal(resBody, &braveRes); err != nil {
		return nil, err
	}

	if braveRes.Web == nil {
		return []*BraveResult{}, nil
	}
	return braveRes.Web.Results, nil
}
