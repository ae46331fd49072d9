package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/tidwall/gjson"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
)

var log = logger.GetOrCreate("client")

type sonarClient struct {
	componentTreeURL string
	metricKeys       []string
	client           *http.Client
}

// NewSonarClient creates a client for the component tree endpoint. A zero timeout means the request waits for as
// long as the transport does.
func NewSonarClient(componentTreeURL string, timeout time.Duration) *sonarClient {
	return &sonarClient{
		componentTreeURL: componentTreeURL,
		metricKeys:       common.MetricKeys(),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// BuildURL appends the raw repository name and the comma-joined metric keys to the component tree URL
func BuildURL(componentTreeURL string, repositoryName string, metricKeys []string) string {
	return componentTreeURL + repositoryName + common.MetricKeysParam + strings.Join(metricKeys, ",")
}

// Fetch performs one GET for the repository and returns the JSON body untouched
func (c *sonarClient) Fetch(ctx context.Context, repositoryName string) ([]byte, error) {
	url := BuildURL(c.componentTreeURL, repositoryName, c.metricKeys)
	log.Debug("requesting component tree", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error fetching metrics: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ErrStatusNotOK(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if !utf8.Valid(body) {
		return nil, ErrInvalidUTF8
	}
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}

	log.Debug("received component tree",
		"repository", repositoryName,
		"paging_total", gjson.GetBytes(body, "paging.total").Int(),
		"components", CountComponents(body),
		"bytes", len(body))

	return body, nil
}

// CountComponents returns the number of entries of the response's components array
func CountComponents(body []byte) int64 {
	return gjson.GetBytes(body, "components.#").Int()
}

// IsInterfaceNil returns true if the value under the interface is nil
func (c *sonarClient) IsInterfaceNil() bool {
	return c == nil
}
