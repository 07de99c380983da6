package conference

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"conferenceassistant/internal/domain"
)

// maxDetailsBytes caps the document read from the details URL.
const maxDetailsBytes = 4 << 20

type httpDetailsFetcher struct {
	client *http.Client
	url    string
}

// NewHTTPFetcher returns a fetcher that downloads the conference details document from url.
func NewHTTPFetcher(client *http.Client, url string) domain.ConferenceDetailsFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpDetailsFetcher{client: client, url: url}
}

func (f *httpDetailsFetcher) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/plain, */*")
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch conference details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("conference details returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDetailsBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read conference details: %w", err)
	}
	return string(body), nil
}
