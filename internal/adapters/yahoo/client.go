package yahoo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/forexapps/forex_data_app/internal/apperrors"
	"github.com/forexapps/forex_data_app/internal/core/domain"
)

const defaultBaseURL = "https://finance.yahoo.com"

// Yahoo serves a stripped page to unknown agents, so present a browser one.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Client retrieves historical rate pages from Yahoo Finance and parses
// them into domain records. It holds no per-request state and is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a Client. An empty baseURL selects the real Yahoo
// Finance host; tests point it at a stub server. A nil logger falls back
// to slog.Default().
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

func (c *Client) historyURL(currencyPair string) string {
	return fmt.Sprintf("%s/quote/%s/history?p=%s", c.baseURL, currencyPair, currencyPair)
}

// FetchHistory GETs the history page for the given pair token and returns
// the rows that parsed cleanly inside the window, in document order.
// Transport, timeout and non-200 failures all wrap apperrors.ErrFetch.
func (c *Client) FetchHistory(ctx context.Context, currencyPair string, window domain.DateWindow) ([]domain.ForexRate, error) {
	url := c.historyURL(currencyPair)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", apperrors.ErrFetch, url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", apperrors.ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s: unexpected status %d", apperrors.ErrFetch, url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading document from %s: %v", apperrors.ErrFetch, url, err)
	}

	return c.parseHistory(doc, currencyPair, window), nil
}
