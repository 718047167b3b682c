package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"football101/internal/platform/logging"
	"football101/internal/usecase"
)

const (
	defaultBaseURL = "https://api-football-v1.p.rapidapi.com/v3"
	defaultTimeout = 20 * time.Second

	maxBodyBytes = 6 << 20
)

var errFeedResponse = crerr.New("api-football response failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Host       string
	Key        string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client talks to the API-Football feed behind RapidAPI. It implements
// usecase.SportDataProvider: feed-side failures (non-2xx statuses, broken
// payloads) degrade to empty results with a warning so a populate run can
// carry on with the remaining endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	key        string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		host:       strings.TrimSpace(cfg.Host),
		key:        strings.TrimSpace(cfg.Key),
		logger:     logger,
	}
}

var _ usecase.SportDataProvider = (*Client)(nil)

func (c *Client) LeagueSeasons(ctx context.Context, leagueID int64) (usecase.ExternalLeagueSeasons, error) {
	if leagueID <= 0 {
		return usecase.ExternalLeagueSeasons{}, fmt.Errorf("league id must be greater than zero")
	}

	var env envelope[leagueItem]
	query := map[string]string{"id": strconv.FormatInt(leagueID, 10)}
	if err := c.getJSON(ctx, "/leagues", query, &env); err != nil {
		if ctx.Err() != nil {
			return usecase.ExternalLeagueSeasons{}, ctx.Err()
		}
		c.logger.WarnContext(ctx, "league seasons fetch failed, continuing with empty result",
			"league_id", leagueID,
			"error", err,
		)
		return usecase.ExternalLeagueSeasons{}, nil
	}

	return normalizeLeagueSeasons(env.Response), nil
}

func (c *Client) Standings(ctx context.Context, leagueID int64, year int) ([]usecase.ExternalStanding, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("league id must be greater than zero")
	}
	if year <= 0 {
		return nil, fmt.Errorf("season year must be greater than zero")
	}

	var env envelope[standingsItem]
	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(year),
	}
	if err := c.getJSON(ctx, "/standings", query, &env); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.WarnContext(ctx, "standings fetch failed, continuing with empty result",
			"league_id", leagueID,
			"season", year,
			"error", err,
		)
		return nil, nil
	}

	return normalizeStandings(env.Response), nil
}

func (c *Client) UpcomingFixtures(ctx context.Context, leagueID int64, count int) ([]usecase.ExternalFixture, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("league id must be greater than zero")
	}
	if count <= 0 {
		return nil, fmt.Errorf("fixture count must be greater than zero")
	}

	var env envelope[fixtureItem]
	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"next":   strconv.Itoa(count),
	}
	if err := c.getJSON(ctx, "/fixtures", query, &env); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.WarnContext(ctx, "fixtures fetch failed, continuing with empty result",
			"league_id", leagueID,
			"next", count,
			"error", err,
		)
		return nil, nil
	}

	return normalizeFixtures(env.Response), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query map[string]string, target any) error {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: send request: %s", errFeedResponse, sanitizeSensitiveText(err.Error(), c.key))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read response body: %v", errFeedResponse, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status=%d body=%s", errFeedResponse, resp.StatusCode, abbreviateBody(raw))
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode payload: %v", errFeedResponse, err)
	}

	return nil
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

// sanitizeSensitiveText keeps the API key out of error messages and logs.
func sanitizeSensitiveText(text, secret string) string {
	if secret == "" {
		return text
	}
	return strings.ReplaceAll(text, secret, "[REDACTED]")
}
