package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/flor3z/sensei-bot/internal/tournament"
)

const (
	// Matchup endpoint variants served by the backend
	EndpointMatchups        = "matchups"
	EndpointDecidedMatchups = "decided-matchups"

	maxErrorBody = 512
)

var (
	// ErrUnauthorized is returned when the backend rejects the bot secret
	ErrUnauthorized = errors.New("backend rejected bot secret")

	// ErrUnexpectedStatus is returned for any other non-200 response
	ErrUnexpectedStatus = errors.New("unexpected backend status")
)

// ParseEndpoint validates a matchups endpoint variant
func ParseEndpoint(s string) (string, error) {
	switch s {
	case EndpointMatchups, EndpointDecidedMatchups:
		return s, nil
	default:
		return "", fmt.Errorf("unknown matchups endpoint %q (want %q or %q)", s, EndpointMatchups, EndpointDecidedMatchups)
	}
}

// Client talks to the tournament backend as the bot user
type Client struct {
	baseURL    string
	secret     string
	matchups   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Options configures a Client
type Options struct {
	BaseURL           string
	Secret            string
	MatchupsEndpoint  string
	RequestsPerSecond float64
	Timeout           time.Duration
}

// NewClient creates a new backend client
func NewClient(opts Options) *Client {
	if opts.MatchupsEndpoint == "" {
		opts.MatchupsEndpoint = EndpointMatchups
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 5
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		secret:   opts.Secret,
		matchups: opts.MatchupsEndpoint,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
	}
}

// Matchups fetches the ranked match groups, playing-now first
func (c *Client) Matchups(ctx context.Context) ([][]tournament.PlayerID, error) {
	var groups [][]tournament.PlayerID
	if err := c.get(ctx, "api/tournament/"+c.matchups, &groups); err != nil {
		return nil, fmt.Errorf("failed to get matchups: %w", err)
	}
	return groups, nil
}

// DiscordNames fetches the Discord usernames of players that linked an account
func (c *Client) DiscordNames(ctx context.Context) (tournament.Directory, error) {
	dir, err := c.getDirectory(ctx, "api/user/discord-names")
	if err != nil {
		return nil, fmt.Errorf("failed to get discord names: %w", err)
	}
	return dir, nil
}

// PlayersInfo fetches the website display name of every player
func (c *Client) PlayersInfo(ctx context.Context) (tournament.Directory, error) {
	dir, err := c.getDirectory(ctx, "api/tournament/players-info")
	if err != nil {
		return nil, fmt.Errorf("failed to get players info: %w", err)
	}
	return dir, nil
}

// Ping checks that the backend is up and accepts the bot secret
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, "api/tournament/bot-ping")
	if err != nil {
		return fmt.Errorf("bot ping failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("bot ping failed: %w", err)
	}
	return nil
}

// getDirectory decodes a JSON object keyed by stringified player IDs
func (c *Client) getDirectory(ctx context.Context, route string) (tournament.Directory, error) {
	var raw map[string]string
	if err := c.get(ctx, route, &raw); err != nil {
		return nil, err
	}

	dir := make(tournament.Directory, len(raw))
	for key, name := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid player id %q: %w", key, err)
		}
		dir[tournament.PlayerID(id)] = name
	}
	return dir, nil
}

// get performs a GET request and decodes the JSON response
func (c *Client) get(ctx context.Context, route string, result any) error {
	resp, err := c.do(ctx, route)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// do sends an authenticated, rate limited GET request.
// The backend reads the secret from the JSON body.
func (c *Client) do(ctx context.Context, route string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(map[string]string{"secret": c.secret})
	if err != nil {
		return nil, fmt.Errorf("failed to encode secret: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+route, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Bot-Secret", c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (HTTP %d)", ErrUnauthorized, resp.StatusCode)
	default:
		return fmt.Errorf("%w: status %d, body: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}
}
