package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/learnledger/api/internal/model"
)

// DefaultBaseURL is the address of a locally running API
const DefaultBaseURL = "http://localhost:8080"

// Config holds configuration for the API client
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client calls the LearnLedger HTTP API
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a new API client
func New(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: base, client: client}
}

type envelope[T any] struct {
	Data  T   `json:"data"`
	Count int `json:"count"`
}

// do sends a request and decodes the data envelope into out. Error responses
// are returned as *model.ProblemDetails.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost || method == http.MethodPut {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeProblem(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeProblem(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var problem model.ProblemDetails
	if err := json.Unmarshal(raw, &problem); err != nil || problem.Status == 0 {
		return &model.ProblemDetails{
			Title:  http.StatusText(resp.StatusCode),
			Status: resp.StatusCode,
			Detail: string(bytes.TrimSpace(raw)),
		}
	}
	return &problem
}

func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var env envelope[T]
	err := c.do(ctx, http.MethodGet, path, nil, &env)
	return env.Data, err
}

func send[T any](ctx context.Context, c *Client, method, path string, body interface{}) (T, error) {
	var env envelope[T]
	err := c.do(ctx, method, path, body, &env)
	return env.Data, err
}

// ============================================================================
// Ledger
// ============================================================================

// Account returns the account snapshot
func (c *Client) Account(ctx context.Context) (model.AccountSummary, error) {
	return get[model.AccountSummary](ctx, c, "/v1/account")
}

// Stake moves amount EDU from balance to staked
func (c *Client) Stake(ctx context.Context, amount float64) (model.StakeResult, error) {
	return send[model.StakeResult](ctx, c, http.MethodPost, "/v1/ledger/stake", model.StakeRequest{Amount: amount})
}

// Vote spends amount reward points on a sector
func (c *Client) Vote(ctx context.Context, sectorID string, amount int) (model.VoteResult, error) {
	return send[model.VoteResult](ctx, c, http.MethodPost, "/v1/ledger/votes",
		model.CastVoteRequest{SectorID: sectorID, Amount: amount})
}

// DistributeRewards pays out and zeroes the reward points
func (c *Client) DistributeRewards(ctx context.Context) (model.RewardDistribution, error) {
	return send[model.RewardDistribution](ctx, c, http.MethodPost, "/v1/ledger/rewards/distribute", nil)
}

// CheckAccess reports whether the paper is on the account's allow-list
func (c *Client) CheckAccess(ctx context.Context, paperID string) (model.AccessCheck, error) {
	return get[model.AccessCheck](ctx, c, "/v1/access/"+url.PathEscape(paperID))
}

// Sectors returns the sectors with their vote totals
func (c *Client) Sectors(ctx context.Context) ([]model.Sector, error) {
	return get[[]model.Sector](ctx, c, "/v1/sectors")
}

// Round returns the voting round and cap usage
func (c *Client) Round(ctx context.Context) (model.RoundStatus, error) {
	return get[model.RoundStatus](ctx, c, "/v1/round")
}

// ============================================================================
// Papers and reading
// ============================================================================

// Papers lists the catalog filtered by query and ordered by sort
func (c *Client) Papers(ctx context.Context, query, sort string) ([]model.PaperView, error) {
	v := url.Values{}
	if query != "" {
		v.Set("q", query)
	}
	if sort != "" {
		v.Set("sort", sort)
	}
	path := "/v1/papers"
	if len(v) > 0 {
		path += "?" + v.Encode()
	}
	return get[[]model.PaperView](ctx, c, path)
}

// Paper returns one paper
func (c *Client) Paper(ctx context.Context, paperID string) (model.PaperView, error) {
	return get[model.PaperView](ctx, c, "/v1/papers/"+url.PathEscape(paperID))
}

// OpenSession opens the viewer for a paper
func (c *Client) OpenSession(ctx context.Context, paperID string) (model.ReadingSession, error) {
	return send[model.ReadingSession](ctx, c, http.MethodPost, "/v1/papers/"+url.PathEscape(paperID)+"/session", nil)
}

// CloseSession closes the viewer for a paper
func (c *Client) CloseSession(ctx context.Context, paperID string) (model.ReadingSession, error) {
	return send[model.ReadingSession](ctx, c, http.MethodDelete, "/v1/papers/"+url.PathEscape(paperID)+"/session", nil)
}

// Session returns the open reading session
func (c *Client) Session(ctx context.Context) (model.ReadingSession, error) {
	return get[model.ReadingSession](ctx, c, "/v1/reading/session")
}

// ReadingTimes returns the persisted reading totals
func (c *Client) ReadingTimes(ctx context.Context) ([]model.ReadingTime, error) {
	return get[[]model.ReadingTime](ctx, c, "/v1/reading/times")
}

// ============================================================================
// Wallet and preferences
// ============================================================================

// ConnectWallet asks the server's wallet provider for an account
func (c *Client) ConnectWallet(ctx context.Context) (model.WalletConnection, error) {
	return send[model.WalletConnection](ctx, c, http.MethodPost, "/v1/wallet/connect", nil)
}

// Wallet returns the current wallet connection
func (c *Client) Wallet(ctx context.Context) (model.WalletConnection, error) {
	return get[model.WalletConnection](ctx, c, "/v1/wallet")
}

// DisconnectWallet forgets the connected wallet
func (c *Client) DisconnectWallet(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/v1/wallet", nil, nil)
}

// Theme returns the stored theme preference
func (c *Client) Theme(ctx context.Context) (model.ThemePreference, error) {
	return get[model.ThemePreference](ctx, c, "/v1/preferences/theme")
}

// SetTheme stores the theme preference
func (c *Client) SetTheme(ctx context.Context, dark bool) (model.ThemePreference, error) {
	return send[model.ThemePreference](ctx, c, http.MethodPut, "/v1/preferences/theme",
		model.UpdateThemeRequest{DarkMode: &dark})
}
