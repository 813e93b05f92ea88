package escrow

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// AccountSnapshot is the read-only view of an escrow account's funding state.
type AccountSnapshot struct {
	Address   string    `json:"address"`
	Balance   float64   `json:"balance"`
	IsFunded  bool      `json:"isFunded"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Client is the narrow capability this service needs from the escrow/chain
// integration. The escrow system itself is owned by an external collaborator;
// this client only reads account state.
type Client interface {
	GetAccount(ctx context.Context, address string) (*AccountSnapshot, error)
}

// HorizonClient reads escrow account state from a Horizon API endpoint.
type HorizonClient struct {
	BaseURL string
	Mock    bool
	client  *http.Client
}

// NewClient creates a new escrow account client
func NewClient(baseURL string, mock bool) *HorizonClient {
	return &HorizonClient{
		BaseURL: baseURL,
		Mock:    mock,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// horizonAccount is the subset of the Horizon account response we decode.
type horizonAccount struct {
	Balances []struct {
		Balance   string `json:"balance"`
		AssetType string `json:"asset_type"`
	} `json:"balances"`
}

// GetAccount retrieves the native balance of an escrow account.
func (c *HorizonClient) GetAccount(ctx context.Context, address string) (*AccountSnapshot, error) {
	if c.Mock {
		return c.mockGetAccount(address)
	}

	url := fmt.Sprintf("%s/accounts/%s", c.BaseURL, address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("escrow account lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("escrow account lookup returned status %d", resp.StatusCode)
	}

	var account horizonAccount
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("failed to decode escrow account response: %w", err)
	}

	var balance float64
	for _, b := range account.Balances {
		if b.AssetType != "native" {
			continue
		}
		v, err := strconv.ParseFloat(b.Balance, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid balance in escrow account response: %w", err)
		}
		balance += v
	}

	return &AccountSnapshot{
		Address:   address,
		Balance:   balance,
		IsFunded:  balance > 0,
		CheckedAt: time.Now(),
	}, nil
}

// mockGetAccount mocks the GetAccount method for testing
func (c *HorizonClient) mockGetAccount(address string) (*AccountSnapshot, error) {
	return &AccountSnapshot{
		Address:   address,
		Balance:   0,
		IsFunded:  false,
		CheckedAt: time.Now(),
	}, nil
}
