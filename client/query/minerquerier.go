package query

import (
	"context"
	"net/url"

	"github.com/ault-network/ault-go/client"
)

// Miner is the chain's view of one registered miner.
type Miner struct {
	Address        string `json:"address"`
	RewardAddress  string `json:"reward_address"`
	VrfKey         string `json:"vrf_key"`
	CommissionRate string `json:"commission_rate"`
	Active         bool   `json:"active"`
}

// MinerQuerier reads the miner module.
type MinerQuerier struct {
	client *client.Client
}

// NewMinerQuerier builds a miner querier on top of c.
func NewMinerQuerier(c *client.Client) *MinerQuerier {
	return &MinerQuerier{client: c}
}

// Miner fetches a single miner by its bech32 address.
func (q *MinerQuerier) Miner(ctx context.Context, addr string) (*Miner, error) {
	var res struct {
		Miner Miner `json:"miner"`
	}
	if err := q.client.Get(ctx, "/ault/miner/v1/miner/"+url.PathEscape(addr), &res); err != nil {
		return nil, err
	}
	return &res.Miner, nil
}

// Miners walks the full miner set.
func (q *MinerQuerier) Miners(ctx context.Context) ([]Miner, error) {
	return client.CollectPages(ctx, func(ctx context.Context, pageKey string) ([]Miner, string, error) {
		var res struct {
			Miners     []Miner    `json:"miners"`
			Pagination pagination `json:"pagination"`
		}
		path := "/ault/miner/v1/miners"
		if pageKey != "" {
			path += "?pagination.key=" + url.QueryEscape(pageKey)
		}
		if err := q.client.Get(ctx, path, &res); err != nil {
			return nil, "", err
		}
		return res.Miners, res.Pagination.NextKey, nil
	})
}
