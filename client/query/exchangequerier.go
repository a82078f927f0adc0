package query

import (
	"context"
	"strconv"

	"github.com/ault-network/ault-go/client"
)

// Market is one exchange trading pair.
type Market struct {
	ID         string `json:"id"`
	BaseDenom  string `json:"base_denom"`
	QuoteDenom string `json:"quote_denom"`
	Admin      string `json:"admin"`
}

// Order is one resting exchange order.
type Order struct {
	ID       string `json:"id"`
	MarketID string `json:"market_id"`
	Creator  string `json:"creator"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
	Side     string `json:"side"`
}

// ExchangeQuerier reads the exchange module.
type ExchangeQuerier struct {
	client *client.Client
}

// NewExchangeQuerier builds an exchange querier on top of c.
func NewExchangeQuerier(c *client.Client) *ExchangeQuerier {
	return &ExchangeQuerier{client: c}
}

// Market fetches one market by numeric id.
func (q *ExchangeQuerier) Market(ctx context.Context, marketID uint64) (*Market, error) {
	var res struct {
		Market Market `json:"market"`
	}
	path := "/ault/exchange/v1/market/" + strconv.FormatUint(marketID, 10)
	if err := q.client.Get(ctx, path, &res); err != nil {
		return nil, err
	}
	return &res.Market, nil
}

// Orders walks the resting orders of a market.
func (q *ExchangeQuerier) Orders(ctx context.Context, marketID uint64) ([]Order, error) {
	base := "/ault/exchange/v1/orders?market_id=" + strconv.FormatUint(marketID, 10)
	return client.CollectPages(ctx, func(ctx context.Context, pageKey string) ([]Order, string, error) {
		var res struct {
			Orders     []Order    `json:"orders"`
			Pagination pagination `json:"pagination"`
		}
		if err := q.client.Get(ctx, base+pageKeyParam(pageKey), &res); err != nil {
			return nil, "", err
		}
		return res.Orders, res.Pagination.NextKey, nil
	})
}
