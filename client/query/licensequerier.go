// Package query provides thin read-only REST wrappers over the chain's
// module endpoints. Queriers share the client's transport, retry and
// pagination behavior; they never mutate chain state.
package query

import (
	"context"
	"net/url"

	"github.com/ault-network/ault-go/client"
)

// License is the chain's view of one minted license.
type License struct {
	ID      string `json:"id"`
	Owner   string `json:"owner"`
	Tier    string `json:"tier"`
	Revoked bool   `json:"revoked"`
}

// LicenseQuerier reads the license module.
type LicenseQuerier struct {
	client *client.Client
}

// NewLicenseQuerier builds a license querier on top of c.
func NewLicenseQuerier(c *client.Client) *LicenseQuerier {
	return &LicenseQuerier{client: c}
}

// License fetches a single license by id.
func (q *LicenseQuerier) License(ctx context.Context, id string) (*License, error) {
	var res struct {
		License License `json:"license"`
	}
	if err := q.client.Get(ctx, "/ault/license/v1/license/"+url.PathEscape(id), &res); err != nil {
		return nil, err
	}
	return &res.License, nil
}

// LicensesByOwner walks all licenses held by owner.
func (q *LicenseQuerier) LicensesByOwner(ctx context.Context, owner string) ([]License, error) {
	return client.CollectPages(ctx, func(ctx context.Context, pageKey string) ([]License, string, error) {
		var res struct {
			Licenses   []License  `json:"licenses"`
			Pagination pagination `json:"pagination"`
		}
		path := "/ault/license/v1/licenses?owner=" + url.QueryEscape(owner) + pageKeyParam(pageKey)
		if err := q.client.Get(ctx, path, &res); err != nil {
			return nil, "", err
		}
		return res.Licenses, res.Pagination.NextKey, nil
	})
}

type pagination struct {
	NextKey string `json:"next_key"`
}

func pageKeyParam(pageKey string) string {
	if pageKey == "" {
		return ""
	}
	return "&pagination.key=" + url.QueryEscape(pageKey)
}
