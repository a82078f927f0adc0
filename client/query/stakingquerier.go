package query

import (
	"context"
	"net/url"

	"github.com/ault-network/ault-go/client"
)

// Delegation is one delegator/validator stake pairing.
type Delegation struct {
	DelegatorAddress string `json:"delegator_address"`
	ValidatorAddress string `json:"validator_address"`
	Shares           string `json:"shares"`
}

type delegationResponse struct {
	Delegation Delegation `json:"delegation"`
	Balance    struct {
		Denom  string `json:"denom"`
		Amount string `json:"amount"`
	} `json:"balance"`
}

// StakingQuerier reads the standard Cosmos staking module.
type StakingQuerier struct {
	client *client.Client
}

// NewStakingQuerier builds a staking querier on top of c.
func NewStakingQuerier(c *client.Client) *StakingQuerier {
	return &StakingQuerier{client: c}
}

// Delegations walks all delegations of a delegator.
func (q *StakingQuerier) Delegations(ctx context.Context, delegator string) ([]Delegation, error) {
	base := "/cosmos/staking/v1beta1/delegations/" + url.PathEscape(delegator)
	responses, err := client.CollectPages(ctx, func(ctx context.Context, pageKey string) ([]delegationResponse, string, error) {
		var res struct {
			DelegationResponses []delegationResponse `json:"delegation_responses"`
			Pagination          pagination           `json:"pagination"`
		}
		path := base
		if pageKey != "" {
			path += "?pagination.key=" + url.QueryEscape(pageKey)
		}
		if err := q.client.Get(ctx, path, &res); err != nil {
			return nil, "", err
		}
		return res.DelegationResponses, res.Pagination.NextKey, nil
	})
	if err != nil {
		return nil, err
	}
	delegations := make([]Delegation, len(responses))
	for i, r := range responses {
		delegations[i] = r.Delegation
	}
	return delegations, nil
}
