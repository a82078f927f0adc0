package client

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
)

// AccountInfo is the on-chain account state a signing attempt depends
// on. It is fetched fresh per attempt; the sequence advances by one per
// accepted transaction, so cached values only produce chain rejections.
type AccountInfo struct {
	AccountNumber uint64
	Sequence      uint64
	// PubKeyBase64 is the chain-recorded public key, empty for accounts
	// that have never sent a transaction.
	PubKeyBase64 string
}

// accountFields covers both the plain BaseAccount layout and the
// EthAccount layout that nests the same fields under base_account.
type accountFields struct {
	PubKey *struct {
		Key string `json:"key"`
	} `json:"pub_key"`
	AccountNumber string `json:"account_number"`
	Sequence      string `json:"sequence"`
}

type accountResponse struct {
	Account struct {
		accountFields
		BaseAccount *accountFields `json:"base_account"`
	} `json:"account"`
}

// Account fetches the current account state for a bech32 address.
func (c *Client) Account(ctx context.Context, bech32Addr string) (AccountInfo, error) {
	var res accountResponse
	if err := c.Get(ctx, "/cosmos/auth/v1beta1/accounts/"+bech32Addr, &res); err != nil {
		return AccountInfo{}, err
	}

	fields := res.Account.accountFields
	if res.Account.BaseAccount != nil {
		fields = *res.Account.BaseAccount
	}

	info := AccountInfo{}
	var err error
	if fields.AccountNumber != "" {
		info.AccountNumber, err = strconv.ParseUint(fields.AccountNumber, 10, 64)
		if err != nil {
			return AccountInfo{}, errors.Wrapf(err, "invalid account number %q", fields.AccountNumber)
		}
	}
	if fields.Sequence != "" {
		info.Sequence, err = strconv.ParseUint(fields.Sequence, 10, 64)
		if err != nil {
			return AccountInfo{}, errors.Wrapf(err, "invalid sequence %q", fields.Sequence)
		}
	}
	if fields.PubKey != nil {
		info.PubKeyBase64 = fields.PubKey.Key
	}
	return info, nil
}
