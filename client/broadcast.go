package client

import (
	"context"
	"encoding/base64"
)

// BroadcastModeSync submits the transaction and waits for the
// CheckTx result only.
const BroadcastModeSync = "BROADCAST_MODE_SYNC"

// BroadcastResult is the chain's response to a submission. Code zero
// means accepted into the mempool; any other code is a chain-level
// rejection, delivered as data rather than an error so callers can
// inspect RawLog.
type BroadcastResult struct {
	TxHash string
	Code   uint32
	RawLog string
}

type broadcastRequest struct {
	TxBytes string `json:"tx_bytes"`
	Mode    string `json:"mode"`
}

type broadcastResponse struct {
	TxResponse struct {
		TxHash string `json:"txhash"`
		Code   uint32 `json:"code"`
		RawLog string `json:"raw_log"`
	} `json:"tx_response"`
}

// Broadcast submits TxRaw bytes in sync mode. The POST retries only
// when the retry policy explicitly allows broadcast retries.
func (c *Client) Broadcast(ctx context.Context, txRaw []byte) (*BroadcastResult, error) {
	req := broadcastRequest{
		TxBytes: base64.StdEncoding.EncodeToString(txRaw),
		Mode:    BroadcastModeSync,
	}
	var res broadcastResponse
	if err := c.post(ctx, "/cosmos/tx/v1beta1/txs", req, &res, c.retry.RetryBroadcast); err != nil {
		return nil, err
	}
	return &BroadcastResult{
		TxHash: res.TxResponse.TxHash,
		Code:   res.TxResponse.Code,
		RawLog: res.TxResponse.RawLog,
	}, nil
}
