package msgs

import "math/big"

// Exchange module message type URLs.
const (
	TypeURLPlaceLimitOrder   = "/ault.exchange.v1.MsgPlaceLimitOrder"
	TypeURLCancelOrder       = "/ault.exchange.v1.MsgCancelOrder"
	TypeURLCreateMarket      = "/ault.exchange.v1.MsgCreateMarket"
	TypeURLBatchCancelOrders = "/ault.exchange.v1.MsgBatchCancelOrders"
	TypeURLBatchUpdateOrders = "/ault.exchange.v1.MsgBatchUpdateOrders"
)

// Order sides accepted by the exchange module.
const (
	OrderSideBuy  = "ORDER_SIDE_BUY"
	OrderSideSell = "ORDER_SIDE_SELL"
)

func init() {
	register(Config{
		TypeURL:        TypeURLPlaceLimitOrder,
		AminoType:      "exchange/MsgPlaceLimitOrder",
		EIP712TypeName: "MsgPlaceLimitOrder",
		LegacyAmino:    true,
		ValueFields: []FieldSpec{
			{Name: "side", Type: "string"},
			{Name: "quantity", Type: "string"},
			{Name: "price", Type: "string"},
			{Name: "order_id", Type: "string"},
			{Name: "market_id", Type: "string"},
			{Name: "lifespan", Type: "string"},
			{Name: "creator", Type: "string"},
		},
		WireFields: []WireField{
			{Name: "creator", Number: 1, Kind: WireString},
			{Name: "market_id", Number: 2, Kind: WireUint},
			{Name: "order_id", Number: 3, Kind: WireBytes},
			{Name: "price", Number: 4, Kind: WireString},
			{Name: "quantity", Number: 5, Kind: WireString},
			{Name: "side", Number: 6, Kind: WireString},
			// Lifespan travels as nanoseconds and is wire-encoded as a
			// Duration (seconds + nanos remainder).
			{Name: "lifespan", Number: 7, Kind: WireDuration},
		},
	})

	register(Config{
		TypeURL:        TypeURLCancelOrder,
		AminoType:      "exchange/MsgCancelOrder",
		EIP712TypeName: "MsgCancelOrder",
		LegacyAmino:    true,
		ValueFields: []FieldSpec{
			{Name: "order_id", Type: "string"},
			{Name: "market_id", Type: "string"},
			{Name: "creator", Type: "string"},
		},
		WireFields: []WireField{
			{Name: "creator", Number: 1, Kind: WireString},
			{Name: "market_id", Number: 2, Kind: WireUint},
			{Name: "order_id", Number: 3, Kind: WireBytes},
		},
	})

	register(Config{
		TypeURL:        TypeURLCreateMarket,
		AminoType:      "exchange/MsgCreateMarket",
		EIP712TypeName: "MsgCreateMarket",
		LegacyAmino:    true,
		ValueFields: []FieldSpec{
			{Name: "quote_denom", Type: "string"},
			{Name: "params", Type: NestedFieldType},
			{Name: "base_denom", Type: "string"},
			{Name: "admin", Type: "string"},
		},
		NestedTypes: map[string][]FieldSpec{
			"params": {
				{Name: "tick_size", Type: "string"},
				{Name: "taker_fee_rate", Type: "string"},
				{Name: "maker_fee_rate", Type: "string"},
				{Name: "lot_size", Type: "string"},
			},
		},
		WireFields: []WireField{
			{Name: "admin", Number: 1, Kind: WireString},
			{Name: "base_denom", Number: 2, Kind: WireString},
			{Name: "quote_denom", Number: 3, Kind: WireString},
			{Name: "params", Number: 4, Kind: WireNested, Fields: []WireField{
				{Name: "lot_size", Number: 1, Kind: WireUint},
				{Name: "maker_fee_rate", Number: 2, Kind: WireString},
				{Name: "taker_fee_rate", Number: 3, Kind: WireString},
				{Name: "tick_size", Number: 4, Kind: WireString},
			}},
		},
	})

	register(Config{
		TypeURL:        TypeURLBatchCancelOrders,
		AminoType:      "exchange/MsgBatchCancelOrders",
		EIP712TypeName: "MsgBatchCancelOrders",
		LegacyAmino:    true,
		ValueFields: []FieldSpec{
			{Name: "creator", Type: "string"},
			{Name: "cancels", Type: NestedFieldType},
		},
		NestedTypes: map[string][]FieldSpec{
			"cancels": {
				{Name: "order_id", Type: "string"},
				{Name: "market_id", Type: "string"},
			},
		},
		WireFields: []WireField{
			{Name: "creator", Number: 1, Kind: WireString},
			{Name: "cancels", Number: 2, Kind: WireNested, Repeated: true, Fields: []WireField{
				{Name: "market_id", Number: 1, Kind: WireUint},
				{Name: "order_id", Number: 2, Kind: WireBytes},
			}},
		},
	})

	// Batch updates exist on the wire but the chain's amino bridge has
	// no canonical JSON form for them yet, so EIP-712 signing must fail
	// loudly instead of producing an unverifiable signature.
	register(Config{
		TypeURL:        TypeURLBatchUpdateOrders,
		AminoType:      "exchange/MsgBatchUpdateOrders",
		EIP712TypeName: "MsgBatchUpdateOrders",
		LegacyAmino:    false,
		ValueFields: []FieldSpec{
			{Name: "updates", Type: NestedFieldType},
			{Name: "creator", Type: "string"},
		},
		NestedTypes: map[string][]FieldSpec{
			"updates": {
				{Name: "side", Type: "string"},
				{Name: "quantity", Type: "string"},
				{Name: "price", Type: "string"},
				{Name: "order_id", Type: "string"},
				{Name: "market_id", Type: "string"},
			},
		},
		WireFields: []WireField{
			{Name: "creator", Number: 1, Kind: WireString},
			{Name: "updates", Number: 2, Kind: WireNested, Repeated: true, Fields: []WireField{
				{Name: "market_id", Number: 1, Kind: WireUint},
				{Name: "order_id", Number: 2, Kind: WireBytes},
				{Name: "price", Number: 3, Kind: WireString},
				{Name: "quantity", Number: 4, Kind: WireString},
				{Name: "side", Number: 5, Kind: WireString},
			}},
		},
	})
}

// NewMsgPlaceLimitOrder builds a limit order. Price and quantity are
// decimal strings; lifespan is the order's time to live in nanoseconds.
func NewMsgPlaceLimitOrder(creator string, marketID uint64, orderID []byte, price, quantity, side string, lifespan *big.Int) Message {
	return Message{
		TypeURL: TypeURLPlaceLimitOrder,
		Value: map[string]any{
			"creator":   creator,
			"market_id": marketID,
			"order_id":  orderID,
			"price":     price,
			"quantity":  quantity,
			"side":      side,
			"lifespan":  lifespan,
		},
	}
}

// NewMsgCancelOrder builds an order cancellation.
func NewMsgCancelOrder(creator string, marketID uint64, orderID []byte) Message {
	return Message{
		TypeURL: TypeURLCancelOrder,
		Value: map[string]any{
			"creator":   creator,
			"market_id": marketID,
			"order_id":  orderID,
		},
	}
}

// MarketParams holds the fee and sizing parameters of a new market. All
// rates and sizes are decimal strings except LotSize, which is a whole
// number of base units.
type MarketParams struct {
	LotSize      uint64
	MakerFeeRate string
	TakerFeeRate string
	TickSize     string
}

// NewMsgCreateMarket builds a market creation proposal.
func NewMsgCreateMarket(admin, baseDenom, quoteDenom string, params MarketParams) Message {
	return Message{
		TypeURL: TypeURLCreateMarket,
		Value: map[string]any{
			"admin":       admin,
			"base_denom":  baseDenom,
			"quote_denom": quoteDenom,
			"params": map[string]any{
				"lot_size":       params.LotSize,
				"maker_fee_rate": params.MakerFeeRate,
				"taker_fee_rate": params.TakerFeeRate,
				"tick_size":      params.TickSize,
			},
		},
	}
}

// OrderRef identifies one resting order within a market.
type OrderRef struct {
	MarketID uint64
	OrderID  []byte
}

// NewMsgBatchCancelOrders builds a cancellation for several orders at
// once. An empty refs slice is valid and cancels nothing.
func NewMsgBatchCancelOrders(creator string, refs []OrderRef) Message {
	cancels := make([]map[string]any, 0, len(refs))
	for _, ref := range refs {
		cancels = append(cancels, map[string]any{
			"market_id": ref.MarketID,
			"order_id":  ref.OrderID,
		})
	}
	return Message{
		TypeURL: TypeURLBatchCancelOrders,
		Value: map[string]any{
			"creator": creator,
			"cancels": cancels,
		},
	}
}
