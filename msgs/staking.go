package msgs

// Staking message type URLs (standard Cosmos SDK module).
const (
	TypeURLDelegate   = "/cosmos.staking.v1beta1.MsgDelegate"
	TypeURLUndelegate = "/cosmos.staking.v1beta1.MsgUndelegate"
)

// coinFields is the Coin shape shared by delegate and undelegate; the
// typed-data builder deduplicates it into a single generated type.
var coinFields = []FieldSpec{
	{Name: "denom", Type: "string"},
	{Name: "amount", Type: "string"},
}

var coinWire = []WireField{
	{Name: "denom", Number: 1, Kind: WireString},
	{Name: "amount", Number: 2, Kind: WireString},
}

func init() {
	register(Config{
		TypeURL:        TypeURLDelegate,
		AminoType:      "cosmos-sdk/MsgDelegate",
		EIP712TypeName: "MsgDelegate",
		LegacyAmino:    true,
		ValueFields: []FieldSpec{
			{Name: "validator_address", Type: "string"},
			{Name: "delegator_address", Type: "string"},
			{Name: "amount", Type: NestedFieldType},
		},
		NestedTypes: map[string][]FieldSpec{
			"amount": coinFields,
		},
		WireFields: []WireField{
			{Name: "delegator_address", Number: 1, Kind: WireString},
			{Name: "validator_address", Number: 2, Kind: WireString},
			{Name: "amount", Number: 3, Kind: WireNested, Fields: coinWire},
		},
	})

	register(Config{
		TypeURL:        TypeURLUndelegate,
		AminoType:      "cosmos-sdk/MsgUndelegate",
		EIP712TypeName: "MsgUndelegate",
		LegacyAmino:    true,
		ValueFields: []FieldSpec{
			{Name: "validator_address", Type: "string"},
			{Name: "delegator_address", Type: "string"},
			{Name: "amount", Type: NestedFieldType},
		},
		NestedTypes: map[string][]FieldSpec{
			"amount": coinFields,
		},
		WireFields: []WireField{
			{Name: "delegator_address", Number: 1, Kind: WireString},
			{Name: "validator_address", Number: 2, Kind: WireString},
			{Name: "amount", Number: 3, Kind: WireNested, Fields: coinWire},
		},
	})
}

// NewMsgDelegate builds a stake delegation. Amount is a decimal string
// in the chain's base denom.
func NewMsgDelegate(delegator, validator, denom, amount string) Message {
	return Message{
		TypeURL: TypeURLDelegate,
		Value: map[string]any{
			"delegator_address": delegator,
			"validator_address": validator,
			"amount": map[string]any{
				"denom":  denom,
				"amount": amount,
			},
		},
	}
}

// NewMsgUndelegate builds a stake undelegation.
func NewMsgUndelegate(delegator, validator, denom, amount string) Message {
	return Message{
		TypeURL: TypeURLUndelegate,
		Value: map[string]any{
			"delegator_address": delegator,
			"validator_address": validator,
			"amount": map[string]any{
				"denom":  denom,
				"amount": amount,
			},
		},
	}
}
