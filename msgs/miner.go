package msgs

import "math/big"

// Miner module message type URLs.
const (
	TypeURLRegisterMiner  = "/ault.miner.v1.MsgRegisterMiner"
	TypeURLSubmitVrfProof = "/ault.miner.v1.MsgSubmitVrfProof"
	TypeURLClaimRewards   = "/ault.miner.v1.MsgClaimRewards"
)

func init() {
	register(Config{
		TypeURL:        TypeURLRegisterMiner,
		AminoType:      "miner/MsgRegisterMiner",
		EIP712TypeName: "MsgRegisterMiner",
		LegacyAmino:    true,
		ValueFields: []FieldSpec{
			{Name: "vrf_key", Type: "string"},
			{Name: "reward_address", Type: "string"},
			{Name: "creator", Type: "string"},
			{Name: "commission_rate", Type: "string"},
		},
		WireFields: []WireField{
			{Name: "creator", Number: 1, Kind: WireString},
			{Name: "reward_address", Number: 2, Kind: WireString},
			{Name: "vrf_key", Number: 3, Kind: WireBytes},
			{Name: "commission_rate", Number: 4, Kind: WireUint},
		},
	})

	register(Config{
		TypeURL:        TypeURLSubmitVrfProof,
		AminoType:      "miner/MsgSubmitVrfProof",
		EIP712TypeName: "MsgSubmitVrfProof",
		LegacyAmino:    true,
		ValueFields: []FieldSpec{
			{Name: "vrf_proof", Type: "string"},
			{Name: "nonce", Type: "string"},
			{Name: "epoch", Type: "string"},
			{Name: "creator", Type: "string"},
		},
		WireFields: []WireField{
			{Name: "creator", Number: 1, Kind: WireString},
			{Name: "epoch", Number: 2, Kind: WireUint},
			{Name: "nonce", Number: 3, Kind: WireBytes},
			{Name: "vrf_proof", Number: 4, Kind: WireBytes},
		},
	})

	register(Config{
		TypeURL:        TypeURLClaimRewards,
		AminoType:      "miner/MsgClaimRewards",
		EIP712TypeName: "MsgClaimRewards",
		LegacyAmino:    true,
		ValueFields: []FieldSpec{
			{Name: "epochs", Type: "string[]"},
			{Name: "creator", Type: "string"},
		},
		WireFields: []WireField{
			{Name: "creator", Number: 1, Kind: WireString},
			{Name: "epochs", Number: 2, Kind: WireUint, Repeated: true},
		},
	})
}

// NewMsgRegisterMiner builds a miner registration message. The VRF key
// may be raw bytes or a base64 string; commissionRate is expressed in
// basis points.
func NewMsgRegisterMiner(creator, rewardAddress string, vrfKey []byte, commissionRate uint64) Message {
	return Message{
		TypeURL: TypeURLRegisterMiner,
		Value: map[string]any{
			"creator":         creator,
			"reward_address":  rewardAddress,
			"vrf_key":         vrfKey,
			"commission_rate": commissionRate,
		},
	}
}

// NewMsgSubmitVrfProof builds a VRF proof submission for one epoch.
func NewMsgSubmitVrfProof(creator string, epoch *big.Int, nonce, vrfProof []byte) Message {
	return Message{
		TypeURL: TypeURLSubmitVrfProof,
		Value: map[string]any{
			"creator":   creator,
			"epoch":     epoch,
			"nonce":     nonce,
			"vrf_proof": vrfProof,
		},
	}
}

// NewMsgClaimRewards builds a reward claim for the given epochs.
func NewMsgClaimRewards(creator string, epochs []*big.Int) Message {
	return Message{
		TypeURL: TypeURLClaimRewards,
		Value: map[string]any{
			"creator": creator,
			"epochs":  epochs,
		},
	}
}
