package msgs

import "math/big"

// License module message type URLs.
const (
	TypeURLMintLicense     = "/ault.license.v1.MsgMintLicense"
	TypeURLTransferLicense = "/ault.license.v1.MsgTransferLicense"
)

func init() {
	register(Config{
		TypeURL:        TypeURLMintLicense,
		AminoType:      "license/MsgMintLicense",
		EIP712TypeName: "MsgMintLicense",
		LegacyAmino:    true,
		ValueFields: []FieldSpec{
			{Name: "recipient", Type: "string"},
			{Name: "license_id", Type: "string"},
			{Name: "creator", Type: "string"},
		},
		WireFields: []WireField{
			{Name: "creator", Number: 1, Kind: WireString},
			{Name: "license_id", Number: 2, Kind: WireUint},
			{Name: "recipient", Number: 3, Kind: WireString},
		},
	})

	register(Config{
		TypeURL:        TypeURLTransferLicense,
		AminoType:      "license/MsgTransferLicense",
		EIP712TypeName: "MsgTransferLicense",
		LegacyAmino:    true,
		ValueFields: []FieldSpec{
			{Name: "recipient", Type: "string"},
			{Name: "license_id", Type: "string"},
			{Name: "from", Type: "string"},
		},
		WireFields: []WireField{
			{Name: "from", Number: 1, Kind: WireString},
			{Name: "license_id", Number: 2, Kind: WireUint},
			{Name: "recipient", Number: 3, Kind: WireString},
		},
	})
}

// NewMsgMintLicense builds a license mint message. The license id may
// exceed 64 bits, hence *big.Int.
func NewMsgMintLicense(creator string, licenseID *big.Int, recipient string) Message {
	return Message{
		TypeURL: TypeURLMintLicense,
		Value: map[string]any{
			"creator":    creator,
			"license_id": licenseID,
			"recipient":  recipient,
		},
	}
}

// NewMsgTransferLicense builds a license transfer message.
func NewMsgTransferLicense(from string, licenseID *big.Int, recipient string) Message {
	return Message{
		TypeURL: TypeURLTransferLicense,
		Value: map[string]any{
			"from":       from,
			"license_id": licenseID,
			"recipient":  recipient,
		},
	}
}
