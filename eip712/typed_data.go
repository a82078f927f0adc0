// Package eip712 builds the EIP-712 typed-data structure an EVM wallet
// signs for an Ault transaction. The output mirrors the chain's
// legacy-Amino-JSON canonical signing form field for field; the message
// registry pins the required field ordering and this builder only
// assembles, never reorders.
package eip712

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/ault-network/ault-go/aulterrors"
	"github.com/ault-network/ault-go/msgs"
)

// PrimaryType is the root type of every signable transaction.
const PrimaryType = "Tx"

// Fixed domain the chain's ante handler verifies against.
const (
	domainName              = "Cosmos Web3"
	domainVersion           = "1.0.0"
	domainVerifyingContract = "cosmos"
	domainSalt              = "0"
)

// DefaultDedupLimit bounds the numeric suffix probe when structurally
// different types land on the same generated base name.
const DefaultDedupLimit = 1000

// Fee mirrors the transaction fee in its stringified signing form.
type Fee struct {
	Denom  string
	Amount string
	Gas    string
}

// TxContext carries the per-attempt transaction envelope. It is
// ephemeral: AccountNumber and Sequence must reflect the latest
// on-chain account state and are never reused across attempts.
type TxContext struct {
	ChainID       string
	AccountNumber uint64
	Sequence      uint64
	Fee           Fee
	Memo          string
}

// Builder turns a TxContext plus a message list into signable typed
// data. The zero value is not usable; construct with NewBuilder.
type Builder struct {
	dedupLimit int
}

// Option configures a Builder.
type Option func(*Builder)

// WithDedupLimit overrides the generated-type suffix bound.
func WithDedupLimit(limit int) Option {
	return func(b *Builder) {
		b.dedupLimit = limit
	}
}

// NewBuilder returns a Builder with the default dedup bound.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{dedupLimit: DefaultDedupLimit}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build produces the full EIP-712 typed data for the context and
// messages. evmChainID overrides the id otherwise parsed from the
// Cosmos chain id. Building twice from identical input yields
// identical output.
func (b *Builder) Build(txCtx TxContext, messages []msgs.Message, evmChainID *big.Int) (apitypes.TypedData, error) {
	if len(messages) == 0 {
		return apitypes.TypedData{}, aulterrors.Validationf("at least one message is required")
	}

	types := rootTypes()
	txFields := append([]apitypes.Type(nil), types[PrimaryType]...)

	payload := map[string]any{
		"account_number": strconv.FormatUint(txCtx.AccountNumber, 10),
		"chain_id":       txCtx.ChainID,
		"fee": map[string]any{
			"amount": []any{
				map[string]any{
					"amount": txCtx.Fee.Amount,
					"denom":  txCtx.Fee.Denom,
				},
			},
			"gas": txCtx.Fee.Gas,
		},
		"memo":     txCtx.Memo,
		"sequence": strconv.FormatUint(txCtx.Sequence, 10),
	}

	for i, m := range messages {
		cfg, err := msgs.Lookup(m.TypeURL)
		if err != nil {
			return apitypes.TypedData{}, err
		}
		if !cfg.LegacyAmino {
			return apitypes.TypedData{}, aulterrors.Configurationf(
				"message type %s has no legacy amino signing form", m.TypeURL)
		}

		valueFields, err := b.resolveFields(types, cfg.ValueFields, cfg.NestedTypes, m.Value)
		if err != nil {
			return apitypes.TypedData{}, err
		}
		valueName, err := b.installType(types, typeNameForField("value"), valueFields)
		if err != nil {
			return apitypes.TypedData{}, err
		}

		wrapperName, err := b.installType(types, cfg.EIP712TypeName, []apitypes.Type{
			{Name: "value", Type: valueName},
			{Name: "type", Type: "string"},
		})
		if err != nil {
			return apitypes.TypedData{}, err
		}

		msgKey := fmt.Sprintf("msg%d", i)
		txFields = append(txFields, apitypes.Type{Name: msgKey, Type: wrapperName})

		value, err := normalizeValue(cfg.ValueFields, cfg.NestedTypes, m.Value)
		if err != nil {
			return apitypes.TypedData{}, err
		}
		payload[msgKey] = map[string]any{
			"type":  cfg.AminoType,
			"value": value,
		}
	}
	types[PrimaryType] = txFields

	evmID, err := ResolveEVMChainID(txCtx.ChainID, evmChainID)
	if err != nil {
		return apitypes.TypedData{}, err
	}

	return apitypes.TypedData{
		Types:       types,
		PrimaryType: PrimaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              domainName,
			Version:           domainVersion,
			ChainId:           (*math.HexOrDecimal256)(new(big.Int).Set(evmID)),
			VerifyingContract: domainVerifyingContract,
			Salt:              domainSalt,
		},
		Message: payload,
	}, nil
}

// rootTypes seeds the fixed portion of the type graph. The Tx base
// field order is the chain's, not ours; timeout_height is deliberately
// absent from the legacy bridge.
func rootTypes() apitypes.Types {
	return apitypes.Types{
		"EIP712Domain": {
			{Name: "name", Type: "string"},
			{Name: "version", Type: "string"},
			{Name: "chainId", Type: "uint256"},
			{Name: "verifyingContract", Type: "string"},
			{Name: "salt", Type: "string"},
		},
		"Tx": {
			{Name: "account_number", Type: "string"},
			{Name: "chain_id", Type: "string"},
			{Name: "fee", Type: "Fee"},
			{Name: "memo", Type: "string"},
			{Name: "sequence", Type: "string"},
		},
		"Fee": {
			{Name: "amount", Type: "Coin[]"},
			{Name: "gas", Type: "string"},
		},
		"Coin": {
			{Name: "denom", Type: "string"},
			{Name: "amount", Type: "string"},
		},
	}
}

// resolveFields maps the registered field specs to concrete EIP-712
// fields, generating (or reusing) named types for NESTED fields from
// the message value's shape.
func (b *Builder) resolveFields(types apitypes.Types, specs []msgs.FieldSpec, nested map[string][]msgs.FieldSpec, value map[string]any) ([]apitypes.Type, error) {
	out := make([]apitypes.Type, 0, len(specs))
	for _, spec := range specs {
		if spec.Type != msgs.NestedFieldType {
			out = append(out, apitypes.Type{Name: spec.Name, Type: spec.Type})
			continue
		}

		raw := value[spec.Name]
		isArray, elems := asArray(raw)
		if isArray && len(elems) == 0 {
			// Zero elements carry no structural information, so the
			// field degrades to a string array placeholder.
			out = append(out, apitypes.Type{Name: spec.Name, Type: "string[]"})
			continue
		}

		subSpecs, ok := nested[spec.Name]
		if !ok {
			return nil, aulterrors.Configurationf(
				"missing nested type definition for field %q", spec.Name)
		}

		var subValue map[string]any
		if isArray {
			subValue, _ = elems[0].(map[string]any)
		} else {
			subValue, _ = raw.(map[string]any)
		}
		subFields, err := b.resolveFields(types, subSpecs, nested, subValue)
		if err != nil {
			return nil, err
		}
		name, err := b.installType(types, typeNameForField(spec.Name), subFields)
		if err != nil {
			return nil, err
		}
		if isArray {
			name += "[]"
		}
		out = append(out, apitypes.Type{Name: spec.Name, Type: name})
	}
	return out, nil
}

// installType registers fields under base, reusing an existing name on
// exact structural equality and probing numeric suffixes otherwise.
func (b *Builder) installType(types apitypes.Types, base string, fields []apitypes.Type) (string, error) {
	for i := 0; i < b.dedupLimit; i++ {
		name := base
		if i > 0 {
			name = fmt.Sprintf("%s%d", base, i)
		}
		existing, ok := types[name]
		if !ok {
			types[name] = fields
			return name, nil
		}
		if reflect.DeepEqual(existing, fields) {
			return name, nil
		}
	}
	return "", aulterrors.Configurationf(
		"generated type namespace exhausted for %q after %d variants", base, b.dedupLimit)
}

// typeNameForField derives a generated type name from a snake_case
// field name: "params" -> "TypeParams".
func typeNameForField(fieldName string) string {
	parts := strings.Split(fieldName, "_")
	var sb strings.Builder
	sb.WriteString("Type")
	for _, part := range parts {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}
	return sb.String()
}

// normalizeValue renders the message value in its amino-JSON signing
// form: numeric leaves under string-declared fields become decimal
// strings, byte leaves become base64, nested records recurse.
func normalizeValue(specs []msgs.FieldSpec, nested map[string][]msgs.FieldSpec, value map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(specs))
	for _, spec := range specs {
		raw, ok := value[spec.Name]
		if !ok || raw == nil {
			continue
		}
		switch spec.Type {
		case "string":
			s, err := stringifyLeaf(spec.Name, raw)
			if err != nil {
				return nil, err
			}
			out[spec.Name] = s
		case "string[]":
			elems, err := stringifyArray(spec.Name, raw)
			if err != nil {
				return nil, err
			}
			out[spec.Name] = elems
		case "bool":
			bv, ok := raw.(bool)
			if !ok {
				return nil, aulterrors.Validationf("field %q: expected bool, got %T", spec.Name, raw)
			}
			out[spec.Name] = bv
		case msgs.NestedFieldType:
			subSpecs := nested[spec.Name]
			isArray, elems := asArray(raw)
			if isArray {
				normalized := make([]any, 0, len(elems))
				for _, elem := range elems {
					sub, ok := elem.(map[string]any)
					if !ok {
						return nil, aulterrors.Validationf(
							"field %q: expected nested records, got %T", spec.Name, elem)
					}
					nv, err := normalizeValue(subSpecs, nested, sub)
					if err != nil {
						return nil, err
					}
					normalized = append(normalized, nv)
				}
				out[spec.Name] = normalized
				continue
			}
			sub, ok := raw.(map[string]any)
			if !ok {
				return nil, aulterrors.Validationf(
					"field %q: expected a nested record, got %T", spec.Name, raw)
			}
			nv, err := normalizeValue(subSpecs, nested, sub)
			if err != nil {
				return nil, err
			}
			out[spec.Name] = nv
		default:
			out[spec.Name] = raw
		}
	}
	return out, nil
}

func stringifyLeaf(name string, raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case []byte:
		return base64.StdEncoding.EncodeToString(v), nil
	case *big.Int:
		return v.String(), nil
	case big.Int:
		return v.String(), nil
	case json.Number:
		return v.String(), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		if v != float64(int64(v)) {
			return "", aulterrors.Validationf("field %q: value %v is not an integer", name, v)
		}
		return strconv.FormatInt(int64(v), 10), nil
	default:
		return "", aulterrors.Validationf("field %q: cannot stringify value of type %T", name, raw)
	}
}

func stringifyArray(name string, raw any) ([]any, error) {
	isArray, elems := asArray(raw)
	if !isArray {
		return nil, aulterrors.Validationf("field %q: expected an array, got %T", name, raw)
	}
	out := make([]any, 0, len(elems))
	for _, elem := range elems {
		s, err := stringifyLeaf(name, elem)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// asArray reports whether raw is a slice (other than []byte, which is a
// scalar on this layer) and returns its elements.
func asArray(raw any) (bool, []any) {
	if raw == nil {
		return false, nil
	}
	if _, isBytes := raw.([]byte); isBytes {
		return false, nil
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false, nil
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return true, elems
}
