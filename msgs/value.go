package msgs

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/ault-network/ault-go/aulterrors"
)

// maxSafeInteger is the largest integer a float64 represents exactly.
// Values arriving through encoding/json decode to float64, so anything
// above this bound may already have lost precision by the time it
// reaches the encoder and must be supplied as *big.Int or a string.
const maxSafeInteger = 1<<53 - 1

// coerceUint normalizes a numeric field value to a non-negative big.Int.
// Accepted: *big.Int, Go integer types, a float64 within the safe
// integer range, json.Number, or a non-empty decimal string.
func coerceUint(name string, v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		if n.Sign() < 0 {
			return nil, aulterrors.Validationf("field %q: negative value %s", name, n)
		}
		return n, nil
	case big.Int:
		return coerceUint(name, &n)
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case uint:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case int:
		return coerceInt64(name, int64(n))
	case int32:
		return coerceInt64(name, int64(n))
	case int64:
		return coerceInt64(name, n)
	case float64:
		if n != math.Trunc(n) {
			return nil, aulterrors.Validationf("field %q: value %v is not an integer", name, n)
		}
		if n < 0 {
			return nil, aulterrors.Validationf("field %q: negative value %v", name, n)
		}
		if n > maxSafeInteger {
			return nil, aulterrors.Validationf(
				"field %q: value %v exceeds the safe integer range, use *big.Int or a decimal string", name, n)
		}
		return new(big.Int).SetUint64(uint64(n)), nil
	case json.Number:
		return coerceUintString(name, n.String())
	case string:
		return coerceUintString(name, n)
	default:
		return nil, aulterrors.Validationf("field %q: unsupported numeric value of type %T", name, v)
	}
}

func coerceInt64(name string, n int64) (*big.Int, error) {
	if n < 0 {
		return nil, aulterrors.Validationf("field %q: negative value %d", name, n)
	}
	return new(big.Int).SetInt64(n), nil
}

func coerceUintString(name, s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, aulterrors.Validationf("field %q: empty numeric string", name)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, aulterrors.Validationf("field %q: invalid decimal string %q", name, s)
	}
	return n, nil
}

// coerceBytes normalizes a byte field value: raw bytes pass through,
// strings are decoded as standard base64.
func coerceBytes(name string, v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		decoded, err := base64.StdEncoding.DecodeString(b)
		if err != nil {
			return nil, aulterrors.Validationf("field %q: invalid base64: %v", name, err)
		}
		return decoded, nil
	default:
		return nil, aulterrors.Validationf("field %q: unsupported byte value of type %T", name, v)
	}
}

// coerceString normalizes a string field value; numeric values are
// rendered as decimal strings to match the amino-JSON representation.
func coerceString(name string, v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	case *big.Int:
		return s.String(), nil
	case big.Int:
		return s.String(), nil
	case uint64:
		return strconv.FormatUint(s, 10), nil
	case uint:
		return strconv.FormatUint(uint64(s), 10), nil
	case int:
		return strconv.FormatInt(int64(s), 10), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case float64:
		n, err := coerceUint(name, s)
		if err != nil {
			return "", err
		}
		return n.String(), nil
	default:
		return "", aulterrors.Validationf("field %q: unsupported string value of type %T", name, v)
	}
}

func coerceBool(name string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, aulterrors.Validationf("field %q: unsupported bool value of type %T", name, v)
	}
	return b, nil
}
