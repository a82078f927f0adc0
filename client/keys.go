package client

import (
	"reflect"
	"regexp"

	"github.com/ault-network/ault-go/aulterrors"
	"github.com/ault-network/ault-go/msgs"
)

var snakeCaseKey = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

// ValidateMessageKeys rejects any message value whose keys are not
// snake_case, recursively through nested records and arrays. The wire
// encoder indexes values by the chain schema's exact snake_case names,
// so a camelCase key would silently drop the field from the encoded
// transaction.
func ValidateMessageKeys(m msgs.Message) error {
	return validateKeys(m.TypeURL, m.Value)
}

func validateKeys(typeURL string, value map[string]any) error {
	for key, raw := range value {
		if !snakeCaseKey.MatchString(key) {
			return aulterrors.Validationf(
				"message %s has non-snake_case key %q", typeURL, key)
		}
		if err := validateNested(typeURL, raw); err != nil {
			return err
		}
	}
	return nil
}

func validateNested(typeURL string, raw any) error {
	switch v := raw.(type) {
	case nil, []byte:
		return nil
	case map[string]any:
		return validateKeys(typeURL, v)
	default:
		rv := reflect.ValueOf(raw)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil
		}
		for i := 0; i < rv.Len(); i++ {
			if err := validateNested(typeURL, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}
}
