package msgs

import (
	"sort"

	"github.com/ault-network/ault-go/aulterrors"
)

// NestedFieldType marks a field whose concrete EIP-712 type is generated
// at build time from the message value.
const NestedFieldType = "NESTED"

// FieldSpec names one EIP-712 field of a message value and its declared
// type ("string", "string[]", "bool", or NestedFieldType).
type FieldSpec struct {
	Name string
	Type string
}

// CheckFieldOrder verifies that the field names are in strict descending
// lexicographic order. The chain's legacy-Amino-JSON signing bridge
// canonicalizes fields in this order; a mismatch produces a signature
// the chain silently rejects, so the ordering is pinned here and
// verified at load time instead of trusted by convention.
func CheckFieldOrder(typeName string, fields []FieldSpec) error {
	for i := 1; i < len(fields); i++ {
		if fields[i-1].Name <= fields[i].Name {
			return aulterrors.Configurationf(
				"field order violation in %s: got %v, want %v",
				typeName, fieldNames(fields), sortedDescending(fields))
		}
	}
	return nil
}

func fieldNames(fields []FieldSpec) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func sortedDescending(fields []FieldSpec) []string {
	names := fieldNames(fields)
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names
}
