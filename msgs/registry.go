// Package msgs holds the closed set of chain messages the SDK can sign
// and broadcast. Each message registers its EIP-712 field layout and a
// wire descriptor table mapping named fields onto the chain's proto
// field numbers; one generic encoder interprets the descriptors.
package msgs

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ault-network/ault-go/aulterrors"
)

// Message is one application-level intent addressed to the chain: a
// registry key plus a named-field value record. Value keys are the
// chain schema's snake_case names; values may be strings, booleans,
// *big.Int, safe-range numbers, byte slices, base64 strings, or nested
// maps/slices thereof.
type Message struct {
	TypeURL string
	Value   map[string]any
}

// Config describes one registered message type.
type Config struct {
	// TypeURL is the proto Any type URL, e.g. "/ault.license.v1.MsgMintLicense".
	TypeURL string
	// AminoType is the legacy Amino name, e.g. "license/MsgMintLicense".
	AminoType string
	// EIP712TypeName is the base name of the generated wrapper type.
	EIP712TypeName string
	// LegacyAmino reports whether the message can be bridged through the
	// legacy-Amino-JSON EIP-712 path. Unbridgeable messages stay
	// registered so the failure names the type instead of "unknown".
	LegacyAmino bool
	// ValueFields is the message value's EIP-712 field list, in strict
	// descending name order.
	ValueFields []FieldSpec
	// NestedTypes maps a NESTED field name to its own field list, also
	// in strict descending name order.
	NestedTypes map[string][]FieldSpec
	// WireFields is the proto wire descriptor table for the value.
	WireFields []WireField
}

var registry = map[string]Config{}

func register(cfg Config) {
	if _, exists := registry[cfg.TypeURL]; exists {
		panic(fmt.Sprintf("duplicate message registration: %s", cfg.TypeURL))
	}
	registry[cfg.TypeURL] = cfg
}

// Lookup returns the registered config for typeURL.
func Lookup(typeURL string) (Config, error) {
	mustValidate()
	cfg, ok := registry[typeURL]
	if !ok {
		return Config{}, aulterrors.Configurationf("unknown message type: %s", typeURL)
	}
	return cfg, nil
}

// TypeURLs returns all registered type URLs in sorted order.
func TypeURLs() []string {
	urls := make([]string, 0, len(registry))
	for url := range registry {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}

// ValidateRegistry checks the descending field-order invariant across
// every registered message and every nested type. It runs once before
// first use; any violation is a registry defect, not a runtime condition.
func ValidateRegistry() error {
	for _, url := range TypeURLs() {
		cfg := registry[url]
		if err := CheckFieldOrder(cfg.TypeURL, cfg.ValueFields); err != nil {
			return err
		}
		for name, fields := range cfg.NestedTypes {
			if err := CheckFieldOrder(fmt.Sprintf("%s.%s", cfg.TypeURL, name), fields); err != nil {
				return err
			}
		}
	}
	return nil
}

var validateOnce sync.Once

// mustValidate runs the registry-wide order check before first use.
// Violations are unrecoverable: the registry is compiled in.
func mustValidate() {
	validateOnce.Do(func() {
		if err := ValidateRegistry(); err != nil {
			panic(err)
		}
	})
}
