// Package network is the static registry of known Ault networks.
package network

import "github.com/pkg/errors"

// Network describes one chain deployment.
type Network struct {
	Name         string
	ChainID      string
	EVMChainID   uint64
	RestURL      string
	Denom        string
	Bech32Prefix string
	// DefaultGasLimit and DefaultFeeAmount seed the fee when the caller
	// does not set one explicitly.
	DefaultGasLimit  uint64
	DefaultFeeAmount string
}

// Mainnet is the production network.
var Mainnet = Network{
	Name:             "mainnet",
	ChainID:          "ault_10904-1",
	EVMChainID:       10904,
	RestURL:          "https://rest.ault.network",
	Denom:            "aault",
	Bech32Prefix:     "ault",
	DefaultGasLimit:  200_000,
	DefaultFeeAmount: "5000000000000000",
}

// Testnet is the public test network.
var Testnet = Network{
	Name:             "testnet",
	ChainID:          "ault_10905-1",
	EVMChainID:       10905,
	RestURL:          "https://rest.testnet.ault.network",
	Denom:            "aault",
	Bech32Prefix:     "ault",
	DefaultGasLimit:  200_000,
	DefaultFeeAmount: "5000000000000000",
}

var known = map[string]Network{
	Mainnet.Name: Mainnet,
	Testnet.Name: Testnet,
}

// ByName looks up a known network.
func ByName(name string) (Network, error) {
	net, ok := known[name]
	if !ok {
		return Network{}, errors.Errorf("unknown network %q", name)
	}
	return net, nil
}

// Custom validates a caller-defined network. RestURL and ChainID are
// mandatory; missing fee defaults fall back to mainnet's.
func Custom(net Network) (Network, error) {
	if net.ChainID == "" {
		return Network{}, errors.New("custom network requires a chain id")
	}
	if net.RestURL == "" {
		return Network{}, errors.New("custom network requires a REST URL")
	}
	if net.Denom == "" {
		net.Denom = Mainnet.Denom
	}
	if net.Bech32Prefix == "" {
		net.Bech32Prefix = Mainnet.Bech32Prefix
	}
	if net.DefaultGasLimit == 0 {
		net.DefaultGasLimit = Mainnet.DefaultGasLimit
	}
	if net.DefaultFeeAmount == "" {
		net.DefaultFeeAmount = Mainnet.DefaultFeeAmount
	}
	return net, nil
}
