// Package cli wires configuration into a ready-to-use client and
// signer for the cobra commands.
package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ault-network/ault-go/client"
	"github.com/ault-network/ault-go/internal/config"
	"github.com/ault-network/ault-go/network"
	"github.com/ault-network/ault-go/signer"
)

// Env bundles the resolved runtime pieces of one CLI invocation.
type Env struct {
	Config  config.Config
	Network network.Network
	Client  *client.Client
}

// Setup loads configuration, configures logging and builds the client.
func Setup() (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	net, err := network.ByName(cfg.Network)
	if err != nil {
		return nil, err
	}
	if cfg.RestURL != "" {
		net.RestURL = cfg.RestURL
	}
	if cfg.FeeAmount != "" {
		net.DefaultFeeAmount = cfg.FeeAmount
	}
	if cfg.GasLimit != 0 {
		net.DefaultGasLimit = cfg.GasLimit
	}

	return &Env{
		Config:  cfg,
		Network: net,
		Client:  client.New(net),
	}, nil
}

// Signer builds the local signer from the configured private key.
func (e *Env) Signer() (*signer.LocalSigner, error) {
	if e.Config.PrivateKey == "" {
		return nil, errors.New("no private key configured; set AULT_PRIVATE_KEY")
	}
	return signer.LocalSignerFromHex(e.Config.PrivateKey)
}
