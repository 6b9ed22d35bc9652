// Package registry holds the static list of chains the tracker watches.
package registry

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/jellydator/validation"
	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateChain = errors.New("duplicate chain id")
	ErrNoChains       = errors.New("no chains configured")
)

var rpcScheme = regexp.MustCompile(`^(https?|wss?)://.+`)

type Chain struct {
	ID        int64   `yaml:"id"`
	Name      string  `yaml:"name"`
	RPC       string  `yaml:"rpc"`
	Blocktime float64 `yaml:"blocktime"` // average seconds per block
}

func (c Chain) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.RPC, validation.Required, validation.Match(rpcScheme)),
		validation.Field(&c.Blocktime, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

type file struct {
	Chains []Chain `yaml:"chains"`
}

// Default is used when no registry file is configured.
func Default() []Chain {
	return []Chain{
		{
			ID:        1,
			Name:      "Ethereum",
			RPC:       "https://rpc.ankr.com/eth",
			Blocktime: 12,
		},
	}
}

// Load reads the chain registry from a YAML file. An empty path yields the
// default registry.
func Load(path string) ([]Chain, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chains file: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) ([]Chain, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode chains file: %w", err)
	}

	if len(f.Chains) == 0 {
		return nil, ErrNoChains
	}

	seen := make(map[int64]struct{}, len(f.Chains))
	for i, chain := range f.Chains {
		if err := chain.Validate(); err != nil {
			return nil, fmt.Errorf("validate chain #%d: %w", i, err)
		}
		if _, ok := seen[chain.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateChain, chain.ID)
		}
		seen[chain.ID] = struct{}{}
	}

	return f.Chains, nil
}
