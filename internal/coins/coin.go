// Package coins loads and serves the coin catalogue: the static table
// mapping a coin id to its blockchain, curve, public key type, and
// default derivation path. Grounded on the original Rust implementation's
// interface/src/coin.rs, which loads the same data from an embedded JSON
// resource and keeps a second, untyped view of it (all_info) for fields
// the typed Coin struct does not model.
package coins

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/vaultkit/walletengine/internal/walleterr"
)

//go:embed coins.json
var catalogueFS embed.FS

// Coin describes one blockchain's addressing parameters. AllInfo carries
// the coin's full JSON record so blockchain-specific fields not promoted
// to the typed struct (e.g. Polkadot's ss58_prefix) remain reachable via
// GetValue, the same open-mapping design the original catalogue uses.
type Coin struct {
	ID             string                     `json:"id"`
	Name           string                     `json:"name"`
	CoinID         int                        `json:"coin_id"`
	Symbol         string                     `json:"symbol"`
	Decimals       int                        `json:"decimals"`
	Blockchain     string                     `json:"blockchain"`
	DerivationPath string                     `json:"derivation_path"`
	Curve          string                     `json:"curve"`
	PublicKeyType  string                     `json:"public_key_type"`
	AllInfo        map[string]json.RawMessage `json:"-"`
}

// Equal reports whether two coins are the same catalogue entry. Per the
// original chain-common::Coin PartialEq implementation, identity is
// determined by ID alone, not by any other field.
func (c Coin) Equal(other Coin) bool {
	return c.ID == other.ID
}

// GetValue returns the raw JSON value of an arbitrary catalogue field,
// for fields not promoted to the typed struct.
func (c Coin) GetValue(key string) (json.RawMessage, bool) {
	v, ok := c.AllInfo[key]
	return v, ok
}

// XPub reports whether the coin has an extended public key. Only
// secp256k1 coins do: for them it returns the coin's default derivation
// path (the path an xpub is derived at) and ok=true; for every other
// curve it returns "" and ok=false.
func (c Coin) XPub() (string, bool) {
	if c.Curve != "secp256k1" {
		return "", false
	}
	return c.DerivationPath, true
}

var (
	once    sync.Once
	byID    map[string]Coin
	loadErr error
)

func load() {
	raw, err := catalogueFS.ReadFile("coins.json")
	if err != nil {
		loadErr = fmt.Errorf("read coin catalogue: %w", err)
		return
	}

	var typed []Coin
	if err := json.Unmarshal(raw, &typed); err != nil {
		loadErr = fmt.Errorf("parse coin catalogue: %w", err)
		return
	}

	var untyped []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &untyped); err != nil {
		loadErr = fmt.Errorf("parse coin catalogue (raw): %w", err)
		return
	}

	byID = make(map[string]Coin, len(typed))
	for i, c := range typed {
		c.AllInfo = untyped[i]
		byID[c.ID] = c
	}
}

// Get returns the catalogue entry for id.
func Get(id string) (Coin, error) {
	once.Do(load)
	if loadErr != nil {
		return Coin{}, loadErr
	}
	c, ok := byID[id]
	if !ok {
		return Coin{}, fmt.Errorf("%w: %s", walleterr.ErrUnknownCoin, id)
	}
	return c, nil
}

// All returns every catalogue entry.
func All() ([]Coin, error) {
	once.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	out := make([]Coin, 0, len(byID))
	for _, c := range byID {
		out = append(out, c)
	}
	return out, nil
}
