// Package chains is the coin-dispatch layer: a registry mapping a coin's
// Blockchain field to the address module that knows how to turn a public
// key into that chain's address string. Grounded on the original Rust
// coin_dispatcher's closed-set-of-impls design, translated into Go as a
// map of AddressDeriver values populated at package init rather than
// virtual dispatch, since Go has no trait objects to switch on.
package chains

import (
	"fmt"
	"sync"

	"github.com/vaultkit/walletengine/internal/coins"
	"github.com/vaultkit/walletengine/internal/crypto/publickey"
	"github.com/vaultkit/walletengine/internal/walleterr"
)

// AddressDeriver turns a coin's public key into that chain's address
// string. pubKey is the account's public key and extra/data are reserved
// for chain modules that need additional context (e.g. a contract salt);
// every built-in module ignores them today.
type AddressDeriver interface {
	DeriveAddress(coin coins.Coin, pubKey publickey.PublicKey, extra, data []byte) (string, error)
}

var (
	mu       sync.RWMutex
	registry = map[string]AddressDeriver{}
)

// Register binds blockchain to deriver. Called from each chain module's
// init function, so the registry is fully populated before any dispatch
// call runs.
func Register(blockchain string, deriver AddressDeriver) {
	mu.Lock()
	defer mu.Unlock()
	registry[blockchain] = deriver
}

// DeriveAddress looks up coin.Blockchain in the registry and derives an
// address from pubKey.
func DeriveAddress(coin coins.Coin, pubKey publickey.PublicKey) (string, error) {
	mu.RLock()
	deriver, ok := registry[coin.Blockchain]
	mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", walleterr.ErrNoDispatcherForBlockchain, coin.Blockchain)
	}
	return deriver.DeriveAddress(coin, pubKey, nil, nil)
}
